package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/config"
	closingDomain "github.com/BruksfildServices01/salon-pos/internal/domain/closing"
	"github.com/BruksfildServices01/salon-pos/internal/handlers"
	"github.com/BruksfildServices01/salon-pos/internal/infra/archive"
	"github.com/BruksfildServices01/salon-pos/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/logging"
	"github.com/BruksfildServices01/salon-pos/internal/metrics"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	ucAvailability "github.com/BruksfildServices01/salon-pos/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/salon-pos/internal/usecase/booking"
	ucClosing "github.com/BruksfildServices01/salon-pos/internal/usecase/closing"
	ucSale "github.com/BruksfildServices01/salon-pos/internal/usecase/sale"
)

// RegisterRoutes wires infra, use cases and handlers onto r. rdb may be nil.
// The returned func drains background workers and must run on shutdown.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) func() {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(logging.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsEnabled {
		metrics.Register()
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	saleRepo := infraRepo.NewSaleGormRepository(db)
	closingRepo := infraRepo.NewClosingGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	var locker closingDomain.Locker
	if rdb != nil {
		locker = lock.NewRedisLocker(rdb, cfg.ClosingLockTTL, log)
	}

	var archiver ucClosing.Archiver
	if cfg.ArchiveEnabled() {
		archiver = archive.NewS3Archive(archive.Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
	}

	// ======================================================
	// USE CASES
	// ======================================================
	scheduleUC := ucAvailability.NewGetEffectiveSchedule(availabilityRepo, cfg.ScheduleMaxDays)

	availabilityHandler := handlers.NewAvailabilityHandler(
		scheduleUC,
		ucAvailability.NewListDayView(availabilityRepo),
		ucAvailability.NewCreateBlock(availabilityRepo, auditDispatcher),
		ucAvailability.NewUpdateBlock(availabilityRepo, auditDispatcher),
		ucAvailability.NewDeleteBlock(availabilityRepo, auditDispatcher),
	)

	bookingHandler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(bookingRepo, auditDispatcher),
		ucBooking.NewRescheduleBooking(bookingRepo, auditDispatcher),
		ucBooking.NewChangeBookingStatus(bookingRepo, auditDispatcher),
		ucBooking.NewListBookings(bookingRepo),
	)

	saleHandler := handlers.NewSaleHandler(
		ucSale.NewCreateSale(saleRepo, auditDispatcher),
		ucSale.NewListSales(saleRepo),
	)

	closingHandler := handlers.NewClosingHandler(
		ucClosing.NewPreviewClosing(closingRepo),
		ucClosing.NewConfirmClosing(closingRepo, locker, auditDispatcher),
		ucClosing.NewListClosings(closingRepo),
		ucClosing.NewGetClosing(closingRepo),
		ucClosing.NewAnnotateClosing(closingRepo, auditDispatcher),
		ucClosing.NewExportClosings(closingRepo, archiver),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	userHandler := handlers.NewUserHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db, scheduleUC)

	staffOnly := middleware.RequireRole(models.RoleStaff, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public/:slug")
		{
			public.GET("", publicHandler.Salon)
			public.GET("/schedule", publicHandler.Schedule)
			public.POST("/register", authHandler.RegisterCustomer)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/salon", salonHandler.Get)
			secured.PATCH("/salon", adminOnly, salonHandler.Update)
			secured.GET("/salon/opening-hours", salonHandler.GetOpeningHours)
			secured.PUT("/salon/opening-hours", adminOnly, salonHandler.PutOpeningHours)

			secured.GET("/staff", userHandler.ListStaff)
			secured.POST("/staff", adminOnly, userHandler.CreateStaff)
			secured.GET("/customers", staffOnly, userHandler.ListCustomers)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			secured.GET("/schedule", availabilityHandler.Schedule)
			secured.GET("/day-view", staffOnly, availabilityHandler.DayView)
			secured.POST("/blocks", staffOnly, availabilityHandler.CreateBlock)
			secured.PATCH("/blocks/:id", staffOnly, availabilityHandler.UpdateBlock)
			secured.DELETE("/blocks/:id", staffOnly, availabilityHandler.DeleteBlock)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id/reschedule", bookingHandler.Reschedule)
			secured.PATCH("/bookings/:id/status", bookingHandler.ChangeStatus)

			// ------------------------------
			// SALES & CLOSINGS
			// ------------------------------
			secured.POST("/sales", staffOnly, saleHandler.Create)
			secured.GET("/sales", staffOnly, saleHandler.List)

			secured.GET("/closings/preview", staffOnly, closingHandler.Preview)
			secured.POST("/closings", staffOnly, closingHandler.Confirm)
			secured.GET("/closings", staffOnly, closingHandler.List)
			secured.GET("/closings/export", adminOnly, closingHandler.Export)
			secured.GET("/closings/:id", staffOnly, closingHandler.Get)
			secured.PATCH("/closings/:id/note", adminOnly, closingHandler.Annotate)

			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}

	return auditDispatcher.Close
}
