package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/dto"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/validators"
)

// UserHandler lists and creates the members of a salon.
type UserHandler struct {
	db         *gorm.DB
	checkEmail func(string) bool
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		db:         db,
		checkEmail: validators.IsEmailDomainValid,
	}
}

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ListStaff returns the schedulable members (staff and admins).
func (h *UserHandler) ListStaff(c *gin.Context) {
	h.list(c, models.RoleStaff, models.RoleAdmin)
}

// ListCustomers returns the salon's registered customers.
func (h *UserHandler) ListCustomers(c *gin.Context) {
	h.list(c, models.RoleUser)
}

func (h *UserHandler) list(c *gin.Context, roles ...string) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND role IN ?", middleware.Actor(c).SalonID, roles).
		Order("name ASC").
		Find(&users).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.User(&users[i]))
	}
	httpresp.OK(c, out)
}

// CreateStaff adds a staff member (or another admin) to the caller's salon.
func (h *UserHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if role != models.RoleStaff && role != models.RoleAdmin {
		httperr.Respond(c, httperr.ErrValidation("invalid_role"))
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !h.checkEmail(email) {
		httperr.Respond(c, httperr.ErrValidation("invalid_email_domain"))
		return
	}

	taken, err := exists(h.db.WithContext(c.Request.Context()), &models.User{}, "email = ?", email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if taken {
		httperr.Respond(c, httperr.ErrConflict("email_already_exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	user := models.User{
		SalonID:      middleware.Actor(c).SalonID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.User(&user))
}
