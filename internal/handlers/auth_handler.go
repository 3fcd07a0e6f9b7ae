package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	"github.com/BruksfildServices01/salon-pos/internal/dto"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
	"github.com/BruksfildServices01/salon-pos/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config

	// checkEmail guards against typo'd domains at sign-up.
	checkEmail func(string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:         db,
		config:     cfg,
		checkEmail: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	SalonName     string `json:"salon_name" binding:"required"`
	SalonSlug     string `json:"salon_slug" binding:"required"`
	SalonPhone    string `json:"salon_phone"`
	SalonAddress  string `json:"salon_address"`
	SalonTimezone string `json:"salon_timezone"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type CustomerRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User  dto.UserDTO  `json:"user"`
	Salon dto.SalonDTO `json:"salon"`
	Token string       `json:"token"`
}

// --------- Handlers ---------

// Register creates a salon together with its first admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	tz := strings.TrimSpace(req.SalonTimezone)
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		httperr.Respond(c, httperr.ErrValidation("invalid_timezone"))
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !h.checkEmail(email) {
		httperr.Respond(c, httperr.ErrValidation("invalid_email_domain"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	salon := models.Salon{
		Name:     strings.TrimSpace(req.SalonName),
		Slug:     strings.ToLower(strings.TrimSpace(req.SalonSlug)),
		Phone:    req.SalonPhone,
		Address:  req.SalonAddress,
		Timezone: tz,
	}
	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleAdmin,
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if taken, err := exists(tx, &models.Salon{}, "slug = ?", salon.Slug); err != nil {
			return err
		} else if taken {
			return httperr.ErrConflict("slug_already_exists")
		}
		if taken, err := exists(tx, &models.User{}, "email = ?", email); err != nil {
			return err
		} else if taken {
			return httperr.ErrConflict("email_already_exists")
		}

		if err := tx.Create(&salon).Error; err != nil {
			return err
		}
		user.SalonID = salon.ID
		return tx.Create(&user).Error
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, &user, &salon)
}

// RegisterCustomer signs a customer up to the salon named by :slug.
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req CustomerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	var salon models.Salon
	if err := h.db.WithContext(ctx).
		Where("slug = ?", strings.ToLower(c.Param("slug"))).
		First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = httperr.ErrNotFound("salon_not_found")
		}
		httperr.Respond(c, err)
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !h.checkEmail(email) {
		httperr.Respond(c, httperr.ErrValidation("invalid_email_domain"))
		return
	}

	taken, err := exists(h.db.WithContext(ctx), &models.User{}, "email = ?", email)
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
		SalonID:      salon.ID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleUser,
	}
	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, &user, &salon)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Salon").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid e-mail or password.")
		return
	}

	h.respondWithToken(c, http.StatusOK, &user, &user.Salon)
}

func (h *AuthHandler) respondWithToken(
	c *gin.Context,
	status int,
	user *models.User,
	salon *models.Salon,
) {
	token, err := issueToken(h.config.JWTSecret, user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(status, authResponse{
		User:  dto.User(user),
		Salon: dto.Salon(salon),
		Token: token,
	})
}

func exists(db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
