package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

const (
	ContextUserID   = "userID"
	ContextSalonID  = "salonID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token claims are invalid.")
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		salonID, _ := claims["salonId"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || salonID == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Token payload is incomplete.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSalonID, salonID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "You are not allowed to perform this action.")
		c.Abort()
	}
}

// Actor returns the caller resolved by AuthMiddleware.
func Actor(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		UserID:  c.GetString(ContextUserID),
		SalonID: c.GetString(ContextSalonID),
		Role:    c.GetString(ContextUserRole),
	}
}
