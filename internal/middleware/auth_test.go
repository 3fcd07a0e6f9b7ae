package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AuthMiddleware(&config.Config{JWTSecret: secret}))
	r.GET("/me", func(c *gin.Context) {
		a := Actor(c)
		c.JSON(http.StatusOK, gin.H{"user": a.UserID, "salon": a.SalonID, "role": a.Role})
	})
	r.GET("/admin", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func call(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func claims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":     "user-1",
		"salonId": "salon-1",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthMiddleware(t *testing.T) {
	r := router()

	w := call(r, "/me", sign(t, claims(models.RoleStaff), secret))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"user-1","salon":"salon-1","role":"staff"}`, w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	r := router()

	expired := claims(models.RoleStaff)
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noSalon := claims(models.RoleStaff)
	delete(noSalon, "salonId")

	cases := map[string]string{
		"missing":       "",
		"wrong key":     sign(t, claims(models.RoleStaff), "other"),
		"expired":       sign(t, expired, secret),
		"missing salon": sign(t, noSalon, secret),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, call(r, "/me", token).Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := router()

	assert.Equal(t, http.StatusForbidden, call(r, "/admin", sign(t, claims(models.RoleStaff), secret)).Code)
	assert.Equal(t, http.StatusNoContent, call(r, "/admin", sign(t, claims(models.RoleAdmin), secret)).Code)
}
