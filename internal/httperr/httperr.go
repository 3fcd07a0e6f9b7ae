package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-pos/internal/metrics"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond maps a use case error onto the response. Business errors keep
// their code; everything else is logged and reported as internal.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		metrics.IncBusinessError(be.Code)
		Write(c, StatusFor(be.Kind), be.Code, messages[be.Code])
		return
	}

	zerolog.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("path", c.FullPath()).
		Msg("request failed")
	Internal(c, "internal_error", "Unexpected error.")
}

var messages = map[string]string{
	"invalid_request":        "Invalid request payload.",
	"invalid_range":          "The range start must be before its end.",
	"range_too_large":        "The requested range is too large.",
	"invalid_block_range":    "Block start must be before its end.",
	"invalid_block_type":     "Block type must be work, break or absence.",
	"staff_not_found":        "Staff member not found.",
	"block_not_found":        "Availability block not found.",
	"stale_block":            "The block was modified by someone else.",
	"booking_not_found":      "Booking not found.",
	"customer_not_found":     "Customer not found.",
	"invalid_booking_range":  "Booking start must be before its end.",
	"invalid_state":          "Operation not allowed in the current state.",
	"invalid_status":         "Unknown status.",
	"too_soon":               "Booking is too close to the current time.",
	"invalid_payment_method": "Payment method must be cash, card or voucher.",
	"invalid_items":          "A sale needs at least one valid item.",
	"salon_not_found":        "Salon not found.",
	"closing_not_found":      "Cash closing not found.",
	"closing_in_progress":    "Another closing is being confirmed for this salon.",
	"invalid_actual_cash":    "Counted cash is required and cannot be negative.",
	"invalid_cash_deposit":   "Cash deposit cannot be negative.",
	"forbidden":              "You are not allowed to perform this action.",
	"invalid_opening_hours":  "Opening hours are invalid.",
	"invalid_timezone":       "Unknown IANA timezone.",
	"invalid_email_domain":   "The e-mail domain does not look valid.",
	"invalid_role":           "Role must be staff or admin.",
	"slug_already_exists":    "Another salon already uses this slug.",
	"email_already_exists":   "This e-mail is already registered.",
}
