package sale

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type Repository interface {
	GetUser(
		ctx context.Context,
		salonID string,
		userID string,
	) (*models.User, error)

	// CreateSale stores the sale and its items atomically.
	CreateSale(
		ctx context.Context,
		s *models.CashSale,
	) error

	// paymentMethod "" lists every method.
	ListSales(
		ctx context.Context,
		salonID string,
		paymentMethod string,
		from time.Time,
		to time.Time,
	) ([]models.CashSale, error)
}
