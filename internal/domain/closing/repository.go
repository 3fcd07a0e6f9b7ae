package closing

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/money"
)

type Repository interface {
	GetSalon(
		ctx context.Context,
		salonID string,
	) (*models.Salon, error)

	GetUser(
		ctx context.Context,
		salonID string,
		userID string,
	) (*models.User, error)

	// LastClosingTime returns the closing date of the salon's latest
	// closing; ok is false when the salon never closed.
	LastClosingTime(
		ctx context.Context,
		salonID string,
	) (t time.Time, ok bool, err error)

	// SumCashSales totals cash sales with since < created_at <= until.
	SumCashSales(
		ctx context.Context,
		salonID string,
		since time.Time,
		until time.Time,
	) (total money.Amount, count int, err error)

	CreateClosing(
		ctx context.Context,
		c *models.CashClosing,
	) error

	GetClosing(
		ctx context.Context,
		salonID string,
		closingID string,
	) (*models.CashClosing, error)

	ListClosings(
		ctx context.Context,
		salonID string,
		from time.Time,
		to time.Time,
	) ([]models.CashClosing, error)

	SetAdminNote(
		ctx context.Context,
		salonID string,
		closingID string,
		note string,
	) (bool, error)
}

// Locker serializes closing confirmations of one salon.
type Locker interface {
	// Acquire returns a release func, or ok=false when the lock is held.
	Acquire(ctx context.Context, salonID string) (release func(), ok bool, err error)
}
