package closing

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	domain "github.com/BruksfildServices01/salon-pos/internal/domain/closing"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/metrics"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

// ======================================================
// USE CASE
// ======================================================

type ConfirmClosing struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
	now    func() time.Time
}

// NewConfirmClosing builds the use case. A nil locker leaves concurrent
// confirmations of one salon unserialized.
func NewConfirmClosing(
	repo domain.Repository,
	locker domain.Locker,
	audit *audit.Dispatcher,
) *ConfirmClosing {
	return &ConfirmClosing{
		repo:   repo,
		locker: locker,
		audit:  audit,
		now:    timezone.NowUTC,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmClosing) Execute(
	ctx context.Context,
	actor usecase.Actor,
	count domain.Count,
) (*models.CashClosing, error) {

	if err := count.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Operator must be staff of this salon
	// --------------------------------------------------
	if err := usecase.RequireStaff(ctx, uc.repo, actor); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Per-salon lock around preview + persist
	// --------------------------------------------------
	if uc.locker != nil {
		release, ok, err := uc.locker.Acquire(ctx, actor.SalonID)
		if err != nil {
			return nil, fmt.Errorf("acquire closing lock: %w", err)
		}
		if !ok {
			return nil, httperr.ErrConflict("closing_in_progress")
		}
		defer release()
	}

	// --------------------------------------------------
	// Expected cash is always derived here, never taken from the client
	// --------------------------------------------------
	p, err := preview(ctx, uc.repo, actor.SalonID, uc.now())
	if err != nil {
		return nil, err
	}

	c, err := domain.Build(*p, actor.UserID, count)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateClosing(ctx, c); err != nil {
		return nil, fmt.Errorf("create closing: %w", err)
	}

	metrics.ObserveClosing(c.Difference.Float64())

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "closing_confirmed",
		Entity:   "cash_closing",
		EntityID: &c.ID,
		Metadata: map[string]any{
			"cash_sales": c.CashSales.String(),
			"difference": c.Difference.String(),
			"sale_count": p.SaleCount,
		},
	})

	return c, nil
}
