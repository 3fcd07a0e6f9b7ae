package closing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/closing"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
)

// PreviewClosing computes the cash the register should hold from sales
// alone. It has no side effects.
type PreviewClosing struct {
	repo domain.Repository
	now  func() time.Time
}

func NewPreviewClosing(repo domain.Repository) *PreviewClosing {
	return &PreviewClosing{
		repo: repo,
		now:  timezone.NowUTC,
	}
}

func (uc *PreviewClosing) Execute(
	ctx context.Context,
	salonID string,
) (*domain.Preview, error) {
	return preview(ctx, uc.repo, salonID, uc.now())
}

// preview sums cash sales in (last closing, until].
func preview(
	ctx context.Context,
	repo domain.Repository,
	salonID string,
	until time.Time,
) (*domain.Preview, error) {

	salon, err := loadSalon(ctx, repo, salonID)
	if err != nil {
		return nil, err
	}

	since, ok, err := repo.LastClosingTime(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("last closing: %w", err)
	}
	if !ok {
		since = salon.CreatedAt
	}
	since = since.UTC()
	until = until.UTC()

	total, count, err := repo.SumCashSales(ctx, salonID, since, until)
	if err != nil {
		return nil, fmt.Errorf("sum cash sales: %w", err)
	}

	return &domain.Preview{
		SalonID:        salonID,
		Since:          since,
		Until:          until,
		ExpectedAmount: total,
		SaleCount:      count,
	}, nil
}

func loadSalon(
	ctx context.Context,
	repo domain.Repository,
	salonID string,
) (*models.Salon, error) {

	salon, err := repo.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("salon_not_found")
		}
		return nil, fmt.Errorf("load salon: %w", err)
	}
	return salon, nil
}
