package closing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	domain "github.com/BruksfildServices01/salon-pos/internal/domain/closing"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

// ======================================================
// LIST
// ======================================================

type ListClosings struct {
	repo domain.Repository
}

func NewListClosings(repo domain.Repository) *ListClosings {
	return &ListClosings{repo: repo}
}

// Execute lists closings whose closing date falls in [from, to). Zero
// bounds are open.
func (uc *ListClosings) Execute(
	ctx context.Context,
	actor usecase.Actor,
	from time.Time,
	to time.Time,
) ([]models.CashClosing, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("forbidden")
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, httperr.ErrValidation("invalid_range")
	}

	rows, err := uc.repo.ListClosings(ctx, actor.SalonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list closings: %w", err)
	}
	return rows, nil
}

// ======================================================
// GET
// ======================================================

type GetClosing struct {
	repo domain.Repository
}

func NewGetClosing(repo domain.Repository) *GetClosing {
	return &GetClosing{repo: repo}
}

func (uc *GetClosing) Execute(
	ctx context.Context,
	actor usecase.Actor,
	closingID string,
) (*models.CashClosing, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return loadClosing(ctx, uc.repo, actor.SalonID, closingID)
}

// ======================================================
// ANNOTATE
// ======================================================

// AnnotateClosing sets the admin note, the only field of a closing that
// changes after it is written.
type AnnotateClosing struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAnnotateClosing(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AnnotateClosing {
	return &AnnotateClosing{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AnnotateClosing) Execute(
	ctx context.Context,
	actor usecase.Actor,
	closingID string,
	note string,
) (*models.CashClosing, error) {

	if !actor.IsAdmin() {
		return nil, httperr.ErrForbidden("forbidden")
	}

	ok, err := uc.repo.SetAdminNote(ctx, actor.SalonID, closingID, strings.TrimSpace(note))
	if err != nil {
		return nil, fmt.Errorf("annotate closing: %w", err)
	}
	if !ok {
		return nil, httperr.ErrNotFound("closing_not_found")
	}

	c, err := loadClosing(ctx, uc.repo, actor.SalonID, closingID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "closing_annotated",
		Entity:   "cash_closing",
		EntityID: &c.ID,
	})

	return c, nil
}

func loadClosing(
	ctx context.Context,
	repo domain.Repository,
	salonID string,
	closingID string,
) (*models.CashClosing, error) {

	c, err := repo.GetClosing(ctx, salonID, closingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("closing_not_found")
		}
		return nil, fmt.Errorf("load closing: %w", err)
	}
	if c.SalonID != salonID {
		return nil, httperr.ErrNotFound("closing_not_found")
	}
	return c, nil
}
