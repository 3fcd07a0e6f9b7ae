package sale

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	domain "github.com/BruksfildServices01/salon-pos/internal/domain/sale"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/metrics"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

type CreateSaleInput struct {
	CustomerID    *string
	PaymentMethod string
	Items         []domain.Item
}

// ======================================================
// CREATE
// ======================================================

type CreateSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSale(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSale {
	return &CreateSale{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateSale) Execute(
	ctx context.Context,
	actor usecase.Actor,
	in CreateSaleInput,
) (*models.CashSale, error) {

	if err := usecase.RequireStaff(ctx, uc.repo, actor); err != nil {
		return nil, err
	}

	s, err := domain.Build(actor.SalonID, actor.UserID, in.CustomerID, in.PaymentMethod, in.Items)
	if err != nil {
		return nil, err
	}

	// nil stays a walk-in
	if s.CustomerID != nil {
		if _, err := usecase.FindCustomer(ctx, uc.repo, actor.SalonID, *s.CustomerID); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.CreateSale(ctx, s); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	metrics.IncSaleCreated(s.PaymentMethod)

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "sale_created",
		Entity:   "cash_sale",
		EntityID: &s.ID,
		Metadata: map[string]any{
			"payment_method": s.PaymentMethod,
			"total":          s.TotalAmount.String(),
		},
	})

	return s, nil
}

// ======================================================
// LIST
// ======================================================

type ListSales struct {
	repo domain.Repository
}

func NewListSales(repo domain.Repository) *ListSales {
	return &ListSales{repo: repo}
}

func (uc *ListSales) Execute(
	ctx context.Context,
	actor usecase.Actor,
	paymentMethod string,
	from time.Time,
	to time.Time,
) ([]models.CashSale, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("forbidden")
	}
	if !from.Before(to) {
		return nil, httperr.ErrValidation("invalid_range")
	}

	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	if method != "" && !domain.ValidPaymentMethod(method) {
		return nil, httperr.ErrValidation("invalid_payment_method")
	}

	rows, err := uc.repo.ListSales(ctx, actor.SalonID, method, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return rows, nil
}
