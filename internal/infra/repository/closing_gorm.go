package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/closing"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/money"
)

type ClosingGormRepository struct {
	tenant
	db *gorm.DB
}

func NewClosingGormRepository(db *gorm.DB) *ClosingGormRepository {
	return &ClosingGormRepository{tenant: tenant{db: db}, db: db}
}

var _ domain.Repository = (*ClosingGormRepository)(nil)

// --------------------------------------------------
// Window
// --------------------------------------------------

func (r *ClosingGormRepository) LastClosingTime(
	ctx context.Context,
	salonID string,
) (time.Time, bool, error) {

	var last models.CashClosing
	res := r.db.WithContext(ctx).
		Select("closing_date").
		Where("salon_id = ?", salonID).
		Order("closing_date DESC").
		Limit(1).
		Find(&last)
	if res.Error != nil {
		return time.Time{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		return time.Time{}, false, nil
	}
	return last.ClosingDate, true, nil
}

func (r *ClosingGormRepository) SumCashSales(
	ctx context.Context,
	salonID string,
	since time.Time,
	until time.Time,
) (money.Amount, int, error) {

	var row struct {
		Total money.Amount
		Count int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.CashSale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where(
			"salon_id = ? AND payment_method = ? AND created_at > ? AND created_at <= ?",
			salonID, models.PaymentCash, since, until,
		).
		Scan(&row).Error; err != nil {
		return money.Zero(), 0, err
	}
	return row.Total, row.Count, nil
}

// --------------------------------------------------
// Closings
// --------------------------------------------------

func (r *ClosingGormRepository) CreateClosing(
	ctx context.Context,
	c *models.CashClosing,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Withdrawals").Create(c).Error; err != nil {
			return err
		}
		if len(c.Withdrawals) == 0 {
			return nil
		}
		for i := range c.Withdrawals {
			c.Withdrawals[i].ClosingID = c.ID
		}
		return tx.Create(&c.Withdrawals).Error
	})
}

func orderedWithdrawals(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *ClosingGormRepository) GetClosing(
	ctx context.Context,
	salonID string,
	closingID string,
) (*models.CashClosing, error) {

	var c models.CashClosing
	if err := r.db.WithContext(ctx).
		Preload("Withdrawals", orderedWithdrawals).
		Where("id = ? AND salon_id = ?", closingID, salonID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClosingGormRepository) ListClosings(
	ctx context.Context,
	salonID string,
	from time.Time,
	to time.Time,
) ([]models.CashClosing, error) {

	q := r.db.WithContext(ctx).
		Preload("Withdrawals", orderedWithdrawals).
		Where("salon_id = ?", salonID)
	if !from.IsZero() {
		q = q.Where("closing_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("closing_date < ?", to)
	}

	var closings []models.CashClosing
	if err := q.Order("closing_date DESC").Find(&closings).Error; err != nil {
		return nil, err
	}
	return closings, nil
}

func (r *ClosingGormRepository) SetAdminNote(
	ctx context.Context,
	salonID string,
	closingID string,
	note string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.CashClosing{}).
		Where("id = ? AND salon_id = ?", closingID, salonID).
		Update("admin_note", note)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
