package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/sale"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type SaleGormRepository struct {
	tenant
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{tenant: tenant{db: db}, db: db}
}

var _ domain.Repository = (*SaleGormRepository)(nil)

func (r *SaleGormRepository) CreateSale(
	ctx context.Context,
	s *models.CashSale,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(s).Error; err != nil {
			return err
		}
		if len(s.Items) == 0 {
			return nil
		}
		for i := range s.Items {
			s.Items[i].SaleID = s.ID
		}
		return tx.Create(&s.Items).Error
	})
}

func (r *SaleGormRepository) ListSales(
	ctx context.Context,
	salonID string,
	paymentMethod string,
	from time.Time,
	to time.Time,
) ([]models.CashSale, error) {

	q := r.db.WithContext(ctx).
		Preload("Items").
		Where("salon_id = ? AND created_at >= ? AND created_at < ?", salonID, from, to)
	if paymentMethod != "" {
		q = q.Where("payment_method = ?", paymentMethod)
	}

	var sales []models.CashSale
	if err := q.Order("created_at ASC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
