package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/availability"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type AvailabilityGormRepository struct {
	tenant
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{tenant: tenant{db: db}, db: db}
}

var _ domain.Repository = (*AvailabilityGormRepository)(nil)

// --------------------------------------------------
// Staff / opening hours
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListStaff(
	ctx context.Context,
	salonID string,
) ([]models.User, error) {

	var staff []models.User
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND role IN ?", salonID, []string{models.RoleStaff, models.RoleAdmin}).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *AvailabilityGormRepository) ListOpeningHours(
	ctx context.Context,
	salonID string,
) ([]models.OpeningHours, error) {

	var rows []models.OpeningHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Blocks
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListBlocks(
	ctx context.Context,
	salonID string,
	staffID string,
	from time.Time,
	to time.Time,
) ([]models.AvailabilityBlock, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND starts_at < ? AND ends_at > ?", salonID, to, from)
	if staffID != "" {
		q = q.Where("staff_id = ?", staffID)
	}

	var blocks []models.AvailabilityBlock
	if err := q.Order("starts_at ASC").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *AvailabilityGormRepository) GetBlock(
	ctx context.Context,
	salonID string,
	blockID string,
) (*models.AvailabilityBlock, error) {

	var b models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", blockID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *AvailabilityGormRepository) CreateBlock(
	ctx context.Context,
	b *models.AvailabilityBlock,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *AvailabilityGormRepository) UpdateBlock(
	ctx context.Context,
	b *models.AvailabilityBlock,
	expectedVersion int,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AvailabilityBlock{}).
		Where("id = ? AND salon_id = ?", b.ID, b.SalonID)
	if expectedVersion > 0 {
		q = q.Where("version = ?", expectedVersion)
	}

	res := q.Updates(map[string]any{
		"type":      b.Type,
		"starts_at": b.Start,
		"ends_at":   b.End,
		"note":      b.Note,
		"version":   gorm.Expr("version + 1"),
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AvailabilityGormRepository) DeleteBlock(
	ctx context.Context,
	salonID string,
	blockID string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", blockID, salonID).
		Delete(&models.AvailabilityBlock{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListActiveBookings(
	ctx context.Context,
	salonID string,
	staffID string,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND status <> ? AND starts_at < ? AND ends_at > ?",
			salonID, "cancelled", to, from,
		)
	if staffID != "" {
		q = q.Where("staff_id = ?", staffID)
	}

	var bookings []models.Booking
	if err := q.Order("starts_at ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
