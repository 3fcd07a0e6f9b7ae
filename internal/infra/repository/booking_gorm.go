package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type BookingGormRepository struct {
	tenant
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{tenant: tenant{db: db}, db: db}
}

var _ domain.Repository = (*BookingGormRepository)(nil)

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	salonID string,
	bookingID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", bookingID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	salonID string,
	staffID string,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND starts_at < ? AND ends_at > ?", salonID, to, from)
	if staffID != "" {
		q = q.Where("staff_id = ?", staffID)
	}

	var bookings []models.Booking
	if err := q.Order("starts_at ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
