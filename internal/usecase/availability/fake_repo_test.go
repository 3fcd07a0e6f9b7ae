package availability

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/availability"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type fakeRepo struct {
	salons   map[string]models.Salon
	users    map[string]models.User
	hours    []models.OpeningHours
	blocks   map[string]models.AvailabilityBlock
	bookings []models.Booking
	nextID   int
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons: map[string]models.Salon{},
		users:  map[string]models.User{},
		blocks: map[string]models.AvailabilityBlock{},
	}
}

func (f *fakeRepo) GetSalon(_ context.Context, salonID string) (*models.Salon, error) {
	s, ok := f.salons[salonID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (f *fakeRepo) GetUser(_ context.Context, salonID, userID string) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok || u.SalonID != salonID {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeRepo) ListStaff(_ context.Context, salonID string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.SalonID == salonID && u.IsStaff() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOpeningHours(_ context.Context, salonID string) ([]models.OpeningHours, error) {
	var out []models.OpeningHours
	for _, h := range f.hours {
		if h.SalonID == salonID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBlocks(_ context.Context, salonID, staffID string, from, to time.Time) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.SalonID != salonID || (staffID != "" && b.StaffID != staffID) {
			continue
		}
		if b.Start.Before(to) && b.End.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBlock(_ context.Context, salonID, blockID string) (*models.AvailabilityBlock, error) {
	b, ok := f.blocks[blockID]
	if !ok || b.SalonID != salonID {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeRepo) CreateBlock(_ context.Context, b *models.AvailabilityBlock) error {
	f.nextID++
	b.ID = "block-" + string(rune('0'+f.nextID))
	f.blocks[b.ID] = *b
	return nil
}

func (f *fakeRepo) UpdateBlock(_ context.Context, b *models.AvailabilityBlock, expectedVersion int) (bool, error) {
	stored, ok := f.blocks[b.ID]
	if !ok || stored.SalonID != b.SalonID {
		return false, nil
	}
	if expectedVersion > 0 && stored.Version != expectedVersion {
		return false, nil
	}
	next := *b
	next.Version = stored.Version + 1
	f.blocks[b.ID] = next
	return true, nil
}

func (f *fakeRepo) DeleteBlock(_ context.Context, salonID, blockID string) (bool, error) {
	b, ok := f.blocks[blockID]
	if !ok || b.SalonID != salonID {
		return false, nil
	}
	delete(f.blocks, blockID)
	return true, nil
}

func (f *fakeRepo) ListActiveBookings(_ context.Context, salonID, staffID string, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.SalonID != salonID || (staffID != "" && b.StaffID != staffID) || b.Status == "cancelled" {
			continue
		}
		if b.Start.Before(to) && b.End.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

// seed builds two salons, each with one admin and one staff member, open
// Monday to Friday 09:00-17:00.
func seed() *fakeRepo {
	f := newFakeRepo()
	f.salons["salon-a"] = models.Salon{ID: "salon-a", Timezone: "UTC"}
	f.salons["salon-b"] = models.Salon{ID: "salon-b", Timezone: "UTC"}

	f.users["admin-a"] = models.User{ID: "admin-a", SalonID: "salon-a", Name: "Ana", Role: models.RoleAdmin}
	f.users["staff-a"] = models.User{ID: "staff-a", SalonID: "salon-a", Name: "Bia", Role: models.RoleStaff}
	f.users["client-a"] = models.User{ID: "client-a", SalonID: "salon-a", Name: "Caio", Role: models.RoleUser}
	f.users["staff-b"] = models.User{ID: "staff-b", SalonID: "salon-b", Name: "Duda", Role: models.RoleStaff}

	for _, salon := range []string{"salon-a", "salon-b"} {
		for wd := 1; wd <= 5; wd++ {
			f.hours = append(f.hours, models.OpeningHours{
				SalonID: salon, Weekday: wd, IsOpen: true, Open: "09:00", Close: "17:00",
			})
		}
	}
	return f
}
