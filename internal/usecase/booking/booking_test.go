package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetSalon(ctx context.Context, salonID string) (*models.Salon, error) {
	args := m.Called(ctx, salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Salon), args.Error(1)
}

func (m *mockRepo) GetUser(ctx context.Context, salonID, userID string) (*models.User, error) {
	args := m.Called(ctx, salonID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) GetBooking(ctx context.Context, salonID, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, salonID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) ListBookings(ctx context.Context, salonID, staffID string, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, salonID, staffID, from, to)
	return args.Get(0).([]models.Booking), args.Error(1)
}

var (
	ctx      = context.Background()
	now      = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	salon    = &models.Salon{ID: "salon-a", Timezone: "UTC", MinAdvanceMinutes: 120}
	stylist  = &models.User{ID: "staff-a", SalonID: "salon-a", Role: models.RoleStaff}
	admin    = usecase.Actor{UserID: "admin-a", SalonID: "salon-a", Role: models.RoleAdmin}
	customer = usecase.Actor{UserID: "client-a", SalonID: "salon-a", Role: models.RoleUser}
)

func at(h, m int) time.Time {
	return time.Date(2024, 6, 10, h, m, 0, 0, time.UTC)
}

func TestCreateBooking_ReportsOverlaps(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSalon", ctx, "salon-a").Return(salon, nil)
	repo.On("GetUser", ctx, "salon-a", "staff-a").Return(stylist, nil)
	repo.On("GetUser", ctx, "salon-a", "client-a").Return(&models.User{ID: "client-a", SalonID: "salon-a", Role: models.RoleUser}, nil)
	repo.On("ListBookings", ctx, "salon-a", "staff-a", at(10, 0), at(11, 0)).Return([]models.Booking{
		{ID: "k1", Status: "confirmed", Start: at(10, 30), End: at(11, 30)},
		{ID: "k2", Status: "pending", Start: at(10, 0), End: at(11, 0)},
		{ID: "k3", Status: "paid", Start: at(9, 0), End: at(10, 15)},
	}, nil)
	repo.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewCreateBooking(repo, nil)
	out, err := uc.Execute(ctx, admin, CreateBookingInput{
		StaffID:     "staff-a",
		ServiceName: " Haircut ",
		CustomerID:  "client-a",
		Start:       at(10, 0),
		End:         at(11, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"k1", "k3"}, out.Overlaps)
	assert.Equal(t, "confirmed", out.Booking.Status)
	assert.Equal(t, "Haircut", out.Booking.ServiceName)
	assert.Equal(t, "salon-a", out.Booking.SalonID)
	repo.AssertExpectations(t)
}

func TestCreateBooking_CustomerRules(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSalon", ctx, "salon-a").Return(salon, nil)
	repo.On("GetUser", ctx, "salon-a", "staff-a").Return(stylist, nil)
	repo.On("ListBookings", ctx, "salon-a", "staff-a", mock.Anything, mock.Anything).Return([]models.Booking{}, nil)
	repo.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewCreateBooking(repo, nil)
	uc.now = func() time.Time { return now }

	_, err := uc.Execute(ctx, customer, CreateBookingInput{StaffID: "staff-a", Start: at(9, 0), End: at(10, 0)})
	assert.True(t, httperr.IsBusiness(err, "too_soon"))

	out, err := uc.Execute(ctx, customer, CreateBookingInput{
		StaffID:    "staff-a",
		CustomerID: "someone-else",
		Start:      at(10, 0),
		End:        at(11, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Booking.Status)
	assert.Equal(t, "client-a", out.Booking.CustomerID)
	assert.Empty(t, out.Overlaps)
}

func TestCreateBooking_Validation(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSalon", ctx, "salon-a").Return(salon, nil)
	repo.On("GetUser", ctx, "salon-a", "staff-a").Return(stylist, nil)
	repo.On("GetUser", ctx, "salon-a", "staff-b").Return(nil, gorm.ErrRecordNotFound)

	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(ctx, admin, CreateBookingInput{StaffID: "staff-b", Start: at(10, 0), End: at(11, 0)})
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))

	_, err = uc.Execute(ctx, admin, CreateBookingInput{StaffID: "staff-a", Start: at(11, 0), End: at(10, 0)})
	assert.True(t, httperr.IsBusiness(err, "invalid_booking_range"))

	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_CustomerFromAnotherSalon(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetSalon", ctx, "salon-a").Return(salon, nil)
	repo.On("GetUser", ctx, "salon-a", "staff-a").Return(stylist, nil)
	repo.On("GetUser", ctx, "salon-a", "client-z").Return(nil, gorm.ErrRecordNotFound)

	uc := NewCreateBooking(repo, nil)
	_, err := uc.Execute(ctx, admin, CreateBookingInput{
		StaffID:    "staff-a",
		CustomerID: "client-z",
		Start:      at(10, 0),
		End:        at(11, 0),
	})
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestChangeBookingStatus(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetBooking", ctx, "salon-a", "k1").Return(&models.Booking{
		ID: "k1", SalonID: "salon-a", CustomerID: "client-a", Status: "confirmed",
	}, nil)
	repo.On("UpdateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewChangeBookingStatus(repo, nil)
	uc.now = func() time.Time { return now }

	_, err := uc.Execute(ctx, customer, "k1", "paid")
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, err = uc.Execute(ctx, admin, "k1", "done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	b, err := uc.Execute(ctx, admin, "k1", "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", b.Status)
}

func TestChangeBookingStatus_TerminalAndCancel(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetBooking", ctx, "salon-a", "paid").Return(&models.Booking{
		ID: "paid", SalonID: "salon-a", Status: "paid",
	}, nil)
	repo.On("GetBooking", ctx, "salon-a", "open").Return(&models.Booking{
		ID: "open", SalonID: "salon-a", CustomerID: "client-a", Status: "pending",
	}, nil)
	repo.On("UpdateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

	uc := NewChangeBookingStatus(repo, nil)
	uc.now = func() time.Time { return now }

	_, err := uc.Execute(ctx, admin, "paid", "cancelled")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	b, err := uc.Execute(ctx, customer, "open", "cancelled")
	require.NoError(t, err)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestRescheduleBooking_OtherCustomersBookingIsHidden(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetBooking", ctx, "salon-a", "k1").Return(&models.Booking{
		ID: "k1", SalonID: "salon-a", CustomerID: "client-b", Status: "pending",
	}, nil)

	_, err := NewRescheduleBooking(repo, nil).Execute(ctx, customer, "k1", at(12, 0), at(13, 0))
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}

func TestListBookings_CustomerSeesOwn(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ListBookings", ctx, "salon-a", "", at(0, 0), at(23, 0)).Return([]models.Booking{
		{ID: "k1", CustomerID: "client-a"},
		{ID: "k2", CustomerID: "client-b"},
	}, nil)

	uc := NewListBookings(repo)

	rows, err := uc.Execute(ctx, customer, "", at(0, 0), at(23, 0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "k1", rows[0].ID)

	rows, err = uc.Execute(ctx, admin, "", at(0, 0), at(23, 0))
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = uc.Execute(ctx, admin, "", at(23, 0), at(0, 0))
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))
}
