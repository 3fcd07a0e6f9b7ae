package handlers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

func salonRouter(db *gorm.DB) *gin.Engine {
	h := NewSalonHandler(db)

	r := gin.New()
	r.Use(as("admin-a", "salon-a", models.RoleAdmin))
	r.PUT("/salon/opening-hours", h.PutOpeningHours)
	r.PATCH("/salon", h.Update)
	return r
}

func TestPutOpeningHours_Validation(t *testing.T) {
	cases := map[string][]OpeningDay{
		"close before open": {{Weekday: 1, IsOpen: true, Open: "18:00", Close: "09:00"}},
		"bad clock":         {{Weekday: 1, IsOpen: true, Open: "9h", Close: "17:00"}},
		"weekday range":     {{Weekday: 7, IsOpen: false}},
		"duplicate weekday": {{Weekday: 2}, {Weekday: 2}},
	}

	for name, days := range cases {
		t.Run(name, func(t *testing.T) {
			db, mock := newMockDB(t)

			w := do(salonRouter(db), http.MethodPut, "/salon/opening-hours", OpeningHoursRequest{Days: days})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_opening_hours", errorCode(t, w))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPutOpeningHours_ReplacesTable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "opening_hours" WHERE salon_id = \$1`).
		WithArgs("salon-a").
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectQuery(`INSERT INTO "opening_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	w := do(salonRouter(db), http.MethodPut, "/salon/opening-hours", OpeningHoursRequest{Days: []OpeningDay{
		{Weekday: 1, IsOpen: true, Open: "09:00", Close: "17:00"},
		{Weekday: 0, IsOpen: false},
	}})

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSalon_RejectsTimezone(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "salons" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "timezone"}).AddRow("salon-a", "Studio", "UTC"))

	w := do(salonRouter(db), http.MethodPatch, "/salon", map[string]any{"timezone": "Nowhere/Land"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_timezone", errorCode(t, w))
}
