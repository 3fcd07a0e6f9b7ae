package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *booking.CreateBooking
	reschedule   *booking.RescheduleBooking
	changeStatus *booking.ChangeBookingStatus
	list         *booking.ListBookings
}

func NewBookingHandler(
	create *booking.CreateBooking,
	reschedule *booking.RescheduleBooking,
	changeStatus *booking.ChangeBookingStatus,
	list *booking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		reschedule:   reschedule,
		changeStatus: changeStatus,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	StaffID     string    `json:"staff_id" binding:"required"`
	ServiceName string    `json:"service_name"`
	CustomerID  string    `json:"customer_id"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Notes       string    `json:"notes"`
}

type RescheduleBookingRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), booking.CreateBookingInput{
		StaffID:     req.StaffID,
		ServiceName: req.ServiceName,
		CustomerID:  req.CustomerID,
		Start:       req.Start,
		End:         req.End,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *BookingHandler) List(c *gin.Context) {
	from, to, ok := requireRange(c)
	if !ok {
		httperr.BadRequest(c, "invalid_range", "from and to must be RFC 3339 timestamps.")
		return
	}

	rows, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), c.Query("staff_id"), from, to)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Start, req.End)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	var req BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.changeStatus.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}
