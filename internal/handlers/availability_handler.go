package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	schedule    *availability.GetEffectiveSchedule
	dayView     *availability.ListDayView
	createBlock *availability.CreateBlock
	updateBlock *availability.UpdateBlock
	deleteBlock *availability.DeleteBlock
}

func NewAvailabilityHandler(
	schedule *availability.GetEffectiveSchedule,
	dayView *availability.ListDayView,
	createBlock *availability.CreateBlock,
	updateBlock *availability.UpdateBlock,
	deleteBlock *availability.DeleteBlock,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		schedule:    schedule,
		dayView:     dayView,
		createBlock: createBlock,
		updateBlock: updateBlock,
		deleteBlock: deleteBlock,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BlockRequest struct {
	StaffID string    `json:"staff_id" binding:"required"`
	Type    string    `json:"type" binding:"required"`
	Start   time.Time `json:"start" binding:"required"`
	End     time.Time `json:"end" binding:"required"`
	Note    string    `json:"note"`
}

type UpdateBlockRequest struct {
	Type            string    `json:"type" binding:"required"`
	Start           time.Time `json:"start" binding:"required"`
	End             time.Time `json:"end" binding:"required"`
	Note            string    `json:"note"`
	ExpectedVersion int       `json:"expected_version"`
}

// ======================================================
// SCHEDULE
// ======================================================

// Schedule returns the free intervals of [from, to) for one staff member
// (staff_id) or for the whole salon.
func (h *AvailabilityHandler) Schedule(c *gin.Context) {
	from, to, ok := requireRange(c)
	if !ok {
		httperr.BadRequest(c, "invalid_range", "from and to must be RFC 3339 timestamps.")
		return
	}

	out, err := h.schedule.Execute(c.Request.Context(), availability.GetScheduleInput{
		SalonID: middleware.Actor(c).SalonID,
		StaffID: c.Query("staff_id"),
		From:    from,
		To:      to,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AvailabilityHandler) DayView(c *gin.Context) {
	out, err := h.dayView.Execute(
		c.Request.Context(),
		middleware.Actor(c).SalonID,
		c.Query("date"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// BLOCKS
// ======================================================

func (h *AvailabilityHandler) CreateBlock(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createBlock.Execute(c.Request.Context(), middleware.Actor(c), availability.BlockInput{
		StaffID: req.StaffID,
		Type:    req.Type,
		Start:   req.Start,
		End:     req.End,
		Note:    req.Note,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, b)
}

// UpdateBlock takes the expected version from the body or from If-Match.
func (h *AvailabilityHandler) UpdateBlock(c *gin.Context) {
	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	version := req.ExpectedVersion
	if version == 0 {
		if v, ok := ifMatchVersion(c); ok {
			version = v
		}
	}

	b, err := h.updateBlock.Execute(c.Request.Context(), middleware.Actor(c), availability.UpdateBlockInput{
		BlockID:         c.Param("id"),
		Type:            req.Type,
		Start:           req.Start,
		End:             req.End,
		Note:            req.Note,
		ExpectedVersion: version,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Header("ETag", strconv.Itoa(b.Version))
	httpresp.OK(c, b)
}

func (h *AvailabilityHandler) DeleteBlock(c *gin.Context) {
	if err := h.deleteBlock.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func ifMatchVersion(c *gin.Context) (int, bool) {
	raw := strings.Trim(strings.TrimPrefix(c.GetHeader("If-Match"), "W/"), `"`)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
