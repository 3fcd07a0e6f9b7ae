package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/closing"
	"github.com/BruksfildServices01/salon-pos/internal/dto"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/money"
	"github.com/BruksfildServices01/salon-pos/internal/report"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/closing"
)

// ======================================================
// HANDLER
// ======================================================

type ClosingHandler struct {
	preview  *closing.PreviewClosing
	confirm  *closing.ConfirmClosing
	list     *closing.ListClosings
	get      *closing.GetClosing
	annotate *closing.AnnotateClosing
	export   *closing.ExportClosings
}

func NewClosingHandler(
	preview *closing.PreviewClosing,
	confirm *closing.ConfirmClosing,
	list *closing.ListClosings,
	get *closing.GetClosing,
	annotate *closing.AnnotateClosing,
	export *closing.ExportClosings,
) *ClosingHandler {
	return &ClosingHandler{
		preview:  preview,
		confirm:  confirm,
		list:     list,
		get:      get,
		annotate: annotate,
		export:   export,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ConfirmClosingRequest struct {
	CashDeposit      money.Amount        `json:"cash_deposit"`
	Withdrawals      []domain.Withdrawal `json:"withdrawals"`
	ActualCashOnHand *money.Amount       `json:"actual_cash_on_hand"`
	Notes            string              `json:"notes"`
}

type AdminNoteRequest struct {
	AdminNote string `json:"admin_note"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *ClosingHandler) Preview(c *gin.Context) {
	p, err := h.preview.Execute(c.Request.Context(), middleware.Actor(c).SalonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

// Confirm ignores any expected amount the client computed; the server
// re-derives it.
func (h *ClosingHandler) Confirm(c *gin.Context) {
	var req ConfirmClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cl, err := h.confirm.Execute(c.Request.Context(), middleware.Actor(c), domain.Count{
		CashDeposit:      req.CashDeposit,
		Withdrawals:      req.Withdrawals,
		ActualCashOnHand: req.ActualCashOnHand,
		Notes:            req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, cl)
}

func (h *ClosingHandler) List(c *gin.Context) {
	from, okFrom := parseInstant(c, "from")
	to, okTo := parseInstant(c, "to")
	if !okFrom || !okTo {
		httperr.BadRequest(c, "invalid_range", "from and to must be RFC 3339 timestamps.")
		return
	}

	rows, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), from, to)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.ClosingList(rows))
}

func (h *ClosingHandler) Get(c *gin.Context) {
	cl, err := h.get.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClosingHandler) Annotate(c *gin.Context) {
	var req AdminNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cl, err := h.annotate.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.AdminNote)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cl)
}

// Export streams the closings of [from, to) as a workbook. X-Archive-Key
// names the stored copy when archiving is enabled and succeeded.
func (h *ClosingHandler) Export(c *gin.Context) {
	from, to, ok := requireRange(c)
	if !ok {
		httperr.BadRequest(c, "invalid_range", "from and to must be RFC 3339 timestamps.")
		return
	}

	out, err := h.export.Execute(c.Request.Context(), middleware.Actor(c), from, to)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if out.ArchiveKey != "" {
		c.Header("X-Archive-Key", out.ArchiveKey)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	c.Data(http.StatusOK, report.ContentTypeXLSX, out.Data)
}
