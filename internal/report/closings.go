// Package report renders closing records as spreadsheets.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

const (
	SheetClosings    = "Closings"
	SheetWithdrawals = "Withdrawals"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	closingColumns = []string{
		"Closing ID", "Period start", "Closing date", "Executed by",
		"Cash deposit", "Cash sales", "Bank", "Tips", "Other",
		"Calculated", "Counted", "Difference", "Notes", "Admin note",
	}
	withdrawalColumns = []string{"Closing ID", "Position", "Reason", "Amount"}
)

type sheetWriter struct {
	file  *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) header(columns []string) error {
	if err := w.write(toRow(columns)); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		end, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = w.file.SetCellStyle(w.sheet, "A1", end, style)
	}
	return nil
}

func (w *sheetWriter) write(values []any) error {
	w.row++
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// Closings builds an XLSX workbook with one row per closing and a second
// sheet listing every withdrawal. Times are rendered in loc.
func Closings(rows []models.CashClosing, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetClosings); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetWithdrawals); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", SheetWithdrawals, err)
	}

	closings := &sheetWriter{file: f, sheet: SheetClosings}
	withdrawals := &sheetWriter{file: f, sheet: SheetWithdrawals}

	if err := closings.header(closingColumns); err != nil {
		return nil, err
	}
	if err := withdrawals.header(withdrawalColumns); err != nil {
		return nil, err
	}

	for _, c := range rows {
		if err := closings.write([]any{
			c.ID,
			c.PeriodStart.In(loc).Format(time.DateTime),
			c.ClosingDate.In(loc).Format(time.DateTime),
			c.ExecutedBy,
			c.CashDeposit.Float64(),
			c.CashSales.Float64(),
			c.BankWithdrawal.Float64(),
			c.TipsWithdrawal.Float64(),
			c.OtherWithdrawal.Float64(),
			c.CalculatedCashOnHand.Float64(),
			c.ActualCashOnHand.Float64(),
			c.Difference.Float64(),
			c.Notes,
			c.AdminNote,
		}); err != nil {
			return nil, fmt.Errorf("write closing %s: %w", c.ID, err)
		}

		for _, w := range c.Withdrawals {
			if err := withdrawals.write([]any{c.ID, w.Position + 1, w.Reason, w.Amount.Float64()}); err != nil {
				return nil, fmt.Errorf("write withdrawal: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func toRow(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}
