package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/money"
)

func TestClosings(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	rows := []models.CashClosing{{
		ID:                   "c1",
		ExecutedBy:           "staff-1",
		PeriodStart:          time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC),
		ClosingDate:          time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC),
		CashDeposit:          money.MustParse("50"),
		CashSales:            money.MustParse("320.50"),
		BankWithdrawal:       money.MustParse("100"),
		CalculatedCashOnHand: money.MustParse("270.50"),
		ActualCashOnHand:     money.MustParse("270"),
		Difference:           money.MustParse("-0.50"),
		Withdrawals: []models.CashWithdrawal{
			{Position: 0, Reason: "bank", Amount: money.MustParse("100")},
		},
	}}

	data, err := Closings(rows, loc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetClosings, SheetWithdrawals}, f.GetSheetList())

	id, _ := f.GetCellValue(SheetClosings, "A2")
	assert.Equal(t, "c1", id)

	closed, _ := f.GetCellValue(SheetClosings, "C2")
	assert.Equal(t, "2024-06-10 20:00:00", closed)

	diff, _ := f.GetCellValue(SheetClosings, "L2")
	assert.Equal(t, "-0.5", diff)

	reason, _ := f.GetCellValue(SheetWithdrawals, "C2")
	assert.Equal(t, "bank", reason)
}

func TestClosings_Empty(t *testing.T) {
	data, err := Closings(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue(SheetClosings, "A1")
	assert.Equal(t, "Closing ID", header)

	rows, err := f.GetRows(SheetClosings)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
