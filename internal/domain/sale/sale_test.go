package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/money"
)

func TestBuild_Totals(t *testing.T) {
	walkIn := "  "
	s, err := Build("salon-1", "staff-1", &walkIn, " CASH ", []Item{
		{Description: "Haircut", Quantity: 1, UnitPrice: money.MustParse("45.00")},
		{Description: "Shampoo", Quantity: 3, UnitPrice: money.MustParse("12.50")},
	})
	require.NoError(t, err)

	assert.Equal(t, "cash", s.PaymentMethod)
	assert.Nil(t, s.CustomerID)
	require.Len(t, s.Items, 2)
	assert.Equal(t, "37.50", s.Items[1].LineTotal.String())
	assert.Equal(t, "82.50", s.TotalAmount.String())
}

func TestBuild_Validation(t *testing.T) {
	ok := []Item{{Description: "Haircut", Quantity: 1, UnitPrice: money.MustParse("10")}}

	cases := []struct {
		name   string
		method string
		items  []Item
		code   string
	}{
		{"unknown method", "pix", ok, "invalid_payment_method"},
		{"no items", "card", nil, "invalid_items"},
		{"zero quantity", "card", []Item{{Description: "x", Quantity: 0}}, "invalid_items"},
		{"negative price", "card", []Item{{Description: "x", Quantity: 1, UnitPrice: money.MustParse("-1")}}, "invalid_items"},
		{"blank description", "card", []Item{{Description: " ", Quantity: 1}}, "invalid_items"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build("salon-1", "staff-1", nil, tc.method, tc.items)
			assert.True(t, httperr.IsBusiness(err, tc.code))
		})
	}
}
