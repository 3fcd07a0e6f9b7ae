// Package money holds the monetary value used across sales and closings.
// Amounts always carry two decimal places.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Amount struct {
	value decimal.Decimal
}

func Zero() Amount {
	return Amount{value: decimal.Zero}
}

func New(d decimal.Decimal) Amount {
	return Amount{value: d.Round(2)}
}

// FromCents builds an amount from an integer number of cents.
func FromCents(cents int64) Amount {
	return Amount{value: decimal.New(cents, -2)}
}

func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return New(d), nil
}

// MustParse is meant for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

func (a Amount) MulInt(n int) Amount {
	return New(a.value.Mul(decimal.NewFromInt(int64(n))))
}

func (a Amount) IsPositive() bool { return a.value.IsPositive() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }
func (a Amount) IsZero() bool     { return a.value.IsZero() }

func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

func (a Amount) String() string {
	return a.value.StringFixed(2)
}

func Sum(values ...Amount) Amount {
	total := Zero()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// MarshalJSON emits a fixed two-place string so no precision is lost in transit.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*a = Zero()
		return nil
	}
	raw = strings.Trim(raw, `"`)

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Amount) Value() (driver.Value, error) {
	return a.value.StringFixed(2), nil
}

func (a *Amount) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return err
	}
	*a = New(d)
	return nil
}

// GormDataType lets gorm pick the column type during AutoMigrate.
func (Amount) GormDataType() string {
	return "decimal(12,2)"
}
