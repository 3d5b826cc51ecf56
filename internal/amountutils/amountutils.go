// Package amountutils provides the minor-unit and rate conversions used by
// the tariff wire protocol. The remote service transmits monetary values as
// integer cents and rates as integers multiplied by 100 (loan rate) or
// 10000 (capital-assured rate).
package amountutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred     = decimal.NewFromInt(100)
	tenThousand = decimal.NewFromInt(10000)
)

// ToCents converts a major-unit amount to integer cents, rounding to the
// nearest cent.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromCents converts integer cents back to a major-unit amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// ToBasisPoints converts a percentage rate to the wire integer form
// (percentage times 100), rounding to the nearest point.
func ToBasisPoints(rate decimal.Decimal) int64 {
	return rate.Mul(hundred).Round(0).IntPart()
}

// RateFromTenThousandths converts the capital-assured rate wire form
// (percentage times 10000) back to a percentage.
func RateFromTenThousandths(raw int64) decimal.Decimal {
	return decimal.NewFromInt(raw).Div(tenThousand)
}

// ParseCents parses a wire cents field into a major-unit amount. Empty
// strings parse to zero, which is how the remote encodes absent costs.
func ParseCents(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	cents, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse wire amount '%s': %w", raw, err)
	}
	return cents.Div(hundred), nil
}

// ParseRate parses a wire ten-thousandths rate field into a percentage.
// Empty strings parse to zero.
func ParseRate(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse wire rate '%s': %w", raw, err)
	}
	return v.Div(tenThousand), nil
}
