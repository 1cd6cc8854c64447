package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MaxMinorUnits is the largest amount the integer cost_per_night column holds.
const MaxMinorUnits = math.MaxInt32

// ErrAmountOutOfRange reports a price whose minor-unit value does not fit
// the cost_per_night column.
var ErrAmountOutOfRange = errors.New("amount out of range")

var (
	minorUnitsPerMajor = decimal.NewFromInt(100)
	maxMinorUnits      = decimal.NewFromInt(MaxMinorUnits)
)

// PropertyFilter narrows a property listing. Every field is optional and
// a nil field means "no constraint".
//
// Price bounds are in major currency units; they are converted with
// ToMinorUnits before they reach a statement.
type PropertyFilter struct {
	City                 *string
	OwnerID              *int64
	MinimumPricePerNight *decimal.Decimal
	MaximumPricePerNight *decimal.Decimal
	MinimumRating        *decimal.Decimal
}

// ToMinorUnits converts a major-unit amount to an integer number of minor
// units, rounding half away from zero. Amounts whose magnitude exceeds
// MaxMinorUnits return ErrAmountOutOfRange.
func ToMinorUnits(major decimal.Decimal) (int64, error) {
	minor := major.Mul(minorUnitsPerMajor).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: %s", ErrAmountOutOfRange, major)
	}
	return minor.IntPart(), nil
}
