package entity

import (
	"fmt"

	domainerrors "shop/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// WeightUnit tags a weight magnitude.
type WeightUnit string

// Supported weight units.
const (
	WeightUnitPounds    WeightUnit = "lb"
	WeightUnitKilograms WeightUnit = "kg"
)

var poundsPerKilogram = decimal.NewFromFloat(2.20462262)

// Weight is a non-negative magnitude with a unit tag.
type Weight struct {
	value decimal.Decimal
	unit  WeightUnit
}

// NewWeight creates a Weight from a non-negative magnitude and unit.
func NewWeight(value decimal.Decimal, unit WeightUnit) (Weight, error) {
	return newValueObject(Weight{value: value, unit: unit})
}

func (w Weight) validate() error {
	if w.value.IsNegative() {
		return domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("weight %s is negative", w.value))
	}
	if w.unit != WeightUnitPounds && w.unit != WeightUnitKilograms {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown weight unit %q", w.unit))
	}

	return nil
}

// Value returns the magnitude.
func (w Weight) Value() decimal.Decimal { return w.value }

// Unit returns the unit tag.
func (w Weight) Unit() WeightUnit { return w.unit }

// ToPounds converts the weight to pounds.
func (w Weight) ToPounds() Weight {
	if w.unit == WeightUnitPounds {
		return w
	}

	return Weight{value: w.value.Mul(poundsPerKilogram), unit: WeightUnitPounds}
}

// ToKilograms converts the weight to kilograms.
func (w Weight) ToKilograms() Weight {
	if w.unit == WeightUnitKilograms {
		return w
	}

	return Weight{value: w.value.Div(poundsPerKilogram), unit: WeightUnitKilograms}
}

// DimensionUnit tags linear dimensions.
type DimensionUnit string

// Supported dimension units.
const (
	DimensionUnitInches      DimensionUnit = "in"
	DimensionUnitCentimeters DimensionUnit = "cm"
)

var centimetersPerInch = decimal.NewFromFloat(2.54)

// Dimensions is a non-negative length/width/height triple with a unit tag.
type Dimensions struct {
	length decimal.Decimal
	width  decimal.Decimal
	height decimal.Decimal
	unit   DimensionUnit
}

// NewDimensions creates Dimensions from non-negative magnitudes and a unit.
func NewDimensions(length, width, height decimal.Decimal, unit DimensionUnit) (Dimensions, error) {
	return newValueObject(Dimensions{length: length, width: width, height: height, unit: unit})
}

func (d Dimensions) validate() error {
	for _, v := range []decimal.Decimal{d.length, d.width, d.height} {
		if v.IsNegative() {
			return domainerrors.ErrInvariantViolation.WrapMessage("dimensions must be non-negative")
		}
	}
	if d.unit != DimensionUnitInches && d.unit != DimensionUnitCentimeters {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown dimension unit %q", d.unit))
	}

	return nil
}

// Length returns the length magnitude.
func (d Dimensions) Length() decimal.Decimal { return d.length }

// Width returns the width magnitude.
func (d Dimensions) Width() decimal.Decimal { return d.width }

// Height returns the height magnitude.
func (d Dimensions) Height() decimal.Decimal { return d.height }

// Unit returns the unit tag.
func (d Dimensions) Unit() DimensionUnit { return d.unit }

// ToInches converts all magnitudes to inches.
func (d Dimensions) ToInches() Dimensions {
	if d.unit == DimensionUnitInches {
		return d
	}

	return Dimensions{
		length: d.length.Div(centimetersPerInch),
		width:  d.width.Div(centimetersPerInch),
		height: d.height.Div(centimetersPerInch),
		unit:   DimensionUnitInches,
	}
}

// ToCentimeters converts all magnitudes to centimeters.
func (d Dimensions) ToCentimeters() Dimensions {
	if d.unit == DimensionUnitCentimeters {
		return d
	}

	return Dimensions{
		length: d.length.Mul(centimetersPerInch),
		width:  d.width.Mul(centimetersPerInch),
		height: d.height.Mul(centimetersPerInch),
		unit:   DimensionUnitCentimeters,
	}
}
