package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimensions come in as "WxH" in centimeters, the way they are written on the
// job sheet. Area is priced in square meters, hence the /10000.
const sqcmPerSqm = 10000.0

// ParseDimensions splits a "WxH" string into its numeric components. The
// string must contain exactly one 'x' and both sides must parse as numbers;
// anything else is a validation failure. Zero or negative values are
// accepted and flow straight through the arithmetic.
func ParseDimensions(dimensions string) (width, height float64, err error) {
	parts := strings.Split(dimensions, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: dimensions must be in the form WxH, got %q", ErrValidation, dimensions)
	}
	width, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q is not numeric", ErrValidation, parts[0])
	}
	height, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q is not numeric", ErrValidation, parts[1])
	}
	return width, height, nil
}

// AreaSqm converts centimeter dimensions to square meters.
func AreaSqm(width, height float64) float64 {
	return width * height / sqcmPerSqm
}

// ComputeTotal applies the pricing formula: base price per square meter times
// the area, surcharged by the color's percent increment. The result is stored
// unrounded; rounding is a display concern.
func ComputeTotal(pricePerSqm, area, percentIncrement float64) float64 {
	return pricePerSqm * area * (1 + percentIncrement/100)
}
