package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// KitchenGeometry is the billable footprint derived from counter runs.
type KitchenGeometry struct {
	LinearFeet   float64
	AssumedWidth float64
	Area         float64
}

// KitchenLinearFeet returns the counter run length for a layout. Corners
// overlap by one counter width, so l-shaped subtracts one width and u-shaped
// two; parallel runs never meet.
func KitchenLinearFeet(layout string, a, b, c, width float64) (float64, error) {
	if err := checkDimension("A", layout, a); err != nil {
		return 0, err
	}
	if needsB(layout) {
		if err := checkDimension("B", layout, b); err != nil {
			return 0, err
		}
	}
	if needsC(layout) {
		if err := checkDimension("C", layout, c); err != nil {
			return 0, err
		}
	}
	if !isFinite(width) || width <= 0 {
		return 0, &DimensionError{Field: "assumedWidth", Layout: layout, Reason: "must be a positive number"}
	}

	A, B, C, W := decimal.NewFromFloat(a), decimal.NewFromFloat(b), decimal.NewFromFloat(c), decimal.NewFromFloat(width)

	var feet decimal.Decimal
	switch layout {
	case LayoutStraight:
		feet = A
	case LayoutLShaped:
		feet = A.Add(B).Sub(W)
	case LayoutUShaped:
		feet = A.Add(B).Add(C).Sub(W.Mul(decimal.NewFromInt(2)))
	case LayoutParallel:
		feet = A.Add(B)
	default:
		return 0, &UnknownKeyError{Table: "kitchen", Key: layout, Reason: "invalid layout"}
	}

	if !feet.IsPositive() {
		return 0, &DimensionError{Field: "A", Layout: layout, Reason: "runs are too short to clear the corner overlap"}
	}
	return feet.InexactFloat64(), nil
}

// KitchenFootprint derives linear feet and area (linear feet × width).
func KitchenFootprint(layout string, a, b, c, width float64) (KitchenGeometry, error) {
	feet, err := KitchenLinearFeet(layout, a, b, c, width)
	if err != nil {
		return KitchenGeometry{}, err
	}
	area := decimal.NewFromFloat(feet).Mul(decimal.NewFromFloat(width))
	return KitchenGeometry{LinearFeet: feet, AssumedWidth: width, Area: area.InexactFloat64()}, nil
}

// WardrobeArea is the front elevation, length × height.
func WardrobeArea(length, height float64) (float64, error) {
	if err := checkDimension("length", "", length); err != nil {
		return 0, err
	}
	if err := checkDimension("height", "", height); err != nil {
		return 0, err
	}
	return decimal.NewFromFloat(length).Mul(decimal.NewFromFloat(height)).InexactFloat64(), nil
}

func checkDimension(field, layout string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return &DimensionError{Field: field, Layout: layout, Reason: "must be a positive number"}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
