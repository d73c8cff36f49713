package pricing

import (
	"kalakruti_api/internal/domain/validation"

	"github.com/shopspring/decimal"
)

// PriceRange is a home band expressed in currency and lakhs.
type PriceRange struct {
	Min          int64
	Max          *int64
	MinLakhs     float64
	MaxLakhs     *float64
	DisplayRange string
	HasPlus      bool
}

type HomeQuote struct {
	BHK            string
	Size           string
	Package        string
	Rooms          *RoomCounts
	PriceRange     PriceRange
	EstimatedPrice int64
}

type KitchenQuote struct {
	Layout         string
	A              float64
	B              *float64
	C              *float64
	Package        string
	LinearFeet     float64
	AssumedWidth   float64
	Area           float64
	RatePerSqFt    float64
	EstimatedPrice int64
}

type WardrobeQuote struct {
	Length         float64
	Height         float64
	Area           float64
	Type           string
	Package        string
	PricePerSqFt   float64
	EstimatedPrice int64
}

// Engine computes estimates from injected, immutable rate tables. It holds no
// other state and is safe for concurrent use.
type Engine struct {
	tables   *Tables
	validate *validation.Validator
}

func NewEngine(tables *Tables) *Engine {
	return &Engine{tables: tables, validate: newInputValidator()}
}

func (e *Engine) Tables() *Tables { return e.tables }

// EstimateHome maps (bhk, package) to a band and its midpoint.
func (e *Engine) EstimateHome(in HomeInput) (HomeQuote, error) {
	if err := e.ValidateHome(in); err != nil {
		return HomeQuote{}, err
	}

	band, err := e.tables.HomeBand(in.BHK, in.Package)
	if err != nil {
		return HomeQuote{}, err
	}

	unit := decimal.NewFromFloat(e.tables.HomeUnit())
	minD := decimal.NewFromFloat(band.Min).Mul(unit)

	pr := PriceRange{
		Min:      roundAmount(minD),
		MinLakhs: band.Min,
		HasPlus:  band.Plus,
	}

	estimated := pr.Min
	if band.Max != nil {
		maxD := decimal.NewFromFloat(*band.Max).Mul(unit)
		max := roundAmount(maxD)
		maxLakhs := *band.Max
		pr.Max = &max
		pr.MaxLakhs = &maxLakhs
		estimated = roundAmount(minD.Add(maxD).Div(decimal.NewFromInt(2)))
	}
	pr.DisplayRange = displayRange(band)

	var rooms *RoomCounts
	if in.Rooms != nil {
		r := *in.Rooms
		rooms = &r
	}

	return HomeQuote{
		BHK:            in.BHK,
		Size:           in.Size,
		Package:        in.Package,
		Rooms:          rooms,
		PriceRange:     pr,
		EstimatedPrice: estimated,
	}, nil
}

func displayRange(b Band) string {
	switch {
	case b.Max == nil:
		return formatLakhs(b.Min) + "L+"
	case b.Plus:
		return formatLakhs(b.Min) + "L-" + formatLakhs(*b.Max) + "L+"
	default:
		return formatLakhs(b.Min) + "L-" + formatLakhs(*b.Max) + "L"
	}
}

// EstimateKitchen prices the kitchen footprint at the layout-specific rate.
func (e *Engine) EstimateKitchen(in KitchenInput) (KitchenQuote, error) {
	if err := e.ValidateKitchen(in); err != nil {
		return KitchenQuote{}, err
	}

	rate, err := e.tables.KitchenRate(in.Layout, in.Package)
	if err != nil {
		return KitchenQuote{}, err
	}

	geo, err := KitchenFootprint(in.Layout, in.A, in.B, in.C, e.tables.KitchenAssumedWidth())
	if err != nil {
		return KitchenQuote{}, err
	}

	q := KitchenQuote{
		Layout:         in.Layout,
		A:              in.A,
		Package:        in.Package,
		LinearFeet:     geo.LinearFeet,
		AssumedWidth:   geo.AssumedWidth,
		Area:           geo.Area,
		RatePerSqFt:    rate,
		EstimatedPrice: roundAmount(decimal.NewFromFloat(geo.Area).Mul(decimal.NewFromFloat(rate))),
	}
	if needsB(in.Layout) {
		b := in.B
		q.B = &b
	}
	if needsC(in.Layout) {
		c := in.C
		q.C = &c
	}
	return q, nil
}

// EstimateWardrobe prices length × height at the (type, package) rate.
func (e *Engine) EstimateWardrobe(in WardrobeInput) (WardrobeQuote, error) {
	if err := e.ValidateWardrobe(in); err != nil {
		return WardrobeQuote{}, err
	}

	rate, err := e.tables.WardrobeRate(in.Type, in.Package)
	if err != nil {
		return WardrobeQuote{}, err
	}

	area, err := WardrobeArea(in.Length, in.Height)
	if err != nil {
		return WardrobeQuote{}, err
	}

	return WardrobeQuote{
		Length:         in.Length,
		Height:         in.Height,
		Area:           area,
		Type:           in.Type,
		Package:        in.Package,
		PricePerSqFt:   rate,
		EstimatedPrice: roundAmount(decimal.NewFromFloat(area).Mul(decimal.NewFromFloat(rate))),
	}, nil
}
