package pricing

import (
	"kalakruti_api/internal/domain/validation"

	"github.com/go-playground/validator/v10"
)

// RoomCounts is kept for clients that still send room breakdowns; it does not
// affect the home band.
type RoomCounts struct {
	LivingRoom int `json:"livingRoom" validate:"gte=0"`
	Kitchen    int `json:"kitchen" validate:"gte=0"`
	Bedroom    int `json:"bedroom" validate:"gte=0"`
	Bathroom   int `json:"bathroom" validate:"gte=0"`
	Dining     int `json:"dining" validate:"gte=0"`
}

type HomeInput struct {
	BHK     string      `json:"bhk" validate:"required,oneof=1bhk 2bhk 3bhk 4bhk 5bhk"`
	Package string      `json:"package" validate:"required,oneof=essentials premium luxe"`
	Size    string      `json:"size"`
	Rooms   *RoomCounts `json:"rooms"`
}

// KitchenInput dimensions are in feet. Zero means "not supplied".
type KitchenInput struct {
	Layout  string  `json:"layout" validate:"required,oneof=straight l-shaped u-shaped parallel"`
	A       float64 `json:"A" validate:"required,finite,gte=3,lte=20"`
	B       float64 `json:"B" validate:"omitempty,finite,gte=3,lte=20"`
	C       float64 `json:"C" validate:"omitempty,finite,gte=3,lte=20"`
	Package string  `json:"package" validate:"required,oneof=essentials premium luxe"`
}

// WardrobeInput dimensions are in feet.
type WardrobeInput struct {
	Length  float64 `json:"length" validate:"required,finite,gte=0.1,lte=40"`
	Height  float64 `json:"height" validate:"required,finite,gte=0.1,lte=12"`
	Type    string  `json:"type" validate:"required,oneof=sliding swing"`
	Package string  `json:"package" validate:"required,oneof=basic premium luxury"`
}

// needsB and needsC describe which optional dimensions a layout uses.
func needsB(layout string) bool {
	return layout == LayoutLShaped || layout == LayoutUShaped || layout == LayoutParallel
}

func needsC(layout string) bool {
	return layout == LayoutUShaped
}

func kitchenLayoutRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(KitchenInput)
	if needsB(in.Layout) && in.B == 0 {
		sl.ReportError(in.B, "B", "B", "required_for_layout", in.Layout)
	}
	if needsC(in.Layout) && in.C == 0 {
		sl.ReportError(in.C, "C", "C", "required_for_layout", in.Layout)
	}
}

func newInputValidator() *validation.Validator {
	v := validation.New()
	v.RegisterStructValidation(kitchenLayoutRules, KitchenInput{})
	return v
}

// ValidateHome, ValidateKitchen and ValidateWardrobe return *validation.Error
// with one entry per failing field.
func (e *Engine) ValidateHome(in HomeInput) error { return e.validate.Struct(in) }

func (e *Engine) ValidateKitchen(in KitchenInput) error { return e.validate.Struct(in) }

func (e *Engine) ValidateWardrobe(in WardrobeInput) error { return e.validate.Struct(in) }
