package entities

import "time"

// EstimateKind names the calculator that produced an estimate.
type EstimateKind string

const (
	EstimateKindHome     EstimateKind = "home"
	EstimateKindKitchen  EstimateKind = "kitchen"
	EstimateKindWardrobe EstimateKind = "wardrobe"
)

// EstimateKinds lists every kind in route order.
var EstimateKinds = []EstimateKind{EstimateKindHome, EstimateKindKitchen, EstimateKindWardrobe}

func (k EstimateKind) Valid() bool {
	switch k {
	case EstimateKindHome, EstimateKindKitchen, EstimateKindWardrobe:
		return true
	}
	return false
}

// Estimate is a submitted lead: contact data plus the server-computed price.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (kind-created_at-index): kind + created_at, for newest-first listing
//
// Records are created once and never updated. Exactly one of Home, Kitchen or
// Wardrobe is set, matching Kind.
type Estimate struct {
	ID              string           `json:"id"`
	Kind            EstimateKind     `json:"kind"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	PropertyName    string           `json:"propertyName,omitempty"`
	City            string           `json:"city,omitempty"`
	Message         string           `json:"message,omitempty"`
	WhatsappUpdates bool             `json:"whatsappUpdates"`
	Home            *HomeDetails     `json:"home,omitempty"`
	Kitchen         *KitchenDetails  `json:"kitchen,omitempty"`
	Wardrobe        *WardrobeDetails `json:"wardrobe,omitempty"`
	EstimatedPrice  int64            `json:"estimatedPrice"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type RoomCounts struct {
	LivingRoom int `json:"livingRoom"`
	Kitchen    int `json:"kitchen"`
	Bedroom    int `json:"bedroom"`
	Bathroom   int `json:"bathroom"`
	Dining     int `json:"dining"`
}

// HomeDetails keeps the band the price was derived from.
type HomeDetails struct {
	BHK          string      `json:"bhk"`
	Size         string      `json:"size,omitempty"`
	Package      string      `json:"package"`
	Rooms        *RoomCounts `json:"rooms,omitempty"`
	MinPrice     int64       `json:"minPrice"`
	MaxPrice     *int64      `json:"maxPrice,omitempty"`
	DisplayRange string      `json:"displayRange"`
}

type KitchenDetails struct {
	Layout       string   `json:"layout"`
	A            float64  `json:"A"`
	B            *float64 `json:"B,omitempty"`
	C            *float64 `json:"C,omitempty"`
	Package      string   `json:"package"`
	LinearFeet   float64  `json:"linearFeet"`
	AssumedWidth float64  `json:"assumedWidth"`
	Area         float64  `json:"area"`
	RatePerSqFt  float64  `json:"ratePerSqFt"`
}

type WardrobeDetails struct {
	Length       float64 `json:"length"`
	Height       float64 `json:"height"`
	Area         float64 `json:"area"`
	Type         string  `json:"type"`
	Package      string  `json:"package"`
	PricePerSqFt float64 `json:"pricePerSqFt"`
}

// EstimatePage is one page of a newest-first listing.
type EstimatePage struct {
	Items      []Estimate
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
