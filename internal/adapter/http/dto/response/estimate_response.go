package response

import (
	"time"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/usecase"
)

const StatusSuccess = "success"

type PriceRangeResponse struct {
	Min          int64    `json:"min"`
	Max          *int64   `json:"max"`
	MinLakhs     float64  `json:"minLakhs"`
	MaxLakhs     *float64 `json:"maxLakhs"`
	DisplayRange string   `json:"displayRange"`
	HasPlus      bool     `json:"hasPlus"`
}

type RoomCountsResponse struct {
	LivingRoom int `json:"livingRoom"`
	Kitchen    int `json:"kitchen"`
	Bedroom    int `json:"bedroom"`
	Bathroom   int `json:"bathroom"`
	Dining     int `json:"dining"`
}

type HomeEstimateResponse struct {
	Status         string              `json:"status"`
	BHK            string              `json:"bhk"`
	Size           *string             `json:"size"`
	Package        string              `json:"package"`
	Rooms          *RoomCountsResponse `json:"rooms,omitempty"`
	PriceRange     PriceRangeResponse  `json:"priceRange"`
	EstimatedPrice int64               `json:"estimatedPrice"`
}

type KitchenDimensions struct {
	A float64  `json:"A"`
	B *float64 `json:"B"`
	C *float64 `json:"C"`
}

type KitchenEstimateResponse struct {
	Status         string            `json:"status"`
	Layout         string            `json:"layout"`
	Dimensions     KitchenDimensions `json:"dimensions"`
	Package        string            `json:"package"`
	LinearFeet     float64           `json:"linearFeet"`
	AssumedWidth   float64           `json:"assumedWidth"`
	Area           float64           `json:"area"`
	RatePerSqFt    float64           `json:"ratePerSqFt"`
	EstimatedPrice int64             `json:"estimatedPrice"`
}

type WardrobeBreakdown struct {
	Length       float64 `json:"length"`
	Height       float64 `json:"height"`
	Area         float64 `json:"area"`
	Type         string  `json:"type"`
	Package      string  `json:"package"`
	PricePerSqFt float64 `json:"pricePerSqFt"`
}

type WardrobeEstimateResponse struct {
	Status         string            `json:"status"`
	EstimatedPrice int64             `json:"estimatedPrice"`
	Breakdown      WardrobeBreakdown `json:"breakdown"`
}

type SubmitResponse struct {
	Status         string              `json:"status"`
	Message        string              `json:"message"`
	EstimatedPrice int64               `json:"estimatedPrice"`
	PriceRange     *PriceRangeResponse `json:"priceRange,omitempty"`
	EstimateID     string              `json:"estimateId"`
}

// EstimateResponse is one stored lead as listed to admins.
type EstimateResponse struct {
	ID              string                    `json:"id"`
	Kind            string                    `json:"kind"`
	Name            string                    `json:"name"`
	Email           string                    `json:"email"`
	Phone           string                    `json:"phone"`
	PropertyName    string                    `json:"propertyName,omitempty"`
	City            string                    `json:"city,omitempty"`
	Message         string                    `json:"message,omitempty"`
	WhatsappUpdates bool                      `json:"whatsappUpdates"`
	Home            *entities.HomeDetails     `json:"home,omitempty"`
	Kitchen         *entities.KitchenDetails  `json:"kitchen,omitempty"`
	Wardrobe        *entities.WardrobeDetails `json:"wardrobe,omitempty"`
	EstimatedPrice  int64                     `json:"estimatedPrice"`
	CreatedAt       time.Time                 `json:"createdAt"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type EstimateListResponse struct {
	Status     string             `json:"status"`
	Estimates  []EstimateResponse `json:"estimates"`
	Pagination PaginationResponse `json:"pagination"`
}

func FromPriceRange(r pricing.PriceRange) PriceRangeResponse {
	return PriceRangeResponse{
		Min:          r.Min,
		Max:          r.Max,
		MinLakhs:     r.MinLakhs,
		MaxLakhs:     r.MaxLakhs,
		DisplayRange: r.DisplayRange,
		HasPlus:      r.HasPlus,
	}
}

func FromHomeQuote(q pricing.HomeQuote) HomeEstimateResponse {
	res := HomeEstimateResponse{
		Status:         StatusSuccess,
		BHK:            q.BHK,
		Package:        q.Package,
		PriceRange:     FromPriceRange(q.PriceRange),
		EstimatedPrice: q.EstimatedPrice,
	}
	if q.Size != "" {
		size := q.Size
		res.Size = &size
	}
	if q.Rooms != nil {
		res.Rooms = &RoomCountsResponse{
			LivingRoom: q.Rooms.LivingRoom,
			Kitchen:    q.Rooms.Kitchen,
			Bedroom:    q.Rooms.Bedroom,
			Bathroom:   q.Rooms.Bathroom,
			Dining:     q.Rooms.Dining,
		}
	}
	return res
}

func FromKitchenQuote(q pricing.KitchenQuote) KitchenEstimateResponse {
	return KitchenEstimateResponse{
		Status:         StatusSuccess,
		Layout:         q.Layout,
		Dimensions:     KitchenDimensions{A: q.A, B: q.B, C: q.C},
		Package:        q.Package,
		LinearFeet:     q.LinearFeet,
		AssumedWidth:   q.AssumedWidth,
		Area:           q.Area,
		RatePerSqFt:    q.RatePerSqFt,
		EstimatedPrice: q.EstimatedPrice,
	}
}

func FromWardrobeQuote(q pricing.WardrobeQuote) WardrobeEstimateResponse {
	return WardrobeEstimateResponse{
		Status:         StatusSuccess,
		EstimatedPrice: q.EstimatedPrice,
		Breakdown: WardrobeBreakdown{
			Length:       q.Length,
			Height:       q.Height,
			Area:         q.Area,
			Type:         q.Type,
			Package:      q.Package,
			PricePerSqFt: q.PricePerSqFt,
		},
	}
}

func FromSubmitResult(r usecase.SubmitResult) SubmitResponse {
	res := SubmitResponse{
		Status:         StatusSuccess,
		Message:        r.Message,
		EstimatedPrice: r.Estimate.EstimatedPrice,
		EstimateID:     r.Estimate.ID,
	}
	if r.PriceRange != nil {
		pr := FromPriceRange(*r.PriceRange)
		res.PriceRange = &pr
	}
	return res
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:              e.ID,
		Kind:            string(e.Kind),
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		PropertyName:    e.PropertyName,
		City:            e.City,
		Message:         e.Message,
		WhatsappUpdates: e.WhatsappUpdates,
		Home:            e.Home,
		Kitchen:         e.Kitchen,
		Wardrobe:        e.Wardrobe,
		EstimatedPrice:  e.EstimatedPrice,
		CreatedAt:       e.CreatedAt,
	}
}

func FromEstimatePage(p entities.EstimatePage) EstimateListResponse {
	items := make([]EstimateResponse, 0, len(p.Items))
	for _, e := range p.Items {
		items = append(items, FromEstimate(e))
	}
	return EstimateListResponse{
		Status:    StatusSuccess,
		Estimates: items,
		Pagination: PaginationResponse{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: p.TotalPages,
		},
	}
}
