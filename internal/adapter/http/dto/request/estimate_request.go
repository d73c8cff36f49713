package request

import (
	"strconv"
	"strings"

	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/usecase"
)

type RoomCountsRequest struct {
	LivingRoom int `json:"livingRoom"`
	Kitchen    int `json:"kitchen"`
	Bedroom    int `json:"bedroom"`
	Bathroom   int `json:"bathroom"`
	Dining     int `json:"dining"`
}

type HomeEstimateRequest struct {
	BHK     string             `json:"bhk"`
	Size    string             `json:"size"`
	Package string             `json:"package"`
	Rooms   *RoomCountsRequest `json:"rooms"`
}

func (r HomeEstimateRequest) ToInput() pricing.HomeInput {
	in := pricing.HomeInput{
		BHK:     strings.ToLower(strings.TrimSpace(r.BHK)),
		Size:    strings.TrimSpace(r.Size),
		Package: strings.ToLower(strings.TrimSpace(r.Package)),
	}
	if r.Rooms != nil {
		in.Rooms = &pricing.RoomCounts{
			LivingRoom: r.Rooms.LivingRoom,
			Kitchen:    r.Rooms.Kitchen,
			Bedroom:    r.Rooms.Bedroom,
			Bathroom:   r.Rooms.Bathroom,
			Dining:     r.Rooms.Dining,
		}
	}
	return in
}

// KitchenEstimateRequest dimensions are in feet. null and absent both mean
// "not supplied".
type KitchenEstimateRequest struct {
	Layout  string   `json:"layout"`
	A       *float64 `json:"A"`
	B       *float64 `json:"B"`
	C       *float64 `json:"C"`
	Package string   `json:"package"`
}

func (r KitchenEstimateRequest) ToInput() pricing.KitchenInput {
	return pricing.KitchenInput{
		Layout:  strings.ToLower(strings.TrimSpace(r.Layout)),
		A:       deref(r.A),
		B:       deref(r.B),
		C:       deref(r.C),
		Package: strings.ToLower(strings.TrimSpace(r.Package)),
	}
}

type WardrobeEstimateRequest struct {
	Length  float64 `json:"length"`
	Height  float64 `json:"height"`
	Type    string  `json:"type"`
	Package string  `json:"package"`
}

func (r WardrobeEstimateRequest) ToInput() pricing.WardrobeInput {
	return pricing.WardrobeInput{
		Length:  r.Length,
		Height:  r.Height,
		Type:    strings.ToLower(strings.TrimSpace(r.Type)),
		Package: strings.ToLower(strings.TrimSpace(r.Package)),
	}
}

// The estimate object of a submission carries the raw calculator inputs and
// the price the client displayed.

type HomeSubmitEstimate struct {
	HomeEstimateRequest
	EstimatedPrice *float64 `json:"estimatedPrice"`
}

type KitchenSubmitEstimate struct {
	KitchenEstimateRequest
	EstimatedPrice *float64 `json:"estimatedPrice"`
}

type WardrobeSubmitEstimate struct {
	WardrobeEstimateRequest
	EstimatedPrice *float64 `json:"estimatedPrice"`
}

type HomeSubmitRequest struct {
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	PropertyName string             `json:"propertyName"`
	Estimate     HomeSubmitEstimate `json:"estimate"`
}

func (r HomeSubmitRequest) ToSubmission() usecase.HomeSubmission {
	return usecase.HomeSubmission{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        strings.TrimSpace(r.Phone),
		PropertyName: r.PropertyName,
		Estimate:     r.Estimate.ToInput(),
		ClientPrice:  r.Estimate.EstimatedPrice,
	}
}

type KitchenSubmitRequest struct {
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Phone    string                `json:"phone"`
	City     string                `json:"city"`
	Message  string                `json:"message"`
	Estimate KitchenSubmitEstimate `json:"estimate"`
}

func (r KitchenSubmitRequest) ToSubmission() usecase.KitchenSubmission {
	return usecase.KitchenSubmission{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       strings.TrimSpace(r.Phone),
		City:        r.City,
		Message:     r.Message,
		Estimate:    r.Estimate.ToInput(),
		ClientPrice: r.Estimate.EstimatedPrice,
	}
}

type WardrobeSubmitRequest struct {
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	PropertyName    string                 `json:"propertyName"`
	WhatsappUpdates bool                   `json:"whatsappUpdates"`
	Estimate        WardrobeSubmitEstimate `json:"estimate"`
}

func (r WardrobeSubmitRequest) ToSubmission() usecase.WardrobeSubmission {
	return usecase.WardrobeSubmission{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           strings.TrimSpace(r.Phone),
		PropertyName:    r.PropertyName,
		WhatsappUpdates: r.WhatsappUpdates,
		Estimate:        r.Estimate.ToInput(),
		ClientPrice:     r.Estimate.EstimatedPrice,
	}
}

// ParsePagination reads page and limit query values. Anything that is not an
// integer is treated as absent so the use case applies its defaults.
func ParsePagination(page, limit string) (int, int) {
	p, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil {
		p = 0
	}
	l, err := strconv.Atoi(strings.TrimSpace(limit))
	if err != nil {
		l = 0
	}
	return p, l
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
