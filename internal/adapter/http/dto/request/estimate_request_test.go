package request

import (
	"encoding/json"
	"testing"
)

func TestKitchenEstimateRequest_ToInput(t *testing.T) {
	var r KitchenEstimateRequest
	if err := json.Unmarshal([]byte(`{"layout":" L-Shaped ","A":8,"B":6,"C":null,"package":"Premium"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := r.ToInput()
	if in.Layout != "l-shaped" || in.Package != "premium" {
		t.Fatalf("expected normalized enums, got %+v", in)
	}
	if in.A != 8 || in.B != 6 || in.C != 0 {
		t.Fatalf("unexpected dimensions: %+v", in)
	}
}

func TestHomeSubmitRequest_ToSubmission(t *testing.T) {
	body := `{
		"name":"Asha Rao","email":"asha@example.com","phone":" 9876543210 ","propertyName":"Lakeside",
		"estimate":{"bhk":"2BHK","package":"premium","rooms":{"bedroom":2},"estimatedPrice":1400000}
	}`
	var r HomeSubmitRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s := r.ToSubmission()
	if s.Phone != "9876543210" || s.PropertyName != "Lakeside" {
		t.Fatalf("unexpected contact fields: %+v", s)
	}
	if s.Estimate.BHK != "2bhk" || s.Estimate.Rooms == nil || s.Estimate.Rooms.Bedroom != 2 {
		t.Fatalf("unexpected estimate input: %+v", s.Estimate)
	}
	if s.ClientPrice == nil || *s.ClientPrice != 1400000 {
		t.Fatalf("expected client price to be carried, got %v", s.ClientPrice)
	}
}

func TestWardrobeSubmitRequest_ToSubmission(t *testing.T) {
	var r WardrobeSubmitRequest
	body := `{"name":"Meera","whatsappUpdates":true,"estimate":{"length":8,"height":7,"type":"sliding","package":"luxury"}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s := r.ToSubmission()
	if !s.WhatsappUpdates || s.Estimate.Length != 8 || s.ClientPrice != nil {
		t.Fatalf("unexpected submission: %+v", s)
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		page, limit string
		wantP       int
		wantL       int
	}{
		{"2", "10", 2, 10},
		{"", "", 0, 0},
		{"abc", "5", 0, 5},
		{" 3 ", "x", 3, 0},
	}
	for _, c := range cases {
		p, l := ParsePagination(c.page, c.limit)
		if p != c.wantP || l != c.wantL {
			t.Fatalf("ParsePagination(%q,%q) = %d,%d want %d,%d", c.page, c.limit, p, l, c.wantP, c.wantL)
		}
	}
}
