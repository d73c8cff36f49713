package validation

import (
	"errors"
	"math"
	"testing"
)

type sample struct {
	Name    string  `json:"name" validate:"trimmed_min=2,alpha_space"`
	Phone   string  `json:"phone" validate:"indian_phone"`
	Email   string  `json:"email" validate:"required,email"`
	Tier    string  `json:"tier" validate:"required,oneof=basic premium"`
	Length  float64 `json:"length" validate:"required,finite,gte=1,lte=10"`
	Comment string  `json:"-"`
	Nested  *nested `json:"nested,omitempty"`
}

type nested struct {
	Count int `json:"count" validate:"gte=0"`
}

func valid() sample {
	return sample{Name: "Asha Rao", Phone: "9876543210", Email: "asha@example.com", Tier: "basic", Length: 4}
}

func TestValidator_Struct_OK(t *testing.T) {
	if err := New().Struct(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_Struct_ReportsEveryField(t *testing.T) {
	s := sample{Name: " a ", Phone: "1234567890", Email: "nope", Tier: "gold", Length: 11, Nested: &nested{Count: -1}}

	err := New().Struct(s)
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	for _, field := range []string{"name", "phone", "email", "tier", "length", "nested.count"} {
		if !verr.Has(field) {
			t.Errorf("expected error for %s, got %+v", field, verr.Fields)
		}
	}
}

func TestValidator_Struct_RejectsNonFinite(t *testing.T) {
	s := valid()
	s.Length = math.Inf(1)

	err := New().Struct(s)
	var verr *Error
	if !errors.As(err, &verr) || !verr.Has("length") {
		t.Fatalf("expected length error, got %v", err)
	}
	if verr.Fields[0].Message != "length must be a finite number" {
		t.Fatalf("unexpected message: %q", verr.Fields[0].Message)
	}
}

func TestValidator_Struct_OneOfMessage(t *testing.T) {
	s := valid()
	s.Tier = "deluxe"

	err := New().Struct(s)
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if got := verr.Fields[0].Message; got != "tier must be one of: basic, premium" {
		t.Fatalf("unexpected message: %q", got)
	}
}
