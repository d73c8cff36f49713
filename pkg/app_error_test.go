package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dynamodb: throttled")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Status != "error" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Message != "An internal error occurred" {
		t.Fatalf("wrapped error leaked into message: %q", body.Message)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to cause")
	}
}

func TestNewValidationError_DefaultsToBadRequest(t *testing.T) {
	appErr := NewValidationError("INVALID_INPUT", "Invalid input", []FieldError{{Field: "A", Message: "required"}}, 0)
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", appErr.HTTPStatus)
	}
	if got := appErr.ToHTTPError().Errors; len(got) != 1 || got[0].Field != "A" {
		t.Fatalf("unexpected field errors: %+v", got)
	}
}
