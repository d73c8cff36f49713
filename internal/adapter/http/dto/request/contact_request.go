package request

import (
	"strings"

	"kalakruti_api/internal/usecase"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r ContactRequest) ToSubmission() usecase.ContactSubmission {
	return usecase.ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   strings.TrimSpace(r.Phone),
		Message: r.Message,
	}
}
