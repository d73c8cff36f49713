package pkg

import "net/http"

// FieldError is a single field-attributed validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error envelope returned by HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Fields     []FieldError
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Status  string       `json:"status"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError builds an AppError carrying a field error list.
func NewValidationError(code, message string, fields []FieldError, httpStatus int) *AppError {
	if httpStatus == 0 {
		httpStatus = http.StatusBadRequest
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Fields: fields}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError never exposes the wrapped error.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Status:  "error",
		Code:    e.Code,
		Message: e.Message,
		Errors:  e.Fields,
	}
}
