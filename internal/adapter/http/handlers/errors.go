package handlers

import (
	"errors"
	"net/http"

	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/domain/validation"
	"kalakruti_api/internal/usecase"
	"kalakruti_api/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidJSON() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Request body must be valid JSON", http.StatusBadRequest)
}

// fieldErrors extracts per-field messages from validation and dimension
// errors anywhere in err's chain.
func fieldErrors(err error) []pkg.FieldError {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		out := make([]pkg.FieldError, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			out = append(out, pkg.FieldError{Field: f.Field, Message: f.Message})
		}
		return out
	}
	var dErr *pricing.DimensionError
	if errors.As(err, &dErr) {
		return []pkg.FieldError{{Field: dErr.Field, Message: dErr.Error()}}
	}
	return nil
}

func mapEstimateError(err error) *pkg.AppError {
	var kErr *pricing.UnknownKeyError
	switch {
	case errors.As(err, &kErr):
		// tables and validation disagree; not something the caller can fix
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidKind):
		return pkg.NewDomainErrorSimple("CALCULATOR_NOT_FOUND", "Calculator not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewValidationError("INVALID_USER_DETAILS", "Missing or invalid user details", fieldErrors(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimate):
		return pkg.NewValidationError("INVALID_ESTIMATE", "Invalid or missing input fields", fieldErrors(err), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSaveEstimate):
		return pkg.NewDomainError("SAVE_FAILED", "Failed to save, try again", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrExportNotEnabled):
		return pkg.NewDomainErrorSimple("EXPORT_DISABLED", "Estimate export is not available", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewValidationError("INVALID_CONTACT", "Missing or invalid contact details", fieldErrors(err), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("CONTACT_FAILED", "Failed to send your message. Please try again later.", err, http.StatusInternalServerError)
	}
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDesignsNotFound):
		return pkg.NewDomainErrorSimple("DESIGNS_NOT_FOUND", "No designs found.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectsNotFound):
		return pkg.NewDomainErrorSimple("PROJECTS_NOT_FOUND", "No delivered projects found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Delivered project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
