package handlers

import (
	"fmt"
	"net/http"

	"kalakruti_api/internal/adapter/http/dto/request"
	"kalakruti_api/internal/adapter/http/dto/response"
	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EstimateHandler serves the three price calculators. The calculator is taken
// from the :kind path segment.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, logger *zap.Logger) *EstimateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateHandler{usecase: uc, log: logger}
}

func kindParam(c *gin.Context) entities.EstimateKind {
	return entities.EstimateKind(c.Param("kind"))
}

// Calculate returns a price for the calculator input without storing anything.
func (h *EstimateHandler) Calculate(c *gin.Context) {
	kind := kindParam(c)

	var (
		res any
		err error
	)
	switch kind {
	case entities.EstimateKindHome:
		var req request.HomeEstimateRequest
		if c.ShouldBindJSON(&req) != nil {
			writeError(c, invalidJSON())
			return
		}
		q, cErr := h.usecase.CalculateHome(req.ToInput())
		res, err = response.FromHomeQuote(q), cErr
	case entities.EstimateKindKitchen:
		var req request.KitchenEstimateRequest
		if c.ShouldBindJSON(&req) != nil {
			writeError(c, invalidJSON())
			return
		}
		q, cErr := h.usecase.CalculateKitchen(req.ToInput())
		res, err = response.FromKitchenQuote(q), cErr
	case entities.EstimateKindWardrobe:
		var req request.WardrobeEstimateRequest
		if c.ShouldBindJSON(&req) != nil {
			writeError(c, invalidJSON())
			return
		}
		q, cErr := h.usecase.CalculateWardrobe(req.ToInput())
		res, err = response.FromWardrobeQuote(q), cErr
	default:
		err = usecase.ErrInvalidKind
	}

	if err != nil {
		h.log.Info("[estimate][handler] calculate rejected", zap.String("kind", string(kind)), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Submit recomputes the price from the raw inputs and stores the lead.
func (h *EstimateHandler) Submit(c *gin.Context) {
	kind := kindParam(c)
	ctx := c.Request.Context()

	var (
		result usecase.SubmitResult
		err    error
	)
	switch kind {
	case entities.EstimateKindHome:
		var req request.HomeSubmitRequest
		if c.ShouldBindJSON(&req) != nil {
			writeError(c, invalidJSON())
			return
		}
		result, err = h.usecase.SubmitHome(ctx, req.ToSubmission())
	case entities.EstimateKindKitchen:
		var req request.KitchenSubmitRequest
		if c.ShouldBindJSON(&req) != nil {
			writeError(c, invalidJSON())
			return
		}
		result, err = h.usecase.SubmitKitchen(ctx, req.ToSubmission())
	case entities.EstimateKindWardrobe:
		var req request.WardrobeSubmitRequest
		if c.ShouldBindJSON(&req) != nil {
			writeError(c, invalidJSON())
			return
		}
		result, err = h.usecase.SubmitWardrobe(ctx, req.ToSubmission())
	default:
		err = usecase.ErrInvalidKind
	}

	if err != nil {
		h.log.Info("[estimate][handler] submit failed", zap.String("kind", string(kind)), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}
	h.log.Info("[estimate][handler] submit success",
		zap.String("kind", string(kind)), zap.String("estimate_id", result.Estimate.ID))
	c.JSON(http.StatusOK, response.FromSubmitResult(result))
}

// List returns stored leads of one calculator, newest first.
func (h *EstimateHandler) List(c *gin.Context) {
	kind := kindParam(c)
	page, limit := request.ParsePagination(c.Query("page"), c.Query("limit"))

	p, err := h.usecase.ListEstimates(c.Request.Context(), kind, page, limit)
	if err != nil {
		h.log.Warn("[estimate][handler] list failed", zap.String("kind", string(kind)), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimatePage(p))
}

// Export returns the same page as List as an xlsx download.
func (h *EstimateHandler) Export(c *gin.Context) {
	kind := kindParam(c)
	page, limit := request.ParsePagination(c.Query("page"), c.Query("limit"))

	out, err := h.usecase.ExportEstimates(c.Request.Context(), kind, page, limit)
	if err != nil {
		h.log.Warn("[estimate][handler] export failed", zap.String("kind", string(kind)), zap.Error(err))
		writeError(c, mapEstimateError(err))
		return
	}

	page, _ = usecase.NormalizePage(page, limit)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-estimates-page-%d.xlsx"`, kind, page))
	c.Data(http.StatusOK, xlsxContentType, out)
}
