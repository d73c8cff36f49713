package handlers

import (
	"net/http"

	"kalakruti_api/internal/adapter/http/dto/request"
	"kalakruti_api/internal/adapter/http/dto/response"
	"kalakruti_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	usecase usecase.IContactUseCase
	log     *zap.Logger
}

func NewContactHandler(uc usecase.IContactUseCase, logger *zap.Logger) *ContactHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactHandler{usecase: uc, log: logger}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidJSON())
		return
	}

	saved, err := h.usecase.Submit(c.Request.Context(), req.ToSubmission())
	if err != nil {
		h.log.Info("[contact][handler] submit failed", zap.Error(err))
		writeError(c, mapContactError(err))
		return
	}
	h.log.Info("[contact][handler] submit success", zap.String("contact_id", saved.ID))
	c.JSON(http.StatusOK, response.ContactReceived())
}
