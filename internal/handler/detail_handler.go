package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fallswatch/journal-backend-go/internal/models"
	"github.com/fallswatch/journal-backend-go/internal/service"
	"github.com/fallswatch/journal-backend-go/pkg/response"
)

// DetailHandler handles the detail screen's navigation-parameter
// contract: the record fields arrive as string query parameters from the
// list screen rather than being re-fetched from the catalog.
type DetailHandler struct {
	details *service.DetailService
}

// NewDetailHandler creates a new detail handler.
func NewDetailHandler(details *service.DetailService) *DetailHandler {
	return &DetailHandler{details: details}
}

// GetDetail handles GET /api/v1/detail. Parameters are validated and
// defaulted once at this boundary; a missing or unparsable id fails safe
// with 400 and no visit store access.
func (h *DetailHandler) GetDetail(c *gin.Context) {
	var params models.DetailParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid detail parameters", err)
		return
	}

	w, err := models.ParseDetailParams(params)
	if err != nil {
		response.BadRequest(c, "Invalid detail parameters", err)
		return
	}

	detail := h.details.BuildDetail(c.Request.Context(), w, time.Now())
	response.Success(c, detail)
}
