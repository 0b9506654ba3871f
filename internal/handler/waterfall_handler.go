package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fallswatch/journal-backend-go/internal/catalog"
	"github.com/fallswatch/journal-backend-go/internal/service"
	"github.com/fallswatch/journal-backend-go/pkg/response"
)

// WaterfallHandler handles HTTP requests for the catalog and its list
// cards.
type WaterfallHandler struct {
	catalog *catalog.Catalog
	cards   *service.CardService
}

// NewWaterfallHandler creates a new waterfall handler.
func NewWaterfallHandler(c *catalog.Catalog, cards *service.CardService) *WaterfallHandler {
	return &WaterfallHandler{catalog: c, cards: cards}
}

// ListWaterfalls handles GET /api/v1/waterfalls. The list is the full
// catalog in stored order, one card per record, with visited indicators.
// No pagination, filtering, or sorting.
func (h *WaterfallHandler) ListWaterfalls(c *gin.Context) {
	response.Success(c, h.cards.ListCards(c.Request.Context()))
}

// GetWaterfall handles GET /api/v1/waterfalls/:id and returns the raw
// catalog record.
func (h *WaterfallHandler) GetWaterfall(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid waterfall ID", err)
		return
	}

	w := h.catalog.Get(id)
	if w == nil {
		response.NotFound(c, "Waterfall not found")
		return
	}

	response.Success(c, w)
}
