package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fallswatch/journal-backend-go/internal/models"
	"github.com/fallswatch/journal-backend-go/internal/repository"
	"github.com/fallswatch/journal-backend-go/internal/service"
	"github.com/fallswatch/journal-backend-go/pkg/response"
)

// VisitHandler handles HTTP requests for visit records.
type VisitHandler struct {
	visits *service.VisitService
}

// NewVisitHandler creates a new visit handler.
func NewVisitHandler(visits *service.VisitService) *VisitHandler {
	return &VisitHandler{visits: visits}
}

// saveVisitRequest is the save payload. An empty visitDate defaults to
// the current time, matching a freshly opened detail screen.
type saveVisitRequest struct {
	VisitDate    string `json:"visitDate"`
	JournalNotes string `json:"journalNotes"`
}

// visitResponse wraps a visit with its presence flag and an optional
// non-blocking notice.
type visitResponse struct {
	Visit   *models.Visit `json:"visit"`
	Visited bool          `json:"visited"`
	Notice  string        `json:"notice,omitempty"`
}

// GetVisit handles GET /api/v1/waterfalls/:id/visit. A read failure is
// not blocking: the record is treated as absent and the payload carries
// a notice.
func (h *VisitHandler) GetVisit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid waterfall ID", err)
		return
	}

	visit, err := h.visits.Get(c.Request.Context(), id)
	if err != nil {
		var readErr *repository.StorageReadError
		if errors.As(err, &readErr) {
			response.Success(c, visitResponse{Notice: service.ReadNotice})
			return
		}
		response.InternalError(c, "Failed to load visit data.", err)
		return
	}

	response.Success(c, visitResponse{Visit: visit, Visited: visit != nil})
}

// SaveVisit handles PUT /api/v1/waterfalls/:id/visit, fully replacing
// any stored record. On failure the submitted fields are echoed back so
// the client keeps its editing state; nothing is retried automatically.
func (h *VisitHandler) SaveVisit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid waterfall ID", err)
		return
	}

	var req saveVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid visit payload", err)
		return
	}

	visit := models.Visit{VisitDate: time.Now(), JournalNotes: req.JournalNotes}
	if req.VisitDate != "" {
		date, err := time.Parse(time.RFC3339, req.VisitDate)
		if err != nil {
			response.BadRequest(c, "Invalid visit date", err)
			return
		}
		visit.VisitDate = date
	}

	if err := h.visits.Save(c.Request.Context(), id, visit); err != nil {
		response.ErrorWithData(c, http.StatusInternalServerError, "Failed to save visit data.", err, visitResponse{
			Visit: &visit,
		})
		return
	}

	response.Confirm(c, "Visit saved!", visitResponse{Visit: &visit, Visited: true})
}

// DeleteVisit handles DELETE /api/v1/waterfalls/:id/visit. Deleting an
// absent record succeeds; on success the visit fields reset to their
// defaults.
func (h *VisitHandler) DeleteVisit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid waterfall ID", err)
		return
	}

	if err := h.visits.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, "Failed to delete visit data.", err)
		return
	}

	response.Confirm(c, "Visit deleted!", visitResponse{Visit: nil, Visited: false})
}
