package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fallswatch/journal-backend-go/internal/models"
	"github.com/fallswatch/journal-backend-go/internal/spatial"
)

// DetailService assembles the detail-view payload for one waterfall: the
// typed record, the stored visit (or its defaults), and the conditional
// map view.
type DetailService struct {
	visits     VisitStore
	mapsAPIKey string
	logger     *zap.Logger
}

// NewDetailService creates a new detail service. mapsAPIKey is the
// opaque map-provider credential passed through to clients.
func NewDetailService(visits VisitStore, mapsAPIKey string, logger *zap.Logger) *DetailService {
	return &DetailService{visits: visits, mapsAPIKey: mapsAPIKey, logger: logger}
}

// BuildDetail reads the visit for the record and assembles the payload.
// No stored visit: the date field defaults to now and notes to empty,
// with Visited false. A failed read falls open to the same defaults and
// attaches a non-blocking notice. The map view is present only when both
// coordinates are present and valid.
func (s *DetailService) BuildDetail(ctx context.Context, w *models.Waterfall, now time.Time) models.Detail {
	detail := models.Detail{
		Waterfall: w,
		Visit:     models.NewVisit(now),
		Map:       spatial.MapViewFor(w),
	}
	if detail.Map != nil {
		detail.MapsAPIKey = s.mapsAPIKey
	}

	visit, err := s.visits.Get(ctx, w.ID)
	if err != nil {
		s.logger.Warn("visit read failed, using defaults",
			zap.Int64("waterfall_id", w.ID), zap.Error(err))
		detail.Notice = ReadNotice
		return detail
	}

	if visit != nil {
		detail.Visit = *visit
		detail.Visited = true
	}

	return detail
}
