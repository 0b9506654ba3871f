package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fallswatch/journal-backend-go/internal/catalog"
	"github.com/fallswatch/journal-backend-go/internal/models"
)

// ReadNotice is the non-blocking notice attached to payloads when a
// visited-status read failed and the record was treated as not visited.
const ReadNotice = "Some visited markers could not be loaded."

// CardService assembles the list-view cards: one summary per catalog
// record, in catalog order, with the visited indicator resolved against
// the visit store.
type CardService struct {
	catalog *catalog.Catalog
	visits  VisitStore
	logger  *zap.Logger
}

// NewCardService creates a new card service.
func NewCardService(c *catalog.Catalog, visits VisitStore, logger *zap.Logger) *CardService {
	return &CardService{catalog: c, visits: visits, logger: logger}
}

// ListCards builds one card per catalog record. Visited is true exactly
// when the store currently holds a record for the id. A failed status
// read is not fatal to the list: the card falls open to not-visited and
// the response carries a non-blocking notice.
func (s *CardService) ListCards(ctx context.Context) models.CardsResponse {
	falls := s.catalog.List()
	cards := make([]models.Card, 0, len(falls))
	notice := ""

	for i := range falls {
		w := &falls[i]
		visited := false

		visit, err := s.visits.Get(ctx, w.ID)
		if err != nil {
			s.logger.Warn("visited-status read failed, treating as not visited",
				zap.Int64("waterfall_id", w.ID), zap.Error(err))
			notice = ReadNotice
		} else {
			visited = visit != nil
		}

		cards = append(cards, models.Card{
			ID:      w.ID,
			Name:    w.Name,
			Photo:   w.Photo,
			Height:  w.Height,
			Width:   w.Width,
			Visited: visited,
		})
	}

	return models.CardsResponse{Data: cards, Total: len(cards), Notice: notice}
}
