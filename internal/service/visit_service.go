// Package service holds the payload-assembly logic between handlers and
// the visit store.
package service

import (
	"context"

	"github.com/fallswatch/journal-backend-go/internal/models"
)

// VisitStore is the persistence capability for visit records. The
// concrete implementation is repository.VisitRepository; tests substitute
// an in-memory fake.
type VisitStore interface {
	Get(ctx context.Context, id int64) (*models.Visit, error)
	Save(ctx context.Context, id int64, visit models.Visit) error
	Delete(ctx context.Context, id int64) error
}

// VisitService handles visit record operations.
type VisitService struct {
	store VisitStore
}

// NewVisitService creates a new visit service.
func NewVisitService(store VisitStore) *VisitService {
	return &VisitService{store: store}
}

// Get retrieves the visit for a waterfall id, or nil if none exists.
func (s *VisitService) Get(ctx context.Context, id int64) (*models.Visit, error) {
	return s.store.Get(ctx, id)
}

// Save stores the visit for a waterfall id, replacing any existing one.
func (s *VisitService) Save(ctx context.Context, id int64, visit models.Visit) error {
	return s.store.Save(ctx, id, visit)
}

// Delete removes the visit for a waterfall id; deleting an absent record
// is a no-op.
func (s *VisitService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
