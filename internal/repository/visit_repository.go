// Package repository provides data access for visit records.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fallswatch/journal-backend-go/internal/models"
)

const visitKeyPrefix = "visit_"

// VisitKey derives the storage key for a waterfall id. The scheme is
// stable across versions so existing visit data stays addressable after
// upgrades.
func VisitKey(id int64) string {
	return visitKeyPrefix + strconv.FormatInt(id, 10)
}

// storedVisit pins the persisted JSON layout: an ISO-8601 timestamp
// string plus free-text notes. Changing this layout requires a migration
// or a versioned key scheme.
type storedVisit struct {
	VisitDate    string `json:"visitDate"`
	JournalNotes string `json:"journalNotes"`
}

// VisitRepository is the persistence facade for visit records: a
// string-keyed JSON-blob keyspace in the local SQLite file. At most one
// record exists per waterfall id, and its presence is the sole "visited"
// signal. Reads always hit the database; there is no caching layer.
type VisitRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVisitRepository creates a new visit repository.
func NewVisitRepository(db *sql.DB, logger *zap.Logger) *VisitRepository {
	return &VisitRepository{db: db, logger: logger}
}

// Get reads the visit record for a waterfall id. Absence is not an
// error: a missing record returns (nil, nil). Underlying read failures
// and corrupted values surface as *StorageReadError.
func (r *VisitRepository) Get(ctx context.Context, id int64) (*models.Visit, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM visits WHERE key = ?", VisitKey(id)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageReadError{Err: err}
	}

	var sv storedVisit
	if err := json.Unmarshal([]byte(value), &sv); err != nil {
		return nil, &StorageReadError{Err: fmt.Errorf("corrupted visit record for id %d: %w", id, err)}
	}

	visit := &models.Visit{JournalNotes: sv.JournalNotes}
	if sv.VisitDate != "" {
		date, err := time.Parse(time.RFC3339, sv.VisitDate)
		if err != nil {
			return nil, &StorageReadError{Err: fmt.Errorf("corrupted visit date for id %d: %w", id, err)}
		}
		visit.VisitDate = date
	}

	return visit, nil
}

// Save writes the visit record for a waterfall id, fully replacing any
// existing record (last-write-wins, no field merge). The date is stored
// at second precision in UTC.
func (r *VisitRepository) Save(ctx context.Context, id int64, visit models.Visit) error {
	sv := storedVisit{
		VisitDate:    visit.VisitDate.UTC().Format(time.RFC3339),
		JournalNotes: visit.JournalNotes,
	}
	value, err := json.Marshal(sv)
	if err != nil {
		return &StorageWriteError{Err: fmt.Errorf("failed to encode visit for id %d: %w", id, err)}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO visits (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		VisitKey(id), string(value),
	)
	if err != nil {
		return &StorageWriteError{Err: err}
	}

	r.logger.Debug("visit saved", zap.Int64("waterfall_id", id))
	return nil
}

// Delete removes the visit record for a waterfall id. Deleting a record
// that does not exist is not an error.
func (r *VisitRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM visits WHERE key = ?", VisitKey(id))
	if err != nil {
		return &StorageWriteError{Err: err}
	}

	r.logger.Debug("visit deleted", zap.Int64("waterfall_id", id))
	return nil
}
