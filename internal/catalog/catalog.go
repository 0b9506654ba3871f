// Package catalog supplies the bundled, read-only waterfall catalog. The
// record set is parsed once at startup and never changes for the lifetime
// of the process.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fallswatch/journal-backend-go/internal/models"
)

//go:embed assets/waterfalls.json
var bundled []byte

// Catalog holds the immutable in-memory waterfall list.
type Catalog struct {
	falls []models.Waterfall
	byID  map[int64]*models.Waterfall
}

// Load parses the bundled catalog asset. A non-empty path overrides the
// embedded asset with a file on disk. Malformed or duplicate-id data is a
// packaging defect and fails loading outright; there is no partial load.
func Load(path string) (*Catalog, error) {
	data := bundled
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
	}

	var falls []models.Waterfall
	if err := json.Unmarshal(data, &falls); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	byID := make(map[int64]*models.Waterfall, len(falls))
	for i := range falls {
		w := &falls[i]
		if _, dup := byID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate waterfall id %d in catalog", w.ID)
		}
		byID[w.ID] = w
	}

	return &Catalog{falls: falls, byID: byID}, nil
}

// List returns the full catalog in its stored order. Callers must treat
// the returned slice as read-only.
func (c *Catalog) List() []models.Waterfall {
	return c.falls
}

// Get returns the record for id, or nil if the catalog has no such entry.
func (c *Catalog) Get(id int64) *models.Waterfall {
	return c.byID[id]
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.falls)
}
