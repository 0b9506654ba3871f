package models

// Waterfall represents a single catalog entry. The catalog is bundled with
// the application and read-only for the lifetime of the process.
type Waterfall struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"` // image asset reference

	// Display dimensions. Unit-bearing free text ("188 m", "~30 ft"),
	// not guaranteed numeric.
	Height string `json:"height,omitempty"`
	Width  string `json:"width,omitempty"`

	// Optional coordinates. Both present or both absent by convention;
	// absence is a valid, expected state for some records.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// HasCoordinates reports whether both coordinates are present.
func (w *Waterfall) HasCoordinates() bool {
	return w.Latitude != nil && w.Longitude != nil
}
