package spatial

import (
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/fallswatch/journal-backend-go/internal/models"
)

// Default span of the detail map region, in degrees.
const (
	DefaultLatitudeDelta  = 0.0922
	DefaultLongitudeDelta = 0.0421
)

// ValidCoordinate reports whether lat/lng is a normalized geographic
// coordinate (latitude within ±90°, longitude within ±180°).
func ValidCoordinate(lat, lng float64) bool {
	return s2.LatLngFromDegrees(lat, lng).IsValid()
}

// MapViewFor builds the map payload for a record: a region centered on
// the record's coordinates with a single named marker. Returns nil when
// either coordinate is absent or out of range, which the client renders
// as a placeholder. Absent coordinates are an expected state, not a
// data-integrity failure.
func MapViewFor(w *models.Waterfall) *models.MapView {
	if !w.HasCoordinates() {
		return nil
	}
	lat, lng := *w.Latitude, *w.Longitude
	if !ValidCoordinate(lat, lng) {
		return nil
	}

	height := w.Height
	if height == "" {
		height = "N/A"
	}

	return &models.MapView{
		CenterLatitude:  lat,
		CenterLongitude: lng,
		LatitudeDelta:   DefaultLatitudeDelta,
		LongitudeDelta:  DefaultLongitudeDelta,
		Marker: models.MapMarker{
			Latitude:    lat,
			Longitude:   lng,
			Title:       w.Name,
			Description: fmt.Sprintf("Height: %s", height),
		},
	}
}
