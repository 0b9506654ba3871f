package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedParams indicates the detail screen was entered with missing
// or unparsable required navigation parameters.
var ErrMalformedParams = errors.New("malformed navigation parameters")

// DetailParams carries the stringly-typed navigation parameters passed
// from the list screen. The detail view derives its record from these,
// not from a catalog re-fetch.
type DetailParams struct {
	ID        string `form:"id"`
	Name      string `form:"name"`
	Photo     string `form:"photo"`
	Height    string `form:"height"`
	Width     string `form:"width"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
}

// ParseDetailParams validates and defaults every navigation parameter
// once, at the boundary, producing a fully-typed record. A missing or
// unparsable id is rejected with ErrMalformedParams; optional fields
// default to absent rather than propagating partially-parsed data.
func ParseDetailParams(p DetailParams) (*Waterfall, error) {
	idStr := strings.TrimSpace(p.ID)
	if idStr == "" {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedParams)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", ErrMalformedParams, p.ID)
	}

	w := &Waterfall{
		ID:     id,
		Name:   p.Name,
		Photo:  p.Photo,
		Height: p.Height,
		Width:  p.Width,
	}
	if w.Name == "" {
		w.Name = "Unknown Waterfall"
	}

	// Coordinates are optional; an unparsable value is treated the same
	// as an absent one.
	if lat, err := strconv.ParseFloat(strings.TrimSpace(p.Latitude), 64); err == nil && p.Latitude != "" {
		if lng, err := strconv.ParseFloat(strings.TrimSpace(p.Longitude), 64); err == nil && p.Longitude != "" {
			w.Latitude = &lat
			w.Longitude = &lng
		}
	}

	return w, nil
}

// MapMarker is the single pin rendered on the detail map.
type MapMarker struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// MapView is the map payload for records with coordinates: a centered
// region plus one marker. Absent when coordinates are missing, in which
// case the client renders a placeholder.
type MapView struct {
	CenterLatitude  float64   `json:"centerLatitude"`
	CenterLongitude float64   `json:"centerLongitude"`
	LatitudeDelta   float64   `json:"latitudeDelta"`
	LongitudeDelta  float64   `json:"longitudeDelta"`
	Marker          MapMarker `json:"marker"`
}

// Detail is the detail-view payload: the typed record, the visit fields
// (stored values or defaults), and the conditional map view.
type Detail struct {
	Waterfall  *Waterfall `json:"waterfall"`
	Visit      Visit      `json:"visit"`
	Visited    bool       `json:"visited"`
	Map        *MapView   `json:"map,omitempty"`
	MapsAPIKey string     `json:"mapsApiKey,omitempty"`
	Notice     string     `json:"notice,omitempty"` // non-blocking storage notice
}
