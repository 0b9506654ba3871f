package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetailParams(t *testing.T) {
	w, err := ParseDetailParams(DetailParams{
		ID:        "3",
		Name:      "Narada Falls",
		Height:    "176 ft",
		Width:     "50 ft",
		Latitude:  "46.8",
		Longitude: "-121.7",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), w.ID)
	assert.Equal(t, "Narada Falls", w.Name)
	assert.Equal(t, "176 ft", w.Height)
	assert.Equal(t, "50 ft", w.Width)
	require.True(t, w.HasCoordinates())
	assert.Equal(t, 46.8, *w.Latitude)
	assert.Equal(t, -121.7, *w.Longitude)
}

func TestParseDetailParamsMissingID(t *testing.T) {
	_, err := ParseDetailParams(DetailParams{Name: "Somewhere"})
	require.ErrorIs(t, err, ErrMalformedParams)

	_, err = ParseDetailParams(DetailParams{ID: "   "})
	require.ErrorIs(t, err, ErrMalformedParams)
}

func TestParseDetailParamsInvalidID(t *testing.T) {
	_, err := ParseDetailParams(DetailParams{ID: "forty-two"})
	require.ErrorIs(t, err, ErrMalformedParams)
}

func TestParseDetailParamsDefaultsName(t *testing.T) {
	w, err := ParseDetailParams(DetailParams{ID: "9"})
	require.NoError(t, err)
	assert.Equal(t, "Unknown Waterfall", w.Name)
}

func TestParseDetailParamsAbsentCoordinates(t *testing.T) {
	w, err := ParseDetailParams(DetailParams{ID: "9"})
	require.NoError(t, err)
	assert.False(t, w.HasCoordinates())
	assert.Nil(t, w.Latitude)
	assert.Nil(t, w.Longitude)
}

func TestParseDetailParamsUnparsableCoordinates(t *testing.T) {
	// Garbage coordinates default to absent instead of propagating a
	// partially parsed record.
	w, err := ParseDetailParams(DetailParams{ID: "9", Latitude: "north-ish", Longitude: "-121.7"})
	require.NoError(t, err)
	assert.False(t, w.HasCoordinates())

	// One coordinate alone is treated as absent too.
	w, err = ParseDetailParams(DetailParams{ID: "9", Latitude: "46.8"})
	require.NoError(t, err)
	assert.False(t, w.HasCoordinates())
}
