package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fallswatch/journal-backend-go/internal/models"
	"github.com/fallswatch/journal-backend-go/internal/spatial"
)

func coords(lat, lng float64) (*float64, *float64) {
	return &lat, &lng
}

func TestBuildDetailWithCoordinates(t *testing.T) {
	store := newFakeStore()
	svc := NewDetailService(store, "test-maps-key", zap.NewNop())

	lat, lng := coords(46.8, -121.7)
	w := &models.Waterfall{ID: 3, Name: "Narada Falls", Height: "176 ft", Latitude: lat, Longitude: lng}

	detail := svc.BuildDetail(context.Background(), w, time.Now())

	require.NotNil(t, detail.Map)
	assert.Equal(t, 46.8, detail.Map.CenterLatitude)
	assert.Equal(t, -121.7, detail.Map.CenterLongitude)
	assert.Equal(t, 46.8, detail.Map.Marker.Latitude)
	assert.Equal(t, -121.7, detail.Map.Marker.Longitude)
	assert.Equal(t, "Narada Falls", detail.Map.Marker.Title)
	assert.Equal(t, "Height: 176 ft", detail.Map.Marker.Description)
	assert.Equal(t, spatial.DefaultLatitudeDelta, detail.Map.LatitudeDelta)
	assert.Equal(t, spatial.DefaultLongitudeDelta, detail.Map.LongitudeDelta)
	assert.Equal(t, "test-maps-key", detail.MapsAPIKey)
}

func TestBuildDetailWithoutCoordinates(t *testing.T) {
	store := newFakeStore()
	svc := NewDetailService(store, "test-maps-key", zap.NewNop())

	w := &models.Waterfall{ID: 5, Name: "Spirit Falls"}

	detail := svc.BuildDetail(context.Background(), w, time.Now())

	// Missing coordinates render the placeholder: no map, no credential.
	assert.Nil(t, detail.Map)
	assert.Empty(t, detail.MapsAPIKey)
}

func TestBuildDetailDefaults(t *testing.T) {
	store := newFakeStore()
	svc := NewDetailService(store, "", zap.NewNop())

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	w := &models.Waterfall{ID: 2, Name: "Palouse Falls"}

	detail := svc.BuildDetail(context.Background(), w, now)

	assert.False(t, detail.Visited)
	assert.True(t, detail.Visit.VisitDate.Equal(now))
	assert.Empty(t, detail.Visit.JournalNotes)
}

func TestBuildDetailWithStoredVisit(t *testing.T) {
	store := newFakeStore()
	svc := NewDetailService(store, "", zap.NewNop())
	ctx := context.Background()

	stored := models.Visit{
		VisitDate:    time.Date(2023, 10, 12, 0, 0, 0, 0, time.UTC),
		JournalNotes: "misty morning",
	}
	require.NoError(t, store.Save(ctx, 2, stored))

	w := &models.Waterfall{ID: 2, Name: "Palouse Falls"}
	detail := svc.BuildDetail(ctx, w, time.Now())

	assert.True(t, detail.Visited)
	assert.True(t, detail.Visit.VisitDate.Equal(stored.VisitDate))
	assert.Equal(t, "misty morning", detail.Visit.JournalNotes)
}

func TestBuildDetailFailsOpenOnReadError(t *testing.T) {
	store := newFakeStore()
	svc := NewDetailService(store, "", zap.NewNop())

	store.failReads()

	now := time.Now()
	w := &models.Waterfall{ID: 2, Name: "Palouse Falls"}
	detail := svc.BuildDetail(context.Background(), w, now)

	assert.False(t, detail.Visited)
	assert.True(t, detail.Visit.VisitDate.Equal(now))
	assert.Equal(t, ReadNotice, detail.Notice)
}
