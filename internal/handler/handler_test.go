package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fallswatch/journal-backend-go/internal/api"
	"github.com/fallswatch/journal-backend-go/internal/catalog"
	"github.com/fallswatch/journal-backend-go/internal/database"
	"github.com/fallswatch/journal-backend-go/internal/handler"
	"github.com/fallswatch/journal-backend-go/internal/models"
	"github.com/fallswatch/journal-backend-go/internal/repository"
	"github.com/fallswatch/journal-backend-go/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter wires the full route table over the given store.
func setupRouter(t *testing.T, store service.VisitStore) *gin.Engine {
	t.Helper()

	cat, err := catalog.Load("")
	require.NoError(t, err)

	logger := zap.NewNop()
	return api.SetupRouter(api.Handlers{
		Waterfalls: handler.NewWaterfallHandler(cat, service.NewCardService(cat, store, logger)),
		Details:    handler.NewDetailHandler(service.NewDetailService(store, "test-maps-key", logger)),
		Visits:     handler.NewVisitHandler(service.NewVisitService(store)),
	}, logger)
}

// newSQLiteStore opens a migrated repository on a temp database file and
// returns the path so tests can reopen it.
func newSQLiteStore(t *testing.T) (string, *repository.VisitRepository) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "visits.db")
	return path, reopenSQLiteStore(t, path)
}

func reopenSQLiteStore(t *testing.T, path string) *repository.VisitRepository {
	t.Helper()

	db, err := database.Open(database.Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	return repository.NewVisitRepository(db, zap.NewNop())
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// stubStore is an in-memory store with injectable failures for the
// write-failure paths.
type stubStore struct {
	visits  map[int64]models.Visit
	saveErr error
	readErr error
}

func newStubStore() *stubStore {
	return &stubStore{visits: make(map[int64]models.Visit)}
}

func (s *stubStore) Get(_ context.Context, id int64) (*models.Visit, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	v, ok := s.visits[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *stubStore) Save(_ context.Context, id int64, visit models.Visit) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.visits[id] = visit
	return nil
}

func (s *stubStore) Delete(_ context.Context, id int64) error {
	delete(s.visits, id)
	return nil
}
