package service

import (
	"context"
	"errors"

	"github.com/fallswatch/journal-backend-go/internal/models"
	"github.com/fallswatch/journal-backend-go/internal/repository"
)

var errDiskFault = errors.New("disk fault")

// fakeStore is an in-memory VisitStore with injectable failures.
type fakeStore struct {
	visits   map[int64]models.Visit
	readErr  error
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{visits: make(map[int64]models.Visit)}
}

func (f *fakeStore) Get(_ context.Context, id int64) (*models.Visit, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	v, ok := f.visits[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeStore) Save(_ context.Context, id int64, visit models.Visit) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.visits[id] = visit
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	delete(f.visits, id)
	return nil
}

func (f *fakeStore) failReads() {
	f.readErr = &repository.StorageReadError{Err: errDiskFault}
}
