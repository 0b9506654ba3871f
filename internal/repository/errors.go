package repository

// StorageReadError indicates the underlying persistence read failed
// (I/O fault, corruption, unavailable medium). Callers must treat the
// record as absent and may surface a non-blocking notice.
type StorageReadError struct {
	Err error
}

func (e *StorageReadError) Error() string {
	return "visit storage read failed: " + e.Err.Error()
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError indicates the underlying persistence write or delete
// failed. Callers must surface a blocking notice and must not assume the
// operation succeeded; there is no automatic retry.
type StorageWriteError struct {
	Err error
}

func (e *StorageWriteError) Error() string {
	return "visit storage write failed: " + e.Err.Error()
}

func (e *StorageWriteError) Unwrap() error { return e.Err }
