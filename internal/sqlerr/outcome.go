package sqlerr

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a single-row lookup matched no rows.
//
// It is an outcome, not a fault: callers test for it with errors.Is.
var ErrNotFound = errors.New("record not found")

// NotFoundError is ErrNotFound annotated with the table that was searched.
type NotFoundError struct {
	Table string
}

// NotFound returns a not-found outcome for table.
func NotFound(table string) error {
	return &NotFoundError{Table: table}
}

// Error keeps the "table:<name>:" shape HandleError and logs rely on.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table:%s: %s", e.Table, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError is a fault reported by the statement executor: connectivity,
// constraint violation, malformed statement, cancellation and so on.
type StorageError struct {
	// Op names the repository operation, e.g. "get user by email".
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageFailure reports whether err is or wraps a *StorageError.
func IsStorageFailure(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsNotFound reports whether err is a not-found outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
