// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file defines the storage-level error taxonomy.
//
// Two kinds of failure leave this package:
//
//   - ErrInvalidUUID (wrapped with detail): the caller supplied an identifier
//     that does not correspond to a valid, existing entity. Raised both when
//     a string fails UUID parsing and when an answer insert violates the
//     questions foreign key. Checked with errors.Is.
//   - anything else: the raw GORM/driver error (connectivity, unrelated
//     constraint violations, serialization), propagated unchanged.
//
// Translation to HTTP status codes happens at the handler layer; nothing in
// this package knows about transport semantics.
package repo

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidUUID marks identifiers that failed UUID parsing or referenced a
// missing parent row. Wrap with invalidUUID to attach detail.
var ErrInvalidUUID = errors.New("invalid uuid")

// ErrNotFound re-exports the GORM sentinel for convenience of callers.
var ErrNotFound = gorm.ErrRecordNotFound

// invalidUUID wraps ErrInvalidUUID with a human-readable detail.
func invalidUUID(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidUUID, detail)
}

// isForeignKeyViolation detects FK constraint failures across drivers that
// may not map to gorm.ErrForeignKeyViolated.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	// SQLite typically: "FOREIGN KEY constraint failed"
	// Postgres typically: "violates foreign key constraint" (SQLSTATE 23503)
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "sqlstate 23503")
}
