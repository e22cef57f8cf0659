package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no live row matches the lookup. A soft-deleted
// row is indistinguishable from an absent one.
var ErrNotFound = errors.New("record not found")

// ConflictError reports a uniqueness violation. Fields names the offending
// columns when the database reports enough to determine them.
type ConflictError struct {
	Fields []string
}

func (e *ConflictError) Error() string {
	if len(e.Fields) == 0 {
		return "unique constraint failed"
	}
	return fmt.Sprintf("unique constraint failed on %s", strings.Join(e.Fields, ", "))
}

const pgUniqueViolation = "23505"

// wrapError maps driver and gorm errors into the store's error set so handlers
// never inspect vendor codes.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &ConflictError{Fields: constraintFields(pgErr.TableName, pgErr.ConstraintName)}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{}
	}
	// sqlite reports unique violations as plain text, e.g.
	// "UNIQUE constraint failed: authors.orcid".
	if msg := err.Error(); strings.Contains(msg, "UNIQUE constraint failed") {
		return &ConflictError{Fields: sqliteConstraintFields(msg)}
	}
	return err
}

func sqliteConstraintFields(msg string) []string {
	_, list, ok := strings.Cut(msg, "UNIQUE constraint failed:")
	if !ok {
		return nil
	}
	var fields []string
	for _, part := range strings.Split(list, ",") {
		col := strings.TrimSpace(part)
		// drop any trailing annotation, e.g. "authors.orcid (2067)"
		if i := strings.Index(col, " "); i >= 0 {
			col = col[:i]
		}
		if i := strings.LastIndex(col, "."); i >= 0 {
			col = col[i+1:]
		}
		if col != "" {
			fields = append(fields, col)
		}
	}
	return fields
}

// constraintFields recovers column names from a Postgres constraint name of the
// usual <table>_<column>_key / idx_<table>_<column> form. Best effort only.
func constraintFields(table, constraint string) []string {
	if constraint == "" {
		return nil
	}
	name := constraint
	for _, suffix := range []string{"_key", "_idx", "_unique"} {
		name = strings.TrimSuffix(name, suffix)
	}
	name = strings.TrimPrefix(name, "idx_")
	if table != "" {
		name = strings.TrimPrefix(name, table+"_")
	}
	if name == "" {
		name = constraint
	}
	return []string{name}
}
