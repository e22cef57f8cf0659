package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrapErrorNotFound(t *testing.T) {
	assert.Nil(t, wrapError(nil))
	assert.ErrorIs(t, wrapError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, wrapError(fmt.Errorf("fetch: %w", gorm.ErrRecordNotFound)), ErrNotFound)
}

func TestWrapErrorPostgresUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "authors",
		ConstraintName: "authors_orcid_key",
	}

	var conflict *ConflictError
	require.ErrorAs(t, wrapError(pgErr), &conflict)
	assert.Equal(t, []string{"orcid"}, conflict.Fields)

	// unknown naming scheme still yields a conflict, just without fields
	pgErr = &pgconn.PgError{Code: "23505"}
	require.ErrorAs(t, wrapError(pgErr), &conflict)
	assert.Empty(t, conflict.Fields)

	// other pg error codes pass through untouched
	other := &pgconn.PgError{Code: "23503"}
	assert.NotErrorAs(t, wrapError(other), &conflict)
}

func TestWrapErrorTranslatedDuplicate(t *testing.T) {
	var conflict *ConflictError
	require.ErrorAs(t, wrapError(gorm.ErrDuplicatedKey), &conflict)
	assert.Empty(t, conflict.Fields)
}

func TestWrapErrorSqliteUniqueViolation(t *testing.T) {
	err := errors.New("constraint failed: UNIQUE constraint failed: authors.orcid (2067)")

	var conflict *ConflictError
	require.ErrorAs(t, wrapError(err), &conflict)
	assert.Equal(t, []string{"orcid"}, conflict.Fields)
}

func TestWrapErrorPassthrough(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, boom, wrapError(boom))
}

func TestConflictErrorMessage(t *testing.T) {
	assert.Equal(t, "unique constraint failed", (&ConflictError{}).Error())
	assert.Equal(t, "unique constraint failed on orcid, email",
		(&ConflictError{Fields: []string{"orcid", "email"}}).Error())
}
