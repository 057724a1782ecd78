//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"staybook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		expected infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expected: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: infra.KindForeignKeyViolated},
		{name: "anything else", err: errors.New("connection reset"), expected: infra.KindDBFailure},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindRangeTaken}, expected: infra.KindRangeTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(wrapped, tt.expected), "got %v", wrapped)
			assert.True(t, errors.Is(wrapped, tt.err))
			assert.Contains(t, wrapped.Error(), "op failed")
		})
	}
}
