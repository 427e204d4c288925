//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"maison-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("unique violation classifies as duplicate key", func(t *testing.T) {
		err := infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23505"})

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("foreign key violation classifies as such", func(t *testing.T) {
		err := infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23503"})

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("other errors default to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("query failed", errors.New("connection reset"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("explicit kind wins over classification", func(t *testing.T) {
		err := infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("wrapped cause stays reachable", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "23505"}
		err := infra.WrapRepoErr("insert failed", cause)

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23505", pgErr.Code)
	})

	t.Run("IsKind is false for unrelated errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	})
}
