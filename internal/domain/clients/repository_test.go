package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ListByUser(t *testing.T) {
	t.Run("returns active clients", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		userID := uuid.New()
		acmeID := uuid.New()
		globexID := uuid.New()

		mock.ExpectQuery(`SELECT id, name`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
				AddRow(acmeID, "Acme Corporation").
				AddRow(globexID, "Globex"))

		repo := NewRepository(mock)
		got, err := repo.ListByUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Acme Corporation", got[0].Name)
		assert.Equal(t, globexID, got[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		userID := uuid.New()
		mock.ExpectQuery(`SELECT id, name`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		repo := NewRepository(mock)
		got, err := repo.ListByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("wraps query errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		userID := uuid.New()
		mock.ExpectQuery(`SELECT id, name`).
			WithArgs(userID).
			WillReturnError(errors.New("boom"))

		repo := NewRepository(mock)
		_, err = repo.ListByUser(context.Background(), userID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list clients")
	})
}
