package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
)

func testVector(dim int, fill float32) pgvector.Vector {
	floats := make([]float32, dim)
	for i := range floats {
		floats[i] = fill
	}
	return pgvector.NewVector(floats)
}

func TestIdentityRepository_Count(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      int
		wantErr   bool
	}{
		{
			name: "returns population size",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM identities`).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
			},
			want: 7,
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM identities`).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewIdentityRepository(mock, 50)
			got, err := repo.Count(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIdentityRepository_Insert(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		capacity  int
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name:     "successful insert under capacity",
			capacity: 50,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
					WithArgs(enrollmentLockKey).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM identities`).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
				mock.ExpectQuery(`INSERT INTO identities`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
				mock.ExpectCommit()
			},
			wantErr: nil,
		},
		{
			name:     "population at capacity",
			capacity: 50,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
					WithArgs(enrollmentLockKey).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM identities`).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(50))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrCapacityReached,
		},
		{
			name:     "insert failure reported as persistence error",
			capacity: 50,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
					WithArgs(enrollmentLockKey).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM identities`).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
				mock.ExpectQuery(`INSERT INTO identities`).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewIdentityRepository(mock, tt.capacity)
			identity := &domain.Identity{
				Embedding: make([]float64, domain.EmbeddingDim),
			}
			err = repo.Insert(context.Background(), identity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, identity.ID)
				assert.Equal(t, now, identity.CreatedAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIdentityRepository_ListAll(t *testing.T) {
	firstID := uuid.New()
	secondID := uuid.New()
	now := time.Now()
	override := 0.8

	t.Run("returns identities in insertion order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "embedding", "threshold", "created_at"}).
			AddRow(firstID, testVector(4, 0.5), nil, now).
			AddRow(secondID, testVector(4, -0.5), &override, now.Add(time.Second))

		mock.ExpectQuery(`SELECT id, embedding, threshold, created_at FROM identities ORDER BY created_at, id`).
			WillReturnRows(rows)

		repo := NewIdentityRepository(mock, 50)
		got, err := repo.ListAll(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, firstID, got[0].ID)
		assert.Equal(t, secondID, got[1].ID)
		assert.Nil(t, got[0].Threshold)
		require.NotNil(t, got[1].Threshold)
		assert.Equal(t, override, *got[1].Threshold)
		assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, got[0].Embedding)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty population", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, embedding, threshold, created_at FROM identities ORDER BY created_at, id`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "embedding", "threshold", "created_at"}))

		repo := NewIdentityRepository(mock, 50)
		got, err := repo.ListAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, embedding, threshold, created_at FROM identities ORDER BY created_at, id`).
			WillReturnError(errors.New("connection reset"))

		repo := NewIdentityRepository(mock, 50)
		_, err = repo.ListAll(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list identities")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
