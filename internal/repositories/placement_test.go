package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/classaway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlacement(userID uuid.UUID, company string, createdAt time.Time) *models.Placement {
	return &models.Placement{
		ID:          uuid.New(),
		UserID:      userID,
		Company:     company,
		Status:      models.PlacementApplicationSent,
		SalaryRange: models.SalaryNotDisclosed,
		JobType:     models.JobFullTime,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestPlacementRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	writeRepo := NewPlacementWriteRepository(db, nil)
	readRepo := NewPlacementReadRepository(db, nil)

	base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	first := newPlacement(owner.ID, "Acme", base)
	second := newPlacement(owner.ID, "Globex", base.Add(time.Hour))
	salary := 12.5
	second.Salary = &salary
	foreign := newPlacement(other.ID, "Acme", base)

	for _, p := range []*models.Placement{first, second, foreign} {
		require.NoError(t, writeRepo.Save(ctx, p))
	}

	t.Run("ListOldestFirst", func(t *testing.T) {
		ps, err := readRepo.List(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, ps, 2)
		assert.Equal(t, first.ID, ps[0].ID)
		assert.Equal(t, second.ID, ps[1].ID)
		assert.Nil(t, ps[0].Salary)
		require.NotNil(t, ps[1].Salary)
		assert.Equal(t, 12.5, *ps[1].Salary)
	})

	t.Run("GetByCompany", func(t *testing.T) {
		got, err := readRepo.GetByCompany(ctx, owner.ID, "Acme")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)

		got, err = readRepo.GetByCompany(ctx, owner.ID, "Initech")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Update", func(t *testing.T) {
		first.Status = models.PlacementInterview
		first.JobRole = "Backend"
		ok, err := writeRepo.Update(ctx, first)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := readRepo.GetByCompany(ctx, owner.ID, "Acme")
		require.NoError(t, err)
		assert.Equal(t, models.PlacementInterview, got.Status)
		assert.Equal(t, "Backend", got.JobRole)

		hijack := *foreign
		hijack.UserID = owner.ID
		ok, err = writeRepo.Update(ctx, &hijack)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("DeleteScopedToOwner", func(t *testing.T) {
		got, err := writeRepo.Delete(ctx, owner.ID, foreign.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = writeRepo.Delete(ctx, owner.ID, second.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Globex", got.Company)

		ps, err := readRepo.List(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, ps, 1)
	})
}

func TestPlacementReadRepository_GetByCompanyQuery(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "pgx")
	repo := NewPlacementReadRepository(db, nil)
	userID := uuid.New()

	mock.ExpectQuery(`FROM placements WHERE company = \$1 AND user_id = \$2 ORDER BY created_at DESC LIMIT 1`).
		WithArgs("Acme", userID.String()).
		WillReturnRows(sqlmock.NewRows(placementColumns))

	got, err := repo.GetByCompany(context.Background(), userID, "Acme")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
