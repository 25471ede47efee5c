package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

func newDogMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func dogRows() *sqlmock.Rows {
	breed := "labrador"
	return sqlmock.NewRows([]string{"id", "owner_id", "name", "breed", "age", "size", "temperament", "special_needs", "medical_notes", "profile_image_url", "is_friendly_with_other_dogs", "is_friendly_with_children", "energy_level", "created_at", "updated_at", "is_active"}).
		AddRow("d1", "u1", "Rex", breed, 3, "medium", nil, nil, nil, nil, true, true, "high", time.Now(), time.Now(), true)
}

func TestDogRepositoryListFalseFlagIsMeaningful(t *testing.T) {
	db, mock, cleanup := newDogMock(t)
	defer cleanup()
	repo := NewDogRepository(db)

	friendly := false
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+dogColumns+" FROM dogs WHERE is_active = TRUE AND is_friendly_with_other_dogs = $1 ORDER BY created_at DESC")).
		WithArgs(false).
		WillReturnRows(dogRows())

	dogs, err := repo.List(context.Background(), models.DogFilter{FriendlyWithOtherDogs: &friendly})
	require.NoError(t, err)
	assert.Len(t, dogs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDogRepositoryListDeclaredFilterOrder(t *testing.T) {
	db, mock, cleanup := newDogMock(t)
	defer cleanup()
	repo := NewDogRepository(db)

	owner := "u1"
	size := models.SizeLarge
	energy := models.EnergyHigh
	minAge := 2
	maxAge := 8

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+dogColumns+" FROM dogs WHERE is_active = TRUE AND owner_id = $1 AND size = $2 AND energy_level = $3 AND age >= $4 AND age <= $5 ORDER BY created_at DESC")).
		WithArgs("u1", "large", "high", 2, 8).
		WillReturnRows(dogRows())

	_, err := repo.List(context.Background(), models.DogFilter{
		OwnerID:     &owner,
		Size:        &size,
		EnergyLevel: &energy,
		MinAge:      &minAge,
		MaxAge:      &maxAge,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDogRepositorySearch(t *testing.T) {
	db, mock, cleanup := newDogMock(t)
	defer cleanup()
	repo := NewDogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+dogColumns+" FROM dogs WHERE is_active = TRUE AND (LOWER(name) LIKE $1 OR LOWER(breed) LIKE $1 OR LOWER(temperament) LIKE $1) ORDER BY created_at DESC")).
		WithArgs("%rex%").
		WillReturnRows(dogRows())

	dogs, err := repo.Search(context.Background(), "Rex", models.DogFilter{})
	require.NoError(t, err)
	assert.Len(t, dogs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDogRepositoryCreateAssignsKey(t *testing.T) {
	db, mock, cleanup := newDogMock(t)
	defer cleanup()
	repo := NewDogRepository(db)

	mock.ExpectExec("INSERT INTO dogs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	dog := &models.Dog{OwnerID: "u1", Name: "Rex", Size: models.SizeMedium, EnergyLevel: models.EnergyHigh, Active: true}
	require.NoError(t, repo.Create(context.Background(), dog))
	assert.NotEmpty(t, dog.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDogRepositoryUpdateEmptyPayload(t *testing.T) {
	db, _, cleanup := newDogMock(t)
	defer cleanup()
	repo := NewDogRepository(db)

	err := repo.Update(context.Background(), "d1", models.DogUpdate{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNoUpdatableFields))
}

func TestDogRepositorySoftDeleteIdempotent(t *testing.T) {
	db, mock, cleanup := newDogMock(t)
	defer cleanup()
	repo := NewDogRepository(db)

	mock.ExpectExec("UPDATE dogs SET is_active = FALSE").
		WithArgs("d1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE dogs SET is_active = FALSE").
		WithArgs("d1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.SoftDelete(context.Background(), "d1"))
	require.NoError(t, repo.SoftDelete(context.Background(), "d1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDogRepositoryBreedStats(t *testing.T) {
	db, mock, cleanup := newDogMock(t)
	defer cleanup()
	repo := NewDogRepository(db)

	rows := sqlmock.NewRows([]string{"breed", "count", "avg_age", "avg_owner_rating"}).
		AddRow("labrador", 3, 4.5, 4.2).
		AddRow("poodle", 1, 2.0, 5.0)
	mock.ExpectQuery("SELECT d.breed, COUNT").
		WillReturnRows(rows)

	stats, err := repo.BreedStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "labrador", stats[0].Breed)
	assert.Equal(t, 3, stats[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
