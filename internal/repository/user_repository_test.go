package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

func newUserMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "role", "phone", "location", "profile_image_url", "bio", "rating", "total_reviews", "created_at", "updated_at", "is_active"}).
		AddRow("u1", "Ana", "ana@x.io", "owner", nil, nil, nil, nil, 0.0, 0, time.Now(), time.Now(), true)
}

func TestUserRepositoryListDefaultsToLiveRows(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userColumns+" FROM users WHERE 1=1 AND is_active = TRUE ORDER BY created_at DESC")).
		WillReturnRows(userRows())

	users, err := repo.List(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	role := models.RoleWalker
	location := "Berlin"
	active := false
	minRating := 4.0
	limit := 10
	offset := 5

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userColumns+" FROM users WHERE 1=1 AND role = $1 AND LOWER(location) LIKE $2 AND is_active = $3 AND rating >= $4 ORDER BY created_at DESC LIMIT $5 OFFSET $6")).
		WithArgs("walker", "%berlin%", false, 4.0, 10, 5).
		WillReturnRows(userRows())

	users, err := repo.List(context.Background(), models.UserFilter{
		Role:      &role,
		Location:  &location,
		Active:    &active,
		MinRating: &minRating,
		Limit:     &limit,
		Offset:    &offset,
	})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryListRejectsBadLimit(t *testing.T) {
	db, _, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	limit := 0
	_, err := repo.List(context.Background(), models.UserFilter{Limit: &limit})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidArgument))
}

func TestUserRepositorySearchBindsTermOnce(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	role := models.RoleWalker
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userColumns+" FROM users WHERE is_active = TRUE AND (LOWER(name) LIKE $1 OR LOWER(email) LIKE $1 OR LOWER(location) LIKE $1 OR LOWER(bio) LIKE $1) AND role = $2 ORDER BY rating DESC, created_at DESC")).
		WithArgs("%lab%", "walker").
		WillReturnRows(userRows())

	users, err := repo.Search(context.Background(), "Lab", models.UserFilter{Role: &role})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{Name: "Ana", Email: "ana@x.io", Role: models.RoleOwner, Active: true}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.User{Name: "Ana", Email: "ana@x.io", Role: models.RoleOwner})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrConflict))
}

func TestUserRepositoryUpdateWhitelistedFields(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	bio := "hi"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET bio = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("hi", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), "u1", models.UserUpdate{Bio: &bio}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateEmptyPayload(t *testing.T) {
	db, _, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	err := repo.Update(context.Background(), "u1", models.UserUpdate{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNoUpdatableFields))
}

func TestUserRepositorySoftDeleteCascadesInOneTransaction(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE dogs SET is_active = FALSE").
		WithArgs("u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE users SET is_active = FALSE").
		WithArgs("u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SoftDelete(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryHardDeleteRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dogs").
		WithArgs("u1").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.HardDelete(context.Background(), "u1")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrTransaction))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryStats(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"dog_count", "high_energy_dogs_ratio", "low_energy_dogs_ratio"}).
		AddRow(4, 0.5, 0.25)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("u1").
		WillReturnRows(rows)

	stats, err := repo.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.DogCount)
	assert.InDelta(t, 0.5, stats.HighEnergyDogsRatio, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryNilHandle(t *testing.T) {
	repo := NewUserRepository(nil)
	_, err := repo.List(context.Background(), models.UserFilter{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotInitialized))
}
