package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

type mockDogRepo struct {
	listFn         func(ctx context.Context, filter models.DogFilter) ([]models.Dog, error)
	findByIDFn     func(ctx context.Context, id string) (*models.Dog, error)
	findAnyStateFn func(ctx context.Context, id string) (*models.Dog, error)
	searchFn       func(ctx context.Context, term string, filter models.DogFilter) ([]models.Dog, error)
	createFn       func(ctx context.Context, dog *models.Dog) error
	updateFn       func(ctx context.Context, id string, update models.DogUpdate) error
	softDeleteFn   func(ctx context.Context, id string) error
	hardDeleteFn   func(ctx context.Context, id string) error
	findOwnerFn    func(ctx context.Context, dogID string) (*models.User, error)
	breedStatsFn   func(ctx context.Context) ([]models.BreedStat, error)
	sizeStatsFn    func(ctx context.Context) ([]models.SizeStat, error)
}

func (m *mockDogRepo) List(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
	return m.listFn(ctx, filter)
}

func (m *mockDogRepo) FindByID(ctx context.Context, id string) (*models.Dog, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockDogRepo) FindByIDAnyState(ctx context.Context, id string) (*models.Dog, error) {
	return m.findAnyStateFn(ctx, id)
}

func (m *mockDogRepo) Search(ctx context.Context, term string, filter models.DogFilter) ([]models.Dog, error) {
	return m.searchFn(ctx, term, filter)
}

func (m *mockDogRepo) Create(ctx context.Context, dog *models.Dog) error {
	return m.createFn(ctx, dog)
}

func (m *mockDogRepo) Update(ctx context.Context, id string, update models.DogUpdate) error {
	return m.updateFn(ctx, id, update)
}

func (m *mockDogRepo) SoftDelete(ctx context.Context, id string) error {
	return m.softDeleteFn(ctx, id)
}

func (m *mockDogRepo) HardDelete(ctx context.Context, id string) error {
	return m.hardDeleteFn(ctx, id)
}

func (m *mockDogRepo) FindOwner(ctx context.Context, dogID string) (*models.User, error) {
	return m.findOwnerFn(ctx, dogID)
}

func (m *mockDogRepo) BreedStats(ctx context.Context) ([]models.BreedStat, error) {
	return m.breedStatsFn(ctx)
}

func (m *mockDogRepo) SizeStats(ctx context.Context) ([]models.SizeStat, error) {
	return m.sizeStatsFn(ctx)
}

type mockOwnerFinder struct {
	findByIDFn func(ctx context.Context, id string) (*models.User, error)
}

func (m *mockOwnerFinder) FindByID(ctx context.Context, id string) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}

func TestDogServiceCreateAppliesDefaults(t *testing.T) {
	var created *models.Dog
	repo := &mockDogRepo{
		createFn: func(ctx context.Context, dog *models.Dog) error {
			dog.ID = "d1"
			created = dog
			return nil
		},
		findByIDFn: func(ctx context.Context, id string) (*models.Dog, error) {
			return created, nil
		},
	}
	owners := &mockOwnerFinder{
		findByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Active: true}, nil
		},
	}
	svc := NewDogService(repo, owners, nil, 0, nil, nil, nil)

	dog, err := svc.Create(context.Background(), CreateDogRequest{
		OwnerID: "u1",
		Name:    "Rex",
		Size:    "medium",
	})
	require.NoError(t, err)
	assert.True(t, dog.FriendlyWithOtherDogs)
	assert.True(t, dog.FriendlyWithChildren)
	assert.Equal(t, models.EnergyMedium, dog.EnergyLevel)
	assert.True(t, dog.Active)
}

func TestDogServiceCreateMissingOwner(t *testing.T) {
	owners := &mockOwnerFinder{
		findByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewDogService(&mockDogRepo{}, owners, nil, 0, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateDogRequest{OwnerID: "missing", Name: "Rex", Size: "small"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestDogServiceCreateRejectsInvalidSize(t *testing.T) {
	svc := NewDogService(&mockDogRepo{}, &mockOwnerFinder{}, nil, 0, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateDogRequest{OwnerID: "u1", Name: "Rex", Size: "gigantic"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestDogServiceFriendlyPresetSetsBothFlags(t *testing.T) {
	repo := &mockDogRepo{
		listFn: func(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
			require.NotNil(t, filter.FriendlyWithOtherDogs)
			require.NotNil(t, filter.FriendlyWithChildren)
			assert.True(t, *filter.FriendlyWithOtherDogs)
			assert.True(t, *filter.FriendlyWithChildren)
			return []models.Dog{}, nil
		},
	}
	svc := NewDogService(repo, &mockOwnerFinder{}, nil, 0, nil, nil, nil)

	_, err := svc.Friendly(context.Background(), models.DogFilter{})
	require.NoError(t, err)
}

func TestDogServiceSeniorPresetUsesAgeThreshold(t *testing.T) {
	repo := &mockDogRepo{
		listFn: func(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
			require.NotNil(t, filter.MinAge)
			assert.Equal(t, models.SeniorDogAge, *filter.MinAge)
			return []models.Dog{}, nil
		},
	}
	svc := NewDogService(repo, &mockOwnerFinder{}, nil, 0, nil, nil, nil)

	_, err := svc.Senior(context.Background(), models.DogFilter{})
	require.NoError(t, err)
}

func TestDogServiceBySizeRejectsUnknownSize(t *testing.T) {
	svc := NewDogService(&mockDogRepo{}, &mockOwnerFinder{}, nil, 0, nil, nil, nil)

	_, err := svc.BySize(context.Background(), "huge", models.DogFilter{})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestDogServiceBreedStatsCached(t *testing.T) {
	calls := 0
	repo := &mockDogRepo{
		breedStatsFn: func(ctx context.Context) ([]models.BreedStat, error) {
			calls++
			return []models.BreedStat{{Breed: "labrador", Count: 3}}, nil
		},
	}
	cache := newFakeCache()
	svc := NewDogService(repo, &mockOwnerFinder{}, cache, time.Minute, nil, nil, nil)

	first, err := svc.BreedStats(context.Background())
	require.NoError(t, err)
	second, err := svc.BreedStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestDogServiceDeleteInvalidatesStats(t *testing.T) {
	repo := &mockDogRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Dog, error) {
			return &models.Dog{ID: id, OwnerID: "u1", Active: true}, nil
		},
		softDeleteFn: func(ctx context.Context, id string) error { return nil },
	}
	cache := newFakeCache()
	svc := NewDogService(repo, &mockOwnerFinder{}, cache, time.Minute, nil, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "d1"))
	assert.Contains(t, cache.deleted, "stats:dogs:*")
	assert.Contains(t, cache.deleted, "stats:user:u1")
}

func TestDogServiceOwnerOfMissingDog(t *testing.T) {
	repo := &mockDogRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Dog, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewDogService(repo, &mockOwnerFinder{}, nil, 0, nil, nil, nil)

	_, err := svc.Owner(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}
