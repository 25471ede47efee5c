package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

type dogRepository interface {
	List(ctx context.Context, filter models.DogFilter) ([]models.Dog, error)
	FindByID(ctx context.Context, id string) (*models.Dog, error)
	FindByIDAnyState(ctx context.Context, id string) (*models.Dog, error)
	Search(ctx context.Context, term string, filter models.DogFilter) ([]models.Dog, error)
	Create(ctx context.Context, dog *models.Dog) error
	Update(ctx context.Context, id string, update models.DogUpdate) error
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	FindOwner(ctx context.Context, dogID string) (*models.User, error)
	BreedStats(ctx context.Context) ([]models.BreedStat, error)
	SizeStats(ctx context.Context) ([]models.SizeStat, error)
}

type ownerFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// CreateDogRequest holds the payload for registering a dog.
type CreateDogRequest struct {
	OwnerID               string  `json:"owner_id" validate:"required"`
	Name                  string  `json:"name" validate:"required,max=100"`
	Breed                 *string `json:"breed" validate:"omitempty,max=100"`
	Age                   *int    `json:"age" validate:"omitempty,gte=0,lte=30"`
	Size                  string  `json:"size" validate:"required,oneof=small medium large extra_large"`
	Temperament           *string `json:"temperament" validate:"omitempty,max=500"`
	SpecialNeeds          *string `json:"special_needs" validate:"omitempty,max=1000"`
	MedicalNotes          *string `json:"medical_notes" validate:"omitempty,max=1000"`
	ProfileImageURL       *string `json:"profile_image_url" validate:"omitempty,url,max=500"`
	FriendlyWithOtherDogs *bool   `json:"is_friendly_with_other_dogs"`
	FriendlyWithChildren  *bool   `json:"is_friendly_with_children"`
	EnergyLevel           *string `json:"energy_level" validate:"omitempty,oneof=low medium high"`
}

// UpdateDogRequest holds the partial payload for updating a dog.
type UpdateDogRequest struct {
	Name                  *string `json:"name" validate:"omitempty,max=100"`
	Breed                 *string `json:"breed" validate:"omitempty,max=100"`
	Age                   *int    `json:"age" validate:"omitempty,gte=0,lte=30"`
	Size                  *string `json:"size" validate:"omitempty,oneof=small medium large extra_large"`
	Temperament           *string `json:"temperament" validate:"omitempty,max=500"`
	SpecialNeeds          *string `json:"special_needs" validate:"omitempty,max=1000"`
	MedicalNotes          *string `json:"medical_notes" validate:"omitempty,max=1000"`
	ProfileImageURL       *string `json:"profile_image_url" validate:"omitempty,url,max=500"`
	FriendlyWithOtherDogs *bool   `json:"is_friendly_with_other_dogs"`
	FriendlyWithChildren  *bool   `json:"is_friendly_with_children"`
	EnergyLevel           *string `json:"energy_level" validate:"omitempty,oneof=low medium high"`
}

// DogService handles dog use-cases.
type DogService struct {
	repo      dogRepository
	owners    ownerFinder
	cache     statsCache
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDogService constructs the dog service. cache may be nil when stats
// caching is disabled.
func NewDogService(repo dogRepository, owners ownerFinder, cache statsCache, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *DogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DogService{repo: repo, owners: owners, cache: cache, cacheTTL: cacheTTL, metrics: metrics, validator: validate, logger: logger}
}

// List returns dogs matching the filter.
func (s *DogService) List(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
	dogs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "failed to list dogs")
	}
	return dogs, nil
}

// Get returns a live dog by ID.
func (s *DogService) Get(ctx context.Context, id string) (*models.Dog, error) {
	dog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "dog not found")
		}
		return nil, storeError(err, "failed to load dog")
	}
	return dog, nil
}

// Search matches live dogs against the free-text term.
func (s *DogService) Search(ctx context.Context, term string, filter models.DogFilter) ([]models.Dog, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search query is required")
	}
	dogs, err := s.repo.Search(ctx, term, filter)
	if err != nil {
		return nil, storeError(err, "failed to search dogs")
	}
	return dogs, nil
}

// Create registers a dog under an existing live owner and returns the
// canonical stored row. Friendliness defaults to true and energy to medium
// when the payload leaves them out.
func (s *DogService) Create(ctx context.Context, req CreateDogRequest) (*models.Dog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid dog payload")
	}
	if _, err := s.owners.FindByID(ctx, req.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "owner not found")
		}
		return nil, storeError(err, "failed to load owner")
	}

	dog := &models.Dog{
		OwnerID:               req.OwnerID,
		Name:                  req.Name,
		Breed:                 req.Breed,
		Age:                   req.Age,
		Size:                  models.DogSize(req.Size),
		Temperament:           req.Temperament,
		SpecialNeeds:          req.SpecialNeeds,
		MedicalNotes:          req.MedicalNotes,
		ProfileImageURL:       req.ProfileImageURL,
		FriendlyWithOtherDogs: true,
		FriendlyWithChildren:  true,
		EnergyLevel:           models.EnergyMedium,
		Active:                true,
	}
	if req.FriendlyWithOtherDogs != nil {
		dog.FriendlyWithOtherDogs = *req.FriendlyWithOtherDogs
	}
	if req.FriendlyWithChildren != nil {
		dog.FriendlyWithChildren = *req.FriendlyWithChildren
	}
	if req.EnergyLevel != nil {
		dog.EnergyLevel = models.EnergyLevel(*req.EnergyLevel)
	}

	if err := s.repo.Create(ctx, dog); err != nil {
		return nil, storeError(err, "failed to create dog")
	}
	s.invalidateStats(ctx, dog.OwnerID)
	return s.Get(ctx, dog.ID)
}

// Update applies a partial payload to an existing dog and returns the
// refreshed row.
func (s *DogService) Update(ctx context.Context, id string, req UpdateDogRequest) (*models.Dog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid dog payload")
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	update := models.DogUpdate{
		Name:                  req.Name,
		Breed:                 req.Breed,
		Age:                   req.Age,
		Temperament:           req.Temperament,
		SpecialNeeds:          req.SpecialNeeds,
		MedicalNotes:          req.MedicalNotes,
		ProfileImageURL:       req.ProfileImageURL,
		FriendlyWithOtherDogs: req.FriendlyWithOtherDogs,
		FriendlyWithChildren:  req.FriendlyWithChildren,
	}
	if req.Size != nil {
		size := models.DogSize(*req.Size)
		update.Size = &size
	}
	if req.EnergyLevel != nil {
		energy := models.EnergyLevel(*req.EnergyLevel)
		update.EnergyLevel = &energy
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, storeError(err, "failed to update dog")
	}
	s.invalidateStats(ctx, current.OwnerID)
	return s.Get(ctx, id)
}

// Delete soft-deletes the dog. Safe to repeat.
func (s *DogService) Delete(ctx context.Context, id string) error {
	dog, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return storeError(err, "failed to delete dog")
	}
	s.invalidateStats(ctx, dog.OwnerID)
	return nil
}

// HardDelete physically removes the dog. Privileged; finds the row even when
// it is already soft-deleted.
func (s *DogService) HardDelete(ctx context.Context, id string) error {
	dog, err := s.repo.FindByIDAnyState(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "dog not found")
		}
		return storeError(err, "failed to load dog")
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return storeError(err, "failed to hard delete dog")
	}
	s.invalidateStats(ctx, dog.OwnerID)
	return nil
}

// Owner returns the live owner of the dog.
func (s *DogService) Owner(ctx context.Context, dogID string) (*models.User, error) {
	if _, err := s.Get(ctx, dogID); err != nil {
		return nil, err
	}
	owner, err := s.repo.FindOwner(ctx, dogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "owner not found")
		}
		return nil, storeError(err, "failed to load dog owner")
	}
	return owner, nil
}

// Friendly lists dogs friendly with both other dogs and children.
func (s *DogService) Friendly(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
	friendly := true
	filter.FriendlyWithOtherDogs = &friendly
	filter.FriendlyWithChildren = &friendly
	return s.List(ctx, filter)
}

// HighEnergy lists high-energy dogs.
func (s *DogService) HighEnergy(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
	energy := models.EnergyHigh
	filter.EnergyLevel = &energy
	return s.List(ctx, filter)
}

// Senior lists dogs at or beyond the senior age threshold.
func (s *DogService) Senior(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
	minAge := models.SeniorDogAge
	filter.MinAge = &minAge
	return s.List(ctx, filter)
}

// BySize lists dogs of one size category.
func (s *DogService) BySize(ctx context.Context, size string, filter models.DogFilter) ([]models.Dog, error) {
	if err := s.validator.Var(size, "oneof=small medium large extra_large"); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid size, expected one of: small, medium, large, extra_large")
	}
	dogSize := models.DogSize(size)
	filter.Size = &dogSize
	return s.List(ctx, filter)
}

// ByEnergyLevel lists dogs of one energy level.
func (s *DogService) ByEnergyLevel(ctx context.Context, level string, filter models.DogFilter) ([]models.Dog, error) {
	if err := s.validator.Var(level, "oneof=low medium high"); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid energy level, expected one of: low, medium, high")
	}
	energy := models.EnergyLevel(level)
	filter.EnergyLevel = &energy
	return s.List(ctx, filter)
}

// ByBreed lists dogs whose breed contains the fragment.
func (s *DogService) ByBreed(ctx context.Context, breed string, filter models.DogFilter) ([]models.Dog, error) {
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "breed is required")
	}
	filter.Breed = &breed
	return s.List(ctx, filter)
}

// ByOwner lists the live dogs of one owner.
func (s *DogService) ByOwner(ctx context.Context, ownerID string, filter models.DogFilter) ([]models.Dog, error) {
	filter.OwnerID = &ownerID
	return s.List(ctx, filter)
}

// BreedStats returns per-breed aggregates, cached when caching is enabled.
func (s *DogService) BreedStats(ctx context.Context) ([]models.BreedStat, error) {
	var stats []models.BreedStat
	err := s.cachedStats(ctx, "stats:dogs:breeds", &stats, func() (interface{}, error) {
		fresh, err := s.repo.BreedStats(ctx)
		if err != nil {
			return nil, err
		}
		stats = fresh
		return fresh, nil
	})
	if err != nil {
		return nil, storeError(err, "failed to load breed stats")
	}
	return stats, nil
}

// SizeStats returns per-size counts, cached when caching is enabled.
func (s *DogService) SizeStats(ctx context.Context) ([]models.SizeStat, error) {
	var stats []models.SizeStat
	err := s.cachedStats(ctx, "stats:dogs:sizes", &stats, func() (interface{}, error) {
		fresh, err := s.repo.SizeStats(ctx)
		if err != nil {
			return nil, err
		}
		stats = fresh
		return fresh, nil
	})
	if err != nil {
		return nil, storeError(err, "failed to load size stats")
	}
	return stats, nil
}

// cachedStats fills dest from cache when possible, otherwise loads fresh
// data and writes it back.
func (s *DogService) cachedStats(ctx context.Context, key string, dest interface{}, load func() (interface{}, error)) error {
	if s.cache != nil {
		start := time.Now()
		err := s.cache.Get(ctx, key, dest)
		s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		if err == nil {
			return nil
		}
		if !appErrors.HasCode(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	fresh, err := load()
	if err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, fresh, s.cacheTTL); err != nil {
			s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

func (s *DogService) invalidateStats(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "stats:dogs:*"); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
	if err := s.cache.DeleteByPattern(ctx, userStatsKey(ownerID)); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.String("owner_id", ownerID), zap.Error(err))
	}
}
