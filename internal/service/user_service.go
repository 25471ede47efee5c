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

type userRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByIDAnyState(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	Search(ctx context.Context, term string, filter models.UserFilter) ([]models.User, error)
	TopWalkers(ctx context.Context, minRating float64, limit *int) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id string, update models.UserUpdate) error
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	Dogs(ctx context.Context, ownerID string) ([]models.Dog, error)
	Stats(ctx context.Context, ownerID string) (*models.UserStats, error)
}

type statsCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// topWalkerMinRating is the rating floor for the top walkers listing.
const topWalkerMinRating = 4.0

// CreateUserRequest holds the payload for registering a user.
type CreateUserRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email,max=150"`
	Role            string  `json:"role" validate:"required,oneof=owner walker"`
	Phone           *string `json:"phone" validate:"omitempty,max=20"`
	Location        *string `json:"location" validate:"omitempty,max=200"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,url,max=500"`
	Bio             *string `json:"bio" validate:"omitempty,max=1000"`
}

// UpdateUserRequest holds the partial payload for updating a user. Fields
// absent from the JSON body stay nil and are not touched; unknown fields are
// dropped by decoding and never reach the store.
type UpdateUserRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=100"`
	Email           *string  `json:"email" validate:"omitempty,email,max=150"`
	Role            *string  `json:"role" validate:"omitempty,oneof=owner walker"`
	Phone           *string  `json:"phone" validate:"omitempty,max=20"`
	Location        *string  `json:"location" validate:"omitempty,max=200"`
	ProfileImageURL *string  `json:"profile_image_url" validate:"omitempty,url,max=500"`
	Bio             *string  `json:"bio" validate:"omitempty,max=1000"`
	Rating          *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalReviews    *int     `json:"total_reviews" validate:"omitempty,gte=0"`
}

// UserStatsReport pairs the user with their dog aggregates.
type UserStatsReport struct {
	User  *models.User      `json:"user"`
	Stats *models.UserStats `json:"stats"`
}

// UserService handles user use-cases.
type UserService struct {
	repo      userRepository
	cache     statsCache
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs the user service. cache may be nil when stats
// caching is disabled.
func NewUserService(repo userRepository, cache statsCache, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, validator: validate, logger: logger}
}

// List returns users matching the filter.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "failed to list users")
	}
	return users, nil
}

// Get returns a live user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, storeError(err, "failed to load user")
	}
	return user, nil
}

// GetByEmail returns a live user by email address.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, storeError(err, "failed to load user")
	}
	return user, nil
}

// Search matches live users against the free-text term.
func (s *UserService) Search(ctx context.Context, term string, filter models.UserFilter) ([]models.User, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search query is required")
	}
	users, err := s.repo.Search(ctx, term, filter)
	if err != nil {
		return nil, storeError(err, "failed to search users")
	}
	return users, nil
}

// Walkers lists users in the walker role.
func (s *UserService) Walkers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	role := models.RoleWalker
	filter.Role = &role
	return s.List(ctx, filter)
}

// Owners lists users in the owner role.
func (s *UserService) Owners(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	role := models.RoleOwner
	filter.Role = &role
	return s.List(ctx, filter)
}

// TopWalkers lists the highest rated walkers, ten by default.
func (s *UserService) TopWalkers(ctx context.Context, limit *int) ([]models.User, error) {
	if limit == nil {
		def := 10
		limit = &def
	}
	users, err := s.repo.TopWalkers(ctx, topWalkerMinRating, limit)
	if err != nil {
		return nil, storeError(err, "failed to list top walkers")
	}
	return users, nil
}

// Create registers a new user with server-assigned defaults and returns the
// canonical stored row.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return nil, storeError(err, "failed to validate email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user with this email already exists")
	}
	user := &models.User{
		Name:            req.Name,
		Email:           req.Email,
		Role:            models.UserRole(req.Role),
		Phone:           req.Phone,
		Location:        req.Location,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		Rating:          0,
		TotalReviews:    0,
		Active:          true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storeError(err, "failed to create user")
	}
	return s.Get(ctx, user.ID)
}

// Update applies a partial payload to an existing user and returns the
// refreshed row. Last writer wins on concurrent updates.
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.repo.ExistsByEmail(ctx, *req.Email, id)
		if err != nil {
			return nil, storeError(err, "failed to validate email")
		}
		if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "user with this email already exists")
		}
	}
	update := models.UserUpdate{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		Rating:          req.Rating,
		TotalReviews:    req.TotalReviews,
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		update.Role = &role
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, storeError(err, "failed to update user")
	}
	// Breed aggregates join owner ratings, so a rating change stales them.
	if req.Rating != nil {
		s.invalidateStats(ctx, id)
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the user and their dogs. The record persists but is
// invisible to standard reads afterwards.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return storeError(err, "failed to delete user")
	}
	s.invalidateStats(ctx, id)
	return nil
}

// HardDelete physically removes the user. Privileged; finds the row even
// when it is already soft-deleted.
func (s *UserService) HardDelete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByIDAnyState(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return storeError(err, "failed to load user")
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return storeError(err, "failed to hard delete user")
	}
	s.invalidateStats(ctx, id)
	return nil
}

// Dogs returns the user's live dogs.
func (s *UserService) Dogs(ctx context.Context, id string) ([]models.Dog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	dogs, err := s.repo.Dogs(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to list user dogs")
	}
	return dogs, nil
}

// Stats returns the user together with their dog aggregates, served from
// cache when available.
func (s *UserService) Stats(ctx context.Context, id string) (*UserStatsReport, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := userStatsKey(id)
	if s.cache != nil {
		start := time.Now()
		var cached models.UserStats
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		if err == nil {
			return &UserStatsReport{User: user, Stats: &cached}, nil
		}
		if !appErrors.HasCode(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	stats, err := s.repo.Stats(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load user stats")
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stats, s.cacheTTL); err != nil {
			s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return &UserStatsReport{User: user, Stats: stats}, nil
}

func (s *UserService) invalidateStats(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, userStatsKey(userID)); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
	if err := s.cache.DeleteByPattern(ctx, "stats:dogs:*"); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

func userStatsKey(id string) string {
	return "stats:user:" + id
}

// storeError passes typed domain errors through untouched and wraps anything
// else as a store failure.
func storeError(err error, message string) error {
	var e *appErrors.Error
	if errors.As(err, &e) {
		return e
	}
	return appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, message)
}
