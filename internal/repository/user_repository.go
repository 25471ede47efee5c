package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/database"
	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

const userColumns = "id, name, email, role, phone, location, profile_image_url, bio, rating, total_reviews, created_at, updated_at, is_active"

// UserRepository manages persistence for user records.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository around an injected handle.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns users matching the filter, newest first. Unless the caller
// constrains is_active explicitly, only live rows are returned.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}

	b := newQueryBuilder("SELECT " + userColumns + " FROM users WHERE 1=1")
	if filter.Role != nil {
		b.And("role", "=", *filter.Role)
	}
	if filter.Location != nil {
		b.AndPattern("location", *filter.Location)
	}
	if filter.Active != nil {
		b.And("is_active", "=", *filter.Active)
	} else {
		b.AndLiteral("is_active = TRUE")
	}
	if filter.MinRating != nil {
		b.And("rating", ">=", *filter.MinRating)
	}
	b.OrderBy("created_at DESC")
	if err := b.Paginate(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}

	query, args := b.Query()
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID fetches a live user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = "SELECT " + userColumns + " FROM users WHERE id = $1 AND is_active = TRUE"
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByIDAnyState fetches a user by ID regardless of liveness. Reserved for
// the privileged hard-delete path.
func (r *UserRepository) FindByIDAnyState(ctx context.Context, id string) (*models.User, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = "SELECT " + userColumns + " FROM users WHERE id = $1"
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByEmail fetches a live user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = "SELECT " + userColumns + " FROM users WHERE email = $1 AND is_active = TRUE"
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// ExistsByEmail checks whether a live user with the email exists, optionally
// excluding an ID (used when updating the email of an existing user).
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	if err := guardDB(r.db); err != nil {
		return false, err
	}
	query := "SELECT 1 FROM users WHERE email = $1 AND is_active = TRUE"
	args := []interface{}{email}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// Search matches live users whose name, email, location or bio contains the
// term. The match is case-insensitive; results order by rating, then newest.
func (r *UserRepository) Search(ctx context.Context, term string, filter models.UserFilter) ([]models.User, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}

	b := newQueryBuilder("SELECT " + userColumns + " FROM users WHERE is_active = TRUE")
	b.AndAnyPattern([]string{"name", "email", "location", "bio"}, term)
	if filter.Role != nil {
		b.And("role", "=", *filter.Role)
	}
	b.OrderBy("rating DESC, created_at DESC")
	if err := b.Paginate(filter.Limit, nil); err != nil {
		return nil, err
	}

	query, args := b.Query()
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// TopWalkers returns the highest rated live walkers that meet the rating
// floor, best rated first.
func (r *UserRepository) TopWalkers(ctx context.Context, minRating float64, limit *int) ([]models.User, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}

	b := newQueryBuilder("SELECT " + userColumns + " FROM users WHERE is_active = TRUE")
	b.And("role", "=", models.RoleWalker)
	b.And("rating", ">=", minRating)
	b.OrderBy("rating DESC, total_reviews DESC")
	if err := b.Paginate(limit, nil); err != nil {
		return nil, err
	}

	query, args := b.Query()
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("top walkers: %w", err)
	}
	return users, nil
}

// Create inserts a new user. Server-assigned defaults (zero rating, zero
// reviews, active) are the caller's responsibility via the model.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := guardDB(r.db); err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	const query = `INSERT INTO users (id, name, email, role, phone, location, profile_image_url, bio, rating, total_reviews, created_at, updated_at, is_active)
        VALUES (:id, :name, :email, :role, :phone, :location, :profile_image_url, :bio, :rating, :total_reviews, :created_at, :updated_at, :is_active)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if isUniqueViolation(err) {
			return appErrors.Clone(appErrors.ErrConflict, "user with this email already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the whitelisted payload. The key is
// bound last; updated_at is server-assigned. Last writer wins — there is no
// version check on concurrent updates.
func (r *UserRepository) Update(ctx context.Context, id string, update models.UserUpdate) error {
	if err := guardDB(r.db); err != nil {
		return err
	}

	b := newUpdateBuilder()
	if update.Name != nil {
		b.Set("name", *update.Name)
	}
	if update.Email != nil {
		b.Set("email", *update.Email)
	}
	if update.Role != nil {
		b.Set("role", *update.Role)
	}
	if update.Phone != nil {
		b.Set("phone", *update.Phone)
	}
	if update.Location != nil {
		b.Set("location", *update.Location)
	}
	if update.ProfileImageURL != nil {
		b.Set("profile_image_url", *update.ProfileImageURL)
	}
	if update.Bio != nil {
		b.Set("bio", *update.Bio)
	}
	if update.Rating != nil {
		b.Set("rating", *update.Rating)
	}
	if update.TotalReviews != nil {
		b.Set("total_reviews", *update.TotalReviews)
	}

	query, args, err := b.Build("users", id)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return appErrors.Clone(appErrors.ErrConflict, "user with this email already exists")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SoftDelete marks the user and their dogs inactive in a single transaction,
// so dependent records never stay visible under an invisible owner. Calling
// it again on an already inactive user succeeds and changes nothing visible.
func (r *UserRepository) SoftDelete(ctx context.Context, id string) error {
	if err := guardDB(r.db); err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err := database.RunTransaction(ctx, r.db, []database.Statement{
		{SQL: `UPDATE dogs SET is_active = FALSE, updated_at = $2 WHERE owner_id = $1`, Args: []interface{}{id, now}},
		{SQL: `UPDATE users SET is_active = FALSE, updated_at = $2 WHERE id = $1`, Args: []interface{}{id, now}},
	})
	return err
}

// HardDelete physically removes the user and their dogs. The dogs go first
// to satisfy the owner foreign key; both statements share one transaction.
func (r *UserRepository) HardDelete(ctx context.Context, id string) error {
	if err := guardDB(r.db); err != nil {
		return err
	}
	_, err := database.RunTransaction(ctx, r.db, []database.Statement{
		{SQL: `DELETE FROM dogs WHERE owner_id = $1`, Args: []interface{}{id}},
		{SQL: `DELETE FROM users WHERE id = $1`, Args: []interface{}{id}},
	})
	return err
}

// Dogs returns the live dogs owned by the user, newest first.
func (r *UserRepository) Dogs(ctx context.Context, ownerID string) ([]models.Dog, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = "SELECT " + dogColumns + " FROM dogs WHERE owner_id = $1 AND is_active = TRUE ORDER BY created_at DESC"
	dogs := []models.Dog{}
	if err := r.db.SelectContext(ctx, &dogs, query, ownerID); err != nil {
		return nil, fmt.Errorf("list user dogs: %w", err)
	}
	return dogs, nil
}

// Stats aggregates the user's live dogs by energy category.
func (r *UserRepository) Stats(ctx context.Context, ownerID string) (*models.UserStats, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = `SELECT COUNT(d.id) AS dog_count,
        COALESCE(AVG(CASE WHEN d.energy_level = 'high' THEN 1.0 ELSE 0.0 END), 0) AS high_energy_dogs_ratio,
        COALESCE(AVG(CASE WHEN d.energy_level = 'low' THEN 1.0 ELSE 0.0 END), 0) AS low_energy_dogs_ratio
        FROM dogs d
        WHERE d.owner_id = $1 AND d.is_active = TRUE`
	var stats models.UserStats
	if err := r.db.GetContext(ctx, &stats, query, ownerID); err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return &stats, nil
}
