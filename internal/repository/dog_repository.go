package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
)

const dogColumns = "id, owner_id, name, breed, age, size, temperament, special_needs, medical_notes, profile_image_url, is_friendly_with_other_dogs, is_friendly_with_children, energy_level, created_at, updated_at, is_active"

// DogRepository manages persistence for dog records.
type DogRepository struct {
	db *sqlx.DB
}

// NewDogRepository constructs a DogRepository around an injected handle.
func NewDogRepository(db *sqlx.DB) *DogRepository {
	return &DogRepository{db: db}
}

// List returns live dogs matching the filter, newest first.
func (r *DogRepository) List(ctx context.Context, filter models.DogFilter) ([]models.Dog, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}

	b := newQueryBuilder("SELECT " + dogColumns + " FROM dogs WHERE is_active = TRUE")
	if filter.OwnerID != nil {
		b.And("owner_id", "=", *filter.OwnerID)
	}
	if filter.Size != nil {
		b.And("size", "=", *filter.Size)
	}
	if filter.Breed != nil {
		b.AndPattern("breed", *filter.Breed)
	}
	if filter.EnergyLevel != nil {
		b.And("energy_level", "=", *filter.EnergyLevel)
	}
	if filter.FriendlyWithOtherDogs != nil {
		b.And("is_friendly_with_other_dogs", "=", *filter.FriendlyWithOtherDogs)
	}
	if filter.FriendlyWithChildren != nil {
		b.And("is_friendly_with_children", "=", *filter.FriendlyWithChildren)
	}
	if filter.MinAge != nil {
		b.And("age", ">=", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		b.And("age", "<=", *filter.MaxAge)
	}
	b.OrderBy("created_at DESC")
	if err := b.Paginate(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}

	query, args := b.Query()
	dogs := []models.Dog{}
	if err := r.db.SelectContext(ctx, &dogs, query, args...); err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	return dogs, nil
}

// FindByID fetches a live dog by ID.
func (r *DogRepository) FindByID(ctx context.Context, id string) (*models.Dog, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = "SELECT " + dogColumns + " FROM dogs WHERE id = $1 AND is_active = TRUE"
	var dog models.Dog
	if err := r.db.GetContext(ctx, &dog, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find dog by id: %w", err)
	}
	return &dog, nil
}

// FindByIDAnyState fetches a dog by ID regardless of liveness. Reserved for
// the privileged hard-delete path.
func (r *DogRepository) FindByIDAnyState(ctx context.Context, id string) (*models.Dog, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = "SELECT " + dogColumns + " FROM dogs WHERE id = $1"
	var dog models.Dog
	if err := r.db.GetContext(ctx, &dog, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find dog by id: %w", err)
	}
	return &dog, nil
}

// Search matches live dogs whose name, breed or temperament contains the
// term, case-insensitively, newest first.
func (r *DogRepository) Search(ctx context.Context, term string, filter models.DogFilter) ([]models.Dog, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}

	b := newQueryBuilder("SELECT " + dogColumns + " FROM dogs WHERE is_active = TRUE")
	b.AndAnyPattern([]string{"name", "breed", "temperament"}, term)
	if filter.Size != nil {
		b.And("size", "=", *filter.Size)
	}
	if filter.EnergyLevel != nil {
		b.And("energy_level", "=", *filter.EnergyLevel)
	}
	b.OrderBy("created_at DESC")
	if err := b.Paginate(filter.Limit, nil); err != nil {
		return nil, err
	}

	query, args := b.Query()
	dogs := []models.Dog{}
	if err := r.db.SelectContext(ctx, &dogs, query, args...); err != nil {
		return nil, fmt.Errorf("search dogs: %w", err)
	}
	return dogs, nil
}

// Create inserts a new dog record.
func (r *DogRepository) Create(ctx context.Context, dog *models.Dog) error {
	if err := guardDB(r.db); err != nil {
		return err
	}
	if dog.ID == "" {
		dog.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if dog.CreatedAt.IsZero() {
		dog.CreatedAt = now
	}
	dog.UpdatedAt = now

	const query = `INSERT INTO dogs (id, owner_id, name, breed, age, size, temperament, special_needs, medical_notes, profile_image_url, is_friendly_with_other_dogs, is_friendly_with_children, energy_level, created_at, updated_at, is_active)
        VALUES (:id, :owner_id, :name, :breed, :age, :size, :temperament, :special_needs, :medical_notes, :profile_image_url, :is_friendly_with_other_dogs, :is_friendly_with_children, :energy_level, :created_at, :updated_at, :is_active)`
	if _, err := r.db.NamedExecContext(ctx, query, dog); err != nil {
		return fmt.Errorf("create dog: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the whitelisted payload.
func (r *DogRepository) Update(ctx context.Context, id string, update models.DogUpdate) error {
	if err := guardDB(r.db); err != nil {
		return err
	}

	b := newUpdateBuilder()
	if update.Name != nil {
		b.Set("name", *update.Name)
	}
	if update.Breed != nil {
		b.Set("breed", *update.Breed)
	}
	if update.Age != nil {
		b.Set("age", *update.Age)
	}
	if update.Size != nil {
		b.Set("size", *update.Size)
	}
	if update.Temperament != nil {
		b.Set("temperament", *update.Temperament)
	}
	if update.SpecialNeeds != nil {
		b.Set("special_needs", *update.SpecialNeeds)
	}
	if update.MedicalNotes != nil {
		b.Set("medical_notes", *update.MedicalNotes)
	}
	if update.ProfileImageURL != nil {
		b.Set("profile_image_url", *update.ProfileImageURL)
	}
	if update.FriendlyWithOtherDogs != nil {
		b.Set("is_friendly_with_other_dogs", *update.FriendlyWithOtherDogs)
	}
	if update.FriendlyWithChildren != nil {
		b.Set("is_friendly_with_children", *update.FriendlyWithChildren)
	}
	if update.EnergyLevel != nil {
		b.Set("energy_level", *update.EnergyLevel)
	}

	query, args, err := b.Build("dogs", id)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update dog: %w", err)
	}
	return nil
}

// SoftDelete marks the dog inactive. Idempotent.
func (r *DogRepository) SoftDelete(ctx context.Context, id string) error {
	if err := guardDB(r.db); err != nil {
		return err
	}
	const query = `UPDATE dogs SET is_active = FALSE, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("soft delete dog: %w", err)
	}
	return nil
}

// HardDelete physically removes the dog row. Irreversible.
func (r *DogRepository) HardDelete(ctx context.Context, id string) error {
	if err := guardDB(r.db); err != nil {
		return err
	}
	const query = `DELETE FROM dogs WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("hard delete dog: %w", err)
	}
	return nil
}

// FindOwner returns the live owner of the dog.
func (r *DogRepository) FindOwner(ctx context.Context, dogID string) (*models.User, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = `SELECT u.id, u.name, u.email, u.role, u.phone, u.location, u.profile_image_url, u.bio, u.rating, u.total_reviews, u.created_at, u.updated_at, u.is_active
        FROM users u
        JOIN dogs d ON d.owner_id = u.id
        WHERE d.id = $1 AND u.is_active = TRUE`
	var owner models.User
	if err := r.db.GetContext(ctx, &owner, query, dogID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find dog owner: %w", err)
	}
	return &owner, nil
}

// BreedStats aggregates live dogs per breed, joined with owner ratings.
func (r *DogRepository) BreedStats(ctx context.Context) ([]models.BreedStat, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = `SELECT d.breed, COUNT(*) AS count,
        COALESCE(AVG(d.age), 0) AS avg_age,
        COALESCE(AVG(u.rating), 0) AS avg_owner_rating
        FROM dogs d
        JOIN users u ON u.id = d.owner_id
        WHERE d.is_active = TRUE AND d.breed IS NOT NULL
        GROUP BY d.breed
        ORDER BY count DESC`
	stats := []models.BreedStat{}
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("breed stats: %w", err)
	}
	return stats, nil
}

// SizeStats aggregates live dogs per size category.
func (r *DogRepository) SizeStats(ctx context.Context) ([]models.SizeStat, error) {
	if err := guardDB(r.db); err != nil {
		return nil, err
	}
	const query = `SELECT size, COUNT(*) AS count
        FROM dogs
        WHERE is_active = TRUE
        GROUP BY size
        ORDER BY count DESC`
	stats := []models.SizeStat{}
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("size stats: %w", err)
	}
	return stats, nil
}
