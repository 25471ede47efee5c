package models

import "time"

// UserRole represents the role a user plays on the platform.
type UserRole string

const (
	RoleOwner  UserRole = "owner"
	RoleWalker UserRole = "walker"
)

// User represents a platform user stored in the users table. Soft-deleted
// users keep their row with is_active = false.
type User struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	Role            UserRole  `db:"role" json:"role"`
	Phone           *string   `db:"phone" json:"phone,omitempty"`
	Location        *string   `db:"location" json:"location,omitempty"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profile_image_url,omitempty"`
	Bio             *string   `db:"bio" json:"bio,omitempty"`
	Rating          float64   `db:"rating" json:"rating"`
	TotalReviews    int       `db:"total_reviews" json:"total_reviews"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
	Active          bool      `db:"is_active" json:"is_active"`
}

// UserFilter captures the optional constraints for listing users. A nil
// field means "no constraint"; false and zero values are meaningful.
type UserFilter struct {
	Role      *UserRole
	Location  *string
	Active    *bool
	MinRating *float64
	Limit     *int
	Offset    *int
}

// UserUpdate holds the whitelisted mutable columns for a user. Nil fields
// are left untouched.
type UserUpdate struct {
	Name            *string
	Email           *string
	Role            *UserRole
	Phone           *string
	Location        *string
	ProfileImageURL *string
	Bio             *string
	Rating          *float64
	TotalReviews    *int
}

// UserStats aggregates a user's dependent dogs by energy category.
type UserStats struct {
	DogCount            int     `db:"dog_count" json:"dog_count"`
	HighEnergyDogsRatio float64 `db:"high_energy_dogs_ratio" json:"high_energy_dogs_ratio"`
	LowEnergyDogsRatio  float64 `db:"low_energy_dogs_ratio" json:"low_energy_dogs_ratio"`
}
