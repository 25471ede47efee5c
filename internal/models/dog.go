package models

import "time"

// DogSize enumerates the recognized size categories.
type DogSize string

const (
	SizeSmall      DogSize = "small"
	SizeMedium     DogSize = "medium"
	SizeLarge      DogSize = "large"
	SizeExtraLarge DogSize = "extra_large"
)

// EnergyLevel enumerates the recognized energy levels.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// SeniorDogAge is the threshold (in years) above which a dog counts as senior.
const SeniorDogAge = 8

// Dog represents a dog registered by an owner.
type Dog struct {
	ID                      string      `db:"id" json:"id"`
	OwnerID                 string      `db:"owner_id" json:"owner_id"`
	Name                    string      `db:"name" json:"name"`
	Breed                   *string     `db:"breed" json:"breed,omitempty"`
	Age                     *int        `db:"age" json:"age,omitempty"`
	Size                    DogSize     `db:"size" json:"size"`
	Temperament             *string     `db:"temperament" json:"temperament,omitempty"`
	SpecialNeeds            *string     `db:"special_needs" json:"special_needs,omitempty"`
	MedicalNotes            *string     `db:"medical_notes" json:"medical_notes,omitempty"`
	ProfileImageURL         *string     `db:"profile_image_url" json:"profile_image_url,omitempty"`
	FriendlyWithOtherDogs   bool        `db:"is_friendly_with_other_dogs" json:"is_friendly_with_other_dogs"`
	FriendlyWithChildren    bool        `db:"is_friendly_with_children" json:"is_friendly_with_children"`
	EnergyLevel             EnergyLevel `db:"energy_level" json:"energy_level"`
	CreatedAt               time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time   `db:"updated_at" json:"updated_at"`
	Active                  bool        `db:"is_active" json:"is_active"`
}

// DogFilter captures the optional constraints for listing dogs.
type DogFilter struct {
	OwnerID               *string
	Size                  *DogSize
	Breed                 *string
	EnergyLevel           *EnergyLevel
	FriendlyWithOtherDogs *bool
	FriendlyWithChildren  *bool
	MinAge                *int
	MaxAge                *int
	Limit                 *int
	Offset                *int
}

// DogUpdate holds the whitelisted mutable columns for a dog.
type DogUpdate struct {
	Name                  *string
	Breed                 *string
	Age                   *int
	Size                  *DogSize
	Temperament           *string
	SpecialNeeds          *string
	MedicalNotes          *string
	ProfileImageURL       *string
	FriendlyWithOtherDogs *bool
	FriendlyWithChildren  *bool
	EnergyLevel           *EnergyLevel
}

// BreedStat is the per-breed aggregate used by the breed statistics endpoint.
type BreedStat struct {
	Breed      string  `db:"breed" json:"breed"`
	Count      int     `db:"count" json:"count"`
	AvgAge     float64 `db:"avg_age" json:"avg_age"`
	AvgRating  float64 `db:"avg_owner_rating" json:"avg_owner_rating"`
}

// SizeStat is the per-size aggregate used by the size statistics endpoint.
type SizeStat struct {
	Size  DogSize `db:"size" json:"size"`
	Count int     `db:"count" json:"count"`
}
