// Package model holds the records persisted by the repository layer
// and the inputs used to create or filter them.
//
// Prices are stored in minor currency units (cents). Ratings are decimals.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a row of the users table.
//
// Password is opaque to this layer; it is stored as received.
type User struct {
	ID       int64  `json:"id" mapstructure:"id"`
	Name     string `json:"name" mapstructure:"name"`
	Email    string `json:"email" mapstructure:"email"`
	Password string `json:"-" mapstructure:"password"`
}

// NewUser is the input for inserting a user.
type NewUser struct {
	Name     string
	Email    string
	Password string
}

// Property is a row of the properties table plus the derived average rating.
type Property struct {
	ID                int64  `json:"id" mapstructure:"id"`
	OwnerID           int64  `json:"owner_id" mapstructure:"owner_id"`
	Title             string `json:"title" mapstructure:"title"`
	Description       string `json:"description" mapstructure:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" mapstructure:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url" mapstructure:"cover_photo_url"`
	// CostPerNight is in minor currency units.
	CostPerNight      int64  `json:"cost_per_night" mapstructure:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces" mapstructure:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" mapstructure:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" mapstructure:"number_of_bedrooms"`
	Active            bool   `json:"active" mapstructure:"active"`
	Country           string `json:"country" mapstructure:"country"`
	Street            string `json:"street" mapstructure:"street"`
	City              string `json:"city" mapstructure:"city"`
	Province          string `json:"province" mapstructure:"province"`
	PostCode          string `json:"post_code" mapstructure:"post_code"`

	// AverageRating is computed from property_reviews; it is not a column.
	// Insert results do not carry it.
	AverageRating *decimal.Decimal `json:"average_rating,omitempty" mapstructure:"average_rating"`
}

// NewProperty is the input for inserting a property listing.
//
// The listing is always inserted as active.
type NewProperty struct {
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      int64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
}

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `json:"id" mapstructure:"id"`
	GuestID    int64     `json:"guest_id" mapstructure:"guest_id"`
	PropertyID int64     `json:"property_id" mapstructure:"property_id"`
	StartDate  time.Time `json:"start_date" mapstructure:"start_date"`
	EndDate    time.Time `json:"end_date" mapstructure:"end_date"`
}

// GuestReservation is a reservation joined with every column of the
// reserved property and its average rating. The property id is
// Reservation.PropertyID.
type GuestReservation struct {
	Reservation `mapstructure:",squash"`

	OwnerID           int64           `json:"owner_id" mapstructure:"owner_id"`
	Title             string          `json:"title" mapstructure:"title"`
	Description       string          `json:"description" mapstructure:"description"`
	ThumbnailPhotoURL string          `json:"thumbnail_photo_url" mapstructure:"thumbnail_photo_url"`
	CoverPhotoURL     string          `json:"cover_photo_url" mapstructure:"cover_photo_url"`
	CostPerNight      int64           `json:"cost_per_night" mapstructure:"cost_per_night"`
	ParkingSpaces     int             `json:"parking_spaces" mapstructure:"parking_spaces"`
	NumberOfBathrooms int             `json:"number_of_bathrooms" mapstructure:"number_of_bathrooms"`
	NumberOfBedrooms  int             `json:"number_of_bedrooms" mapstructure:"number_of_bedrooms"`
	Active            bool            `json:"active" mapstructure:"active"`
	Country           string          `json:"country" mapstructure:"country"`
	Street            string          `json:"street" mapstructure:"street"`
	City              string          `json:"city" mapstructure:"city"`
	Province          string          `json:"province" mapstructure:"province"`
	PostCode          string          `json:"post_code" mapstructure:"post_code"`
	AverageRating     decimal.Decimal `json:"average_rating" mapstructure:"average_rating"`
}
