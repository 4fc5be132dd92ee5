package models

import (
	"time"

	"gorm.io/datatypes"
)

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Package struct {
	ID            string                            `gorm:"primaryKey" json:"id"`
	Title         string                            `gorm:"not null" json:"title"`
	Description   string                            `json:"description"`
	DestinationID *string                           `gorm:"index" json:"destinationId"`
	Category      Category                          `gorm:"type:text;index" json:"category"`
	Duration      int                               `json:"duration"`
	MaxGuests     int                               `json:"maxGuests"`
	Price         float64                           `gorm:"type:numeric(10,2)" json:"price,string"`
	ImageURL      string                            `json:"imageUrl"`
	Rating        float64                           `gorm:"type:numeric(3,2)" json:"rating,string"`
	ReviewCount   int                               `json:"reviewCount"`
	Inclusions    datatypes.JSONSlice[string]       `json:"inclusions"`
	Itinerary     datatypes.JSONSlice[ItineraryDay] `json:"itinerary"`
	Featured      bool                              `gorm:"index" json:"featured"`
	CreatedAt     time.Time                         `json:"createdAt"`
}

// PackageWithDestination is the read shape of a package: the record joined
// with its destination when one resolves, plus derived display fields.
type PackageWithDestination struct {
	Package
	Destination   *Destination `json:"destination,omitempty"`
	DurationLabel string       `json:"durationLabel"`
	Difficulty    string       `json:"difficulty"`
}
