package models

import "time"

type Destination struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Country     string    `gorm:"not null" json:"country"`
	Region      string    `gorm:"not null" json:"region"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	PriceFrom   float64   `gorm:"type:numeric(10,2)" json:"priceFrom,string"`
	Rating      float64   `gorm:"type:numeric(3,2)" json:"rating,string"`
	ReviewCount int       `json:"reviewCount"`
	Featured    bool      `gorm:"index" json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DestinationDetails is a destination annotated with its best travel season.
type DestinationDetails struct {
	Destination
	Season string `json:"season"`
}
