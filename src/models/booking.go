package models

import (
	"time"

	"travel/src/types"
)

type Booking struct {
	ID              string              `gorm:"primaryKey" json:"id"`
	UserID          string              `gorm:"index" json:"userId"`
	PackageID       string              `gorm:"index" json:"packageId"`
	GuestCount      int                 `json:"guestCount"`
	DepartureDate   time.Time           `json:"departureDate"`
	TotalPrice      Decimal             `gorm:"type:numeric(10,2)" json:"totalPrice"`
	Status          types.BookingStatus `gorm:"type:text;default:'pending'" json:"status"`
	SpecialRequests *string             `json:"specialRequests"`
	PaymentMethod   *string             `json:"paymentMethod"`
	CreatedAt       time.Time           `json:"createdAt"`
}

type BookingDetails struct {
	Booking
	Package            *Package             `json:"package,omitempty"`
	User               *User                `json:"user,omitempty"`
	TimelineStatus     types.TimelineStatus `json:"timelineStatus"`
	DaysUntilDeparture int                  `json:"daysUntilDeparture"`
}
