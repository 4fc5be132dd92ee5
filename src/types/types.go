package types

import (
	"encoding/json"
	"strings"
	"time"

	"travel/src/config"
)

type Environment string

const (
	Local      Environment = "local"
	Test       Environment = "test"
	Production Environment = "production"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
)

// TimelineStatus is the display status of a booking relative to its departure date.
type TimelineStatus string

const (
	TIMELINE_CONFIRMED TimelineStatus = "confirmed"
	TIMELINE_UPCOMING  TimelineStatus = "upcoming"
	TIMELINE_COMPLETED TimelineStatus = "completed"
	TIMELINE_CANCELLED TimelineStatus = "cancelled"
)

type Difficulty string

const (
	DIFFICULTY_EASY        Difficulty = "Easy"
	DIFFICULTY_MODERATE    Difficulty = "Moderate"
	DIFFICULTY_CHALLENGING Difficulty = "Challenging"
)

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

type BookingsQueryFilters struct {
	UserID string `form:"userId"`
}

type SearchQueryParams struct {
	Destination string `form:"destination" json:"destination,omitempty"`
	CheckIn     string `form:"checkIn" json:"checkIn,omitempty"`
	CheckOut    string `form:"checkOut" json:"checkOut,omitempty"`
	Guests      string `form:"guests" json:"guests,omitempty"`
	Category    string `form:"category" json:"category,omitempty"`
}

type CreateBookingRequestBody struct {
	UserID          string      `json:"userId" binding:"required"`
	PackageID       string      `json:"packageId" binding:"required"`
	GuestCount      int         `json:"guestCount" binding:"required,min=1"`
	DepartureDate   string      `json:"departureDate" binding:"required,departuredate"`
	TotalPrice      json.Number `json:"totalPrice" binding:"required,decimal"`
	SpecialRequests *string     `json:"specialRequests,omitempty"`
	PaymentMethod   *string     `json:"paymentMethod,omitempty"`
}

type CreateReviewRequestBody struct {
	UserID  string  `json:"userId" binding:"required"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Title   *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=5000"`
}

type CreateUserRequestBody struct {
	Username  string  `json:"username" binding:"required,min=3,max=50"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8,max=72"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type QuoteQueryParams struct {
	Guests    int   `form:"guests" binding:"omitempty,min=1"`
	Insurance *bool `form:"insurance"`
	Tax       *bool `form:"tax"`
}

type CreateQuoteRequestBody struct {
	PackageID  string `json:"packageId" binding:"required"`
	GuestCount int    `json:"guestCount" binding:"required,min=1"`
	Insurance  *bool  `json:"insurance,omitempty"`
	Tax        *bool  `json:"tax,omitempty"`
}

// FieldError is one entry of the "errors" list returned with a 400 response.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

type APIResponseQuote struct {
	PackageID  string  `json:"packageId"`
	BasePrice  float64 `json:"basePrice"`
	GuestCount int     `json:"guestCount"`
	Subtotal   float64 `json:"subtotal"`
	Insurance  float64 `json:"insurance"`
	Taxes      float64 `json:"taxes"`
	Total      float64 `json:"total"`
}

type APIResponseSearch struct {
	Packages     any               `json:"packages"`
	TotalResults int               `json:"totalResults"`
	SearchParams SearchQueryParams `json:"searchParams"`
}

type APIResponseShare struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Slug string `json:"slug"`
}

type APIResponseReviewSummary struct {
	PackageID     string  `json:"packageId"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// ParseDepartureDate accepts a full RFC 3339 timestamp or a calendar date.
func ParseDepartureDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(config.TIME_PARSE_FORMAT, value); err == nil {
		return t, nil
	}
	return time.Parse(config.DATE_FORMAT, value)
}

// BoolOr dereferences an optional flag, falling back when it was not supplied.
func BoolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
