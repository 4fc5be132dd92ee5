package common

import (
	"context"
	"errors"
	"log"
	"time"

	"travel/src/lib"
	"travel/src/models"
	"travel/src/storage"
)

const notifyTimeout = 30 * time.Second

// NewBookingEvent builds the event for a stored booking, enriching it with
// the package title and traveller email when those records resolve.
func NewBookingEvent(ctx context.Context, store storage.Storage, booking models.Booking) lib.BookingEvent {
	evt := lib.BookingEvent{
		Type:          lib.BOOKING_CREATED,
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		PackageID:     booking.PackageID,
		GuestCount:    booking.GuestCount,
		DepartureDate: booking.DepartureDate,
		TotalPrice:    float64(booking.TotalPrice),
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
	}
	if pkg, err := store.GetPackage(ctx, booking.PackageID); err == nil {
		evt.PackageTitle = pkg.Title
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("[Bookings] Error loading package %s: %s\n", booking.PackageID, err.Error())
	}
	if user, err := store.GetUser(ctx, booking.UserID); err == nil {
		evt.Email = user.Email
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("[Bookings] Error loading user %s: %s\n", booking.UserID, err.Error())
	}
	return evt
}

// NotifyBookingCreated runs off the request path; failures are only logged.
func NotifyBookingCreated(store storage.Storage, notifier lib.Notifier, booking models.Booking) {
	if notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	evt := NewBookingEvent(ctx, store, booking)
	if err := notifier.BookingCreated(ctx, evt); err != nil {
		log.Printf("[Bookings] Error notifying %s for booking %s: %s\n", notifier.Name(), booking.ID, err.Error())
	}
}
