package lib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
)

const BOOKING_CREATED = "booking.created"

// BookingEvent is published after a booking has been stored.
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"bookingId"`
	UserID        string    `json:"userId"`
	PackageID     string    `json:"packageId"`
	PackageTitle  string    `json:"packageTitle,omitempty"`
	Email         string    `json:"email,omitempty"`
	GuestCount    int       `json:"guestCount"`
	DepartureDate time.Time `json:"departureDate"`
	TotalPrice    float64   `json:"totalPrice,string"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (e BookingEvent) Payload() ([]byte, error) {
	if e.Type == "" {
		e.Type = BOOKING_CREATED
	}
	return json.Marshal(e)
}

// Notifier delivers booking events to an outside channel.
type Notifier interface {
	Name() string
	BookingCreated(ctx context.Context, evt BookingEvent) error
}

type LogNotifier struct{}

func (LogNotifier) Name() string {
	return "log"
}

func (LogNotifier) BookingCreated(_ context.Context, evt BookingEvent) error {
	payload, err := evt.Payload()
	if err != nil {
		return err
	}
	log.Printf("[Notifier] %s: %s\n", BOOKING_CREATED, string(payload))
	return nil
}

// MultiNotifier fans an event out to every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Name() string {
	return "multi"
}

func (m MultiNotifier) BookingCreated(ctx context.Context, evt BookingEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.BookingCreated(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
		}
	}
	return errors.Join(errs...)
}
