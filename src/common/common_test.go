package common

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel/src/lib"
	"travel/src/models"
	"travel/src/storage"
)

type capturingNotifier struct {
	mu     sync.Mutex
	events []lib.BookingEvent
}

func (c *capturingNotifier) Name() string { return "capture" }

func (c *capturingNotifier) BookingCreated(_ context.Context, evt lib.BookingEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evt)
	return nil
}

func TestNotifyBookingCreated(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()
	user, err := store.CreateUser(ctx, models.User{Username: "wanderer", Email: "wanderer@example.com", Password: "x"})
	require.NoError(t, err)
	booking, err := store.CreateBooking(ctx, models.Booking{
		UserID: user.ID, PackageID: "pkg-3", GuestCount: 2,
		DepartureDate: time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC), TotalPrice: 10596,
	})
	require.NoError(t, err)

	n := &capturingNotifier{}
	NotifyBookingCreated(store, n, *booking)

	require.Len(t, n.events, 1)
	evt := n.events[0]
	assert.Equal(t, lib.BOOKING_CREATED, evt.Type)
	assert.Equal(t, booking.ID, evt.BookingID)
	assert.Equal(t, "Maldives Paradise Retreat", evt.PackageTitle)
	assert.Equal(t, "wanderer@example.com", evt.Email)
	assert.Equal(t, "pending", evt.Status)
}

func TestNewBookingEventUnknownReferences(t *testing.T) {
	store := storage.NewMemStorage()
	evt := NewBookingEvent(context.Background(), store, models.Booking{ID: "b1", UserID: "ghost", PackageID: "pkg-404"})
	assert.Empty(t, evt.PackageTitle)
	assert.Empty(t, evt.Email)
	assert.Equal(t, "b1", evt.BookingID)
}

func TestWarmFeaturedCache(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()
	rd, mock := redismock.NewClientMock()
	cache := lib.NewCatalogCache(rd, time.Minute)

	dests, _ := store.GetFeaturedDestinations(ctx)
	pkgs, _ := store.GetFeaturedPackages(ctx)
	destPayload, _ := json.Marshal(dests)
	pkgPayload, _ := json.Marshal(pkgs)
	mock.ExpectSet(lib.FEATURED_DESTINATIONS_KEY, destPayload, time.Minute).SetVal("OK")
	mock.ExpectSet(lib.FEATURED_PACKAGES_KEY, pkgPayload, time.Minute).SetVal("OK")

	require.NoError(t, WarmFeaturedCache(ctx, store, cache))
	assert.NoError(t, mock.ExpectationsWereMet())
}
