// Package storage persists the catalog, users, bookings and reviews.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"travel/src/catalog"
	"travel/src/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// Storage is implemented by the in-memory store and the gorm-backed store.
// Collections are append-only: records are created with a fresh id and
// creation time and are never updated or deleted. Listings come back in
// insertion order.
type Storage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]models.Destination, error)
	GetFeaturedDestinations(ctx context.Context) ([]models.Destination, error)
	GetDestination(ctx context.Context, id string) (*models.Destination, error)
	CreateDestination(ctx context.Context, destination models.Destination) (*models.Destination, error)

	GetPackages(ctx context.Context, filter catalog.PackageFilter) ([]models.PackageWithDestination, error)
	GetFeaturedPackages(ctx context.Context) ([]models.PackageWithDestination, error)
	GetPackage(ctx context.Context, id string) (*models.PackageWithDestination, error)
	CreatePackage(ctx context.Context, pkg models.Package) (*models.Package, error)

	GetBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)

	GetReviews(ctx context.Context, packageID string) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)
}

// newID returns a UUIDv7. Ids created by one process sort in creation order,
// which breaks ties between rows sharing a created_at value.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
