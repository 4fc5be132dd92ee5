package storage

import (
	"context"
	"fmt"
	"sync"
	"time"


	"travel/src/catalog"
	"travel/src/models"
	"travel/src/types"
)

// collection keeps records keyed by id and remembers insertion order.
type collection[T any] struct {
	order []string
	items map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: map[string]T{}}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	for _, id := range c.order {
		if v := c.items[id]; match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

type MemStorage struct {
	mu           sync.RWMutex
	users        *collection[models.User]
	destinations *collection[models.Destination]
	packages     *collection[models.Package]
	bookings     *collection[models.Booking]
	reviews      *collection[models.Review]

	now   func() time.Time
	newID func() string
}

type Option func(*memOptions)

type memOptions struct {
	seed  bool
	now   func() time.Time
	newID func() string
}

// WithoutSeed starts the store with empty collections.
func WithoutSeed() Option {
	return func(o *memOptions) { o.seed = false }
}

func WithClock(now func() time.Time) Option {
	return func(o *memOptions) { o.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(o *memOptions) { o.newID = newID }
}

// NewMemStorage builds an in-memory store seeded with the launch catalog.
func NewMemStorage(opts ...Option) *MemStorage {
	o := memOptions{seed: true, now: time.Now, newID: newID}
	for _, opt := range opts {
		opt(&o)
	}
	s := &MemStorage{
		users:        newCollection[models.User](),
		destinations: newCollection[models.Destination](),
		packages:     newCollection[models.Package](),
		bookings:     newCollection[models.Booking](),
		reviews:      newCollection[models.Review](),
		now:          o.now,
		newID:        o.newID,
	}
	if o.seed {
		base := o.now()
		for _, d := range SeedDestinations(base) {
			s.destinations.put(d.ID, d)
		}
		for _, p := range SeedPackages(base) {
			s.packages.put(p.ID, p)
		}
	}
	return s
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

func (s *MemStorage) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(id)
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (s *MemStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.find(func(u models.User) bool { return u.Email == email })
	if !ok {
		return nil, notFound("user with email", email)
	}
	return &u, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.find(func(u models.User) bool { return u.Username == username })
	if !ok {
		return nil, notFound("user with username", username)
	}
	return &u, nil
}

func (s *MemStorage) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users.find(func(u models.User) bool { return u.Username == user.Username }); taken {
		return nil, ErrDuplicateUsername
	}
	if _, taken := s.users.find(func(u models.User) bool { return u.Email == user.Email }); taken {
		return nil, ErrDuplicateEmail
	}
	user.ID = s.newID()
	user.CreatedAt = s.now()
	s.users.put(user.ID, user)
	return &user, nil
}

func (s *MemStorage) GetDestinations(_ context.Context, filter catalog.DestinationFilter) ([]models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.FilterDestinations(s.destinations.all(), filter), nil
}

func (s *MemStorage) GetFeaturedDestinations(ctx context.Context) ([]models.Destination, error) {
	return s.GetDestinations(ctx, catalog.DestinationFilter{Featured: true})
}

func (s *MemStorage) GetDestination(_ context.Context, id string) (*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.destinations.get(id)
	if !ok {
		return nil, notFound("destination", id)
	}
	return &d, nil
}

func (s *MemStorage) CreateDestination(_ context.Context, destination models.Destination) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	destination.ID = s.newID()
	destination.CreatedAt = s.now()
	s.destinations.put(destination.ID, destination)
	return &destination, nil
}

// joinLocked resolves destinations; callers hold at least the read lock.
func (s *MemStorage) joinLocked(packages []models.Package) []models.PackageWithDestination {
	return catalog.JoinDestinations(packages, s.destinations.get)
}

func (s *MemStorage) GetPackages(_ context.Context, filter catalog.PackageFilter) ([]models.PackageWithDestination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinLocked(catalog.FilterPackages(s.packages.all(), filter)), nil
}

func (s *MemStorage) GetFeaturedPackages(ctx context.Context) ([]models.PackageWithDestination, error) {
	return s.GetPackages(ctx, catalog.PackageFilter{Featured: true})
}

func (s *MemStorage) GetPackage(_ context.Context, id string) (*models.PackageWithDestination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.packages.get(id)
	if !ok {
		return nil, notFound("package", id)
	}
	joined := s.joinLocked([]models.Package{p})[0]
	return &joined, nil
}

func (s *MemStorage) CreatePackage(_ context.Context, pkg models.Package) (*models.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pkg.ID = s.newID()
	pkg.CreatedAt = s.now()
	s.packages.put(pkg.ID, pkg)
	return &pkg, nil
}

// GetBookings lists every booking, or only the user's when userID is set.
func (s *MemStorage) GetBookings(_ context.Context, userID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings.all() {
		if userID == "" || b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemStorage) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings.get(id)
	if !ok {
		return nil, notFound("booking", id)
	}
	return &b, nil
}

func (s *MemStorage) CreateBooking(_ context.Context, booking models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.ID = s.newID()
	booking.CreatedAt = s.now()
	if booking.Status == "" {
		booking.Status = types.BOOKING_PENDING
	}
	s.bookings.put(booking.ID, booking)
	return &booking, nil
}

func (s *MemStorage) GetReviews(_ context.Context, packageID string) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Review{}
	for _, r := range s.reviews.all() {
		if r.PackageID == packageID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemStorage) CreateReview(_ context.Context, review models.Review) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	review.ID = s.newID()
	review.CreatedAt = s.now()
	s.reviews.put(review.ID, review)
	return &review, nil
}
