package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"travel/src/catalog"
	"travel/src/models"
	"travel/src/models/scopes"
	"travel/src/types"
)

// DBStorage keeps the collections in a relational database through gorm.
// Filtering and destination joins reuse the catalog rules so both stores
// answer queries identically.
type DBStorage struct {
	db    *gorm.DB
	now   func() time.Time
	newID func() string
}

func NewDBStorage(db *gorm.DB) *DBStorage {
	return &DBStorage{db: db, now: time.Now, newID: newID}
}

func (s *DBStorage) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Destination{},
		&models.Package{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Seed inserts the launch catalog when the destinations table is empty.
func (s *DBStorage) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Destination{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count destinations: %w", err)
	}
	if count > 0 {
		return nil
	}
	base := s.now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dests := SeedDestinations(base)
		if err := tx.Create(&dests).Error; err != nil {
			return fmt.Errorf("seed destinations: %w", err)
		}
		pkgs := SeedPackages(base)
		if err := tx.Create(&pkgs).Error; err != nil {
			return fmt.Errorf("seed packages: %w", err)
		}
		log.Printf("[Storage] Seeded %d destinations and %d packages\n", len(dests), len(pkgs))
		return nil
	})
}

func first[T any](ctx context.Context, db *gorm.DB, kind, key string, scope func(*gorm.DB) *gorm.DB) (*T, error) {
	var record T
	err := db.WithContext(ctx).Scopes(scope).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(kind, key)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", kind, key, err)
	}
	return &record, nil
}

func list[T any](ctx context.Context, db *gorm.DB, kind string, filters ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	records := []T{}
	err := db.WithContext(ctx).Scopes(filters...).Scopes(scopes.InsertionOrder).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return records, nil
}

func (s *DBStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	return first[models.User](ctx, s.db, "user", id, scopes.WithID(id))
}

func (s *DBStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return first[models.User](ctx, s.db, "user with email", email, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	})
}

func (s *DBStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return first[models.User](ctx, s.db, "user with username", username, func(db *gorm.DB) *gorm.DB {
		return db.Where("username = ?", username)
	})
}

func (s *DBStorage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicateUsername
		}
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicateEmail
		}
		user.ID = s.newID()
		user.CreatedAt = s.now()
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) || errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (s *DBStorage) GetDestinations(ctx context.Context, filter catalog.DestinationFilter) ([]models.Destination, error) {
	var filters []func(*gorm.DB) *gorm.DB
	if filter.Featured {
		filters = append(filters, scopes.Featured)
	}
	dests, err := list[models.Destination](ctx, s.db, "destinations", filters...)
	if err != nil {
		return nil, err
	}
	return catalog.FilterDestinations(dests, filter), nil
}

func (s *DBStorage) GetFeaturedDestinations(ctx context.Context) ([]models.Destination, error) {
	return s.GetDestinations(ctx, catalog.DestinationFilter{Featured: true})
}

func (s *DBStorage) GetDestination(ctx context.Context, id string) (*models.Destination, error) {
	return first[models.Destination](ctx, s.db, "destination", id, scopes.WithID(id))
}

func (s *DBStorage) CreateDestination(ctx context.Context, destination models.Destination) (*models.Destination, error) {
	destination.ID = s.newID()
	destination.CreatedAt = s.now()
	if err := s.db.WithContext(ctx).Create(&destination).Error; err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}
	return &destination, nil
}

// join loads the destinations referenced by packages in one query.
func (s *DBStorage) join(ctx context.Context, packages []models.Package) ([]models.PackageWithDestination, error) {
	ids := []string{}
	for _, p := range packages {
		if p.DestinationID != nil {
			ids = append(ids, *p.DestinationID)
		}
	}
	byID := map[string]models.Destination{}
	if len(ids) > 0 {
		dests, err := list[models.Destination](ctx, s.db, "destinations", scopes.WithIDs(ids...))
		if err != nil {
			return nil, err
		}
		for _, d := range dests {
			byID[d.ID] = d
		}
	}
	return catalog.JoinDestinations(packages, func(id string) (models.Destination, bool) {
		d, ok := byID[id]
		return d, ok
	}), nil
}

func (s *DBStorage) GetPackages(ctx context.Context, filter catalog.PackageFilter) ([]models.PackageWithDestination, error) {
	var filters []func(*gorm.DB) *gorm.DB
	if filter.Featured {
		filters = append(filters, scopes.Featured)
	}
	pkgs, err := list[models.Package](ctx, s.db, "packages", filters...)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, catalog.FilterPackages(pkgs, filter))
}

func (s *DBStorage) GetFeaturedPackages(ctx context.Context) ([]models.PackageWithDestination, error) {
	return s.GetPackages(ctx, catalog.PackageFilter{Featured: true})
}

func (s *DBStorage) GetPackage(ctx context.Context, id string) (*models.PackageWithDestination, error) {
	pkg, err := first[models.Package](ctx, s.db, "package", id, scopes.WithID(id))
	if err != nil {
		return nil, err
	}
	joined, err := s.join(ctx, []models.Package{*pkg})
	if err != nil {
		return nil, err
	}
	return &joined[0], nil
}

func (s *DBStorage) CreatePackage(ctx context.Context, pkg models.Package) (*models.Package, error) {
	pkg.ID = s.newID()
	pkg.CreatedAt = s.now()
	if err := s.db.WithContext(ctx).Create(&pkg).Error; err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return &pkg, nil
}

func (s *DBStorage) GetBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return list[models.Booking](ctx, s.db, "bookings")
	}
	return list[models.Booking](ctx, s.db, "bookings", scopes.WithUser(userID))
}

func (s *DBStorage) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return first[models.Booking](ctx, s.db, "booking", id, scopes.WithID(id))
}

func (s *DBStorage) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	booking.ID = s.newID()
	booking.CreatedAt = s.now()
	if booking.Status == "" {
		booking.Status = types.BOOKING_PENDING
	}
	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

func (s *DBStorage) GetReviews(ctx context.Context, packageID string) ([]models.Review, error) {
	return list[models.Review](ctx, s.db, "reviews", scopes.WithPackage(packageID))
}

func (s *DBStorage) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	review.ID = s.newID()
	review.CreatedAt = s.now()
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}
