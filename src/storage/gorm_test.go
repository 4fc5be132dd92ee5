package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel/src/models"
)

func newSQLiteStorage(t *testing.T) Storage {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: opens a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	s := NewDBStorage(db)
	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Seed(ctx))
	return s
}

func TestDBStorage(t *testing.T) {
	testStorageContract(t, newSQLiteStorage)
}

func TestDBStorageSeedIsIdempotent(t *testing.T) {
	s := newSQLiteStorage(t).(*DBStorage)
	require.NoError(t, s.Seed(context.Background()))

	var count int64
	require.NoError(t, s.db.Table("packages").Count(&count).Error)
	assert.Equal(t, int64(6), count)
}

func TestDBStorageOrderWithSameTimestamp(t *testing.T) {
	s := newSQLiteStorage(t).(*DBStorage)
	frozen := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }
	ctx := context.Background()

	created := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		b, err := s.CreateBooking(ctx, models.Booking{
			UserID: "u1", PackageID: "pkg-1", GuestCount: 1, DepartureDate: frozen, TotalPrice: 1899,
		})
		require.NoError(t, err)
		created = append(created, b.ID)
	}

	bookings, err := s.GetBookings(ctx, "u1")
	require.NoError(t, err)
	got := make([]string, 0, len(bookings))
	for _, b := range bookings {
		got = append(got, b.ID)
	}
	assert.Equal(t, created, got)
}

func newMockStorage(t *testing.T) (*DBStorage, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewDBStorage(db), mock
}

func TestDBStorageGetDestinationQuery(t *testing.T) {
	s, mock := newMockStorage(t)

	rows := sqlmock.NewRows([]string{"id", "name", "country", "region", "price_from", "featured"}).
		AddRow("dest-2", "Swiss Alps", "Switzerland", "Europe", 1599.0, true)
	mock.ExpectQuery(`SELECT \* FROM "destinations" WHERE id = \$1`).
		WillReturnRows(rows)

	d, err := s.GetDestination(context.Background(), "dest-2")
	require.NoError(t, err)
	assert.Equal(t, "Swiss Alps", d.Name)
	assert.Equal(t, 1599.0, d.PriceFrom)
	assert.True(t, d.Featured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStorageNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStorageBookingsByUser(t *testing.T) {
	s, mock := newMockStorage(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "package_id", "guest_count", "total_price", "status"}).
		AddRow("b1", "u1", "pkg-2", 2, 5976.0, "pending").
		AddRow("b2", "u1", "pkg-1", 1, 1899.0, "pending")
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE user_id = \$1 ORDER BY created_at ASC,id ASC`).
		WithArgs("u1").
		WillReturnRows(rows)

	bookings, err := s.GetBookings(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, models.Decimal(5976), bookings[0].TotalPrice)
	assert.EqualValues(t, "pending", bookings[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
