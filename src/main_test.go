package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"

	"travel/src/catalog"
	"travel/src/lib"
	"travel/src/models"
	"travel/src/storage"
)

type TestSuite struct {
	suite.Suite
	Store    *storage.MemStorage
	Notifier *capturingNotifier
	Router   *gin.Engine
}

type capturingNotifier struct {
	mu     sync.Mutex
	events []lib.BookingEvent
	sent   chan struct{}
}

func newCapturingNotifier() *capturingNotifier {
	return &capturingNotifier{sent: make(chan struct{}, 16)}
}

func (c *capturingNotifier) Name() string { return "capture" }

func (c *capturingNotifier) BookingCreated(_ context.Context, evt lib.BookingEvent) error {
	c.mu.Lock()
	c.events = append(c.events, evt)
	c.mu.Unlock()
	c.sent <- struct{}{}
	return nil
}

func (c *capturingNotifier) last() lib.BookingEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events[len(c.events)-1]
}

var errConnectionLost = errors.New("pq: connection to 10.0.0.7:5432 lost")

// brokenStore answers every call it overrides with an internal error.
type brokenStore struct {
	storage.Storage
}

func (brokenStore) GetPackages(context.Context, catalog.PackageFilter) ([]models.PackageWithDestination, error) {
	return nil, errConnectionLost
}

func (brokenStore) GetPackage(context.Context, string) (*models.PackageWithDestination, error) {
	return nil, errConnectionLost
}

func (brokenStore) CreateBooking(context.Context, models.Booking) (*models.Booking, error) {
	return nil, errConnectionLost
}

func (brokenStore) GetReviews(context.Context, string) ([]models.Review, error) {
	return nil, errConnectionLost
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *TestSuite) SetupTest() {
	s.Store = storage.NewMemStorage()
	s.Notifier = newCapturingNotifier()
	s.Router = newRouter(&server{store: s.Store, notifier: s.Notifier})
}

func (s *TestSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.T(), err)
		req, _ = http.NewRequest(method, target, strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(s.T(), w.Header().Get("X-Request-ID"))
}

func (s *TestSuite) TestMaintenanceMode() {
	s.T().Setenv("MAINTENANCE_MODE", "true")

	w := s.do("GET", "/api/destinations", nil)
	assert.Equal(s.T(), 503, w.Code)
	assert.Equal(s.T(), "server is under maintenance", gjson.Get(w.Body.String(), "message").String())
}

func (s *TestSuite) TestDestinationRoutes() {
	s.Run("Should list every destination with a season", func() {
		w := s.do("GET", "/api/destinations", nil)
		assert.Equal(s.T(), 200, w.Code)
		res := gjson.Parse(w.Body.String())
		assert.Len(s.T(), res.Array(), 6)
		assert.Equal(s.T(), "dest-1", res.Get("0.id").String())
		assert.Equal(s.T(), "Oct-Mar (Dry Season)", res.Get("0.season").String())
		assert.Equal(s.T(), 2899.0, res.Get("0.priceFrom").Float())
	})
	s.Run("Should search destinations case-insensitively", func() {
		w := s.do("GET", "/api/destinations?search=kyoto", nil)
		assert.Equal(s.T(), 200, w.Code)
		res := gjson.Parse(w.Body.String())
		require.Len(s.T(), res.Array(), 1)
		assert.Equal(s.T(), "Kyoto", res.Get("0.name").String())
	})
	s.Run("Should filter destinations by region", func() {
		w := s.do("GET", "/api/destinations?region=europe", nil)
		res := gjson.Parse(w.Body.String())
		assert.Equal(s.T(), []any{"Swiss Alps", "Iceland"}, res.Get("#.name").Value())
	})
	s.Run("Should return an empty list, not null", func() {
		w := s.do("GET", "/api/destinations?search=atlantis", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "[]", w.Body.String())
	})
	s.Run("Should list featured destinations", func() {
		w := s.do("GET", "/api/destinations/featured", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Len(s.T(), gjson.Parse(w.Body.String()).Array(), 6)
	})
	s.Run("Should fetch a destination by id", func() {
		w := s.do("GET", "/api/destinations/dest-3", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "Japan", gjson.Get(w.Body.String(), "country").String())
	})
	s.Run("Should answer 404 for an unknown destination", func() {
		w := s.do("GET", "/api/destinations/dest-99", nil)
		assert.Equal(s.T(), 404, w.Code)
		assert.Equal(s.T(), "Destination not found", gjson.Get(w.Body.String(), "message").String())
	})
}

func (s *TestSuite) TestPackageRoutes() {
	s.Run("Should list every package in insertion order", func() {
		w := s.do("GET", "/api/packages", nil)
		assert.Equal(s.T(), 200, w.Code)
		ids := gjson.Get(w.Body.String(), "#.id").Value()
		assert.Equal(s.T(), []any{"pkg-1", "pkg-2", "pkg-3", "pkg-4", "pkg-5", "pkg-6"}, ids)
	})
	s.Run("Should treat all as no filter", func() {
		w := s.do("GET", "/api/packages?category=all&destination=all", nil)
		assert.Len(s.T(), gjson.Parse(w.Body.String()).Array(), 6)
	})
	s.Run("Should filter by category", func() {
		w := s.do("GET", "/api/packages?category=adventure", nil)
		assert.Equal(s.T(), []any{"pkg-1", "pkg-5"}, gjson.Get(w.Body.String(), "#.id").Value())
	})
	s.Run("Should filter by destination and join it", func() {
		w := s.do("GET", "/api/packages?destination=dest-4", nil)
		res := gjson.Parse(w.Body.String())
		require.Len(s.T(), res.Array(), 1)
		assert.Equal(s.T(), "pkg-4", res.Get("0.id").String())
		assert.Equal(s.T(), "Kenya", res.Get("0.destination.name").String())
		assert.Equal(s.T(), "1 week, 1 day", res.Get("0.durationLabel").String())
		assert.Equal(s.T(), "Easy", res.Get("0.difficulty").String())
	})
	s.Run("Should filter by price range and guests", func() {
		w := s.do("GET", "/api/packages?priceRange=budget", nil)
		assert.Equal(s.T(), []any{"pkg-1"}, gjson.Get(w.Body.String(), "#.id").Value())

		w = s.do("GET", "/api/packages?priceRange=luxury", nil)
		assert.Equal(s.T(), []any{"pkg-3"}, gjson.Get(w.Body.String(), "#.id").Value())

		w = s.do("GET", "/api/packages?guests=15", nil)
		assert.Equal(s.T(), []any{"pkg-2", "pkg-6"}, gjson.Get(w.Body.String(), "#.id").Value())
	})
	s.Run("Should reject a malformed guests filter", func() {
		w := s.do("GET", "/api/packages?guests=many", nil)
		assert.Equal(s.T(), 400, w.Code)
	})
	s.Run("Should answer 404 for an unknown package", func() {
		w := s.do("GET", "/api/packages/pkg-99", nil)
		assert.Equal(s.T(), 404, w.Code)
		assert.Equal(s.T(), "Package not found", gjson.Get(w.Body.String(), "message").String())
	})
	s.Run("Should fetch a package without a destination", func() {
		w := s.do("GET", "/api/packages/pkg-1", nil)
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.False(s.T(), gjson.Get(body, "destination").Exists())
		assert.Equal(s.T(), 1899.0, gjson.Get(body, "price").Float())
		assert.Len(s.T(), gjson.Get(body, "itinerary").Array(), 5)
	})
	s.Run("Should share a package", func() {
		w := s.do("GET", "/api/packages/pkg-5/share", nil)
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.True(s.T(), strings.HasSuffix(gjson.Get(body, "url").String(), "/packages/pkg-5"))
		assert.Equal(s.T(), "patagonia-trekking", gjson.Get(body, "slug").String())
		assert.Contains(s.T(), gjson.Get(body, "text").String(), "Patagonia Trekking starting from $2599!")
	})
}

func (s *TestSuite) TestQuoteRoutes() {
	s.Run("Should quote with insurance and tax by default", func() {
		w := s.do("GET", "/api/packages/pkg-2/quote?guests=2", nil)
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), 5598.0, gjson.Get(body, "subtotal").Float())
		assert.Equal(s.T(), 99.0, gjson.Get(body, "insurance").Float())
		assert.Equal(s.T(), 279.0, gjson.Get(body, "taxes").Float())
		assert.Equal(s.T(), 5976.0, gjson.Get(body, "total").Float())
	})
	s.Run("Should honour opt-outs on the standalone form", func() {
		w := s.do("POST", "/api/bookings/quote", map[string]any{
			"packageId":  "pkg-1",
			"guestCount": 1,
			"insurance":  false,
			"tax":        false,
		})
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), 1899.0, gjson.Get(w.Body.String(), "total").Float())
	})
	s.Run("Should reject a zero guest count", func() {
		w := s.do("POST", "/api/bookings/quote", map[string]any{"packageId": "pkg-1", "guestCount": 0})
		assert.Equal(s.T(), 400, w.Code)
	})
	s.Run("Should answer 404 when quoting an unknown package", func() {
		w := s.do("GET", "/api/packages/pkg-99/quote", nil)
		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestBookingRoutes() {
	user := s.do("POST", "/api/users", map[string]any{
		"username": faker.Username(),
		"email":    faker.Email(),
		"password": "correct-horse",
	})
	require.Equal(s.T(), 201, user.Code)
	userID := gjson.Get(user.Body.String(), "id").String()

	var bookingID string
	s.Run("Should create a booking without a capacity check", func() {
		w := s.do("POST", "/api/bookings", map[string]any{
			"userId":        userID,
			"packageId":     "pkg-3",
			"guestCount":    6,
			"departureDate": "2099-06-01",
			"totalPrice":    "30093.00",
		})
		assert.Equal(s.T(), 201, w.Code)
		body := w.Body.String()
		bookingID = gjson.Get(body, "id").String()
		assert.NotEmpty(s.T(), bookingID)
		assert.Equal(s.T(), "pending", gjson.Get(body, "status").String())
		assert.Equal(s.T(), "30093.00", gjson.Get(body, "totalPrice").String())

		select {
		case <-s.Notifier.sent:
		case <-time.After(5 * time.Second):
			s.FailNow("booking notification was not sent")
		}
		evt := s.Notifier.last()
		assert.Equal(s.T(), bookingID, evt.BookingID)
		assert.Equal(s.T(), "Maldives Paradise Retreat", evt.PackageTitle)
	})
	s.Run("Should accept a numeric total price", func() {
		w := s.do("POST", "/api/bookings", map[string]any{
			"userId":        "user-unknown",
			"packageId":     "pkg-1",
			"guestCount":    1,
			"departureDate": "2099-01-02T10:00:00Z",
			"totalPrice":    1899,
		})
		assert.Equal(s.T(), 201, w.Code)
	})
	s.Run("Should reject an invalid booking with field errors", func() {
		w := s.do("POST", "/api/bookings", map[string]any{
			"packageId":     "pkg-1",
			"guestCount":    0,
			"departureDate": "next week",
			"totalPrice":    "-5",
		})
		assert.Equal(s.T(), 400, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "Invalid booking data", gjson.Get(body, "message").String())
		fields := gjson.Get(body, "errors.#.field").Value()
		assert.ElementsMatch(s.T(), []any{"userId", "guestCount", "departureDate", "totalPrice"}, fields)
	})
	s.Run("Should list bookings for a user", func() {
		w := s.do("GET", "/api/bookings?userId="+userID, nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), []any{bookingID}, gjson.Get(w.Body.String(), "#.id").Value())

		w = s.do("GET", "/api/bookings", nil)
		assert.Len(s.T(), gjson.Parse(w.Body.String()).Array(), 2)
	})
	s.Run("Should fetch booking details", func() {
		w := s.do("GET", "/api/bookings/"+bookingID+"/details", nil)
		assert.Equal(s.T(), 200, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), "Maldives Paradise Retreat", gjson.Get(body, "package.title").String())
		assert.Equal(s.T(), userID, gjson.Get(body, "user.id").String())
		assert.False(s.T(), gjson.Get(body, "user.password").Exists())
		assert.Equal(s.T(), "confirmed", gjson.Get(body, "timelineStatus").String())
		assert.Greater(s.T(), gjson.Get(body, "daysUntilDeparture").Int(), int64(0))
	})
	s.Run("Should render a booking QR code", func() {
		w := s.do("GET", "/api/bookings/"+bookingID+"/qrcode", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "image/jpeg", w.Header().Get("Content-Type"))
		assert.Equal(s.T(), []byte{0xFF, 0xD8}, w.Body.Bytes()[:2])
	})
	s.Run("Should answer 404 for an unknown booking", func() {
		w := s.do("GET", "/api/bookings/missing", nil)
		assert.Equal(s.T(), 404, w.Code)
		assert.Equal(s.T(), "Booking not found", gjson.Get(w.Body.String(), "message").String())
	})
}

func (s *TestSuite) TestReviewRoutes() {
	s.Run("Should start with no reviews", func() {
		w := s.do("GET", "/api/packages/pkg-2/reviews", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "[]", w.Body.String())
	})
	s.Run("Should create reviews and summarize them", func() {
		for _, rating := range []int{5, 4, 4} {
			w := s.do("POST", "/api/packages/pkg-2/reviews", map[string]any{
				"userId": "user-1",
				"rating": rating,
				"title":  "Great trip",
			})
			require.Equal(s.T(), 201, w.Code)
			assert.Equal(s.T(), "pkg-2", gjson.Get(w.Body.String(), "packageId").String())
		}
		w := s.do("GET", "/api/packages/pkg-2/reviews/summary", nil)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), 4.3, gjson.Get(w.Body.String(), "averageRating").Float())
		assert.Equal(s.T(), int64(3), gjson.Get(w.Body.String(), "totalReviews").Int())
	})
	s.Run("Should reject an out of range rating", func() {
		w := s.do("POST", "/api/packages/pkg-2/reviews", map[string]any{"userId": "user-1", "rating": 6})
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "Invalid review data", gjson.Get(w.Body.String(), "message").String())
		assert.Equal(s.T(), "max", gjson.Get(w.Body.String(), "errors.0.tag").String())
	})
}

func (s *TestSuite) TestSearchRoute() {
	w := s.do("GET", "/api/search?category=luxury&destination=Maldives&guests=2", nil)
	assert.Equal(s.T(), 200, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), int64(1), gjson.Get(body, "totalResults").Int())
	assert.Equal(s.T(), "pkg-3", gjson.Get(body, "packages.0.id").String())
	assert.Equal(s.T(), "Maldives", gjson.Get(body, "searchParams.destination").String())
	assert.Equal(s.T(), "2", gjson.Get(body, "searchParams.guests").String())

	w = s.do("GET", "/api/search", nil)
	assert.Equal(s.T(), int64(6), gjson.Get(w.Body.String(), "totalResults").Int())
}

func (s *TestSuite) TestUserRoutes() {
	payload := map[string]any{
		"username":  "traveller",
		"email":     "Traveller@Example.com",
		"password":  "super-secret",
		"firstName": "Sam",
	}
	w := s.do("POST", "/api/users", payload)
	require.Equal(s.T(), 201, w.Code)
	body := w.Body.String()
	id := gjson.Get(body, "id").String()
	assert.Equal(s.T(), "traveller@example.com", gjson.Get(body, "email").String())
	assert.False(s.T(), gjson.Get(body, "password").Exists())

	stored, err := s.Store.GetUser(context.Background(), id)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), "super-secret", stored.Password)

	w = s.do("POST", "/api/users", payload)
	assert.Equal(s.T(), 409, w.Code)

	w = s.do("POST", "/api/users", map[string]any{"username": "x", "email": "nope", "password": "short"})
	assert.Equal(s.T(), 400, w.Code)
	assert.Len(s.T(), gjson.Get(w.Body.String(), "errors").Array(), 3)

	w = s.do("GET", "/api/users/"+id, nil)
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), "Sam", gjson.Get(w.Body.String(), "firstName").String())

	w = s.do("GET", "/api/users/nobody", nil)
	assert.Equal(s.T(), 404, w.Code)
}

func (s *TestSuite) TestCatalogRoutes() {
	w := s.do("GET", "/api/catalog/options", nil)
	assert.Equal(s.T(), 200, w.Code)
	body := w.Body.String()
	assert.Equal(s.T(), []any{"adventure", "cultural", "luxury", "family"}, gjson.Get(body, "categories.#.value").Value())
	assert.Equal(s.T(), "Adventure", gjson.Get(body, "categories.0.label").String())
	assert.Len(s.T(), gjson.Get(body, "priceRanges").Array(), 3)

	w = s.do("GET", "/api/health", nil)
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), "ok", gjson.Get(w.Body.String(), "status").String())
	assert.True(s.T(), gjson.Get(w.Body.String(), "notifier").Bool())
}

func (s *TestSuite) TestStorageFailures() {
	s.Router = newRouter(&server{store: brokenStore{}})

	cases := []struct {
		name    string
		method  string
		target  string
		body    any
		message string
	}{
		{"Should hide package listing errors", "GET", "/api/packages", nil, "Failed to fetch packages"},
		{"Should hide package lookup errors", "GET", "/api/packages/pkg-1", nil, "Failed to fetch package"},
		{"Should hide review errors", "GET", "/api/packages/pkg-1/reviews", nil, "Failed to fetch reviews"},
		{"Should hide search errors", "GET", "/api/search?category=luxury", nil, "Failed to perform search"},
		{"Should hide booking errors", "POST", "/api/bookings", map[string]any{
			"userId":        "user-1",
			"packageId":     "pkg-1",
			"guestCount":    1,
			"departureDate": "2099-01-01",
			"totalPrice":    "1899.00",
		}, "Failed to create booking"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.do(tc.method, tc.target, tc.body)
			assert.Equal(s.T(), 500, w.Code)
			assert.JSONEq(s.T(), `{"message":"`+tc.message+`"}`, w.Body.String())
			assert.NotContains(s.T(), w.Body.String(), "10.0.0.7")
		})
	}
}
