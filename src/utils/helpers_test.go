package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"travel/src/models"
	"travel/src/types"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		1:  "1 day",
		5:  "5 days",
		7:  "1 week",
		8:  "1 week, 1 day",
		10: "1 week, 3 days",
		14: "2 weeks",
		15: "2 weeks, 1 day",
		23: "3 weeks, 2 days",
	}
	for days, want := range cases {
		assert.Equal(t, want, FormatDuration(days), "days=%d", days)
	}
}

func TestDifficultyLevel(t *testing.T) {
	assert.Equal(t, types.DIFFICULTY_EASY, DifficultyLevel(models.CategoryLuxury, 20))
	assert.Equal(t, types.DIFFICULTY_EASY, DifficultyLevel(models.CategoryFamily, 8))
	assert.Equal(t, types.DIFFICULTY_MODERATE, DifficultyLevel(models.CategoryAdventure, 5))
	assert.Equal(t, types.DIFFICULTY_MODERATE, DifficultyLevel(models.CategoryAdventure, 10))
	assert.Equal(t, types.DIFFICULTY_CHALLENGING, DifficultyLevel(models.CategoryAdventure, 12))
	assert.Equal(t, types.DIFFICULTY_MODERATE, DifficultyLevel(models.CategoryCultural, 14))
	assert.Equal(t, types.DIFFICULTY_MODERATE, DifficultyLevel(models.CategoryUnknown, 3))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$2,899", FormatPrice(2899))
	assert.Equal(t, "$999", FormatPrice(999))
	assert.Equal(t, "$12,500", FormatPrice(12499.6))
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	reviews := []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.Equal(t, 4.3, AverageRating(reviews))
}

func TestSeasonRecommendation(t *testing.T) {
	assert.Equal(t, "Year-round", SeasonRecommendation(nil))
	assert.Equal(t, "Oct-Mar (Dry Season)", SeasonRecommendation(&models.Destination{Region: "Asia"}))
	assert.Equal(t, "May-Sep (Summer)", SeasonRecommendation(&models.Destination{Region: "Europe"}))
	assert.Equal(t, "Jun-Oct (Dry Season)", SeasonRecommendation(&models.Destination{Region: "Africa"}))
	assert.Equal(t, "Apr-Oct (Spring-Fall)", SeasonRecommendation(&models.Destination{Region: "South America"}))
	assert.Equal(t, "Year-round", SeasonRecommendation(&models.Destination{Region: "Oceania"}))
}

func TestDepartureDates(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntilDeparture(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 1, DaysUntilDeparture(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 22, DaysUntilDeparture(time.Date(2025, 4, 1, 23, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -3, DaysUntilDeparture(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), now))

	assert.True(t, IsValidDepartureDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsValidDepartureDate(time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), now))

	assert.Equal(t, types.TIMELINE_COMPLETED, BookingStatusFor(now.Add(-time.Hour), now))
	assert.Equal(t, types.TIMELINE_CONFIRMED, BookingStatusFor(now.AddDate(0, 0, 3), now))
}

func TestShareHelpers(t *testing.T) {
	assert.Equal(t, "https://example.com/packages/pkg-1", ShareURL("https://example.com/", "pkg-1"))
	assert.Equal(t,
		"Check out this amazing travel package: Patagonia Trekking starting from $2599! 🌍✈️",
		ShareText("Patagonia Trekking", 2599),
	)
}
