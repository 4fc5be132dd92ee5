package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"travel/src/models"
	"travel/src/types"
)

var printer = message.NewPrinter(language.English)

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatDuration renders a day count as e.g. "5 days", "1 week" or "2 weeks, 3 days".
func FormatDuration(days int) string {
	if days < 7 {
		return plural(days, "day")
	}
	weeks, rem := days/7, days%7
	if rem == 0 {
		return plural(weeks, "week")
	}
	return plural(weeks, "week") + ", " + plural(rem, "day")
}

func DifficultyLevel(category models.Category, duration int) types.Difficulty {
	if category == models.CategoryLuxury || category == models.CategoryFamily {
		return types.DIFFICULTY_EASY
	}
	if duration <= 7 {
		return types.DIFFICULTY_MODERATE
	}
	if category == models.CategoryAdventure && duration > 10 {
		return types.DIFFICULTY_CHALLENGING
	}
	return types.DIFFICULTY_MODERATE
}

// FormatPrice renders a whole-dollar amount with thousands separators, e.g. "$2,899".
func FormatPrice(price float64) string {
	return printer.Sprintf("$%d", int64(math.Round(price)))
}

func FormatRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}

func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return FormatRating(float64(sum) / float64(len(reviews)))
}

func SeasonRecommendation(destination *models.Destination) string {
	if destination == nil {
		return "Year-round"
	}
	region := strings.ToLower(destination.Region)
	switch {
	case strings.Contains(region, "asia"):
		return "Oct-Mar (Dry Season)"
	case strings.Contains(region, "europe"):
		return "May-Sep (Summer)"
	case strings.Contains(region, "africa"):
		return "Jun-Oct (Dry Season)"
	case strings.Contains(region, "america"):
		return "Apr-Oct (Spring-Fall)"
	default:
		return "Year-round"
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntilDeparture counts calendar days from now to departure, rounding partial days up.
func DaysUntilDeparture(departure, now time.Time) int {
	departure = startOfDay(departure.In(now.Location()))
	diff := departure.Sub(startOfDay(now))
	return int(math.Ceil(diff.Hours() / 24))
}

// IsValidDepartureDate reports whether departure is today or later.
func IsValidDepartureDate(departure, now time.Time) bool {
	return !startOfDay(departure.In(now.Location())).Before(startOfDay(now))
}

// BookingStatusFor derives the display status of a booking. Only "completed"
// and "confirmed" are produced; cancellation is not tracked yet.
func BookingStatusFor(departure, now time.Time) types.TimelineStatus {
	if departure.Before(now) {
		return types.TIMELINE_COMPLETED
	}
	return types.TIMELINE_CONFIRMED
}

func ShareURL(baseURL, packageID string) string {
	return fmt.Sprintf("%s/packages/%s", strings.TrimRight(baseURL, "/"), packageID)
}

func ShareText(title string, price float64) string {
	return fmt.Sprintf("Check out this amazing travel package: %s starting from $%s! 🌍✈️", title, strconv.FormatFloat(price, 'f', -1, 64))
}
