// Package catalog holds the filtering rules shared by every storage backend
// and the search endpoints.
package catalog

import (
	"strings"

	"travel/src/models"
	"travel/src/utils"
)

// Any is the sentinel a client sends to disable a filter.
const Any = "all"

type PriceRange string

const (
	PriceBudget PriceRange = "budget"
	PriceMid    PriceRange = "mid"
	PriceLuxury PriceRange = "luxury"
)

const (
	budgetCeiling = 2000
	luxuryFloor   = 4000
)

// Contains reports whether price falls inside the range. Empty, "all" and
// unrecognized ranges accept every price.
func (r PriceRange) Contains(price float64) bool {
	switch r {
	case PriceBudget:
		return price < budgetCeiling
	case PriceMid:
		return price >= budgetCeiling && price < luxuryFloor
	case PriceLuxury:
		return price >= luxuryFloor
	default:
		return true
	}
}

type DurationRange string

const (
	DurationShort  DurationRange = "short"
	DurationMedium DurationRange = "medium"
	DurationLong   DurationRange = "long"
)

const (
	shortMaxDays  = 7
	mediumMaxDays = 14
)

func (r DurationRange) Contains(days int) bool {
	switch r {
	case DurationShort:
		return days <= shortMaxDays
	case DurationMedium:
		return days > shortMaxDays && days <= mediumMaxDays
	case DurationLong:
		return days > mediumMaxDays
	default:
		return true
	}
}

func active(v string) bool {
	return v != "" && v != Any
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

// PackageFilter selects packages. Every criterion is optional and all set
// criteria must hold.
type PackageFilter struct {
	Category      string        `form:"category" json:"category,omitempty"`
	DestinationID string        `form:"destination" json:"destination,omitempty"`
	Search        string        `form:"search" json:"search,omitempty"`
	PriceRange    PriceRange    `form:"priceRange" json:"priceRange,omitempty"`
	Duration      DurationRange `form:"duration" json:"duration,omitempty"`
	MinGuests     int           `form:"guests" json:"guests,omitempty" binding:"omitempty,min=0"`
	Featured      bool          `form:"-" json:"-"`
}

func (f PackageFilter) Matches(p models.Package) bool {
	if f.Featured && !p.Featured {
		return false
	}
	if active(f.Category) {
		want := models.ParseCategory(f.Category)
		if !want.Known() || p.Category != want {
			return false
		}
	}
	if active(f.DestinationID) && (p.DestinationID == nil || *p.DestinationID != f.DestinationID) {
		return false
	}
	if term := strings.ToLower(f.Search); term != "" {
		if !containsFold(p.Title, term) && !containsFold(p.Description, term) {
			return false
		}
	}
	if f.MinGuests > 0 && p.MaxGuests < f.MinGuests {
		return false
	}
	return f.PriceRange.Contains(p.Price) && f.Duration.Contains(p.Duration)
}

// FilterPackages keeps the packages matching f in their original order.
func FilterPackages(packages []models.Package, f PackageFilter) []models.Package {
	out := make([]models.Package, 0, len(packages))
	for _, p := range packages {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

type DestinationFilter struct {
	Search   string `form:"search" json:"search,omitempty"`
	Region   string `form:"region" json:"region,omitempty"`
	Featured bool   `form:"-" json:"-"`
}

func (f DestinationFilter) Matches(d models.Destination) bool {
	if f.Featured && !d.Featured {
		return false
	}
	if active(f.Region) && !strings.EqualFold(d.Region, f.Region) {
		return false
	}
	if term := strings.ToLower(f.Search); term != "" {
		if !containsFold(d.Name, term) && !containsFold(d.Country, term) {
			return false
		}
	}
	return true
}

func FilterDestinations(destinations []models.Destination, f DestinationFilter) []models.Destination {
	out := make([]models.Destination, 0, len(destinations))
	for _, d := range destinations {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// Annotate builds the read shape of a package. dest is nil when the package
// has no destination or it does not resolve.
func Annotate(p models.Package, dest *models.Destination) models.PackageWithDestination {
	return models.PackageWithDestination{
		Package:       p,
		Destination:   dest,
		DurationLabel: utils.FormatDuration(p.Duration),
		Difficulty:    string(utils.DifficultyLevel(p.Category, p.Duration)),
	}
}

// JoinDestinations annotates each package with its destination looked up
// through lookup.
func JoinDestinations(packages []models.Package, lookup func(id string) (models.Destination, bool)) []models.PackageWithDestination {
	out := make([]models.PackageWithDestination, 0, len(packages))
	for _, p := range packages {
		var dest *models.Destination
		if p.DestinationID != nil {
			if d, ok := lookup(*p.DestinationID); ok {
				dest = &d
			}
		}
		out = append(out, Annotate(p, dest))
	}
	return out
}

func DetailDestinations(destinations []models.Destination) []models.DestinationDetails {
	out := make([]models.DestinationDetails, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, DetailDestination(d))
	}
	return out
}

func DetailDestination(d models.Destination) models.DestinationDetails {
	return models.DestinationDetails{Destination: d, Season: utils.SeasonRecommendation(&d)}
}
