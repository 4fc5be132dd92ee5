package catalog

import (
	"strings"

	"travel/src/models"
)

var Regions = []string{
	"Asia",
	"Europe",
	"Africa",
	"North America",
	"South America",
	"Oceania",
	"Middle East",
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CategoryOption struct {
	Option
	Color      string `json:"color"`
	BadgeClass string `json:"badgeClass"`
}

type Options struct {
	Categories     []CategoryOption `json:"categories"`
	Regions        []string         `json:"regions"`
	PriceRanges    []Option         `json:"priceRanges"`
	DurationRanges []Option         `json:"durationRanges"`
}

// CatalogOptions lists the values the browse filters accept.
func CatalogOptions() Options {
	categories := make([]CategoryOption, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		name := c.String()
		categories = append(categories, CategoryOption{
			Option:     Option{Label: strings.ToUpper(name[:1]) + name[1:], Value: name},
			Color:      c.Color(),
			BadgeClass: c.BadgeClass(),
		})
	}
	return Options{
		Categories: categories,
		Regions:    Regions,
		PriceRanges: []Option{
			{Label: "Under $2,000", Value: string(PriceBudget)},
			{Label: "$2,000 - $4,000", Value: string(PriceMid)},
			{Label: "Over $4,000", Value: string(PriceLuxury)},
		},
		DurationRanges: []Option{
			{Label: "1-7 Days", Value: string(DurationShort)},
			{Label: "8-14 Days", Value: string(DurationMedium)},
			{Label: "15+ Days", Value: string(DurationLong)},
		},
	}
}
