package storage

import (
	"time"

	"gorm.io/datatypes"

	"travel/src/models"
)

func destinationID(id string) *string { return &id }

func itinerary(days ...[2]string) datatypes.JSONSlice[models.ItineraryDay] {
	out := make(datatypes.JSONSlice[models.ItineraryDay], 0, len(days))
	for i, d := range days {
		out = append(out, models.ItineraryDay{Day: i + 1, Title: d[0], Description: d[1]})
	}
	return out
}

// SeedDestinations returns the launch catalog of destinations. Creation
// times increase from base so insertion order survives a database round trip.
func SeedDestinations(base time.Time) []models.Destination {
	dests := []models.Destination{
		{
			ID: "dest-1", Name: "Maldives", Country: "Maldives", Region: "Asia",
			Description: "Tropical paradise with crystal clear waters and pristine beaches",
			ImageURL:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			PriceFrom:   2899, Rating: 4.9, ReviewCount: 2100, Featured: true,
		},
		{
			ID: "dest-2", Name: "Swiss Alps", Country: "Switzerland", Region: "Europe",
			Description: "Majestic mountain peaks and alpine adventures",
			ImageURL:    "https://pixabay.com/get/g9b9e03f78cd89e14db484c867e720068c21d17fc8c74e2c1d0ede2ee94f266c05ebcc9651eb33890de6bf03a08ce46c367b8d7d34cb2637b65e845aee639b67b_1280.jpg",
			PriceFrom:   1599, Rating: 4.8, ReviewCount: 1500, Featured: true,
		},
		{
			ID: "dest-3", Name: "Kyoto", Country: "Japan", Region: "Asia",
			Description: "Ancient temples and traditional Japanese culture",
			ImageURL:    "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			PriceFrom:   1299, Rating: 4.7, ReviewCount: 987, Featured: true,
		},
		{
			ID: "dest-4", Name: "Kenya", Country: "Kenya", Region: "Africa",
			Description: "African safari adventure with incredible wildlife",
			ImageURL:    "https://images.unsplash.com/photo-1516426122078-c23e76319801?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			PriceFrom:   3499, Rating: 4.9, ReviewCount: 756, Featured: true,
		},
		{
			ID: "dest-5", Name: "Machu Picchu", Country: "Peru", Region: "South America",
			Description: "Ancient Incan ruins in the breathtaking Andes",
			ImageURL:    "https://images.unsplash.com/photo-1587595431973-160d0d94add1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			PriceFrom:   1899, Rating: 4.8, ReviewCount: 1200, Featured: true,
		},
		{
			ID: "dest-6", Name: "Iceland", Country: "Iceland", Region: "Europe",
			Description: "Northern lights and dramatic volcanic landscapes",
			ImageURL:    "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			PriceFrom:   2199, Rating: 4.9, ReviewCount: 892, Featured: true,
		},
	}
	for i := range dests {
		dests[i].CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
	}
	return dests
}

func SeedPackages(base time.Time) []models.Package {
	pkgs := []models.Package{
		{
			ID: "pkg-1", Title: "Colorado River Expedition",
			Description: "5-day white water rafting and camping adventure through the Grand Canyon",
			Category:    models.CategoryAdventure, Duration: 5, MaxGuests: 12, Price: 1899,
			ImageURL: "https://images.unsplash.com/photo-1544551763-46a013bb70d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Rating:   4.8, ReviewCount: 124,
			Inclusions: datatypes.JSONSlice[string]{"Professional guide", "All equipment", "Camping gear", "Meals"},
			Itinerary: itinerary(
				[2]string{"Arrival & Setup", "Meet your guide and set up camp"},
				[2]string{"Rapids Training", "Learn rafting techniques"},
				[2]string{"Canyon Adventure", "Navigate exciting rapids"},
				[2]string{"Wilderness Camping", "Camp under the stars"},
				[2]string{"Final Rapids", "Complete the expedition"},
			),
			Featured: true,
		},
		{
			ID: "pkg-2", Title: "Greek Islands Discovery",
			Description: "10-day cultural journey through Santorini, Mykonos, and Crete with local guides",
			Category:    models.CategoryCultural, Duration: 10, MaxGuests: 18, Price: 2799,
			ImageURL: "https://images.unsplash.com/photo-1533105079780-92b9be482077?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Rating:   4.9, ReviewCount: 89,
			Inclusions: datatypes.JSONSlice[string]{"Boutique hotels", "Local guides", "Island transfers", "Traditional meals"},
			Itinerary: itinerary(
				[2]string{"Athens Arrival", "Explore the Acropolis"},
				[2]string{"Santorini", "Famous blue domes and sunset"},
				[2]string{"Wine Tasting", "Local vineyard tours"},
				[2]string{"Mykonos", "Charming windmills and beaches"},
				[2]string{"Crete Adventure", "Minoan palace exploration"},
			),
			Featured: true,
		},
		{
			ID: "pkg-3", Title: "Maldives Paradise Retreat",
			Description:   "7-day luxury escape in overwater villas with private butler service",
			DestinationID: destinationID("dest-1"),
			Category:      models.CategoryLuxury, Duration: 7, MaxGuests: 2, Price: 4999,
			ImageURL: "https://images.unsplash.com/photo-1540979388789-6cee28a1cdc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Rating:   5.0, ReviewCount: 67,
			Inclusions: datatypes.JSONSlice[string]{"Overwater villa", "Private butler", "Spa treatments", "Fine dining"},
			Itinerary: itinerary(
				[2]string{"Arrival", "Private seaplane transfer"},
				[2]string{"Spa Day", "Full day wellness treatments"},
				[2]string{"Snorkeling", "Explore coral reefs"},
				[2]string{"Sunset Cruise", "Private yacht experience"},
				[2]string{"Island Hopping", "Visit local islands"},
			),
			Featured: true,
		},
		{
			ID: "pkg-4", Title: "Tanzania Family Safari",
			Description:   "8-day family-friendly safari with expert guides and comfortable lodges",
			DestinationID: destinationID("dest-4"),
			Category:      models.CategoryFamily, Duration: 8, MaxGuests: 8, Price: 3299,
			ImageURL: "https://images.unsplash.com/photo-1551632811-561732d1e306?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Rating:   4.7, ReviewCount: 156,
			Inclusions: datatypes.JSONSlice[string]{"Safari vehicle", "Expert guide", "Luxury lodge", "All meals"},
			Itinerary: itinerary(
				[2]string{"Arrival", "Welcome to Tanzania"},
				[2]string{"Serengeti", "Big Five wildlife viewing"},
				[2]string{"Ngorongoro", "Crater exploration"},
				[2]string{"Cultural Visit", "Maasai village experience"},
				[2]string{"Game Drive", "Morning wildlife safari"},
			),
			Featured: true,
		},
		{
			ID: "pkg-5", Title: "Patagonia Trekking",
			Description: "12-day guided trekking adventure through Torres del Paine National Park",
			Category:    models.CategoryAdventure, Duration: 12, MaxGuests: 10, Price: 2599,
			ImageURL: "https://pixabay.com/get/gf7b0d7ac0e0a412fb9a005c17a0d52b0e31648749b19bc3b4451718366ffb1f4285db6c4180b6453fd7bf9d2d55c003d14c3896211bdfdc938bda3b5f0bfec45_1280.jpg",
			Rating:   4.6, ReviewCount: 203,
			Inclusions: datatypes.JSONSlice[string]{"Trekking guide", "Camping equipment", "Meals", "Permits"},
			Itinerary: itinerary(
				[2]string{"Base Camp", "Equipment check and preparation"},
				[2]string{"Torres Trek", "Iconic towers hike"},
				[2]string{"French Valley", "Dramatic valley views"},
				[2]string{"Grey Glacier", "Glacier boat tour"},
				[2]string{"Wildlife Day", "Puma tracking expedition"},
			),
			Featured: true,
		},
		{
			ID: "pkg-6", Title: "Buddhist Temples Tour",
			Description: "14-day spiritual journey through ancient temples of Myanmar and Thailand",
			Category:    models.CategoryCultural, Duration: 14, MaxGuests: 15, Price: 2199,
			ImageURL: "https://pixabay.com/get/g26eab73116eb381267a3be9174a17604e30b2c5d67c50a20586927149c01bf497b1827b8b550ec725924131350d4b960184074a5d8ca09e31251ea6d1de42961_1280.jpg",
			Rating:   4.8, ReviewCount: 94,
			Inclusions: datatypes.JSONSlice[string]{"Temple guides", "Cultural experiences", "Traditional accommodation", "Vegetarian meals"},
			Itinerary: itinerary(
				[2]string{"Bangkok", "Golden temple visits"},
				[2]string{"Meditation", "Morning meditation session"},
				[2]string{"Chiang Mai", "Mountain temple trek"},
				[2]string{"Myanmar", "Ancient Bagan temples"},
				[2]string{"Spiritual Practice", "Buddhist ceremony participation"},
			),
			Featured: true,
		},
	}
	for i := range pkgs {
		pkgs[i].CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
	}
	return pkgs
}
