// Command search finds venues around a coordinate and prints their general
// information, localized with each venue's own locale as fallback.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"tableside"
	"tableside/menu"
)

var (
	configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")
	lat        = flag.Float64("lat", 36.600106, "Search origin latitude")
	lng        = flag.Float64("lng", -121.894286, "Search origin longitude")
	radius     = flag.Float64("radius", 2000, "Search radius in meters")
	limit      = flag.Int("limit", 100, "Maximum number of results")
	locale     = flag.String("locale", "en_US", "Preferred display locale")
)

func main() {
	flag.Parse()

	config, err := tableside.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	client := tableside.NewClient(*config)

	filter := tableside.NewFilterBuilder().
		LatLng(*lat, *lng).
		Radius(*radius).
		Build()

	fmt.Print("Searching for restaurants...")
	results, err := client.Search(context.Background(), filter, *limit)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	fmt.Printf(" got %d results.\n", len(results))

	for _, result := range results {
		localizer := menu.NewLocalizer(result.Locale, *locale)

		fmt.Println()
		fmt.Println(localizer.Localize(result.Title))
		if result.Address != nil {
			fmt.Printf("- %s\n", result.Address.Formatted)
		}
		if result.Contact != nil && result.Contact.Phone != "" {
			fmt.Printf("- %s\n", result.Contact.Phone)
		}
	}
}
