// Command show-menu retrieves a restaurant's menu and pretty-prints the
// section hierarchy with localized titles and prices.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"tableside"
	"tableside/menu"
)

var (
	configFile   = flag.String("config", "configs/config.yaml", "Path to configuration file")
	restaurantID = flag.String("restaurant", "", "Restaurant identifier")
	locale       = flag.String("locale", "en_US", "Preferred display locale")
)

func main() {
	flag.Parse()
	if *restaurantID == "" {
		log.Fatal("missing required -restaurant flag")
	}

	config, err := tableside.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	client := tableside.NewClient(*config)

	fmt.Print("Retrieving menu...")
	full, err := client.RetrieveRestaurantInfo(context.Background(), *restaurantID)
	if err != nil {
		log.Fatalf("Failed to retrieve restaurant info: %v", err)
	}
	fmt.Printf(" done (sections: %d, items: %d, currency: %s).\n",
		len(full.Menu.Sections), len(full.Menu.Items), full.Restaurant.Currency)

	localizer := menu.NewLocalizer(full.Restaurant.Locale, *locale)
	index := menu.NewIndex(full.Menu.Items)

	for _, section := range full.Menu.Sections {
		fmt.Println()
		fmt.Println(localizer.Localize(section.Title))
		printSection(localizer, index, section, 1)
	}
}

func printSection(localizer *menu.Localizer, index *menu.Index, section menu.Section, depth int) {
	indent := strings.Repeat("\t", depth)

	for _, child := range section.Children {
		fmt.Println(indent + localizer.Localize(child.Title))
		printSection(localizer, index, child, depth+1)
	}

	for _, itemID := range section.ItemIDs {
		item, ok := index.Lookup(itemID)
		if !ok {
			continue
		}

		fmt.Print(indent + localizer.Localize(item.Title))
		if !item.Price.IsZero() {
			fmt.Printf(" [%s]", item.Price)
		}
		fmt.Println()

		for _, variation := range item.Variations {
			fmt.Printf("%s\t%s [min: %d, max: %d]\n", indent,
				localizer.Localize(variation.Title),
				variation.MinNumAllowed, variation.MaxNumAllowed)

			for _, choiceID := range variation.ItemIDs {
				choice, ok := index.Lookup(choiceID)
				if !ok {
					continue
				}
				fmt.Printf("%s\t\t%s", indent, localizer.Localize(choice.Title))
				if extra := variation.PriceOf(choiceID); !extra.IsZero() {
					fmt.Printf(" [+%s]", extra)
				}
				fmt.Println()
			}
		}
	}
}
