// Command submit-order demonstrates the submit-order flow: retrieve the
// menu, build an order with one plain item and one item with a variation
// choice, submit it, and fetch the submitted order back as its owner.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"tableside"
	"tableside/customers"
	"tableside/menu"
	"tableside/orders"
)

var (
	configFile   = flag.String("config", "configs/config.yaml", "Path to configuration file")
	restaurantID = flag.String("restaurant", "", "Restaurant identifier")
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
	ctx := context.Background()

	fmt.Print("Retrieving menu...")
	full, err := client.RetrieveRestaurantInfo(ctx, *restaurantID)
	if err != nil {
		log.Fatalf("Failed to retrieve restaurant info: %v", err)
	}
	fmt.Printf(" done (items: %d).\n", len(full.Menu.Items))

	order, err := buildSomeOrder(full)
	if err != nil {
		log.Fatalf("Failed to build order: %v", err)
	}

	fmt.Print("Submitting order...")
	submitted, err := client.SubmitOrder(ctx, "", order)
	if err != nil {
		log.Fatalf("Failed to submit order: %v", err)
	}
	fmt.Printf(" done (order ID: %s, status: %s, ownerToken: %s).\n",
		submitted.ID, submitted.Status, submitted.OwnerToken)

	fmt.Print("Retrieving order...")
	retrieved, err := client.RetrieveOrderAsOwner(ctx, submitted.ID, submitted.OwnerToken)
	if err != nil {
		log.Fatalf("Failed to retrieve order: %v", err)
	}
	fmt.Printf(" done (status: %s).\n", retrieved.Status)
}

func buildSomeOrder(full *tableside.RestaurantFullInfo) (*orders.Order, error) {
	index := menu.NewIndex(full.Menu.Items)

	carpaccio := index.FindFirst("carpaccio")
	coke := index.FindFirst("coke")
	if carpaccio == nil || coke == nil || len(coke.Variations) == 0 {
		return nil, fmt.Errorf("expected menu items not found")
	}
	cokeOption := coke.Variations[0]
	smallCoke, ok := index.Lookup(cokeOption.ItemIDs[0])
	if !ok {
		return nil, fmt.Errorf("choice item %q not in menu", cokeOption.ItemIDs[0])
	}

	carpaccioItem, err := orders.NewItemBuilder(carpaccio).
		Comment("Extra cheese please").
		Build()
	if err != nil {
		return nil, err
	}

	smallCokeChoice, err := orders.NewChoiceBuilder(smallCoke, &cokeOption).Build()
	if err != nil {
		return nil, err
	}
	cokeItem, err := orders.NewItemBuilder(coke).
		AddChoice(0, smallCokeChoice).
		Build()
	if err != nil {
		return nil, err
	}

	itemsPrice := orders.PriceAll(carpaccioItem, cokeItem)

	return orders.NewOrderBuilder().
		Developer("org.example").
		Restaurant(full.Restaurant.ID).
		Locale("en_US").
		Currency(full.Restaurant.Currency).
		Contact(customers.NewContactBuilder().
			FirstName("John").
			LastName("Doe").
			Phone("+12024561111").
			Email("johndoe@example.org").
			Build()).
		Dispatch(orders.NewTakeoutBuilder().Build()).
		AddItem(carpaccioItem).
		AddItem(cokeItem).
		Comment("I'm allergic to nuts.").
		AddPayment(orders.NewCashPaymentBuilder().Amount(itemsPrice).Build()).
		Build(), nil
}
