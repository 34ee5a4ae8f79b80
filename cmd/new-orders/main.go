// Command new-orders demonstrates the restaurant side: log in for an access
// token, retrieve unhandled orders, and mark them accepted, reporting an
// external point-of-sale identifier back to the platform.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"tableside"
	"tableside/internal/metrics"
)

var (
	configFile   = flag.String("config", "configs/config.yaml", "Path to configuration file")
	restaurantID = flag.String("restaurant", "", "Restaurant identifier")
	clientID     = flag.String("client-id", "", "API client identifier")
	secret       = flag.String("secret", "", "API client secret")
)

func main() {
	flag.Parse()
	if *restaurantID == "" || *clientID == "" || *secret == "" {
		log.Fatal("missing required -restaurant, -client-id, or -secret flag")
	}

	config, err := tableside.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	collector := metrics.NewCollector()
	client := tableside.NewClient(*config, tableside.WithMetrics(collector))
	auth := tableside.NewAuthClient(*config)
	ctx := context.Background()

	fmt.Print("Authenticating...")
	token, err := auth.Login(ctx, *clientID, *secret)
	if err != nil {
		log.Fatalf("Failed to authenticate: %v", err)
	}
	if expiry, err := token.Expiry(); err == nil {
		fmt.Printf(" done (token valid until %s).\n", expiry)
	} else {
		fmt.Println(" done.")
	}

	fmt.Print("Retrieving new orders...")
	newOrders, err := client.RetrieveNewOrders(ctx, token.AccessToken, *restaurantID)
	if err != nil {
		log.Fatalf("Failed to retrieve new orders: %v", err)
	}
	fmt.Printf(" got %d new orders.\n", len(newOrders))

	for _, order := range newOrders {
		externalIDs := map[string]string{"org.example.pos": "SOME-POS-ORDER-ID"}
		accepted, err := client.AcceptOrder(ctx, token.AccessToken, order.ID, externalIDs)
		if err != nil {
			log.Printf("Failed to accept order %s: %v", order.ID, err)
			continue
		}
		fmt.Printf("Accepted order %s (total %s %s).\n",
			accepted.ID, accepted.Price, accepted.Currency)
	}
}
