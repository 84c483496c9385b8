package main

import (
	"context"
	"errors"
	"log"

	"weather-dashboard/config"
	"weather-dashboard/di"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("[MAIN] Invalid configuration: %v", cfgErr)
		}
		log.Fatalf("[MAIN] Could not load configuration: %v", err)
	}

	container, err := di.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[MAIN] Could not initialize container: %v", err)
	}

	log.Println("[MAIN] starting server!")
	err = container.DashboardHttpServer.Start()
	if closeErr := container.Close(); closeErr != nil {
		log.Printf("[MAIN] Error closing container: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("[MAIN] Server stopped with error: %v", err)
	}
}
