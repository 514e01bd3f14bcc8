package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"goabtest/internal"
	"goabtest/internal/config"
	"goabtest/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(appConfig, internal.DefaultLogger)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := c.Analyze(ctx, os.Stdout); err != nil {
		stop()
		log.Fatalf("A/B test failed: %v", err)
	}
}
