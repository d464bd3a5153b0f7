package main

import (
	"flag"
	"log"
	"os"

	"TSForge/internal/di"
	"TSForge/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config source (yaml/json file or clickhouse:// DSN)")
	flag.Parse()

	// Load config from the selected source
	src, err := config.Open(*configPath)
	if err != nil {
		log.Fatalf("config source: %v", err)
	}
	cfg, err := src.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Wire DI: initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run the generation batch (blocks until done or signalled)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
