package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/thread/internal/config"
	"github.com/agenthands/thread/internal/core"
	"github.com/agenthands/thread/internal/registry"
	"github.com/agenthands/thread/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Defaults()
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	if loaded, err := config.Load(cfgPath); err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
	} else {
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Registry.APIKey == "" {
		log.Println("Warning: no registry API key configured (set COMPANIES_HOUSE_KEY)")
	}

	client := registry.NewHTTPClient(registry.Config{
		BaseURL: cfg.Registry.BaseURL,
		APIKey:  cfg.Registry.APIKey,
		Timeout: cfg.Registry.Timeout(),
	})
	srv := server.NewServer(core.NewWalker(client), cfg.Discovery)
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s (registry %s)", cfg.Server.Port, cfg.Registry.BaseURL)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
