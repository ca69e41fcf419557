package main

import (
	"flag"
	"log"

	"github.com/CTF179/photocomp/internal/config"
	"github.com/CTF179/photocomp/internal/repository"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := repository.RunMigrations(cfg.Database.URL(), *direction); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Printf("Migrations applied (%s)", *direction)
}
