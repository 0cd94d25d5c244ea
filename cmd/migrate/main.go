// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go              # Run all pending migrations
// go run cmd/migrate/main.go -down        # Rollback all migrations
// go run cmd/migrate/main.go -steps 1     # Run one migration
// go run cmd/migrate/main.go -steps -1    # Rollback one migration
// go run cmd/migrate/main.go -force 1     # Force version 1
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/solobooks/solobooks/config"
	"github.com/solobooks/solobooks/internal/db/migrations"
)

func main() {
	// .env is optional, env vars may come from the environment directly
	_ = godotenv.Load()

	// Build database URL from env vars
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.GetEnv("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD", "postgres"),
		config.GetEnv("DB_HOST", "localhost"),
		config.GetEnv("DB_PORT", "5432"),
		config.GetEnv("DB_NAME", "solobooks"),
		config.GetEnv("DB_SSL_MODE", "disable"),
	)

	opts := migrations.DefaultOptions()
	var (
		dbURLFlag = flag.String("db", "", "Database URL (optional, defaults to env vars)")
		down      = flag.Bool("down", false, "Roll back migrations")
		steps     = flag.Int("steps", 0, "Number of migrations to apply (up or down)")
		force     = flag.Int("force", -1, "Force a specific version")
	)
	flag.StringVar(&opts.SourceURL, "path", opts.SourceURL, "Path to migration files")
	flag.IntVar(&opts.ConnectAttempts, "retries", opts.ConnectAttempts, "Number of connection retries")
	flag.DurationVar(&opts.ConnectWait, "retry-wait", opts.ConnectWait, "Wait time between retries")
	flag.Parse()

	// Use command line flag if provided, otherwise use env vars
	if *dbURLFlag != "" {
		dbURL = *dbURLFlag
	}
	opts.DatabaseURL = dbURL

	runner, err := migrations.NewRunner(opts)
	if err != nil {
		log.Fatalf("Failed to create migration runner: %v", err)
	}

	// Handle force version
	if *force >= 0 {
		if err := runner.Force(*force); err != nil {
			log.Fatalf("Failed to force version %d: %v", *force, err)
		}
		log.Printf("Successfully forced version to %d", *force)
		os.Exit(0)
	}

	// Handle steps
	if *steps != 0 {
		if err := runner.Steps(*steps); err != nil {
			log.Fatalf("Failed to apply %d steps: %v", *steps, err)
		}
		log.Printf("Successfully applied %d steps", *steps)
		os.Exit(0)
	}

	// Handle up/down
	if *down {
		if err := runner.Down(); err != nil {
			log.Fatalf("Migration rollback failed: %v", err)
		}
		log.Println("Rollback completed successfully")
	} else {
		if err := runner.Up(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")
	}

	version, dirty, err := runner.Version()
	if err != nil {
		log.Printf("Warning: could not get final version: %v", err)
	} else {
		log.Printf("Current migration version: %d (dirty: %v)", version, dirty)
	}
}
