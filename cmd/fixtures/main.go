package main

import (
	"context"
	"fmt"
	"os"

	"footy-api/config"
	"footy-api/fixtures"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	config.SetupLogger(cfg.Log)

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	fixtureManager := fixtures.NewFixtures(db)
	ctx := context.Background()

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	switch command {
	case "generate":
		if err := fixtureManager.GenerateTestData(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to generate fixtures")
		}
	case "clear":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal().Err(err).Msg("failed to clear fixtures")
		}
	case "regenerate":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal().Err(err).Msg("failed to clear fixtures")
		}
		if err := fixtureManager.GenerateTestData(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to generate fixtures")
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Generate the AFL league, teams, venues and a season of games")
	fmt.Println("  go run ./cmd/fixtures clear       - Clear all fixture data")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and regenerate all data")
}
