package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/schedax/schedax/scheduleservice"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	if err := scheduleservice.Run(); err != nil {
		log.Error().Err(err).Msg("schedax-service exited with error")
		os.Exit(1)
	}
}
