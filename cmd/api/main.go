package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title        People API
// @version      1.0.0
// @description  CRUD service over a table of people.
// @BasePath     /api
func main() {
	// .env is for local development; deployed instances use the real environment.
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using system environment variables")
	}

	Serve()
}
