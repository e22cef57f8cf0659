package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/registry-dev/registry/db"
	"github.com/registry-dev/registry/internal/router"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, relying on environment")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	conn, err := db.Connect(dsn)

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	if err := db.SeedTypes(conn); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed reference data")
	}

	origins := []string{"http://localhost:5173"}

	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r := router.NewRouter(conn, origins)

	port := os.Getenv("PORT")

	if port == "" {
		port = "3000"
		log.Info().Msg("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
