package main

import (
	"log"
	"os"
	"strings"

	"route-cost-service/internal/adapters/repositories"
	"route-cost-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
