package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	database "github.com/fintrackio/fintrack/db"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, continuing with system environment variables")
	}

	connStr := os.Getenv("DB_CONNECTION_STRING")
	if connStr == "" {
		logger.Fatal("DB_CONNECTION_STRING is required")
	}

	if err := database.RunMigrations(connStr); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Migrations applied")
}
