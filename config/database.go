package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "go-postgres-carbooks/logger"
)

var DB *gorm.DB

func ConnectDB() {
	lg := applog.WithComponent("db")

	// Hosted deploys provide DATABASE_URL; DB_URL is the manual fallback.
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DB_URL")
	}

	if dbURL == "" {
		// Local development defaults
		host := envOr("DB_HOST", "localhost")
		user := envOr("DB_USER", "postgres")
		password := envOr("DB_PASSWORD", "postgres")
		dbname := envOr("DB_NAME", "carbooks")
		port := envOr("DB_PORT", "5432")
		dbURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, password, dbname, port,
		)
	} else {
		// Hosted postgres usually wants sslmode=require
		if !strings.Contains(dbURL, "sslmode=") {
			dbURL = dbURL + sep(dbURL) + "sslmode=require"
		}
		// keep tables in the public schema
		if !strings.Contains(dbURL, "search_path=") {
			dbURL = dbURL + sep(dbURL) + "search_path=public"
		}
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		lg.Fatal().Err(err).Msg("database connection failed")
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		lg.Warn().Err(err).Msg("could not set session timezone")
	}

	var dbName, currentUser string
	_ = db.Raw("SELECT current_database()").Scan(&dbName)
	_ = db.Raw("SELECT current_user").Scan(&currentUser)
	lg.Info().Str("db", dbName).Str("user", currentUser).Msg("database connected")

	DB = db
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func sep(url string) string {
	if strings.Contains(url, "?") {
		return "&"
	}
	return "?"
}
