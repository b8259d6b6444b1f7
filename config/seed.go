package config

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	applog "go-postgres-carbooks/logger"
	"go-postgres-carbooks/models"
)

// SeedAdmin makes sure there is one admin account to log in with. Credentials
// come from ADMIN_EMAIL / ADMIN_PASSWORD; the insert is a no-op once the row
// exists.
func SeedAdmin() {
	lg := applog.WithComponent("seed")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		lg.Debug().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		lg.Error().Err(err).Msg("could not hash admin password")
		return
	}

	admin := models.User{
		FullName:     "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error; err != nil {
		lg.Error().Err(err).Msg("admin seed failed")
		return
	}
	lg.Info().Str("email", email).Msg("admin account ready")
}
