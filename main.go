package main

import (
	"os"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/logger"
	"go-postgres-carbooks/models"
	"go-postgres-carbooks/routes"
	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()
	log := logger.WithComponent("main")

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Advance{},
		&models.AdvancePayment{},
		&models.Sale{},
		&models.TransactionDetail{},
		&models.LeaseCollection{},
		&models.PendingSale{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	config.SeedAdmin()

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Vehicle import books API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
