// setrole is the operational escape hatch for role changes: it assigns
// admin or staff to an existing account by email, straight against the
// database. Run ad hoc, never from the application.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"go-postgres-carbooks/config"
	"go-postgres-carbooks/logger"
	"go-postgres-carbooks/models"
)

var (
	email string
	role  string
)

var rootCmd = &cobra.Command{
	Use:   "setrole",
	Short: "Assign a role to a user by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		if role != models.RoleAdmin && role != models.RoleStaff {
			return errors.New("role must be admin or staff")
		}

		config.ConnectDB()
		log := logger.WithComponent("setrole")

		var user models.User
		if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
			return fmt.Errorf("no user with email %s", email)
		}
		if err := config.DB.Model(&user).Update("role", role).Error; err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		log.Info().Str("email", email).Str("role", role).Msg("role updated")
		fmt.Printf("%s is now %s\n", email, role)
		return nil
	},
}

func main() {
	_ = godotenv.Load()
	logger.Setup()

	rootCmd.Flags().StringVar(&email, "email", "", "email of the account")
	rootCmd.Flags().StringVar(&role, "role", "", "admin or staff")
	_ = rootCmd.MarkFlagRequired("email")
	_ = rootCmd.MarkFlagRequired("role")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
