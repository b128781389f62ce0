package main

import (
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/auth"
	"github.com/spf13/cobra"
)

func newCreateAdminCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a staff account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := connectDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if username == "" {
				username = cfg.Seed.AdminUsername
			}
			if password == "" {
				password = cfg.Seed.AdminPassword
			}
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required when the SEED_ADMIN_* variables are unset")
			}

			authService := serviceAuth.NewAuthService(
				postgresql.NewUserRepository(db),
				jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration),
				postgresql.NewJWTRepository(db),
			)
			created, err := authService.EnsureAdmin(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %q created\n", username)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %q already exists\n", username)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Admin username (defaults to SEED_ADMIN_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (defaults to SEED_ADMIN_PASSWORD)")
	return cmd
}
