package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sammy-mbugua/portfolio/internal/application/usecase/seed"
)

//nolint:gochecknoglobals // Cobra boilerplate
var ownerEmail, ownerPassword string

//nolint:gochecknoglobals // Cobra boilerplate
var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Create or reset the admin user",
	Long: `Upserts the admin user. Email and password come from the flags when given,
otherwise from owner.email / owner.password (OWNER_EMAIL / OWNER_PASSWORD).`,
	RunE: runOwner,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(ownerCmd)
	ownerCmd.Flags().StringVar(&ownerEmail, "email", "", "admin email")
	ownerCmd.Flags().StringVar(&ownerPassword, "password", "", "admin password")
}

func runOwner(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	in := seed.OwnerInput{Email: env.cfg.Owner.Email, Password: env.cfg.Owner.Password}
	if ownerEmail != "" {
		in.Email = ownerEmail
	}
	if ownerPassword != "" {
		in.Password = ownerPassword
	}

	u, err := env.seeder.SeedOwner(cmd.Context(), in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added or updated owner '%s'\n", u.Email)
	return nil
}
