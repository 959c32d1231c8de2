// Package seed implements the `seed` subcommand.
package seed

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

var (
	env           string
	adminPassword string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed baseline data",
		Long: `Provision demo employees, the admin account, and a starter software
catalog. Safe to run repeatedly; existing records are left untouched.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for the admin account (prompted when omitted)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.NewManager().Migrate(database.Get()); err != nil {
		return err
	}

	password := adminPassword
	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	seeder := seeds.NewSeeder(
		repository.NewUserRepository(database.Get()),
		repository.NewSoftwareRepository(database.Get()),
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
	)

	if err := seeder.Run(cmd.Context(), password); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("seeding completed")
	return nil
}

func promptPassword() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("no terminal available, pass --admin-password")
	}

	fmt.Fprint(os.Stderr, "Admin password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", fmt.Errorf("admin password cannot be empty")
	}

	return password, nil
}
