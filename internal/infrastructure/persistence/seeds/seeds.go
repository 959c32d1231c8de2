// Package seeds loads a baseline data set for local development and first
// deployments: demo employees, one admin account, and a starter software
// catalog. Seeding is idempotent; existing records are left untouched.
package seeds

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/software"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type Seeder struct {
	users    user.Repository
	software software.Repository
	hasher   *auth.PasswordHasher
	log      logger.Interface
}

func NewSeeder(users user.Repository, softwareRepo software.Repository, hasher *auth.PasswordHasher) *Seeder {
	return &Seeder{
		users:    users,
		software: softwareRepo,
		hasher:   hasher,
		log:      logger.NewLogger().Named("seeds"),
	}
}

// Run seeds employees, the admin account, and the software catalog.
// adminPassword applies only when the admin account does not exist yet.
func (s *Seeder) Run(ctx context.Context, adminPassword string) error {
	if err := s.seedEmployees(ctx); err != nil {
		return err
	}
	if err := s.seedAdmin(ctx, adminPassword); err != nil {
		return err
	}
	if err := s.seedSoftware(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Seeder) seedEmployees(ctx context.Context) error {
	employees := []struct {
		username   string
		employeeID string
		email      string
	}{
		{"jsmith", "EMP-1001", "jsmith@example.com"},
		{"mgarcia", "EMP-1002", "mgarcia@example.com"},
		{"achen", "EMP-1003", "achen@example.com"},
	}

	for _, e := range employees {
		existing, err := s.users.FindByUsername(ctx, e.username)
		if err != nil && !apperrors.IsNotFoundError(err) {
			return fmt.Errorf("failed to check user %s: %w", e.username, err)
		}
		if existing != nil {
			continue
		}

		u, err := user.NewUser(e.username, e.employeeID, e.email, false)
		if err != nil {
			return fmt.Errorf("failed to build user %s: %w", e.username, err)
		}
		if err := s.users.Save(ctx, u); err != nil {
			return fmt.Errorf("failed to save user %s: %w", e.username, err)
		}

		s.log.Infow("seeded employee", "username", e.username, "employee_id", e.employeeID)
	}

	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, password string) error {
	const adminUsername = "admin"

	existing, err := s.users.FindByUsername(ctx, adminUsername)
	if err != nil && !apperrors.IsNotFoundError(err) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	if password == "" {
		return fmt.Errorf("admin password is required to create the admin account")
	}

	admin, err := user.NewUser(adminUsername, "EMP-0001", "admin@example.com", true)
	if err != nil {
		return fmt.Errorf("failed to build admin account: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := admin.SetPasswordHash(hash); err != nil {
		return err
	}

	if err := s.users.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to save admin account: %w", err)
	}

	s.log.Infow("seeded admin account", "username", adminUsername)
	return nil
}

func (s *Seeder) seedSoftware(ctx context.Context) error {
	catalog := []struct {
		name    string
		version string
	}{
		{"Microsoft Office", "2024"},
		{"Slack", "4.39"},
		{"Zoom", "6.1"},
		{"Adobe Acrobat Reader", "24.2"},
		{"Visual Studio Code", "1.92"},
	}

	for _, item := range catalog {
		existing, err := s.software.FindByNameAndVersion(ctx, item.name, item.version)
		if err != nil && !apperrors.IsNotFoundError(err) {
			return fmt.Errorf("failed to check software %s: %w", item.name, err)
		}
		if existing != nil {
			continue
		}

		entry, err := software.NewEntry(item.name, item.version)
		if err != nil {
			return fmt.Errorf("failed to build software entry %s: %w", item.name, err)
		}
		if err := s.software.Save(ctx, entry); err != nil {
			return fmt.Errorf("failed to save software entry %s: %w", item.name, err)
		}

		s.log.Infow("seeded software entry", "name", item.name, "version", item.version)
	}

	return nil
}
