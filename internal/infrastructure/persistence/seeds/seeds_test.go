package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/repository"
)

func newSeeder(t *testing.T) (*Seeder, *repository.UserRepository, *repository.SoftwareRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AllModels()...))

	users := repository.NewUserRepository(db)
	softwareRepo := repository.NewSoftwareRepository(db)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	return NewSeeder(users, softwareRepo, hasher), users, softwareRepo
}

func TestSeeder_Run(t *testing.T) {
	seeder, users, softwareRepo := newSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, "changeme"))

	jsmith, err := users.FindByUsername(ctx, "jsmith")
	require.NoError(t, err)
	assert.Equal(t, "EMP-1001", jsmith.EmployeeID())
	assert.False(t, jsmith.IsAdmin())

	admin, err := users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.NotEmpty(t, admin.PasswordHash())
	assert.NotEqual(t, "changeme", admin.PasswordHash())

	entries, err := softwareRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	seeder, users, softwareRepo := newSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, "changeme"))

	// The second run passes no password; existing records must survive.
	require.NoError(t, seeder.Run(ctx, ""))

	admin, err := users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	entries, err := softwareRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestSeeder_Run_RequiresAdminPassword(t *testing.T) {
	seeder, _, _ := newSeeder(t)

	err := seeder.Run(context.Background(), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "admin password is required")
}
