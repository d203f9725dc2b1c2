package metawall_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	metawall "github.com/kelvin80121/metawall"
)

// newTestDB opens a per-test in-memory database with the schema applied.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	assert.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	assert.NoError(t, metawall.CreateSchema(context.Background(), db))
	return db
}

func seedUser(t *testing.T, repo metawall.Users, email string) *metawall.User {
	t.Helper()

	user, err := repo.Create(context.Background(), &metawall.User{
		Name:         "Kelvin",
		Email:        email,
		PasswordHash: "stored-hash",
	})
	assert.NoError(t, err)
	assert.NotNil(t, user)
	return user
}

func TestUsersRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := metawall.NewUsersRepository(db)
	ctx := context.Background()

	created := seedUser(t, repo, "kelvin@example.com")
	assert.NotEqual(t, "", created.ID.String())

	t.Run("create blanks the secrets on the returned copy", func(t *testing.T) {
		assert.Empty(t, created.PasswordHash)
		assert.Empty(t, created.VerificationToken)
	})

	t.Run("default read skips the secret columns", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "kelvin@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.Empty(t, found.PasswordHash)
	})

	t.Run("secrets variant selects the stored credential", func(t *testing.T) {
		found, err := repo.FindByEmailWithSecrets(ctx, "kelvin@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "stored-hash", found.PasswordHash)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "kelvin@example.com", found.Email)
	})

	t.Run("missing records come back nil without an error", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate email is rejected by the unique constraint", func(t *testing.T) {
		_, err := repo.Create(ctx, &metawall.User{
			Name:         "Imposter",
			Email:        "kelvin@example.com",
			PasswordHash: "other-hash",
		})
		assert.Error(t, err)
	})
}

func TestUsersRepositoryUpdateByID(t *testing.T) {
	db := newTestDB(t)
	repo := metawall.NewUsersRepository(db)
	ctx := context.Background()

	created := seedUser(t, repo, "kelvin@example.com")

	t.Run("patch touches only the supplied fields", func(t *testing.T) {
		name := "Kelvin Huang"
		updated, err := repo.UpdateByID(ctx, created.ID, metawall.UserPatch{Name: &name})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "Kelvin Huang", updated.Name)
		assert.Equal(t, "kelvin@example.com", updated.Email)
		assert.Empty(t, updated.Photo)
	})

	t.Run("empty patch reads the record back unchanged", func(t *testing.T) {
		updated, err := repo.UpdateByID(ctx, created.ID, metawall.UserPatch{})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "kelvin@example.com", updated.Email)
	})

	t.Run("patching a missing record comes back nil", func(t *testing.T) {
		ghost := seedUser(t, repo, "temp@example.com")
		name := "Nobody"

		_, err := db.NewDelete().Model((*metawall.User)(nil)).Where("id = ?", ghost.ID).Exec(ctx)
		assert.NoError(t, err)

		updated, err := repo.UpdateByID(ctx, ghost.ID, metawall.UserPatch{Name: &name})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestUsersRepositoryResetPassword(t *testing.T) {
	db := newTestDB(t)
	repo := metawall.NewUsersRepository(db)
	ctx := context.Background()

	created := seedUser(t, repo, "kelvin@example.com")

	t.Run("replaces the stored credential", func(t *testing.T) {
		assert.NoError(t, repo.ResetPassword(ctx, created.ID, "rotated-hash"))

		found, err := repo.FindByEmailWithSecrets(ctx, "kelvin@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "rotated-hash", found.PasswordHash)
	})

	t.Run("unknown account reports not found", func(t *testing.T) {
		ghost := seedUser(t, repo, "temp@example.com")
		_, err := db.NewDelete().Model((*metawall.User)(nil)).Where("id = ?", ghost.ID).Exec(ctx)
		assert.NoError(t, err)

		err = repo.ResetPassword(ctx, ghost.ID, "rotated-hash")
		assert.ErrorIs(t, err, metawall.ErrUserNotFound)
	})
}
