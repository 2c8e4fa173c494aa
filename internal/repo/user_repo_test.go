package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-ratings/internal/domain"
	"store-ratings/internal/repo"
)

func seedThreeUsers(t *testing.T, users *repo.UserRepo) {
	t.Helper()
	ctx := context.Background()
	addr := "12 Oak Avenue, Springfield"
	for _, u := range []*domain.User{
		{Name: "Alice Admin Test Account One", Email: "alice@example.com", PasswordHash: "x", Role: domain.RoleAdmin, Address: &addr},
		{Name: "Bob Normal User Test Account", Email: "bob@example.com", PasswordHash: "x", Role: domain.RoleNormalUser},
		{Name: "Carol Store Owner Account One", Email: "carol@example.com", PasswordHash: "x", Role: domain.RoleStoreOwner},
	} {
		require.NoError(t, users.Create(ctx, u))
	}
}

func TestUserList_RoleFilter(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	seedThreeUsers(t, users)
	ctx := context.Background()

	got, err := users.List(ctx, repo.UserFilter{Role: "store_owner"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "carol@example.com", got[0].Email)

	// unrecognized role is ignored, not an error
	got, err = users.List(ctx, repo.UserFilter{Role: "superuser"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestUserList_NameFilterCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	seedThreeUsers(t, users)

	got, err := users.List(context.Background(), repo.UserFilter{Name: "ALICE"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice@example.com", got[0].Email)
}

func TestUserList_SortAllowListAndFallback(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	seedThreeUsers(t, users)
	ctx := context.Background()

	got, err := users.List(ctx, repo.UserFilter{SortBy: "email", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "carol@example.com", got[0].Email)
	assert.Equal(t, "alice@example.com", got[2].Email)

	// unknown sortBy falls back to the default ordering without erroring
	got, err = users.List(ctx, repo.UserFilter{SortBy: "password_hash; DROP TABLE users"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	ctx := context.Background()

	u := seedUser(t, db, "Bob Normal User Test Account", "bob@example.com", domain.RoleNormalUser)

	addr := "99 Pine Street, Rivertown"
	got, err := users.UpdateProfile(ctx, u.ID, repo.ProfileUpdate{Address: &addr})
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	assert.Equal(t, addr, *got.Address)
	assert.Equal(t, "Bob Normal User Test Account", got.Name)

	name := "Robert Normal User Account Two"
	got, err = users.UpdateProfile(ctx, u.ID, repo.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	require.NotNil(t, got.Address)
	assert.Equal(t, addr, *got.Address)
}

func TestFindByEmail_MissingIsNilNil(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)

	u, err := users.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCountByRole(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	seedThreeUsers(t, users)
	seedUser(t, db, "Dave Normal User Test Account", "dave@example.com", domain.RoleNormalUser)

	total, byRole, err := users.CountByRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, int64(1), byRole[domain.RoleAdmin])
	assert.Equal(t, int64(2), byRole[domain.RoleNormalUser])
	assert.Equal(t, int64(1), byRole[domain.RoleStoreOwner])
}
