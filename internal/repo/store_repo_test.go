package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-ratings/internal/domain"
	"store-ratings/internal/repo"
)

func TestListWithUserRating_NoRatings(t *testing.T) {
	db := newTestDB(t)
	stores := repo.NewStoreRepo(db)
	u := seedUser(t, db, "Normal User Test Account One", "u1@example.com", domain.RoleNormalUser)
	seedStore(t, db, "Fresh Grocery Market Downtown", "1 Main St", nil)
	seedStore(t, db, "Antique Book Shop Riverside", "2 Main St", nil)

	rows, err := stores.ListWithUserRating(context.Background(), repo.StoreFilter{}, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, 0.0, r.AverageRating)
		assert.Equal(t, int64(0), r.RatingCount)
		assert.Nil(t, r.UserRating)
	}
}

func TestListWithUserRating_Personalized(t *testing.T) {
	db := newTestDB(t)
	stores := repo.NewStoreRepo(db)
	ratings := repo.NewRatingRepo(db)
	ctx := context.Background()

	a := seedUser(t, db, "Normal User Test Account One", "a@example.com", domain.RoleNormalUser)
	b := seedUser(t, db, "Normal User Test Account Two", "b@example.com", domain.RoleNormalUser)
	s1 := seedStore(t, db, "Fresh Grocery Market Downtown", "1 Main St", nil)
	seedStore(t, db, "Antique Book Shop Riverside", "2 Main St", nil)

	_, err := ratings.Upsert(ctx, a.ID, s1.ID, 4)
	require.NoError(t, err)
	_, err = ratings.Upsert(ctx, b.ID, s1.ID, 2)
	require.NoError(t, err)

	rowsA, err := stores.ListWithUserRating(ctx, repo.StoreFilter{}, a.ID)
	require.NoError(t, err)
	require.Len(t, rowsA, 2)

	byID := map[uint]repo.StoreRow{}
	for _, r := range rowsA {
		byID[r.ID] = r
	}
	got := byID[s1.ID]
	assert.Equal(t, 3.0, got.AverageRating)
	assert.Equal(t, int64(2), got.RatingCount)
	require.NotNil(t, got.UserRating)
	assert.Equal(t, 4, *got.UserRating)

	rowsB, err := stores.ListWithUserRating(ctx, repo.StoreFilter{}, b.ID)
	require.NoError(t, err)
	for _, r := range rowsB {
		if r.ID == s1.ID {
			require.NotNil(t, r.UserRating)
			assert.Equal(t, 2, *r.UserRating)
		} else {
			assert.Nil(t, r.UserRating)
		}
	}
}

func TestListWithUserRating_FilterAndSort(t *testing.T) {
	db := newTestDB(t)
	stores := repo.NewStoreRepo(db)
	ratings := repo.NewRatingRepo(db)
	ctx := context.Background()

	u := seedUser(t, db, "Normal User Test Account One", "u@example.com", domain.RoleNormalUser)
	s1 := seedStore(t, db, "Fresh Grocery Market Downtown", "1 Main St", nil)
	s2 := seedStore(t, db, "Antique Book Shop Riverside", "2 River Rd", nil)

	_, err := ratings.Upsert(ctx, u.ID, s2.ID, 5)
	require.NoError(t, err)

	// case-insensitive substring filter
	rows, err := stores.ListWithUserRating(ctx, repo.StoreFilter{Name: "grocery"}, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, s1.ID, rows[0].ID)

	// sort by aggregate
	rows, err = stores.ListWithUserRating(ctx, repo.StoreFilter{SortBy: "average_rating", SortOrder: "desc"}, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, s2.ID, rows[0].ID)

	// unknown sortBy falls back to name asc rather than erroring
	rows, err = stores.ListWithUserRating(ctx, repo.StoreFilter{SortBy: "foo"}, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Antique Book Shop Riverside", rows[0].Name)

	// identical filters, no writes in between: identical result
	again, err := stores.ListWithUserRating(ctx, repo.StoreFilter{SortBy: "foo"}, u.ID)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestAdminList_OwnerJoin(t *testing.T) {
	db := newTestDB(t)
	stores := repo.NewStoreRepo(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Store Owner Test Account One", "owner@example.com", domain.RoleStoreOwner)
	seedStore(t, db, "Fresh Grocery Market Downtown", "1 Main St", &owner.ID)
	seedStore(t, db, "Antique Book Shop Riverside", "2 River Rd", nil)

	rows, err := stores.AdminList(ctx, repo.StoreFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, r := range rows {
		if r.OwnerID != nil {
			require.NotNil(t, r.OwnerName)
			assert.Equal(t, owner.Name, *r.OwnerName)
			require.NotNil(t, r.OwnerEmail)
			assert.Equal(t, owner.Email, *r.OwnerEmail)
		} else {
			assert.Nil(t, r.OwnerName)
			assert.Nil(t, r.OwnerEmail)
		}
		assert.Equal(t, 0.0, r.AverageRating)
		assert.Equal(t, int64(0), r.RatingCount)
	}
}

func TestOwnerStores(t *testing.T) {
	db := newTestDB(t)
	stores := repo.NewStoreRepo(db)
	ratings := repo.NewRatingRepo(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Store Owner Test Account One", "owner@example.com", domain.RoleStoreOwner)
	rater := seedUser(t, db, "Normal User Test Account One", "rater@example.com", domain.RoleNormalUser)
	s := seedStore(t, db, "Fresh Grocery Market Downtown", "1 Main St", &owner.ID)
	seedStore(t, db, "Antique Book Shop Riverside", "2 River Rd", nil)

	_, err := ratings.Upsert(ctx, rater.ID, s.ID, 4)
	require.NoError(t, err)

	rows, err := stores.OwnerStores(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, s.ID, rows[0].ID)
	assert.Equal(t, 4.0, rows[0].AverageRating)
	assert.Equal(t, int64(1), rows[0].RatingCount)
}
