package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	"github.com/foodbot-ai/dashboard-api/internal/store"
	"github.com/foodbot-ai/dashboard-api/internal/testutil"
)

func newTestRestaurantRepo(t *testing.T) (*RestaurantRepo, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	repo := NewRestaurantRepo(RestaurantRepoOptions{Store: s, Logger: testutil.DiscardLogger()})
	return repo, s
}

func TestRestaurantRepo_List_EmptyByDefault(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRestaurantRepo(t)

	restaurants, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestRestaurantRepo_List_EmptyOnMalformedPayload(t *testing.T) {
	t.Parallel()

	repo, s := newTestRestaurantRepo(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, store.KeyRestaurants, []byte("not json")))

	restaurants, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestRestaurantRepo_Create_DuplicateID(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRestaurantRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.CreateRestaurantRequest{ID: "rest_9", Name: "Test Diner"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.CreateRestaurantRequest{ID: "rest_9", Name: "Other Name"})
	require.ErrorIs(t, err, ErrRestaurantIDExists)

	restaurants, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
}

func TestRestaurantRepo_Search_CaseInsensitive(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRestaurantRepo(t)
	ctx := context.Background()

	for _, r := range []model.CreateRestaurantRequest{
		{ID: "rest_9", Name: "Test Diner"},
		{ID: "rest_10", Name: "Burger Barn"},
	} {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	matched, err := repo.Search(ctx, "test")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "rest_9", matched[0].ID)

	all, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := repo.Search(ctx, "pizza")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRestaurantRepo_GetByID(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRestaurantRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.CreateRestaurantRequest{ID: "rest_9", Name: "Test Diner"})
	require.NoError(t, err)

	got, ok, err := repo.GetByID(ctx, "rest_9")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Test Diner", got.Name)

	_, ok, err = repo.GetByID(ctx, "rest_404")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestaurantRepo_Delete(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRestaurantRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.CreateRestaurantRequest{ID: "rest_9", Name: "Test Diner"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "rest_9"))
	require.ErrorIs(t, repo.Delete(ctx, "rest_9"), ErrRestaurantNotFound)
}
