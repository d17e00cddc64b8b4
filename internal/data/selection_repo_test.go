package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	"github.com/foodbot-ai/dashboard-api/internal/store"
)

func TestSelectionRepo_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewSelectionRepo(store.NewMemoryStore())
	ctx := context.Background()

	sel, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Selection{}, sel, "absent keys read as empty strings")

	require.NoError(t, repo.SetRestaurant(ctx, "rest_9"))
	require.NoError(t, repo.SetMenu(ctx, "m1"))

	sel, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Selection{RestaurantID: "rest_9", MenuID: "m1"}, sel)
}

func TestSelectionRepo_ClearMenu(t *testing.T) {
	t.Parallel()

	repo := NewSelectionRepo(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.SetRestaurant(ctx, "rest_9"))
	require.NoError(t, repo.SetMenu(ctx, "m1"))
	require.NoError(t, repo.ClearMenu(ctx))

	sel, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rest_9", sel.RestaurantID, "restaurant selection survives a menu clear")
	assert.Empty(t, sel.MenuID)

	// Clearing an already-clear menu is a no-op.
	require.NoError(t, repo.ClearMenu(ctx))
}
