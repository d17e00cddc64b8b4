package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
	"github.com/foodbot-ai/dashboard-api/internal/gateway"
	"github.com/foodbot-ai/dashboard-api/internal/mocks"
	"github.com/foodbot-ai/dashboard-api/internal/testutil"
)

type cascadeFixture struct {
	restaurants *mocks.MockRestaurantRepository
	selection   *mocks.MockSelectionRepository
	gw          *mocks.MockWebhookCaller
	svc         *CascadeService
}

func newCascadeFixture(t *testing.T, refresh time.Duration) *cascadeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &cascadeFixture{
		restaurants: mocks.NewMockRestaurantRepository(ctrl),
		selection:   mocks.NewMockSelectionRepository(ctrl),
		gw:          mocks.NewMockWebhookCaller(ctrl),
	}
	f.svc = NewCascadeService(CascadeServiceOptions{
		Restaurants:  f.restaurants,
		Selection:    f.selection,
		Gateway:      f.gw,
		Logger:       testutil.DiscardLogger(),
		RefreshDelay: refresh,
	})
	return f
}

// selectRestaurant walks the fixture through a successful restaurant
// selection so downstream tests start from a populated cascade.
func (f *cascadeFixture) selectRestaurant(t *testing.T, ctx context.Context, menusResp string) {
	t.Helper()
	f.restaurants.EXPECT().GetByID(ctx, "rest_9").
		Return(model.Restaurant{ID: "rest_9", Name: "Test Diner"}, true, nil)
	f.selection.EXPECT().SetRestaurant(ctx, "rest_9").Return(nil)
	f.selection.EXPECT().ClearMenu(ctx).Return(nil)
	f.gw.EXPECT().Call(ctx, gateway.OpRestaurantMenu, gomock.Any()).
		Return(json.RawMessage(menusResp), nil)

	_, err := f.svc.SelectRestaurant(ctx, "rest_9")
	require.NoError(t, err)
}

func (f *cascadeFixture) selectMenu(t *testing.T, ctx context.Context, menuID, modifiersResp string) {
	t.Helper()
	f.selection.EXPECT().SetMenu(ctx, menuID).Return(nil)
	f.gw.EXPECT().Call(ctx, gateway.OpModifierListing, gomock.Any()).
		Return(json.RawMessage(modifiersResp), nil)

	_, err := f.svc.SelectMenu(ctx, menuID)
	require.NoError(t, err)
}

const lunchMenus = `{"menus":[{"menu_id":"m1","menu_name":"Lunch"}]}`

const toppingsListing = `{"modifiers":[{
	"modifier_category_id":"c1","modifier_category_name":"Toppings",
	"modifiers":[{"modifier_item_id":"i1","modifier_item_name":"Cheese","price":"1.00","sequence_id":1}]
}]}`

func TestCascadeService_SelectRestaurant_Unknown(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.restaurants.EXPECT().GetByID(ctx, "rest_404").Return(model.Restaurant{}, false, nil)

	_, err := f.svc.SelectRestaurant(ctx, "rest_404")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCascadeService_SelectRestaurant(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)

	state := f.svc.State()
	require.NotNil(t, state.Restaurant)
	assert.Equal(t, "rest_9", state.Restaurant.ID)
	assert.Nil(t, state.Menu)
	assert.Equal(t, []model.Menu{{ID: "m1", Name: "Lunch"}}, state.Menus)
	assert.Empty(t, state.Categories)
}

func TestCascadeService_SelectRestaurant_ResetsDownstream(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)
	require.NotNil(t, f.svc.State().Menu)

	f.restaurants.EXPECT().GetByID(ctx, "rest_10").
		Return(model.Restaurant{ID: "rest_10", Name: "Burger Barn"}, true, nil)
	f.selection.EXPECT().SetRestaurant(ctx, "rest_10").Return(nil)
	f.selection.EXPECT().ClearMenu(ctx).Return(nil)
	f.gw.EXPECT().Call(ctx, gateway.OpRestaurantMenu, gomock.Any()).
		Return(json.RawMessage(`[]`), nil)

	state, err := f.svc.SelectRestaurant(ctx, "rest_10")
	require.NoError(t, err)
	assert.Equal(t, "rest_10", state.Restaurant.ID)
	assert.Nil(t, state.Menu, "menu selection must not survive a restaurant switch")
	assert.Empty(t, state.Menus)
	assert.Empty(t, state.Categories)
}

func TestCascadeService_SelectRestaurant_MenuFetchFailureKeepsCascade(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.restaurants.EXPECT().GetByID(ctx, "rest_9").
		Return(model.Restaurant{ID: "rest_9", Name: "Test Diner"}, true, nil)
	f.selection.EXPECT().SetRestaurant(ctx, "rest_9").Return(nil)
	f.selection.EXPECT().ClearMenu(ctx).Return(nil)
	f.gw.EXPECT().Call(ctx, gateway.OpRestaurantMenu, gomock.Any()).
		Return(nil, apperrors.Upstream("webhook down"))

	state, err := f.svc.SelectRestaurant(ctx, "rest_9")
	require.NoError(t, err, "a failed menu fetch must not fail the selection")
	assert.Equal(t, "rest_9", state.Restaurant.ID)
	assert.Empty(t, state.Menus)
}

func TestCascadeService_SelectMenu_NoRestaurant(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)

	_, err := f.svc.SelectMenu(context.Background(), "m1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCascadeService_SelectMenu_UnknownMenu(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)

	_, err := f.svc.SelectMenu(ctx, "m404")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCascadeService_SelectMenu(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)

	state := f.svc.State()
	require.NotNil(t, state.Menu)
	assert.Equal(t, "m1", state.Menu.ID)
	require.Len(t, state.Categories, 1)
	assert.Equal(t, "c1", state.Categories[0].CategoryID)
	require.Len(t, state.Categories[0].Items, 1)
	assert.Equal(t, 1.0, state.Categories[0].Items[0].Price)
}

func TestCascadeService_Restore_EmptySelection(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selection.EXPECT().Get(ctx).Return(model.Selection{}, nil)

	state, err := f.svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.Restaurant)
	assert.Nil(t, state.Menu)
}

func TestCascadeService_Restore_StaleRestaurantAbortsSilently(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selection.EXPECT().Get(ctx).Return(model.Selection{RestaurantID: "rest_gone"}, nil)
	f.restaurants.EXPECT().GetByID(ctx, "rest_gone").Return(model.Restaurant{}, false, nil)

	state, err := f.svc.Restore(ctx)
	require.NoError(t, err, "a stale selection is not an error")
	assert.Nil(t, state.Restaurant)
}

func TestCascadeService_Restore_FullCascade(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selection.EXPECT().Get(ctx).Return(model.Selection{RestaurantID: "rest_9", MenuID: "m1"}, nil)
	f.restaurants.EXPECT().GetByID(ctx, "rest_9").
		Return(model.Restaurant{ID: "rest_9", Name: "Test Diner"}, true, nil)
	f.gw.EXPECT().Call(ctx, gateway.OpRestaurantMenu, gomock.Any()).
		Return(json.RawMessage(lunchMenus), nil)
	f.gw.EXPECT().Call(ctx, gateway.OpModifierListing, gomock.Any()).
		Return(json.RawMessage(toppingsListing), nil)

	state, err := f.svc.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.Restaurant)
	require.NotNil(t, state.Menu)
	assert.Equal(t, "Lunch", state.Menu.Name)
	assert.Len(t, state.Categories, 1)
}

func TestCascadeService_Restore_MissingMenuGetsPlaceholder(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selection.EXPECT().Get(ctx).Return(model.Selection{RestaurantID: "rest_9", MenuID: "m9"}, nil)
	f.restaurants.EXPECT().GetByID(ctx, "rest_9").
		Return(model.Restaurant{ID: "rest_9", Name: "Test Diner"}, true, nil)
	f.gw.EXPECT().Call(ctx, gateway.OpRestaurantMenu, gomock.Any()).
		Return(json.RawMessage(lunchMenus), nil)
	f.gw.EXPECT().Call(ctx, gateway.OpModifierListing, gomock.Any()).
		Return(json.RawMessage(toppingsListing), nil)

	state, err := f.svc.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.Menu)
	assert.Equal(t, "m9", state.Menu.ID)
	assert.Equal(t, "Menu m9", state.Menu.Name)
	assert.Len(t, state.Categories, 1, "modifiers stay reachable for the placeholder menu")
}

func TestCascadeService_UpdateItem(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)

	item, err := f.svc.UpdateItem("c1", "i1", 2.75, 5)
	require.NoError(t, err)
	assert.Equal(t, 2.75, item.Price)
	assert.Equal(t, 5, item.Sequence)

	item, err = f.svc.UpdateItem("c1", "i1", -3, -4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, item.Price, "negative prices clamp to zero")
	assert.Equal(t, 0, item.Sequence)

	_, err = f.svc.UpdateItem("c1", "i404", 1, 1)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.UpdateItem("c404", "i1", 1, 1)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCascadeService_ClearCategory(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	listing := `[
		{"modifier_category_id":"c1","modifier_category_name":"Toppings",
		 "modifiers":[{"modifier_item_id":"i1","modifier_item_name":"Cheese","price":2.0,"sequence_id":1}]},
		{"modifier_category_id":"c2","modifier_category_name":"Sauces",
		 "modifiers":[{"modifier_item_id":"i2","modifier_item_name":"BBQ","price":3.0,"sequence_id":2}]}
	]`
	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", listing)

	cleared, err := f.svc.ClearCategory("c1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, cleared.Items[0].Price)
	assert.Equal(t, 0, cleared.Items[0].Sequence)

	state := f.svc.State()
	assert.Equal(t, 3.0, state.Categories[1].Items[0].Price, "other categories are untouched")

	_, err = f.svc.ClearCategory("c404")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCascadeService_Submit_RequiresSelection(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)

	_, err := f.svc.Submit(context.Background(), "c1")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCascadeService_Submit_Acknowledged(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)

	_, err := f.svc.UpdateItem("c1", "i1", 2.5, 1)
	require.NoError(t, err)

	var sent model.PriceUpdate
	f.gw.EXPECT().Call(ctx, gateway.OpModifierPriceUpdate, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gateway.Operation, payload json.RawMessage) (json.RawMessage, error) {
			require.NoError(t, json.Unmarshal(payload, &sent))
			return json.RawMessage(`{"success":true}`), nil
		})

	result, err := f.svc.Submit(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, model.SubmitResult{CommittedLocally: true, UpstreamAcknowledged: true}, result)

	assert.Equal(t, "rest_9", sent.RestaurantID)
	assert.Equal(t, "m1", sent.MenuID)
	assert.Equal(t, "c1", sent.CategoryID)
	require.Len(t, sent.Modifiers, 1)
	assert.Equal(t, "2.50", sent.Modifiers[0].Price, "prices travel as two-decimal strings")
	assert.False(t, sent.Timestamp.IsZero())
}

func TestCascadeService_Submit_UpstreamFailureKeepsLocalEdit(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)

	_, err := f.svc.UpdateItem("c1", "i1", 9.99, 1)
	require.NoError(t, err)

	f.gw.EXPECT().Call(ctx, gateway.OpModifierPriceUpdate, gomock.Any()).
		Return(nil, apperrors.Upstream("webhook down"))

	result, err := f.svc.Submit(ctx, "c1")
	require.NoError(t, err, "upstream failure does not surface as an error")
	assert.Equal(t, model.SubmitResult{CommittedLocally: true, UpstreamAcknowledged: false}, result)

	state := f.svc.State()
	assert.Equal(t, 9.99, state.Categories[0].Items[0].Price, "the local edit stands")
}

func TestCascadeService_Submit_UnknownCategory(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 0)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)

	_, err := f.svc.Submit(ctx, "c404")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCascadeService_Submit_SchedulesRefreshAfterAck(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 10*time.Millisecond)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)

	f.gw.EXPECT().Call(ctx, gateway.OpModifierPriceUpdate, gomock.Any()).
		Return(json.RawMessage(`{"success":true}`), nil)

	refreshed := `{"modifiers":[{
		"modifier_category_id":"c1","modifier_category_name":"Toppings",
		"modifiers":[{"modifier_item_id":"i1","modifier_item_name":"Cheese","price":"7.77","sequence_id":1}]
	}]}`
	f.gw.EXPECT().Call(gomock.Any(), gateway.OpModifierListing, gomock.Any()).
		Return(json.RawMessage(refreshed), nil)

	result, err := f.svc.Submit(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, result.UpstreamAcknowledged)

	require.Eventually(t, func() bool {
		state := f.svc.State()
		return len(state.Categories) == 1 &&
			len(state.Categories[0].Items) == 1 &&
			state.Categories[0].Items[0].Price == 7.77
	}, time.Second, 5*time.Millisecond, "acknowledged submit refetches the listing")
}

func TestCascadeService_Submit_NoRefreshWithoutAck(t *testing.T) {
	t.Parallel()

	f := newCascadeFixture(t, 5*time.Millisecond)
	ctx := context.Background()

	f.selectRestaurant(t, ctx, lunchMenus)
	f.selectMenu(t, ctx, "m1", toppingsListing)

	f.gw.EXPECT().Call(ctx, gateway.OpModifierPriceUpdate, gomock.Any()).
		Return(nil, apperrors.Upstream("webhook down"))

	_, err := f.svc.Submit(ctx, "c1")
	require.NoError(t, err)

	// Give a would-be refetch time to fire; the controller fails the test
	// if an unexpected listing call arrives.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1.0, f.svc.State().Categories[0].Items[0].Price)
}
