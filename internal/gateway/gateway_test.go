package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
	"github.com/foodbot-ai/dashboard-api/internal/testutil"
)

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{})
	require.Error(t, err, "a client without routes is useless")

	_, err = NewClient(Config{Routes: map[Operation]Route{
		OpCreateUser: {Mode: "sometimes"},
	}})
	require.ErrorContains(t, err, "invalid mode")

	_, err = NewClient(Config{Routes: map[Operation]Route{
		OpCreateUser: {Mode: ModeLive, URL: "  "},
	}})
	require.ErrorContains(t, err, "requires a URL")
}

func TestClient_MockCreateUser(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{
		Routes: map[Operation]Route{OpCreateUser: {Mode: ModeMock}},
		Logger: testutil.DiscardLogger(),
	})
	require.NoError(t, err)

	body, err := client.Call(context.Background(), OpCreateUser, json.RawMessage(`{"name":"Maria"}`))
	require.NoError(t, err)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		UserID  string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "User created successfully", resp.Message)
	assert.NotEmpty(t, resp.UserID)
}

func TestClient_MockCreateRestaurantEchoesID(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{
		Routes: map[Operation]Route{OpCreateRestaurant: {Mode: ModeMock}},
	})
	require.NoError(t, err)

	body, err := client.Call(context.Background(), OpCreateRestaurant, json.RawMessage(`{"id":"rest_9","name":"Test Diner"}`))
	require.NoError(t, err)

	var resp struct {
		Success      bool   `json:"success"`
		RestaurantID string `json:"restaurant_id"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "rest_9", resp.RestaurantID)
}

func TestClient_MockHonorsContextCancel(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{
		Routes:    map[Operation]Route{OpCreateUser: {Mode: ModeMock}},
		MockDelay: time.Minute,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Call(ctx, OpCreateUser, json.RawMessage(`{}`))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_LiveRelaysVerbatim(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"menus":[{"menu_id":"m1","menu_name":"Lunch"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		Routes: map[Operation]Route{OpRestaurantMenu: {Mode: ModeLive, URL: srv.URL}},
	})
	require.NoError(t, err)

	payload := json.RawMessage(`{"restaurant_id":"rest_9"}`)
	body, err := client.Call(context.Background(), OpRestaurantMenu, payload)
	require.NoError(t, err)

	assert.JSONEq(t, string(payload), string(gotBody))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
	assert.Equal(t, `{"menus":[{"menu_id":"m1","menu_name":"Lunch"}]}`, string(body))
}

func TestClient_LiveNon2xxIsUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		Routes: map[Operation]Route{OpModifierListing: {Mode: ModeLive, URL: srv.URL}},
	})
	require.NoError(t, err)

	_, err = client.Call(context.Background(), OpModifierListing, json.RawMessage(`{}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.ErrorContains(t, err, "workflow not found")
}

func TestClient_UnroutedOperation(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{
		Routes: map[Operation]Route{OpCreateUser: {Mode: ModeMock}},
	})
	require.NoError(t, err)

	_, err = client.Call(context.Background(), OpModifierPriceUpdate, json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
}
