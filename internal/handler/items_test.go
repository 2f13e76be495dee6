package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deadpoolio/chimichangapp/internal/config"
	"github.com/deadpoolio/chimichangapp/internal/model"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/deadpoolio/chimichangapp/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Direct handler tests. The dispatch-level behavior is covered in the
// router package; these exercise handler logic in isolation, including
// the two handlers shadowed by the route table's last-write-wins
// policy, which are unreachable over HTTP but still part of the API's
// history.

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	log := zerolog.Nop()
	return server.New(cfg, &log)
}

func newTestContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestListKatanaShadowedHandler(t *testing.T) {
	h := NewItemsHandler(newTestServer(t))

	result, err := h.ListKatana(newTestContext(), &EmptyRequest{})

	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"name": "Katana"}}, result)
}

func TestUpdateJSONShadowedHandler(t *testing.T) {
	srv := newTestServer(t)
	h := NewItemsHandler(srv)

	t.Run("upserts under a new identifier", func(t *testing.T) {
		req := &UpdateItemJSONRequest{
			ID:   "9",
			Item: model.Item{Name: "Katana", Price: floatPtr(10.0)},
		}

		require.NoError(t, h.UpdateJSON(newTestContext(), req))

		rec, ok := srv.Store.Get(store.Key("9"))
		require.True(t, ok)
		assert.Equal(t, "Katana", rec["name"])
	})

	t.Run("overwrites a seeded record", func(t *testing.T) {
		req := &UpdateItemJSONRequest{
			ID:   "1",
			Item: model.Item{Name: "Replacement", Price: floatPtr(5.0)},
		}

		require.NoError(t, h.UpdateJSON(newTestContext(), req))

		rec, ok := srv.Store.Get("1")
		require.True(t, ok)
		assert.Equal(t, "Replacement", rec["name"])
		assert.NotContains(t, rec, "item_name")
	})
}

func TestCreateShaping(t *testing.T) {
	h := NewItemsHandler(newTestServer(t))

	t.Run("tax present derives price_with_tax", func(t *testing.T) {
		item := &model.Item{Name: "Foo", Price: floatPtr(35.4), Tax: floatPtr(3.2)}

		result, err := h.Create(newTestContext(), item)

		require.NoError(t, err)
		assert.InDelta(t, 38.6, result["price_with_tax"], 1e-9)
	})

	t.Run("explicit zero tax still counts as present", func(t *testing.T) {
		item := &model.Item{Name: "Foo", Price: floatPtr(35.4), Tax: floatPtr(0.0)}

		result, err := h.Create(newTestContext(), item)

		require.NoError(t, err)
		assert.InDelta(t, 35.4, result["price_with_tax"], 1e-9)
	})

	t.Run("tax absent omits price_with_tax", func(t *testing.T) {
		item := &model.Item{Name: "Foo", Price: floatPtr(35.4)}

		result, err := h.Create(newTestContext(), item)

		require.NoError(t, err)
		assert.NotContains(t, result, "price_with_tax")
	})
}

func TestListQueryDefault(t *testing.T) {
	h := NewItemsHandler(newTestServer(t))

	t.Run("empty list falls back to the default pair", func(t *testing.T) {
		result, err := h.ListQuery(newTestContext(), &ItemListRequest{})

		require.NoError(t, err)
		assert.Equal(t, []string{"default1", "default2"}, result["q"])
	})

	t.Run("bound values pass through", func(t *testing.T) {
		result, err := h.ListQuery(newTestContext(), &ItemListRequest{Q: []string{"foo"}})

		require.NoError(t, err)
		assert.Equal(t, []string{"foo"}, result["q"])
	})
}
