package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTemplate(t *testing.T) {
	assert.Equal(t, "/items/:param", normalizeTemplate("/items/:id"))
	assert.Equal(t, "/items/:param", normalizeTemplate("/items/:item_id"))
	assert.Equal(t, "/users/:param/items/:param", normalizeTemplate("/users/:user_id/items/:item_id"))
	assert.Equal(t, "/items/", normalizeTemplate("/items/"))
}

func TestTableLastWriteWins(t *testing.T) {
	log := zerolog.Nop()
	table := NewTable(&log)

	first := func(c echo.Context) error { return c.String(http.StatusOK, "first") }
	second := func(c echo.Context) error { return c.String(http.StatusOK, "second") }
	other := func(c echo.Context) error { return c.String(http.StatusOK, "other") }

	// Same structural template, different parameter names: the second
	// registration must replace the first.
	table.Add(http.MethodPut, "/items/:id", "first", first)
	table.Add(http.MethodGet, "/other", "other", other)
	table.Add(http.MethodPut, "/items/:item_id", "second", second)

	e := echo.New()
	table.Apply(e)

	req := httptest.NewRequest(http.MethodPut, "/items/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "second", rec.Body.String())
}

func TestTableDistinctTemplatesCoexist(t *testing.T) {
	log := zerolog.Nop()
	table := NewTable(&log)

	table.Add(http.MethodGet, "/items/", "list", func(c echo.Context) error {
		return c.String(http.StatusOK, "list")
	})
	table.Add(http.MethodGet, "/items/:item_id", "get", func(c echo.Context) error {
		return c.String(http.StatusOK, "get")
	})
	// Same template, different method: no conflict either.
	table.Add(http.MethodPost, "/items/", "create", func(c echo.Context) error {
		return c.String(http.StatusOK, "create")
	})

	e := echo.New()
	table.Apply(e)

	for target, want := range map[string]string{"/items/": "list", "/items/9": "get"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Body.String(), "target %q", target)
	}

	req := httptest.NewRequest(http.MethodPost, "/items/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "create", rec.Body.String())
}
