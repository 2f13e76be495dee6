package router

import (
	"net/http"

	"github.com/deadpoolio/chimichangapp/internal/handler"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the demo API routes through the route
// table.
//
// Registration order is load-bearing: the API deliberately registers
// two handlers for GET /items/ and two for the PUT /items/{id}-shaped
// template, and the table's last-write-wins policy resolves each pair
// to the later one. The shadowed handlers (ListKatana, UpdateJSON)
// stay registered here so the override is visible in the startup log
// rather than buried in a deleted line.
func registerAPIRoutes(e *echo.Echo, s *server.Server, h *handler.Handlers) {
	table := NewTable(s.Logger)

	table.Add(http.MethodGet, "/items/", "items.list_katana",
		handler.Handle(h.Items.Handler, h.Items.ListKatana, http.StatusOK))

	table.Add(http.MethodPost, "/items/", "items.create",
		handler.Handle(h.Items.Handler, h.Items.Create, http.StatusCreated))

	table.Add(http.MethodPost, "/items_return_type/", "items.create_typed",
		handler.Handle(h.Items.Handler, h.Items.CreateTyped, http.StatusOK))

	table.Add(http.MethodGet, "/items_return_type/", "items.list_typed",
		handler.Handle(h.Items.Handler, h.Items.ListTyped, http.StatusOK))

	table.Add(http.MethodPut, "/items/:id", "items.update_json",
		handler.HandleNoContent(h.Items.Handler, h.Items.UpdateJSON, http.StatusNoContent))

	// Wins the /items/{id}-shaped PUT slot over items.update_json.
	table.Add(http.MethodPut, "/items/:item_id", "items.update",
		handler.Handle(h.Items.Handler, h.Items.Update, http.StatusOK))

	table.Add(http.MethodGet, "/", "meta.root",
		handler.Handle(h.Meta.Handler, h.Meta.Root, http.StatusOK))

	// Wins the GET /items/ slot over items.list_katana.
	table.Add(http.MethodGet, "/items/", "items.list",
		handler.Handle(h.Items.Handler, h.Items.List, http.StatusOK))

	table.Add(http.MethodGet, "/itemlist/", "items.list_query",
		handler.Handle(h.Items.Handler, h.Items.ListQuery, http.StatusOK))

	table.Add(http.MethodGet, "/itemtitle/", "items.list_by_title",
		handler.Handle(h.Items.Handler, h.Items.ListByTitle, http.StatusOK))

	table.Add(http.MethodGet, "/items/:item_id", "items.get",
		handler.Handle(h.Items.Handler, h.Items.Get, http.StatusOK))

	table.Add(http.MethodGet, "/users/:user_id/items/:item_id", "users.get_item",
		handler.Handle(h.Users.Handler, h.Users.GetItem, http.StatusOK))

	table.Add(http.MethodGet, "/models/:model_name", "models.get",
		handler.Handle(h.Models.Handler, h.Models.Get, http.StatusOK))

	table.Apply(e)
}
