package handler

import (
	"github.com/deadpoolio/chimichangapp/internal/errs"
	"github.com/deadpoolio/chimichangapp/internal/model"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/deadpoolio/chimichangapp/internal/store"
	"github.com/labstack/echo/v4"
)

// shortHelpText is the description attached to item lookups unless
// short mode is requested.
const shortHelpText = "short is boolean and accepts '?short=1', True, true, On, on, Yes, yes as True and short=0, False, false, Off, off, No, no as False"

// ItemsHandler serves every /items* route: the demo listings, item
// creation, the typed-response pair, the two update variants, and the
// store-backed lookup.
type ItemsHandler struct {
	Handler
}

// NewItemsHandler constructs an ItemsHandler with access to shared app
// dependencies.
func NewItemsHandler(s *server.Server) *ItemsHandler {
	return &ItemsHandler{
		Handler: NewHandler(s),
	}
}

// fixedItems is the canned listing returned by the search routes.
func fixedItems() []map[string]any {
	return []map[string]any{
		{"item_id": "Foo"},
		{"item_id": "Bar"},
	}
}

// ListKatana is the historical first GET /items/ handler, shadowed at
// dispatch time by List (the route table keeps the later registration).
// It stays implemented so the override is explicit rather than a
// silent deletion.
func (h *ItemsHandler) ListKatana(c echo.Context, req *EmptyRequest) ([]map[string]any, error) {
	return []map[string]any{{"name": "Katana"}}, nil
}

// List returns the fixed two-item listing, echoing q when given.
func (h *ItemsHandler) List(c echo.Context, req *ListItemsRequest) (map[string]any, error) {
	results := map[string]any{"items": fixedItems()}
	if req.Q != nil && *req.Q != "" {
		results["q"] = *req.Q
	}
	return results, nil
}

// Create returns the created item's fields as a mapping, deriving
// price_with_tax when tax was sent. Nothing is stored; the derived
// price exists only in the response.
func (h *ItemsHandler) Create(c echo.Context, item *model.Item) (map[string]any, error) {
	itemDict := item.AsMap()
	if item.Tax != nil {
		itemDict["price_with_tax"] = *item.Price + *item.Tax
	}
	return itemDict, nil
}

// CreateTyped echoes the item back, re-validating it on the way out:
// the route declares Item as its response schema, so the response must
// satisfy the same constraints as a request would.
func (h *ItemsHandler) CreateTyped(c echo.Context, item *model.Item) (*model.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, errs.NewInternalServerError()
	}
	return item, nil
}

// ListTyped returns a fixed two-element Item sequence, validated
// against the Item response schema like CreateTyped.
func (h *ItemsHandler) ListTyped(c echo.Context, req *EmptyRequest) ([]model.Item, error) {
	items := []model.Item{
		{Name: "Portal Gun", Price: floatPtr(42.0)},
		{Name: "Plumbus", Price: floatPtr(32.0)},
	}

	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, errs.NewInternalServerError()
		}
	}

	return items, nil
}

// UpdateJSON is the plain PUT /items/{id} variant: it encodes the item
// body into a JSON-safe record and upserts it into the placeholder
// store under the string identifier. Shadowed at dispatch time by
// Update; exercised directly in tests.
func (h *ItemsHandler) UpdateJSON(c echo.Context, req *UpdateItemJSONRequest) error {
	h.server.Store.Upsert(store.Key(req.ID), req.Item.AsMap())
	return nil
}

// Update is the combined PUT /items/{item_id} variant: it echoes the
// identifier, item, user and importance as one mapping, with q when
// given. This is the registration that wins the /items/{id} template.
func (h *ItemsHandler) Update(c echo.Context, req *UpdateItemRequest) (map[string]any, error) {
	results := map[string]any{
		"item_id":    req.ItemID,
		"item":       req.Item,
		"user":       req.User,
		"importance": req.Importance,
	}
	if req.Q != nil && *req.Q != "" {
		results["q"] = *req.Q
	}
	return results, nil
}

// ListQuery returns the collected q list, or the default pair when the
// parameter was not sent at all.
func (h *ItemsHandler) ListQuery(c echo.Context, req *ItemListRequest) (map[string]any, error) {
	q := req.Q
	if len(q) == 0 {
		q = []string{"default1", "default2"}
	}
	return map[string]any{"q": q}, nil
}

// ListByTitle returns the fixed listing, echoing q when given.
func (h *ItemsHandler) ListByTitle(c echo.Context, req *ItemTitleRequest) (map[string]any, error) {
	results := map[string]any{"items": fixedItems()}
	if req.Q != nil && *req.Q != "" {
		results["q"] = *req.Q
	}
	return results, nil
}

// Get looks an item up in the placeholder store. Unknown identifiers
// are the one designed 404 of the API. The description is attached
// unless short mode was requested.
func (h *ItemsHandler) Get(c echo.Context, req *GetItemRequest) (map[string]any, error) {
	if !h.server.Store.Has(store.Key(req.ItemID)) {
		return nil, errs.NewNotFoundError("Item not found")
	}

	item := map[string]any{"item_id": req.ItemID}
	if req.Q != nil && *req.Q != "" {
		item["q"] = *req.Q
	}
	if !req.Short.Bool() {
		item["description"] = shortHelpText
	}
	return item, nil
}

func floatPtr(f float64) *float64 {
	return &f
}
