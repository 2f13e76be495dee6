package handler

import (
	"github.com/deadpoolio/chimichangapp/internal/model"
	"github.com/deadpoolio/chimichangapp/internal/validation"
)

// Request payload types for every route. Binding sources are declared
// per field: `param` for path segments, `query` for query parameters,
// `json` for body fields. Constraints live in `validate` tags and run
// before the handler sees the payload.

// EmptyRequest is the payload for routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// ListItemsRequest is the input of GET /items/: an optional search
// string bounded to 3..50 characters when given.
type ListItemsRequest struct {
	Q *string `query:"q" validate:"omitempty,min=3,max=50"`
}

func (r *ListItemsRequest) Validate() error {
	return validation.Struct(r)
}

// ItemListRequest is the input of GET /itemlist/: a repeatable q
// parameter collected into a list. The default list is applied by the
// handler when no q was sent at all.
type ItemListRequest struct {
	Q []string `query:"q"`
}

func (r *ItemListRequest) Validate() error {
	return validation.Struct(r)
}

// ItemTitleRequest is the input of GET /itemtitle/: an optional search
// string of at least 3 characters.
type ItemTitleRequest struct {
	Q *string `query:"q" validate:"omitempty,min=3"`
}

func (r *ItemTitleRequest) Validate() error {
	return validation.Struct(r)
}

// GetItemRequest is the input of GET /items/{item_id}. The q parameter
// travels on the wire as "item-query"; short uses the loose boolean
// token set and defaults to false.
type GetItemRequest struct {
	ItemID int             `param:"item_id"`
	Q      *string         `query:"item-query"`
	Short  model.LooseBool `query:"short"`
}

func (r *GetItemRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateItemJSONRequest is the input of the plain PUT /items/{id}
// variant: a string identifier plus an Item body (bound inline).
type UpdateItemJSONRequest struct {
	ID string `param:"id"`
	model.Item
}

func (r *UpdateItemJSONRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateItemRequest is the input of the combined PUT /items/{item_id}
// variant: an integer identifier, an optional q, and a body holding
// the item, the acting user, and an importance that must be positive.
type UpdateItemRequest struct {
	ItemID     int        `param:"item_id"`
	Q          *string    `query:"q"`
	Item       model.Item `json:"item" validate:"required"`
	User       model.User `json:"user" validate:"required"`
	Importance int        `json:"importance" validate:"required,gt=0"`
}

func (r *UpdateItemRequest) Validate() error {
	return validation.Struct(r)
}

// UserItemRequest is the input of GET /users/{user_id}/items/{item_id}.
type UserItemRequest struct {
	UserID int             `param:"user_id"`
	ItemID string          `param:"item_id"`
	Q      *string         `query:"q"`
	Short  model.LooseBool `query:"short"`
}

func (r *UserItemRequest) Validate() error {
	return validation.Struct(r)
}

// GetModelRequest is the input of GET /models/{model_name}. The oneof
// constraint closes the set: values outside ModelNames never reach the
// handler.
type GetModelRequest struct {
	ModelName model.ModelName `param:"model_name" validate:"required,oneof=alexnet resnet lenet"`
}

func (r *GetModelRequest) Validate() error {
	return validation.Struct(r)
}
