// Package model declares the request/response schemas of the API.
//
// Schemas are plain structs with echo binding tags (json/param/query)
// and go-playground/validator constraint tags. Validation runs before
// any handler sees the data, so handlers can assume every constraint
// declared here already holds.
package model

import (
	"time"

	"github.com/deadpoolio/chimichangapp/internal/validation"
)

// Item is the main demo schema, used both as request body and as
// response payload.
//
// Price is a pointer so that an explicit 0 price is distinguishable
// from a missing field: `required` on a plain float64 would reject 0.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
}

// Validate applies the struct tag constraints.
func (i *Item) Validate() error {
	return validation.Struct(i)
}

// AsMap encodes the item into a JSON-safe mapping with all four
// declared fields present (absent optionals encode as null).
func (i *Item) AsMap() map[string]any {
	return map[string]any{
		"name":        i.Name,
		"description": i.Description,
		"price":       i.Price,
		"tax":         i.Tax,
	}
}

// ItemWithDate is a declared but route-unused schema, kept so the data
// model matches the documented API surface.
type ItemWithDate struct {
	Title       string    `json:"title" validate:"required"`
	Timestamp   time.Time `json:"timestamp" validate:"required"`
	Description *string   `json:"description"`
}

// Validate applies the struct tag constraints.
func (i *ItemWithDate) Validate() error {
	return validation.Struct(i)
}

// User identifies the acting user on the combined item update route.
type User struct {
	Username string  `json:"username" validate:"required"`
	FullName *string `json:"full_name"`
}

// Validate applies the struct tag constraints.
func (u *User) Validate() error {
	return validation.Struct(u)
}
