package handler

import (
	"github.com/deadpoolio/chimichangapp/internal/model"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/labstack/echo/v4"
)

// MetaHandler serves the service's self-description: the root greeting
// and the API metadata document (title, version, contact, license, and
// the ordered tag groups routes are documented under).
type MetaHandler struct {
	Handler
}

// NewMetaHandler constructs a MetaHandler with access to shared app
// dependencies.
func NewMetaHandler(s *server.Server) *MetaHandler {
	return &MetaHandler{
		Handler: NewHandler(s),
	}
}

// Root returns the root greeting.
func (h *MetaHandler) Root(c echo.Context, req *EmptyRequest) (map[string]any, error) {
	return map[string]any{"message": "hello World"}, nil
}

// TagMeta is one documentation group in the meta document.
type TagMeta struct {
	Name        model.Tag `json:"name"`
	Description string    `json:"description,omitempty"`
}

// MetaDocument is the API's self-description.
type MetaDocument struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Version        string    `json:"version"`
	TermsOfService string    `json:"terms_of_service"`
	Contact        Contact   `json:"contact"`
	License        License   `json:"license"`
	Tags           []TagMeta `json:"tags"`
}

// Contact is the API maintainer contact block.
type Contact struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Email string `json:"email"`
}

// License is the API license block.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

const apiDescription = `ChimichangApp API helps you do awesome stuff. 🚀

## Items

You can **read items**.

## Users

You will be able to:

* **Create users** (_not implemented_).
* **Read users** (_not implemented_).`

// Describe returns the API metadata document. Tag order follows
// model.Tags, which fixes the display order of documentation groups.
func (h *MetaHandler) Describe(c echo.Context, req *EmptyRequest) (*MetaDocument, error) {
	tags := make([]TagMeta, 0, len(model.Tags()))
	for _, tag := range model.Tags() {
		tags = append(tags, TagMeta{
			Name:        tag,
			Description: tag.Description(),
		})
	}

	return &MetaDocument{
		Title:          "ChimichangApp",
		Description:    apiDescription,
		Version:        "0.0.1",
		TermsOfService: "http://example.com/terms/",
		Contact: Contact{
			Name:  "Deadpoolio the Amazing",
			URL:   "http://x-force.example.com/contact/",
			Email: "dp@x-force.example.com",
		},
		License: License{
			Name: "Apache 2.0",
			URL:  "https://www.apache.org/licenses/LICENSE-2.0.html",
		},
		Tags: tags,
	}, nil
}
