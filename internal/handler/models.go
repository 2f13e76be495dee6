package handler

import (
	"github.com/deadpoolio/chimichangapp/internal/model"
	"github.com/deadpoolio/chimichangapp/internal/server"
	"github.com/labstack/echo/v4"
)

// ModelsHandler serves the enum-constrained model lookup.
type ModelsHandler struct {
	Handler
}

// NewModelsHandler constructs a ModelsHandler with access to shared
// app dependencies.
func NewModelsHandler(s *server.Server) *ModelsHandler {
	return &ModelsHandler{
		Handler: NewHandler(s),
	}
}

// Get returns a message keyed on which enum variant matched. The
// switch is exhaustive over model.ModelNames in fixed priority order:
// alexnet, then lenet, then resnet as the remaining variant. Values
// outside the set were already rejected by validation.
func (h *ModelsHandler) Get(c echo.Context, req *GetModelRequest) (map[string]any, error) {
	var message string
	switch req.ModelName {
	case model.ModelNameAlexNet:
		message = "Deep Learning FTW!"
	case model.ModelNameLeNet:
		message = "LeCNN all the images"
	case model.ModelNameResNet:
		message = "Have some residuals"
	}

	return map[string]any{
		"model_name": req.ModelName,
		"message":    message,
	}, nil
}
