// Package render holds the view-producing collaborator. The service itself
// does not own page templates; this JSON renderer stands in for the external
// template-rendering service.
package render

import "github.com/labstack/echo/v4"

// JSONRenderer emits every view as {"view": <name>, "data": <payload>}.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

type envelope struct {
	View string `json:"view"`
	Data any    `json:"data,omitempty"`
}

func (JSONRenderer) Render(c echo.Context, status int, view string, data any) error {
	return c.JSON(status, envelope{View: view, Data: data})
}
