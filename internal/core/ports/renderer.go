package ports

import "github.com/labstack/echo/v4"

// Renderer produces the outgoing representation of a named view. Page
// rendering is a collaborator, not part of this service: the shipped
// implementation emits JSON envelopes, an HTML template renderer can be
// swapped in without touching the handlers.
type Renderer interface {
	Render(c echo.Context, status int, view string, data any) error
}
