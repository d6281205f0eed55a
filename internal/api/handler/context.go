package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sportshop/shop-system/internal/api/middleware"
	"github.com/sportshop/shop-system/internal/core/domain"
)

// ctxSession extracts the session injected by the guard middleware and
// performs a fast-fail check before any service call: its presence proves
// the guard ran.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.ContextSession).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}

const flashCookie = "shop_flash"

// setFlash stores a one-shot message for the next rendered page.
func setFlash(c echo.Context, msg string) {
	c.SetCookie(&http.Cookie{
		Name:  flashCookie,
		Value: url.QueryEscape(msg),
		Path:  "/",
	})
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(c echo.Context) string {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		msg = ""
	}
	c.SetCookie(&http.Cookie{
		Name:    flashCookie,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
	return msg
}
