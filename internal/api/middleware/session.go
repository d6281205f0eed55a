package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sportshop/shop-system/internal/api/metrics"
	"github.com/sportshop/shop-system/internal/core/ports"
)

// SessionCookie is the cookie carrying the session id.
const SessionCookie = "shop_session"

// ContextSession is the echo context key under which the guard stores the
// admitted session.
const ContextSession = "session"

// Guard protects a route: it extracts the credential from the caller's
// session, delegates to the verifier, and either admits the request or
// redirects to the entry point. On a verifier rejection the credential is
// purged from the stored session so a known-bad credential is not retried.
// The guard never touches business data.
func Guard(store ports.SessionStore, verifier ports.CredentialVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return deny(c, "no_session")
			}

			session, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return deny(c, "no_session")
			}

			if session.Credential == "" {
				return deny(c, "no_session")
			}

			if _, err := verifier.Verify(c.Request().Context(), session.Credential); err != nil {
				session.Credential = ""
				_ = store.Save(c.Request().Context(), session)
				return deny(c, "bad_credential")
			}

			c.Set(ContextSession, session)
			return next(c)
		}
	}
}

func deny(c echo.Context, reason string) error {
	metrics.GuardDenialsTotal.WithLabelValues(reason).Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}
