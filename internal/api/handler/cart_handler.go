package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sportshop/shop-system/internal/api/metrics"
	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/core/ports"
)

type CartHandler struct {
	carts    ports.CartService
	sessions ports.SessionStore
	catalog  domain.Catalog
	render   ports.Renderer
}

func NewCartHandler(carts ports.CartService, sessions ports.SessionStore, catalog domain.Catalog, render ports.Renderer) *CartHandler {
	return &CartHandler{carts: carts, sessions: sessions, catalog: catalog, render: render}
}

// Catalog renders the article list for a direct GET on the cart route.
//
// @Summary      Catalog view
// @Tags         cart
// @Produce      json
// @Success      200  {object}  articleView
// @Router       /api/article [get]
func (h *CartHandler) Catalog(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.render.Render(c, http.StatusOK, "article", articleView{
		Name:     session.Username,
		Articles: h.catalog,
	})
}

// Update reads qty[<article>] form fields, merges them into the session's
// cart and renders the priced confirmation.
//
// @Summary      Update the cart
// @Tags         cart
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  confirmationView
// @Router       /api/article [post]
func (h *CartHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	session.Cart = h.carts.Merge(session.Cart, parseQuantities(form))
	if err := h.sessions.Save(c.Request().Context(), session); err != nil {
		return err
	}
	metrics.CartUpdatesTotal.Inc()

	lines, total := h.carts.Price(session.Cart)
	return h.render.Render(c, http.StatusOK, "confirmation", confirmationView{
		Name:     session.Username,
		Articles: lines,
		Total:    total,
	})
}

// Resume renders the catalog together with the quantities already in the
// cart, so the caller can keep shopping without losing the selection.
//
// @Summary      Back to the catalog
// @Tags         cart
// @Produce      json
// @Success      200  {object}  articleView
// @Router       /retour-articles [get]
func (h *CartHandler) Resume(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return h.render.Render(c, http.StatusOK, "article", articleView{
		Name:       session.Username,
		Articles:   h.catalog,
		Quantities: session.Cart,
	})
}

// parseQuantities extracts qty[<article>] fields. Values that do not parse
// as integers count as zero and are left for Merge to ignore.
func parseQuantities(form map[string][]string) map[string]int {
	updates := make(map[string]int)
	for key, values := range form {
		if !strings.HasPrefix(key, "qty[") || !strings.HasSuffix(key, "]") {
			continue
		}
		name := key[len("qty[") : len(key)-1]
		if name == "" || len(values) == 0 {
			continue
		}
		qty, err := strconv.Atoi(values[0])
		if err != nil {
			qty = 0
		}
		updates[name] = qty
	}
	return updates
}
