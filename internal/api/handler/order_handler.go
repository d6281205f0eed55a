package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sportshop/shop-system/internal/api/metrics"
	"github.com/sportshop/shop-system/internal/core/ports"
	"github.com/sportshop/shop-system/internal/core/service"
)

type OrderHandler struct {
	breaker *service.Breaker
	render  ports.Renderer
}

func NewOrderHandler(breaker *service.Breaker, render ports.Renderer) *OrderHandler {
	return &OrderHandler{breaker: breaker, render: render}
}

// Checkout simulates the payment call behind the breaker counter.
//
// @Summary      Place an order
// @Tags         order
// @Produce      json
// @Success      200  {object}  bankView
// @Router       /api/commande [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	blocked := h.breaker.Call()
	result := "ok"
	if blocked {
		result = "blocked"
	}
	metrics.BreakerCallsTotal.WithLabelValues(result).Inc()

	return h.render.Render(c, http.StatusOK, "banque", bankView{
		Name:    session.Username,
		Blocked: blocked,
	})
}
