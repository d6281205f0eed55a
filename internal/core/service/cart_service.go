package service

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/sportshop/shop-system/internal/core/domain"
)

// CartService merges quantity updates into a session cart and prices it
// against the catalog.
type CartService struct {
	catalog domain.Catalog
	logger  zerolog.Logger
}

func NewCartService(catalog domain.Catalog, logger zerolog.Logger) *CartService {
	return &CartService{catalog: catalog, logger: logger}
}

// Merge overwrites the stored quantity for every update above zero. Zero or
// negative quantities are ignored: they never decrease and never remove an
// item. Repeating the same batch is idempotent.
func (s *CartService) Merge(cart domain.Cart, updates map[string]int) domain.Cart {
	if cart == nil {
		cart = domain.Cart{}
	}
	for name, qty := range updates {
		if qty > 0 {
			cart[name] = qty
		}
	}
	return cart
}

// Price joins the cart against the catalog. Articles the catalog no longer
// carries are dropped silently from the lines and the total.
func (s *CartService) Price(cart domain.Cart) ([]domain.CartLine, float64) {
	lines := make([]domain.CartLine, 0, len(cart))
	total := 0.0

	for name, qty := range cart {
		item, ok := s.catalog.Lookup(name)
		if !ok {
			s.logger.Debug().Str("article", name).Msg("cart article not in catalog, dropped")
			continue
		}
		lineTotal := round2(item.Price * float64(qty))
		lines = append(lines, domain.CartLine{
			Name:     name,
			Price:    item.Price,
			Quantity: qty,
			Total:    lineTotal,
		})
		total += lineTotal
	}

	return lines, round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
