package ports

import "github.com/sportshop/shop-system/internal/core/domain"

type CartService interface {
	// Merge applies a batch of quantity updates to the cart and returns it.
	// Quantities above zero overwrite; zero or negative updates are ignored
	// and never remove an item.
	Merge(cart domain.Cart, updates map[string]int) domain.Cart

	// Price joins the cart against the catalog, dropping articles the
	// catalog no longer carries, and returns the priced lines and the total.
	Price(cart domain.Cart) ([]domain.CartLine, float64)
}
