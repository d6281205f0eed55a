package domain

// Cart maps article names to positive quantities. Insertion order is
// irrelevant; entries only ever grow or get overwritten, never removed.
type Cart map[string]int

// CartLine is one priced row of a cart, joined against the catalog.
type CartLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}
