package domain

// CatalogItem is a purchasable article with a fixed unit price.
type CatalogItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog is the read-only list of articles on sale. A single instance is
// built at startup and injected everywhere a view or a price lookup needs it.
type Catalog []CatalogItem

// Lookup returns the item with the given name.
func (c Catalog) Lookup(name string) (CatalogItem, bool) {
	for _, item := range c {
		if item.Name == name {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// DefaultCatalog returns the fixed ten-article sports catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "Ballon de football", Price: 25.90},
		{Name: "Chaussures de running", Price: 79.99},
		{Name: "Raquette de tennis", Price: 89.50},
		{Name: "Gants de boxe", Price: 45.00},
		{Name: "Tapis de yoga", Price: 19.90},
		{Name: "Casque de vélo", Price: 39.90},
		{Name: "Ballon de basket", Price: 29.90},
		{Name: "Haltères 5 kg", Price: 34.90},
		{Name: "Gourde inox 750 ml", Price: 14.50},
		{Name: "Short de sport", Price: 22.90},
	}
}
