package domain

// Catalog is the externally supplied snapshot of store data used by the
// resolver. It is fetched per request and never persisted.
type Catalog struct {
	Products    []ProductRecord    `json:"products"`
	Collections []CollectionRecord `json:"collections"`
}

type ProductRecord struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	ImageURL       string           `json:"image_url,omitempty"`
	Price          string           `json:"price"`
	CompareAtPrice string           `json:"compare_at_price,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	Variants       []ProductVariant `json:"variants,omitempty"`
}

type ProductVariant struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

type CollectionRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url,omitempty"`
	ProductCount int    `json:"product_count,omitempty"`
}

// ProductByID returns the matching product, or false when absent.
func (c Catalog) ProductByID(id string) (ProductRecord, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return ProductRecord{}, false
}

// CollectionByID returns the matching collection, or false when absent.
func (c Catalog) CollectionByID(id string) (CollectionRecord, bool) {
	for _, col := range c.Collections {
		if col.ID == id {
			return col, true
		}
	}
	return CollectionRecord{}, false
}
