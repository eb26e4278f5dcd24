package cielo

// CreateProductRequest is the payload the Checkout product-creation endpoint
// expects. Field names are capitalised on the wire.
type CreateProductRequest struct {
	Type        string   `json:"Type"`
	Name        string   `json:"Name"`
	Description string   `json:"Description"`
	Price       *int64   `json:"Price"`
	Shipping    Shipping `json:"Shipping"`
}

// Shipping describes the shipping section of a product payload.
type Shipping struct {
	Type string `json:"Type"`
	Name string `json:"Name"`
}

// Product is the subset of the provider's product resource this service reads.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ShortURL string `json:"shortUrl"`
	Price    int64  `json:"price"`
}

// Order is a payment attempt the provider recorded against a product.
type Order struct {
	CreatedDate string `json:"createdDate"`
}
