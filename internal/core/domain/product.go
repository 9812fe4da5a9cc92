package domain

// Product models a row of the products table. SellerID references the User
// that listed the product; legacy rows imported without a seller carry 0.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Details  string  `json:"details"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url"`
	SellerID int     `json:"seller_id"`
}

// OwnerID satisfies Owned: only the listing seller may mutate a product.
func (p Product) OwnerID() int { return p.SellerID }
