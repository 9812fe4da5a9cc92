package domain

// OrderLine is one order left-joined to its product. Orders whose product no
// longer exists keep empty product fields: their quantity still counts toward
// the aggregate quantity but they contribute nothing to revenue.
type OrderLine struct {
	Order
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"total_price"`
	Matched     bool    `json:"matched"`
}

// SalesReport is the admin dashboard view: full customer and product tables
// plus joined orders and derived totals. It is recomputed from scratch on
// every request; no aggregate state is cached anywhere.
type SalesReport struct {
	Customers     []Customer  `json:"customers"`
	Products      []Product   `json:"products"`
	Orders        []OrderLine `json:"orders"`
	TotalQuantity int         `json:"total_quantity"`
	TotalRevenue  float64     `json:"total_revenue"`
	TotalProfit   float64     `json:"total_profit"`
}
