package domain

// Order models a row of the orders table. CustomerID and ProductID are weak
// references resolved by id lookup; no live references are held across tables.
type Order struct {
	ID         int `json:"id"`
	CustomerID int `json:"customer_id"`
	ProductID  int `json:"product_id"`
	Quantity   int `json:"quantity"`
}

// OwnerID satisfies Owned for the customer that placed the order.
func (o Order) OwnerID() int { return o.CustomerID }
