package domain

// Customer models a row of the customers table. At registration time the
// customer id equals the id of the corresponding User row.
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
