package handler

import "github.com/minimarket/catalog-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role"     form:"role"     validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role"     form:"role"     validate:"required,oneof=customer seller admin"`
	Email    string `json:"email"    form:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"    form:"phone"`
	Address  string `json:"address"  form:"address"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type registerResponse struct {
	UserID     int `json:"user_id"`
	CustomerID int `json:"customer_id"`
}

// --- Products ---

// Numeric product fields are accepted as strings, preserving form semantics:
// an empty value means zero, an unparsable one is a 400.
type productRequest struct {
	Name     string `json:"name"      form:"name" validate:"required"`
	Price    string `json:"price"     form:"price"`
	Stock    string `json:"stock"     form:"stock"`
	Category string `json:"category"  form:"category"`
	Details  string `json:"details"   form:"details"`
	Rating   string `json:"rating"    form:"rating"`
	ImageURL string `json:"image_url" form:"image_url"`
}

// --- Orders ---

type orderRequest struct {
	ProductID string `json:"product_id" form:"product_id" validate:"required"`
	Quantity  string `json:"quantity"   form:"quantity"`
}

// --- Customers ---

type customerRequest struct {
	Name    string `json:"name"    form:"name" validate:"required"`
	Email   string `json:"email"   form:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"   form:"phone"`
	Address string `json:"address" form:"address"`
}
