package models

// MessageResponse is the uniform body used for plain informational and
// error replies. Every failure surfaced by the API carries exactly this
// shape plus an HTTP status code.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateUserResponse is returned by POST /api/users on success.
type CreateUserResponse struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// CreateProductResponse is returned by POST /api/products on success.
type CreateProductResponse struct {
	ProductID int64  `json:"product_id"`
	Message   string `json:"message"`
}

// UsersResponse wraps the full user listing.
type UsersResponse struct {
	Users []User `json:"users"`
}

// CategoriesResponse wraps the full category listing.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// PaymentIntentResponse carries the provider's client-side secret back
// to the storefront. The field name matches what the Stripe JS SDK
// expects to receive from the backend.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
