package models

// CreateUserRequest is the JSON payload accepted by POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// IsAdmin is optional and defaults to false when omitted.
	IsAdmin bool `json:"is_admin"`
}

// CreateProductRequest is the payload accepted by POST /api/products.
// It is populated either from a JSON body or from multipart form fields;
// the optional image file travels outside this struct.
type CreateProductRequest struct {
	ProductName string  `json:"productname"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// CategoryID is optional; when present it must name an existing
	// category.
	CategoryID *int64 `json:"category_id,omitempty"`

	// ImageURL is optional and only honored on JSON requests where the
	// caller references an already-hosted image instead of uploading one.
	ImageURL *string `json:"image_url,omitempty"`
}

// CreatePaymentIntentRequest is the payload accepted by
// POST /api/create-payment-intent. Amount is in minor currency units
// (e.g. cents).
type CreatePaymentIntentRequest struct {
	Amount int64  `json:"amount"`
	Email  string `json:"email,omitempty"`
}
