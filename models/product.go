package models

// Product represents a single catalog item offered by the shop.
type Product struct {
	// ProductID is the internal unique identifier of the product,
	// assigned by the database on insert.
	ProductID int64 `json:"product_id"`

	// ProductName is the display name of the item.
	ProductName string `json:"productname"`

	// Description is the free-form item description.
	Description string `json:"description"`

	// Price is the item price in major currency units.
	// Stored as DECIMAL(10,2); the float64 here is a presentation
	// type only — arithmetic is never performed on it.
	Price float64 `json:"price"`

	// CategoryID references the owning category. Nil when the product
	// is uncategorized or its category was removed.
	CategoryID *int64 `json:"category_id,omitempty"`

	// ImageURL is the relative path under which the stored product
	// image is served (e.g. "/uploads/ring.png"). Nil when the product
	// has no image.
	ImageURL *string `json:"image_url"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
