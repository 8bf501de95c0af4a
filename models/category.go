package models

// Category is a fixed reference entity grouping products.
// Categories are seeded once at startup and read-only afterwards.
type Category struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"categoryname"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
