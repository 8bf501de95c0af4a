package models

// User represents a customer or administrator account of the shop.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"user_id"`

	// Username is the unique public handle of the account.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// Password stores the derived password representation
	// (PBKDF2 output), never plaintext. It is not exposed via JSON.
	Password string `json:"-"`

	// IsAdmin marks accounts with administrative privileges.
	// Defaults to false for newly created users.
	IsAdmin bool `json:"is_admin"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
