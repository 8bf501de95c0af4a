package models

// PaymentIntent is the subset of the payment provider's intent object the
// shop cares about. The ClientSecret is handed to the storefront so it can
// confirm the payment without the secret key ever leaving the backend.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
