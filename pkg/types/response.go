package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// CartCreated is the body returned when a cart is created.
type CartCreated struct {
	ID int `json:"id"`
}
