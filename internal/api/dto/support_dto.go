package dto

// PaymentRequest payload. Amount is parsed at the validation boundary and
// may arrive as a JSON number or a numeric string.
type PaymentRequest struct {
	Amount any `json:"amount"`
}

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// UpdateSettingsRequest payload. Blank fields are treated as absent.
type UpdateSettingsRequest struct {
	Email string `json:"email"`
	Tier  string `json:"tier"`
}

// RefundRequest payload.
type RefundRequest struct {
	Amount any `json:"amount"`
}
