package events

import (
	"time"

	"github.com/spec-kit/support-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPaymentProcessed EventType = "payment_processed"
	EventRefundProcessed  EventType = "refund_processed"
	EventTicketCreated    EventType = "ticket_created"
	EventAccountUpdated   EventType = "account_updated"
)

// Event represents a domain event emitted by the support service.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	CustomerID string    `json:"customer_id"`
	SessionID  string    `json:"session_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload"`
}

// PaymentProcessedPayload payload.
type PaymentProcessedPayload struct {
	TransactionID string       `json:"transaction_id"`
	Amount        domain.Cents `json:"amount"`
	NewBalance    domain.Cents `json:"new_balance"`
}

// RefundProcessedPayload payload.
type RefundProcessedPayload struct {
	RefundID   string       `json:"refund_id"`
	Amount     domain.Cents `json:"amount"`
	NewBalance domain.Cents `json:"new_balance"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID string                `json:"ticket_id"`
	Subject  string                `json:"subject"`
	Priority domain.TicketPriority `json:"priority"`
}

// AccountUpdatedPayload payload.
type AccountUpdatedPayload struct {
	Updates map[string]string `json:"updates"`
}
