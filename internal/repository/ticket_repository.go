package repository

import (
	"strings"
	"sync"

	"github.com/spec-kit/support-service/internal/domain"
)

// TicketRepository encapsulates support ticket storage.
type TicketRepository interface {
	Append(ticket domain.SupportTicket)
	ListByCustomer(customerID, statusFilter string) []domain.SupportTicket
	Seed(tickets []domain.SupportTicket)
	Reset()
	Count() int
}

type ticketRepository struct {
	mu      sync.RWMutex
	tickets map[string][]domain.SupportTicket
	total   int
}

// NewTicketRepository instantiates an empty in-memory store.
func NewTicketRepository() TicketRepository {
	return &ticketRepository{tickets: make(map[string][]domain.SupportTicket)}
}

// Append stores a ticket at the end of the customer's list, preserving
// insertion order.
func (r *ticketRepository) Append(ticket domain.SupportTicket) {
	r.mu.Lock()
	r.tickets[ticket.CustomerID] = append(r.tickets[ticket.CustomerID], ticket)
	r.total++
	r.mu.Unlock()
}

// ListByCustomer returns the customer's tickets in insertion order. A
// non-blank statusFilter keeps only tickets whose status matches it
// case-insensitively.
func (r *ticketRepository) ListByCustomer(customerID, statusFilter string) []domain.SupportTicket {
	r.mu.RLock()
	stored := r.tickets[customerID]
	r.mu.RUnlock()

	filter := strings.TrimSpace(statusFilter)
	result := make([]domain.SupportTicket, 0, len(stored))
	for _, ticket := range stored {
		if filter != "" && !strings.EqualFold(string(ticket.Status), filter) {
			continue
		}
		result = append(result, ticket)
	}
	return result
}

// Seed loads fixture tickets.
func (r *ticketRepository) Seed(tickets []domain.SupportTicket) {
	for _, ticket := range tickets {
		r.Append(ticket)
	}
}

// Reset drops all tickets.
func (r *ticketRepository) Reset() {
	r.mu.Lock()
	r.tickets = make(map[string][]domain.SupportTicket)
	r.total = 0
	r.mu.Unlock()
}

// Count reports how many tickets are stored across all customers.
func (r *ticketRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total
}
