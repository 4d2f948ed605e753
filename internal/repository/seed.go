package repository

import (
	"time"

	"github.com/spec-kit/support-service/internal/domain"
)

// DefaultAccounts returns the demo account fixtures. Payment dates are
// relative to now so refund-eligibility behavior is stable over time:
// CUST001 is outside the 30-day window, CUST002 and CUST003 inside it.
func DefaultAccounts() []domain.CustomerAccount {
	today := time.Now()
	return []domain.CustomerAccount{
		{
			CustomerID:      "CUST001",
			Name:            "John Doe",
			Email:           "john.doe@acme.com",
			Balance:         1250_00,
			Tier:            domain.TierPremium,
			Status:          domain.AccountStatusActive,
			LastPaymentDate: today.AddDate(0, 0, -45),
		},
		{
			CustomerID:      "CUST002",
			Name:            "Jane Smith",
			Email:           "jane.smith@acme.com",
			Balance:         0,
			Tier:            domain.TierBasic,
			Status:          domain.AccountStatusActive,
			LastPaymentDate: today.AddDate(0, 0, -5),
		},
		{
			CustomerID:      "CUST003",
			Name:            "Bob Johnson",
			Email:           "bob.j@acme.com",
			Balance:         5000_00,
			Tier:            domain.TierEnterprise,
			Status:          domain.AccountStatusActive,
			LastPaymentDate: today.AddDate(0, 0, -10),
		},
	}
}

// DefaultTickets returns the demo ticket fixtures.
func DefaultTickets() []domain.SupportTicket {
	return []domain.SupportTicket{
		{
			TicketID:    "TICKET-000100",
			CustomerID:  "CUST001",
			Subject:     "Login Fail",
			Description: "Unable to sign in after password reset",
			Priority:    domain.TicketPriorityMedium,
			Status:      domain.TicketStatusClosed,
			CreatedAt:   time.Now().AddDate(0, 0, -60),
		},
	}
}
