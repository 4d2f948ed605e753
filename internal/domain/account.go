package domain

import "time"

// AccountStatus represents lifecycle states for a customer account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// AccountTier enumerates subscription levels.
type AccountTier string

const (
	TierBasic      AccountTier = "Basic"
	TierPremium    AccountTier = "Premium"
	TierEnterprise AccountTier = "Enterprise"
)

// CustomerAccount is the domain model for a billing account. CustomerID is
// immutable once the account exists; Balance is always whole cents.
type CustomerAccount struct {
	CustomerID      string
	Name            string
	Email           string
	Balance         Cents
	Tier            AccountTier
	Status          AccountStatus
	LastPaymentDate time.Time
}
