package repository

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/support-service/internal/domain"
)

// Sentinel errors surfaced by the stores. The service layer maps these to
// structured failure results.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// AccountRepository encapsulates customer account storage.
type AccountRepository interface {
	GetByID(id string) (*domain.CustomerAccount, error)
	RecordPayment(id string, amount domain.Cents, paidAt time.Time) (previous, updated domain.Cents, err error)
	AdjustBalance(id string, delta domain.Cents) (previous, updated domain.Cents, err error)
	UpdateFields(id string, changes AccountChanges) (map[string]string, error)
	List() []domain.CustomerAccount
	Seed(accounts []domain.CustomerAccount)
	Reset()
	Count() int
}

// AccountChanges carries optional settings updates. Nil fields are left
// untouched.
type AccountChanges struct {
	Email *string
	Tier  *domain.AccountTier
}

// accountEntry pairs an account with its own lock so read-modify-write of
// the balance is linearizable per customer without serializing the whole
// store.
type accountEntry struct {
	mu      sync.Mutex
	account domain.CustomerAccount
}

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*accountEntry
}

// NewAccountRepository instantiates an empty in-memory store.
func NewAccountRepository() AccountRepository {
	return &accountRepository{accounts: make(map[string]*accountEntry)}
}

// GetByID returns a copy of the account; callers can never reach the
// stored value through the result.
func (r *accountRepository) GetByID(id string) (*domain.CustomerAccount, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	account := entry.account
	entry.mu.Unlock()
	return &account, nil
}

// RecordPayment atomically adds amount to the balance and stamps the last
// payment date.
func (r *accountRepository) RecordPayment(id string, amount domain.Cents, paidAt time.Time) (domain.Cents, domain.Cents, error) {
	entry, err := r.entry(id)
	if err != nil {
		return 0, 0, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	previous := entry.account.Balance
	entry.account.Balance = previous + amount
	entry.account.LastPaymentDate = paidAt
	return previous, entry.account.Balance, nil
}

// AdjustBalance atomically applies delta to the balance. A negative delta
// that would take the balance below zero is rejected without applying
// anything.
func (r *accountRepository) AdjustBalance(id string, delta domain.Cents) (domain.Cents, domain.Cents, error) {
	entry, err := r.entry(id)
	if err != nil {
		return 0, 0, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	previous := entry.account.Balance
	updated := previous + delta
	if updated < 0 {
		return previous, previous, ErrInsufficientBalance
	}
	entry.account.Balance = updated
	return previous, updated, nil
}

// UpdateFields applies the provided changes atomically and returns the
// applied field map. Either every change applies or none does.
func (r *accountRepository) UpdateFields(id string, changes AccountChanges) (map[string]string, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	applied := make(map[string]string)
	if changes.Email != nil {
		entry.account.Email = *changes.Email
		applied["email"] = *changes.Email
	}
	if changes.Tier != nil {
		entry.account.Tier = *changes.Tier
		applied["tier"] = string(*changes.Tier)
	}
	return applied, nil
}

// List returns copies of all accounts ordered by customer ID.
func (r *accountRepository) List() []domain.CustomerAccount {
	r.mu.RLock()
	entries := make([]*accountEntry, 0, len(r.accounts))
	for _, entry := range r.accounts {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	result := make([]domain.CustomerAccount, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		result = append(result, entry.account)
		entry.mu.Unlock()
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CustomerID < result[j].CustomerID })
	return result
}

// Seed loads fixture accounts, replacing any existing entry with the same
// customer ID.
func (r *accountRepository) Seed(accounts []domain.CustomerAccount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range accounts {
		r.accounts[account.CustomerID] = &accountEntry{account: account}
	}
}

// Reset drops all accounts.
func (r *accountRepository) Reset() {
	r.mu.Lock()
	r.accounts = make(map[string]*accountEntry)
	r.mu.Unlock()
}

// Count reports how many accounts are stored.
func (r *accountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

func (r *accountRepository) entry(id string) (*accountEntry, error) {
	r.mu.RLock()
	entry, ok := r.accounts[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrAccountNotFound
	}
	return entry, nil
}
