package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-service/internal/domain"
)

func seededAccounts(t *testing.T) AccountRepository {
	t.Helper()
	repo := NewAccountRepository()
	repo.Seed(DefaultAccounts())
	return repo
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	repo := seededAccounts(t)

	account, err := repo.GetByID("CUST001")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1250_00), account.Balance)

	// Mutating the returned value must not touch the store.
	account.Balance = 0
	account.Email = "tampered@acme.com"

	fresh, err := repo.GetByID("CUST001")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1250_00), fresh.Balance)
	assert.Equal(t, "john.doe@acme.com", fresh.Email)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := seededAccounts(t)
	_, err := repo.GetByID("CUST999")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRecordPayment(t *testing.T) {
	repo := seededAccounts(t)
	paidAt := time.Now()

	previous, updated, err := repo.RecordPayment("CUST001", 100_00, paidAt)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1250_00), previous)
	assert.Equal(t, domain.Cents(1350_00), updated)

	account, err := repo.GetByID("CUST001")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1350_00), account.Balance)
	assert.WithinDuration(t, paidAt, account.LastPaymentDate, time.Second)
}

func TestAdjustBalance_InsufficientLeavesBalanceUntouched(t *testing.T) {
	repo := seededAccounts(t)

	_, _, err := repo.AdjustBalance("CUST002", -10_00)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	account, err := repo.GetByID("CUST002")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(0), account.Balance)
}

func TestAdjustBalance_ConcurrentNoLostUpdates(t *testing.T) {
	repo := seededAccounts(t)
	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := repo.AdjustBalance("CUST003", 1_00)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	account, err := repo.GetByID("CUST003")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(5000_00+workers*1_00), account.Balance)
}

func TestUpdateFields(t *testing.T) {
	repo := seededAccounts(t)

	email := "new.email@acme.com"
	tier := domain.TierEnterprise
	applied, err := repo.UpdateFields("CUST002", AccountChanges{Email: &email, Tier: &tier})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email": email, "tier": "Enterprise"}, applied)

	account, err := repo.GetByID("CUST002")
	require.NoError(t, err)
	assert.Equal(t, email, account.Email)
	assert.Equal(t, domain.TierEnterprise, account.Tier)
}

func TestListAndReset(t *testing.T) {
	repo := seededAccounts(t)

	accounts := repo.List()
	require.Len(t, accounts, 3)
	assert.Equal(t, "CUST001", accounts[0].CustomerID)
	assert.Equal(t, "CUST003", accounts[2].CustomerID)

	repo.Reset()
	assert.Zero(t, repo.Count())
}
