package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-service/internal/domain"
)

func TestCustomerID_NormalizesCase(t *testing.T) {
	for _, raw := range []string{"cust001", "CUST001", "  Cust001  "} {
		id, err := CustomerID(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, "CUST001", id)
	}
}

func TestCustomerID_AcceptsLongerSequences(t *testing.T) {
	id, err := CustomerID("cust123456")
	require.NoError(t, err)
	assert.Equal(t, "CUST123456", id)
}

func TestCustomerID_Rejections(t *testing.T) {
	cases := map[string]string{
		"blank":       "   ",
		"empty":       "",
		"wrongPrefix": "CLNT001",
		"tooFewDigit": "CUST01",
		"trailing":    "CUST001X",
		"noDigits":    "CUST",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := CustomerID(raw)
			require.Error(t, err)
		})
	}
}

func TestAmount_RoundsHalfUp(t *testing.T) {
	amount, err := Amount(99.999)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(100_00), amount)

	// 25.125 is exactly representable, so the half-cent rounds up.
	amount, err = Amount(25.125)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(25_13), amount)
}

func TestAmount_AcceptsNumericStrings(t *testing.T) {
	amount, err := Amount(" 250.50 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(250_50), amount)
}

func TestAmount_Rejections(t *testing.T) {
	cases := map[string]any{
		"nil":        nil,
		"zero":       0.0,
		"negative":   -10.0,
		"overLimit":  100000.01,
		"notANumber": "abc",
		"wrongType":  []string{"10"},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Amount(raw)
			require.Error(t, err)
		})
	}
}

func TestAmount_AcceptsLimitBoundary(t *testing.T) {
	amount, err := Amount(100000.00)
	require.NoError(t, err)
	assert.Equal(t, MaxTransactionAmount, amount)
}

func TestEmail(t *testing.T) {
	email, err := Email("  john.doe@acme.com ")
	require.NoError(t, err)
	assert.Equal(t, "john.doe@acme.com", email)

	for _, raw := range []string{"", "   ", "plainaddress", "missing@tld", "@acme.com"} {
		_, err := Email(raw)
		require.Error(t, err, "input %q", raw)
	}
}

func TestTier_CanonicalForm(t *testing.T) {
	for raw, want := range map[string]domain.AccountTier{
		"basic":      domain.TierBasic,
		"PREMIUM":    domain.TierPremium,
		" enterprise": domain.TierEnterprise,
	} {
		tier, err := Tier(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, want, tier)
	}

	_, err := Tier("GOLD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid tier")
}

func TestPriority_NeverFails(t *testing.T) {
	assert.Equal(t, domain.TicketPriorityHigh, Priority("high"))
	assert.Equal(t, domain.TicketPriorityLow, Priority(" LOW "))
	assert.Equal(t, domain.TicketPriorityMedium, Priority(""))
	assert.Equal(t, domain.TicketPriorityMedium, Priority("URGENT"))
	assert.Equal(t, domain.TicketPriorityMedium, Priority("   "))
}
