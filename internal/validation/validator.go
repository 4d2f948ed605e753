package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spec-kit/support-service/internal/domain"
	apperrors "github.com/spec-kit/support-service/pkg/util"
)

var (
	customerIDPattern = regexp.MustCompile(`^CUST\d{3,}$`)
	emailPattern      = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// MaxTransactionAmount caps a single payment or refund.
const MaxTransactionAmount domain.Cents = 100000_00

// CustomerID trims and uppercases the raw ID and checks the CUST### shape.
func CustomerID(raw string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(raw))
	if id == "" {
		return "", apperrors.NewValidationError("Customer ID is required", nil)
	}
	if !customerIDPattern.MatchString(id) {
		return "", apperrors.NewValidationError(
			"Invalid customer ID format. Must be CUST followed by at least three digits (e.g., CUST001)",
			map[string]any{"customer_id": raw})
	}
	return id, nil
}

// Amount accepts a numeric value or a numeric string and returns the
// amount in cents, rounded half-up to two decimal places. The union type
// stops here; everything past the boundary works in domain.Cents.
func Amount(raw any) (domain.Cents, error) {
	if raw == nil {
		return 0, apperrors.NewValidationError("Amount is required", nil)
	}

	var value float64
	switch v := raw.(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, apperrors.NewValidationError(fmt.Sprintf("Invalid amount format: %s", v), nil)
		}
		value = parsed
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, apperrors.NewValidationError(fmt.Sprintf("Invalid amount format: %s", v), nil)
		}
		value = parsed
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case domain.Cents:
		value = v.Float64()
	default:
		return 0, apperrors.NewValidationError("Amount must be a number", nil)
	}

	amount := domain.CentsFromFloat(value)
	if amount <= 0 {
		return 0, apperrors.NewValidationError("Amount must be greater than zero", nil)
	}
	if amount > MaxTransactionAmount {
		return 0, apperrors.NewValidationError(
			fmt.Sprintf("Amount exceeds maximum transaction limit of $%s", MaxTransactionAmount), nil)
	}
	return amount, nil
}

// Email trims and validates a local@domain.tld address.
func Email(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", apperrors.NewValidationError("Email is required", nil)
	}
	if !emailPattern.MatchString(email) {
		return "", apperrors.NewValidationError("Invalid email format", map[string]any{"email": raw})
	}
	return email, nil
}

// Tier validates a tier name case-insensitively and returns the canonical
// capitalized form.
func Tier(raw string) (domain.AccountTier, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return "", apperrors.NewValidationError("Account tier is required", nil)
	}
	for _, tier := range []domain.AccountTier{domain.TierBasic, domain.TierPremium, domain.TierEnterprise} {
		if strings.ToUpper(string(tier)) == normalized {
			return tier, nil
		}
	}
	return "", apperrors.NewValidationError(
		"Invalid tier. Must be one of: Basic, Premium, or Enterprise",
		map[string]any{"tier": raw})
}

// Priority never fails: blank or unrecognized input maps to MEDIUM. This
// is deliberate graceful degradation, not an error path.
func Priority(raw string) domain.TicketPriority {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	switch domain.TicketPriority(normalized) {
	case domain.TicketPriorityLow, domain.TicketPriorityMedium, domain.TicketPriorityHigh:
		return domain.TicketPriority(normalized)
	default:
		return domain.TicketPriorityMedium
	}
}
