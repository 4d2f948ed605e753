package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-service/internal/domain"
	"github.com/spec-kit/support-service/internal/events"
	"github.com/spec-kit/support-service/internal/identifier"
	"github.com/spec-kit/support-service/internal/repository"
	"github.com/spec-kit/support-service/internal/session"
	"github.com/spec-kit/support-service/internal/validation"
)

// Session keys. The customer cache and the refund workflow markers share
// the session store but never the same keys.
const (
	keyCurrentCustomer   = "current_customer"
	keyLastTransactionID = "last_transaction_id"
	keyLastPaymentAmount = "last_payment_amount"
	keyRefundEligible    = "refund_eligible"
	keyRefundCustomer    = "refund_customer"
)

const dateLayout = "2006-01-02"

func customerCacheKey(id string) string {
	return "customer:" + id
}

// SupportService orchestrates the seven support operations over the
// injected stores. All state flows through the explicitly passed session
// Context; there is no ambient per-call state.
type SupportService struct {
	accounts   repository.AccountRepository
	tickets    repository.TicketRepository
	ids        *identifier.Generator
	dispatcher events.Dispatcher
	logger     *zap.Logger

	refundWindowDays int
	now              func() time.Time
}

// Dependencies bundles collaborators for the support service.
type Dependencies struct {
	AccountRepo      repository.AccountRepository
	TicketRepo       repository.TicketRepository
	IDs              *identifier.Generator
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
	RefundWindowDays int
	Now              func() time.Time
}

// NewSupportService constructs the service.
func NewSupportService(deps Dependencies) *SupportService {
	svc := &SupportService{
		accounts:         deps.AccountRepo,
		tickets:          deps.TicketRepo,
		ids:              deps.IDs,
		dispatcher:       deps.Dispatcher,
		logger:           deps.Logger,
		refundWindowDays: deps.RefundWindowDays,
		now:              deps.Now,
	}
	if svc.ids == nil {
		svc.ids = identifier.NewGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.refundWindowDays <= 0 {
		svc.refundWindowDays = 30
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

// GetCustomerAccount returns account details, serving repeat lookups in
// the same session from the cached payload. Cache entries hold the full
// success result, so hits and misses are indistinguishable to the caller.
func (s *SupportService) GetCustomerAccount(customerID string, sctx session.Context) Result {
	id, err := validation.CustomerID(customerID)
	if err != nil {
		return failureFromError(err)
	}

	if cached, ok := sctx.Get(customerCacheKey(id)); ok {
		if result, ok := asResult(cached); ok {
			sctx.Put(keyCurrentCustomer, id)
			return result
		}
		// Corrupted cache entry: log, drop, fall through to the store.
		s.logger.Error("discarding corrupted cache entry", zap.String("customer_id", id))
		sctx.Remove(customerCacheKey(id))
	}

	account, err := s.accounts.GetByID(id)
	if err != nil {
		return s.accountFailure(id, err)
	}

	result := success(map[string]any{"customer": accountPayload(account)})
	sctx.Put(customerCacheKey(id), result)
	sctx.Put(keyCurrentCustomer, id)
	return result
}

// ProcessPayment adds the amount to the account balance and stamps the
// payment date, atomically with respect to concurrent balance updates.
func (s *SupportService) ProcessPayment(customerID string, amount any, sctx session.Context) Result {
	id, err := validation.CustomerID(customerID)
	if err != nil {
		return failureFromError(err)
	}
	value, err := validation.Amount(amount)
	if err != nil {
		return failureFromError(err)
	}

	previous, updated, err := s.accounts.RecordPayment(id, value, s.now())
	if err != nil {
		return s.accountFailure(id, err)
	}

	transactionID := s.ids.NextTransactionID()

	sctx.Remove(customerCacheKey(id))
	sctx.Put(keyLastTransactionID, transactionID)
	sctx.Put(keyLastPaymentAmount, value.Float64())

	s.logger.Info("payment processed",
		zap.String("customer_id", id),
		zap.String("transaction_id", transactionID),
		zap.String("amount", value.String()))
	s.publish(events.Event{
		Type:       events.EventPaymentProcessed,
		CustomerID: id,
		Payload: events.PaymentProcessedPayload{
			TransactionID: transactionID,
			Amount:        value,
			NewBalance:    updated,
		},
	})

	return success(map[string]any{
		"transactionId":   transactionID,
		"amount":          value.Float64(),
		"previousBalance": previous.Float64(),
		"newBalance":      updated.Float64(),
	})
}

// CreateTicket opens a new support ticket for an existing customer.
func (s *SupportService) CreateTicket(customerID, subject, description, priority string, sctx session.Context) Result {
	id, err := validation.CustomerID(customerID)
	if err != nil {
		return failureFromError(err)
	}
	if strings.TrimSpace(subject) == "" {
		return failure("VALIDATION_FAILED", "Subject is required")
	}
	if strings.TrimSpace(description) == "" {
		return failure("VALIDATION_FAILED", "Description is required")
	}
	if _, err := s.accounts.GetByID(id); err != nil {
		return s.accountFailure(id, err)
	}

	ticket := domain.SupportTicket{
		TicketID:    s.ids.NextTicketID(),
		CustomerID:  id,
		Subject:     strings.TrimSpace(subject),
		Description: strings.TrimSpace(description),
		Priority:    validation.Priority(priority),
		Status:      domain.TicketStatusOpen,
		CreatedAt:   s.now(),
	}
	s.tickets.Append(ticket)

	s.logger.Info("ticket created",
		zap.String("customer_id", id),
		zap.String("ticket_id", ticket.TicketID),
		zap.String("priority", string(ticket.Priority)))
	s.publish(events.Event{
		Type:       events.EventTicketCreated,
		CustomerID: id,
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.TicketID,
			Subject:  ticket.Subject,
			Priority: ticket.Priority,
		},
	})

	return success(map[string]any{"ticket": ticketPayload(ticket)})
}

// GetTickets lists the customer's tickets in insertion order, optionally
// filtered by status (case-insensitive; blank means all).
func (s *SupportService) GetTickets(customerID, statusFilter string, sctx session.Context) Result {
	id, err := validation.CustomerID(customerID)
	if err != nil {
		return failureFromError(err)
	}
	if _, err := s.accounts.GetByID(id); err != nil {
		return s.accountFailure(id, err)
	}

	tickets := s.tickets.ListByCustomer(id, statusFilter)
	items := make([]map[string]any, 0, len(tickets))
	for _, ticket := range tickets {
		items = append(items, ticketPayload(ticket))
	}
	return success(map[string]any{
		"count":   len(items),
		"tickets": items,
	})
}

// UpdateAccountSettings applies email and/or tier changes. An invalid
// value for either field aborts the whole call; partial application is
// not permitted.
func (s *SupportService) UpdateAccountSettings(customerID, email, tier string, sctx session.Context) Result {
	id, err := validation.CustomerID(customerID)
	if err != nil {
		return failureFromError(err)
	}
	if _, err := s.accounts.GetByID(id); err != nil {
		return s.accountFailure(id, err)
	}
	if strings.TrimSpace(email) == "" && strings.TrimSpace(tier) == "" {
		return failure("VALIDATION_FAILED", "No valid updates provided. Specify email or tier")
	}

	changes := repository.AccountChanges{}
	if strings.TrimSpace(email) != "" {
		validEmail, err := validation.Email(email)
		if err != nil {
			return failureFromError(err)
		}
		changes.Email = &validEmail
	}
	if strings.TrimSpace(tier) != "" {
		validTier, err := validation.Tier(tier)
		if err != nil {
			return failureFromError(err)
		}
		changes.Tier = &validTier
	}

	applied, err := s.accounts.UpdateFields(id, changes)
	if err != nil {
		return s.accountFailure(id, err)
	}

	sctx.Remove(customerCacheKey(id))

	s.logger.Info("account settings updated", zap.String("customer_id", id), zap.Any("updates", applied))
	s.publish(events.Event{
		Type:       events.EventAccountUpdated,
		CustomerID: id,
		Payload:    events.AccountUpdatedPayload{Updates: applied},
	})

	return success(map[string]any{"updates": applied})
}

// ValidateRefundEligibility is step one of the refund workflow. It writes
// the workflow markers regardless of outcome so ProcessRefund can reject
// deterministically without re-deriving eligibility.
func (s *SupportService) ValidateRefundEligibility(customerID string, sctx session.Context) Result {
	id, err := validation.CustomerID(customerID)
	if err != nil {
		return failureFromError(err)
	}

	account, err := s.accounts.GetByID(id)
	if err != nil {
		sctx.Put(keyRefundEligible, false)
		sctx.Put(keyRefundCustomer, id)
		return s.accountFailure(id, err)
	}

	reasons := []string{}
	if account.Status != domain.AccountStatusActive {
		reasons = append(reasons, "Account is not active")
	}
	cutoff := s.now().AddDate(0, 0, -s.refundWindowDays)
	if account.LastPaymentDate.Before(cutoff) {
		reasons = append(reasons, fmt.Sprintf("Last payment was more than %d days ago", s.refundWindowDays))
	}
	eligible := len(reasons) == 0

	sctx.Put(keyRefundEligible, eligible)
	sctx.Put(keyRefundCustomer, id)

	s.logger.Info("refund eligibility validated",
		zap.String("customer_id", id),
		zap.Bool("eligible", eligible),
		zap.Strings("reasons", reasons))

	return success(map[string]any{
		"eligible": eligible,
		"reasons":  reasons,
		"tier":     string(account.Tier),
	})
}

// ProcessRefund is step two of the refund workflow. The workflow markers
// are checked before any input validation so a missing or mismatched
// prior validation always short-circuits, and are cleared on success so
// an approval cannot be reused.
func (s *SupportService) ProcessRefund(customerID string, amount any, sctx session.Context) Result {
	if !s.refundApproved(customerID, sctx) {
		return failure("WORKFLOW_STATE", "Refund validation must be completed first")
	}

	id, err := validation.CustomerID(customerID)
	if err != nil {
		return failureFromError(err)
	}
	value, err := validation.Amount(amount)
	if err != nil {
		return failureFromError(err)
	}

	previous, updated, err := s.accounts.AdjustBalance(id, -value)
	if err != nil {
		if err == repository.ErrInsufficientBalance {
			return failure("BUSINESS_RULE",
				fmt.Sprintf("Refund amount of $%s exceeds current balance", value))
		}
		return s.accountFailure(id, err)
	}

	refundID := s.ids.NextRefundID()

	sctx.Remove(keyRefundEligible)
	sctx.Remove(keyRefundCustomer)
	sctx.Remove(customerCacheKey(id))

	s.logger.Info("refund processed",
		zap.String("customer_id", id),
		zap.String("refund_id", refundID),
		zap.String("amount", value.String()))
	s.publish(events.Event{
		Type:       events.EventRefundProcessed,
		CustomerID: id,
		Payload: events.RefundProcessedPayload{
			RefundID:   refundID,
			Amount:     value,
			NewBalance: updated,
		},
	})

	return success(map[string]any{
		"refundId":        refundID,
		"amount":          value.Float64(),
		"previousBalance": previous.Float64(),
		"newBalance":      updated.Float64(),
		"message":         "Refund processed successfully. Funds will appear in 5-7 business days",
	})
}

// refundApproved checks the single-use workflow markers against the
// requested customer.
func (s *SupportService) refundApproved(customerID string, sctx session.Context) bool {
	eligibleRaw, ok := sctx.Get(keyRefundEligible)
	if !ok {
		return false
	}
	eligible, ok := eligibleRaw.(bool)
	if !ok || !eligible {
		return false
	}
	storedRaw, ok := sctx.Get(keyRefundCustomer)
	if !ok {
		return false
	}
	stored, ok := storedRaw.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(customerID), stored)
}

func (s *SupportService) accountFailure(id string, err error) Result {
	if err == repository.ErrAccountNotFound {
		return failure("NOT_FOUND", fmt.Sprintf("Customer not found: %s", id))
	}
	s.logger.Error("account store failure", zap.String("customer_id", id), zap.Error(err))
	return failure("INTERNAL_ERROR", "internal server error")
}

func (s *SupportService) publish(event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(context.Background(), event)
}

func accountPayload(account *domain.CustomerAccount) map[string]any {
	return map[string]any{
		"customerId":      account.CustomerID,
		"name":            account.Name,
		"email":           account.Email,
		"balance":         account.Balance.Float64(),
		"tier":            string(account.Tier),
		"status":          string(account.Status),
		"lastPaymentDate": account.LastPaymentDate.Format(dateLayout),
	}
}

func ticketPayload(ticket domain.SupportTicket) map[string]any {
	return map[string]any{
		"ticketId":    ticket.TicketID,
		"customerId":  ticket.CustomerID,
		"subject":     ticket.Subject,
		"description": ticket.Description,
		"priority":    string(ticket.Priority),
		"status":      string(ticket.Status),
		"createdAt":   ticket.CreatedAt.Format(time.RFC3339),
	}
}

// asResult normalizes a cached value back into a Result. Redis-backed
// sessions round-trip values through JSON, which yields map[string]any.
func asResult(cached any) (Result, bool) {
	switch v := cached.(type) {
	case Result:
		return v, true
	case map[string]any:
		return Result(v), true
	default:
		return nil, false
	}
}
