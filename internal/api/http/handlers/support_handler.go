package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-service/internal/api/dto"
	"github.com/spec-kit/support-service/internal/observability"
	"github.com/spec-kit/support-service/internal/service"
	"github.com/spec-kit/support-service/internal/session"
	apperrors "github.com/spec-kit/support-service/pkg/util"
)

// SessionHeader carries the conversation handle. A missing header starts
// a fresh session; the assigned ID is echoed on every response.
const SessionHeader = "X-Session-ID"

// SupportHandler exposes the seven support operations.
type SupportHandler struct {
	service  *service.SupportService
	sessions *session.Manager
	metrics  *observability.Metrics
}

// NewSupportHandler constructs the handler.
func NewSupportHandler(supportService *service.SupportService, sessions *session.Manager, metrics *observability.Metrics) *SupportHandler {
	return &SupportHandler{service: supportService, sessions: sessions, metrics: metrics}
}

// GetCustomerAccount GET /customers/:id.
func (h *SupportHandler) GetCustomerAccount(c *fiber.Ctx) error {
	sctx := h.session(c)
	result := h.service.GetCustomerAccount(c.Params("id"), sctx)
	return h.respond(c, "getCustomerAccount", result)
}

// ProcessPayment POST /customers/:id/payments.
func (h *SupportHandler) ProcessPayment(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	sctx := h.session(c)
	result := h.service.ProcessPayment(c.Params("id"), req.Amount, sctx)
	return h.respond(c, "processPayment", result)
}

// CreateTicket POST /customers/:id/tickets.
func (h *SupportHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	sctx := h.session(c)
	result := h.service.CreateTicket(c.Params("id"), req.Subject, req.Description, req.Priority, sctx)
	return h.respond(c, "createTicket", result)
}

// GetTickets GET /customers/:id/tickets.
func (h *SupportHandler) GetTickets(c *fiber.Ctx) error {
	sctx := h.session(c)
	result := h.service.GetTickets(c.Params("id"), c.Query("status"), sctx)
	return h.respond(c, "getTickets", result)
}

// UpdateAccountSettings PATCH /customers/:id/settings.
func (h *SupportHandler) UpdateAccountSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	sctx := h.session(c)
	result := h.service.UpdateAccountSettings(c.Params("id"), req.Email, req.Tier, sctx)
	return h.respond(c, "updateAccountSettings", result)
}

// ValidateRefundEligibility POST /customers/:id/refund-validation.
func (h *SupportHandler) ValidateRefundEligibility(c *fiber.Ctx) error {
	sctx := h.session(c)
	result := h.service.ValidateRefundEligibility(c.Params("id"), sctx)
	return h.respond(c, "validateRefundEligibility", result)
}

// ProcessRefund POST /customers/:id/refunds.
func (h *SupportHandler) ProcessRefund(c *fiber.Ctx) error {
	var req dto.RefundRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	sctx := h.session(c)
	result := h.service.ProcessRefund(c.Params("id"), req.Amount, sctx)
	return h.respond(c, "processRefund", result)
}

func (h *SupportHandler) session(c *fiber.Ctx) session.Context {
	sessionID, sctx := h.sessions.Acquire(c.Get(SessionHeader))
	c.Set(SessionHeader, sessionID)
	return sctx
}

func (h *SupportHandler) respond(c *fiber.Ctx, operation string, result service.Result) error {
	h.metrics.RecordOperation(operation, result.Ok())
	return c.Status(statusFor(result)).JSON(result)
}

func statusFor(result service.Result) int {
	if result.Ok() {
		return fiber.StatusOK
	}
	switch result.Code() {
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "WORKFLOW_STATE":
		return fiber.StatusConflict
	case "BUSINESS_RULE":
		return fiber.StatusUnprocessableEntity
	case "INTERNAL_ERROR":
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
