package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Support *handlers.SupportHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	customers := app.Group("/customers")
	customers.Get("/:id", cfg.Support.GetCustomerAccount)
	customers.Post("/:id/payments", cfg.Support.ProcessPayment)
	customers.Post("/:id/tickets", cfg.Support.CreateTicket)
	customers.Get("/:id/tickets", cfg.Support.GetTickets)
	customers.Patch("/:id/settings", cfg.Support.UpdateAccountSettings)
	customers.Post("/:id/refund-validation", cfg.Support.ValidateRefundEligibility)
	customers.Post("/:id/refunds", cfg.Support.ProcessRefund)
}
