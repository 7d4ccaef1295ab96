package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config, log))

		// GET /api/enrollments - View the caller's enrollment
		r.Get("/api/enrollments", ticketHandler.GetEnrollment)

		// GET /api/tickets/types - List available ticket types
		r.Get("/api/tickets/types", ticketHandler.GetTicketTypes)

		// GET /api/tickets - View the caller's ticket
		r.Get("/api/tickets", ticketHandler.GetUserTicket)

		// POST /api/tickets - Reserve a ticket of a given type
		r.Post("/api/tickets", ticketHandler.CreateTicket)
	})
}
