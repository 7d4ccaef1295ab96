package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config, log))

		// GET /api/payments?ticketId= - View payment for a ticket
		r.Get("/api/payments", paymentHandler.GetPayment)

		// POST /api/payments/process - Pay for a reserved ticket
		r.Post("/api/payments/process", paymentHandler.ProcessPayment)
	})
}
