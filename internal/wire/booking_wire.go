package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config, log))

		// GET /api/booking - View the caller's booking
		r.Get("/api/booking", bookingHandler.GetBooking)

		// POST /api/booking - Book a room (authenticated users only)
		r.Post("/api/booking", bookingHandler.CreateBooking)

		// PUT /api/booking/{bookingId} - Move the booking to another room
		r.Put("/api/booking/{bookingId}", bookingHandler.UpdateBooking)
	})
}
