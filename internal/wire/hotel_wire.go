package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// The catalog is only visible to users with a paid, hotel-inclusive ticket
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config, log))

		// GET /api/hotels - List hotels
		r.Get("/api/hotels", hotelHandler.GetHotels)

		// GET /api/hotels/{hotelId} - Hotel details with rooms
		r.Get("/api/hotels/{hotelId}", hotelHandler.GetHotelWithRooms)
	})
}
