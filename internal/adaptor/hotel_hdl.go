package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// GetHotels handles GET /api/hotels (protected)
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotels, err := h.service.GetHotels(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "get hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotelWithRooms handles GET /api/hotels/{hotelId} (protected)
func (h *HotelHandler) GetHotelWithRooms(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	hotelID, ok := utils.ParseID(chi.URLParam(r, "hotelId"))
	if !ok {
		utils.ResponseBadRequest(w, "Hotel ID is required", nil)
		return
	}

	hotel, err := h.service.GetHotelWithRooms(r.Context(), userID, hotelID)
	if err != nil {
		respondError(w, h.log, err, "get hotel with rooms")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}
