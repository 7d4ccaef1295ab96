package adaptor

import (
	"errors"
	"net/http"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Ticket  *TicketHandler
	Payment *PaymentHandler
	Hotel   *HotelHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Ticket:  NewTicketHandler(service.Ticket, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// respondError maps the service error taxonomy to transport statuses:
// NotFound -> 404, CannotBook -> 403, PaymentRequired -> 402,
// BadInput -> 400, Unauthorized -> 401, anything else -> 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperr.ErrCannotBook):
		log.Warn(operation+" failed - cannot book", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, apperr.ErrPaymentRequired):
		log.Warn(operation+" failed - payment required", zap.Error(err))
		utils.ResponsePaymentRequired(w, err.Error())

	case errors.Is(err, apperr.ErrBadInput):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
