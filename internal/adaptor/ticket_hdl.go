package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTicketTypes handles GET /api/tickets/types (protected)
func (h *TicketHandler) GetTicketTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.GetTicketTypes(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get ticket types")
		return
	}

	utils.ResponseSuccess(w, "success", types)
}

// GetUserTicket handles GET /api/tickets (protected)
func (h *TicketHandler) GetUserTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ticket, err := h.service.GetUserTicket(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "get user ticket")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// CreateTicket handles POST /api/tickets (protected)
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}

// GetEnrollment handles GET /api/enrollments (protected)
func (h *TicketHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	enrollment, err := h.service.GetUserEnrollment(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "get enrollment")
		return
	}

	utils.ResponseSuccess(w, "success", enrollment)
}
