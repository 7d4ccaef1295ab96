package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type TicketTypeResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

type TicketResponse struct {
	ID         int64               `json:"id"`
	Status     entity.TicketStatus `json:"status"`
	TicketType TicketTypeResponse  `json:"TicketType"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func TicketTypeToResponse(tt *entity.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:            tt.ID,
		Name:          tt.Name,
		Price:         tt.Price,
		IsRemote:      tt.IsRemote,
		IncludesHotel: tt.IncludesHotel,
	}
}

func TicketToResponse(ticket *entity.Ticket) *TicketResponse {
	resp := TicketResponse{
		ID:        ticket.ID,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
	}

	if ticket.TicketType != nil {
		resp.TicketType = TicketTypeToResponse(ticket.TicketType)
	}

	return &resp
}
