package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID             int64     `json:"id"`
	TicketID       int64     `json:"ticketId"`
	Value          int64     `json:"value"`
	CardIssuer     string    `json:"cardIssuer"`
	CardLastDigits string    `json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
}

func PaymentToResponse(payment *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:             payment.ID,
		TicketID:       payment.TicketID,
		Value:          payment.Value,
		CardIssuer:     payment.CardIssuer,
		CardLastDigits: payment.CardLastDigits,
		CreatedAt:      payment.CreatedAt,
	}
}
