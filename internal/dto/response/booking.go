package response

import (
	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID   int64        `json:"id"`
	Room RoomResponse `json:"Room"`
}

type CreateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:   booking.ID,
		Room: RoomToResponse(booking.Room),
	}
}
