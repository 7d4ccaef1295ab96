package entity

// Booking links one user to one room. A user holds at most one booking;
// a room holds up to its capacity worth of bookings.
type Booking struct {
	Base
	UserID int64 `db:"user_id"`
	RoomID int64 `db:"room_id"`

	// Populated by joined lookups
	Room *Room `db:"-"`
}
