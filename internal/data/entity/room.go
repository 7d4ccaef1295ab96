package entity

// Room capacity counts REMAINING free slots, not total beds.
// It is only ever mutated through the room repository's slot statements,
// inside the booking repository's transactions.
type Room struct {
	Base
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	HotelID  int64  `db:"hotel_id"`
}
