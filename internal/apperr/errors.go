package apperr

import "errors"

// Failure taxonomy for the booking core. Services raise these (wrapped)
// at the point of detection; the HTTP layer maps them to statuses with
// errors.Is. See internal/adaptor/handler.go for the mapping.
var (
	// ErrNotFound - referenced enrollment, ticket, room, hotel, or booking does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrCannotBook - business rule violation: room at capacity, no booking to
	// move, or ticket fails the paid/hotel/in-person check
	ErrCannotBook = errors.New("booking not allowed")

	// ErrPaymentRequired - ticket exists but is not a paid, in-person,
	// hotel-inclusive ticket (hotel catalog gate)
	ErrPaymentRequired = errors.New("payment required")

	// ErrBadInput - caller omitted or malformed a required field
	ErrBadInput = errors.New("invalid input")

	// ErrUnauthorized - resource belongs to another user
	ErrUnauthorized = errors.New("unauthorized")
)
