package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository owns the booking rows and the transactions that pair
// them with capacity mutations. A booking row never changes without the
// matching ledger adjustment committing in the same transaction.
type BookingRepository interface {
	// FindByUserID returns the user's booking with its room, or nil.
	FindByUserID(ctx context.Context, userID int64) (*entity.Booking, error)

	// Create inserts a booking and consumes one slot on the room in a
	// single transaction. Returns apperr.ErrCannotBook (nothing
	// committed) when the conditional consume finds no free slot.
	Create(ctx context.Context, userID, roomID int64) (int64, error)

	// MoveToRoom repoints a booking from one room to another, releasing
	// a slot on the old room and consuming one on the new room, all in a
	// single transaction. Returns apperr.ErrCannotBook (nothing
	// committed) when the new room has no free slot.
	MoveToRoom(ctx context.Context, bookingID, fromRoomID, toRoomID int64) error
}

type bookingRepository struct {
	db    database.PgxIface
	rooms RoomRepository
	log   *zap.Logger
}

func NewBookingRepository(db database.PgxIface, rooms RoomRepository, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:    db,
		rooms: rooms,
		log:   log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
	`

	var booking entity.Booking
	var room entity.Room
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	booking.Room = &room
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin create booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	consumed, err := r.rooms.ConsumeSlot(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}
	if !consumed {
		// Lost the race after the caller's availability check, or the
		// room disappeared. Either way nothing is committed.
		return 0, fmt.Errorf("room %d has no free slot: %w", roomID, apperr.ErrCannotBook)
	}

	query := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	var bookingID int64
	if err := tx.QueryRow(ctx, query, userID, roomID).Scan(&bookingID); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("create booking for user %d: %w", userID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit create booking tx: %w", err)
	}

	return bookingID, nil
}

func (r *bookingRepository) MoveToRoom(ctx context.Context, bookingID, fromRoomID, toRoomID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin move booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.rooms.ReleaseSlot(ctx, tx, fromRoomID); err != nil {
		return err
	}

	consumed, err := r.rooms.ConsumeSlot(ctx, tx, toRoomID)
	if err != nil {
		return err
	}
	if !consumed {
		return fmt.Errorf("room %d has no free slot: %w", toRoomID, apperr.ErrCannotBook)
	}

	query := `
		UPDATE bookings
		SET room_id = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, bookingID, toRoomID)
	if err != nil {
		r.log.Error("Failed to move booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.Int64("to_room_id", toRoomID),
		)
		return fmt.Errorf("move booking %d to room %d: %w", bookingID, toRoomID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", bookingID, apperr.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit move booking tx: %w", err)
	}

	return nil
}
