package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RoomRepository reads rooms and owns the capacity ledger. Slot
// adjustments take a database.Executor so the booking repository can run
// them inside its transactions; nothing else may touch room capacity.
type RoomRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
	FindByHotelID(ctx context.Context, hotelID int64) ([]*entity.Room, error)

	// ConsumeSlot decrements remaining capacity by one, but only while
	// capacity is still positive. The conditional update is the atomic
	// check-and-decrement: a false return means the room filled up (or
	// vanished) since the caller's availability check.
	ConsumeSlot(ctx context.Context, q database.Executor, roomID int64) (bool, error)

	// ReleaseSlot increments remaining capacity by one.
	ReleaseSlot(ctx context.Context, q database.Executor, roomID int64) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
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
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, fmt.Errorf("find room by ID %d: %w", id, err)
	}

	return &room, nil
}

func (r *roomRepository) FindByHotelID(ctx context.Context, hotelID int64) ([]*entity.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find rooms by hotel ID",
			zap.Error(err),
			zap.Int64("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("find rooms by hotel ID %d: %w", hotelID, err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.HotelID,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) ConsumeSlot(ctx context.Context, q database.Executor, roomID int64) (bool, error) {
	query := `
		UPDATE rooms
		SET capacity = capacity - 1, updated_at = NOW()
		WHERE id = $1 AND capacity > 0
	`

	result, err := q.Exec(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to consume room slot",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return false, fmt.Errorf("consume slot for room %d: %w", roomID, err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *roomRepository) ReleaseSlot(ctx context.Context, q database.Executor, roomID int64) error {
	query := `
		UPDATE rooms
		SET capacity = capacity + 1, updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to release room slot",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return fmt.Errorf("release slot for room %d: %w", roomID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("release slot: room %d not found", roomID)
	}

	return nil
}
