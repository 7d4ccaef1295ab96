package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	FindAllTypes(ctx context.Context) ([]*entity.TicketType, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*entity.Ticket, error)
	FindByID(ctx context.Context, id int64) (*entity.Ticket, error)
	Create(ctx context.Context, ticketTypeID, enrollmentID int64) (*entity.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindAllTypes(ctx context.Context) ([]*entity.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find ticket types", zap.Error(err))
		return nil, fmt.Errorf("find ticket types: %w", err)
	}
	defer rows.Close()

	var types []*entity.TicketType
	for rows.Next() {
		var tt entity.TicketType
		err := rows.Scan(
			&tt.ID,
			&tt.Name,
			&tt.Price,
			&tt.IsRemote,
			&tt.IncludesHotel,
			&tt.CreatedAt,
			&tt.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket type row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket type row: %w", err)
		}
		types = append(types, &tt)
	}

	return types, nil
}

func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*entity.Ticket, error) {
	query := `
		SELECT t.id, t.ticket_type_id, t.enrollment_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
	`

	row := r.db.QueryRow(ctx, query, enrollmentID)
	ticket, err := scanTicketWithType(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by enrollment ID",
			zap.Error(err),
			zap.Int64("enrollment_id", enrollmentID),
		)
		return nil, fmt.Errorf("find ticket by enrollment ID %d: %w", enrollmentID, err)
	}

	return ticket, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	query := `
		SELECT t.id, t.ticket_type_id, t.enrollment_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at,
		       e.id, e.user_id, e.name, e.cpf, e.created_at, e.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		JOIN enrollments e ON e.id = t.enrollment_id
		WHERE t.id = $1
	`

	var ticket entity.Ticket
	var tt entity.TicketType
	var enrollment entity.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.TicketTypeID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&tt.ID,
		&tt.Name,
		&tt.Price,
		&tt.IsRemote,
		&tt.IncludesHotel,
		&tt.CreatedAt,
		&tt.UpdatedAt,
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.CPF,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return nil, fmt.Errorf("find ticket by ID %d: %w", id, err)
	}

	ticket.TicketType = &tt
	ticket.Enrollment = &enrollment
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticketTypeID, enrollmentID int64) (*entity.Ticket, error) {
	query := `
		INSERT INTO tickets (ticket_type_id, enrollment_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	ticket := entity.Ticket{
		TicketTypeID: ticketTypeID,
		EnrollmentID: enrollmentID,
		Status:       entity.TicketStatusReserved,
	}
	err := r.db.QueryRow(ctx, query, ticketTypeID, enrollmentID, entity.TicketStatusReserved).Scan(
		&ticket.ID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.Int64("ticket_type_id", ticketTypeID),
			zap.Int64("enrollment_id", enrollmentID),
		)
		return nil, fmt.Errorf("create ticket for enrollment %d: %w", enrollmentID, err)
	}

	return &ticket, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) error {
	query := `UPDATE tickets SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, ticketID, status)
	if err != nil {
		r.log.Error("Failed to update ticket status",
			zap.Error(err),
			zap.Int64("ticket_id", ticketID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update ticket %d status to %s: %w", ticketID, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %d not found", ticketID)
	}

	return nil
}

func scanTicketWithType(row pgx.Row) (*entity.Ticket, error) {
	var ticket entity.Ticket
	var tt entity.TicketType
	err := row.Scan(
		&ticket.ID,
		&ticket.TicketTypeID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&tt.ID,
		&tt.Name,
		&tt.Price,
		&tt.IsRemote,
		&tt.IncludesHotel,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ticket.TicketType = &tt
	return &ticket, nil
}
