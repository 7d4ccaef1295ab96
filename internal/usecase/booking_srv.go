package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingService is the allocation core: it composes the eligibility
// check, the availability check, and the capacity ledger into the three
// booking operations. Order matters in CreateBooking: a failed
// eligibility check must never touch capacity.
type BookingService interface {
	GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	tickets TicketService
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, tickets TicketService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		tickets: tickets,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking for user %d: %w", userID, apperr.ErrNotFound)
	}

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), apperr.ErrBadInput)
	}

	// Eligibility first: ineligible users never reach the ledger
	if _, err := s.tickets.VerifyBookingEligibility(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.verifyRoomAvailability(ctx, req.RoomID); err != nil {
		return nil, err
	}

	// Insert + consume happen in one transaction; a concurrent booking
	// that takes the last slot after the check above surfaces here as
	// ErrCannotBook with nothing committed.
	bookingID, err := s.repo.Booking.Create(ctx, userID, req.RoomID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", req.RoomID),
	)

	return &response.CreateBookingResponse{BookingID: bookingID}, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), apperr.ErrBadInput)
	}

	if _, err := s.verifyRoomAvailability(ctx, req.RoomID); err != nil {
		return nil, err
	}

	// Having no booking to move is a business-rule violation, not a
	// missing resource
	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("user %d has no booking to move: %w", userID, apperr.ErrCannotBook)
	}
	if booking.ID != bookingID {
		return nil, fmt.Errorf("booking %d does not belong to user %d: %w", bookingID, userID, apperr.ErrCannotBook)
	}

	// Release old, consume new, repoint: one transaction, one net slot
	// transferred
	if err := s.repo.Booking.MoveToRoom(ctx, booking.ID, booking.RoomID, req.RoomID); err != nil {
		return nil, err
	}

	s.log.Info("Booking moved",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("from_room_id", booking.RoomID),
		zap.Int64("to_room_id", req.RoomID),
	)

	return &response.CreateBookingResponse{BookingID: booking.ID}, nil
}

// verifyRoomAvailability fetches the room and checks for a free slot.
// Pure read; the authoritative check-and-decrement happens later inside
// the booking repository's transaction.
func (s *bookingService) verifyRoomAvailability(ctx context.Context, roomID int64) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("verify room availability: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d: %w", roomID, apperr.ErrNotFound)
	}

	if room.Capacity <= 0 {
		return nil, fmt.Errorf("room %d is full: %w", roomID, apperr.ErrCannotBook)
	}

	return room, nil
}
