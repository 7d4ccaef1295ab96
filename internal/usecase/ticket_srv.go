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

type TicketService interface {
	GetTicketTypes(ctx context.Context) ([]*response.TicketTypeResponse, error)
	GetUserTicket(ctx context.Context, userID int64) (*response.TicketResponse, error)
	CreateTicket(ctx context.Context, userID int64, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	GetUserEnrollment(ctx context.Context, userID int64) (*response.EnrollmentResponse, error)

	// VerifyBookingEligibility is the gate in front of every booking
	// attempt: the user must hold a paid, in-person, hotel-inclusive
	// ticket. Pure read, no side effects.
	VerifyBookingEligibility(ctx context.Context, userID int64) (*entity.Ticket, error)
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetTicketTypes(ctx context.Context) ([]*response.TicketTypeResponse, error) {
	types, err := s.repo.Ticket.FindAllTypes(ctx)
	if err != nil {
		s.log.Error("Failed to get ticket types", zap.Error(err))
		return nil, fmt.Errorf("get ticket types: %w", err)
	}

	typeResponses := make([]*response.TicketTypeResponse, len(types))
	for i, tt := range types {
		ttResp := response.TicketTypeToResponse(tt)
		typeResponses[i] = &ttResp
	}

	return typeResponses, nil
}

func (s *ticketService) GetUserTicket(ctx context.Context, userID int64) (*response.TicketResponse, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user ticket: %w", err)
	}
	if enrollment == nil {
		return nil, fmt.Errorf("enrollment for user %d: %w", userID, apperr.ErrNotFound)
	}

	ticket, err := s.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, fmt.Errorf("get user ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket for enrollment %d: %w", enrollment.ID, apperr.ErrNotFound)
	}

	return response.TicketToResponse(ticket), nil
}

func (s *ticketService) CreateTicket(ctx context.Context, userID int64, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), apperr.ErrBadInput)
	}

	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	if enrollment == nil {
		return nil, fmt.Errorf("enrollment for user %d: %w", userID, apperr.ErrNotFound)
	}

	ticket, err := s.repo.Ticket.Create(ctx, req.TicketTypeID, enrollment.ID)
	if err != nil {
		s.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("ticket_type_id", req.TicketTypeID),
		)
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	// Reload with the joined type for the response
	created, err := s.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil || created == nil {
		return response.TicketToResponse(ticket), nil
	}

	s.log.Info("Ticket created",
		zap.Int64("ticket_id", created.ID),
		zap.Int64("user_id", userID),
	)

	return response.TicketToResponse(created), nil
}

func (s *ticketService) GetUserEnrollment(ctx context.Context, userID int64) (*response.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, fmt.Errorf("enrollment for user %d: %w", userID, apperr.ErrNotFound)
	}

	return response.EnrollmentToResponse(enrollment), nil
}

func (s *ticketService) VerifyBookingEligibility(ctx context.Context, userID int64) (*entity.Ticket, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("verify booking eligibility: %w", err)
	}
	if enrollment == nil {
		return nil, fmt.Errorf("enrollment for user %d: %w", userID, apperr.ErrNotFound)
	}

	ticket, err := s.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, fmt.Errorf("verify booking eligibility: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket for enrollment %d: %w", enrollment.ID, apperr.ErrNotFound)
	}

	if ticket.Status != entity.TicketStatusPaid {
		return nil, fmt.Errorf("ticket %d is not paid: %w", ticket.ID, apperr.ErrCannotBook)
	}
	if ticket.TicketType.IsRemote {
		return nil, fmt.Errorf("ticket %d is remote: %w", ticket.ID, apperr.ErrCannotBook)
	}
	if !ticket.TicketType.IncludesHotel {
		return nil, fmt.Errorf("ticket %d does not include hotel: %w", ticket.ID, apperr.ErrCannotBook)
	}

	return ticket, nil
}
