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

type PaymentService interface {
	GetPayment(ctx context.Context, userID, ticketID int64) (*response.PaymentResponse, error)
	ProcessPayment(ctx context.Context, userID int64, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) GetPayment(ctx context.Context, userID, ticketID int64) (*response.PaymentResponse, error) {
	ticket, err := s.ownedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByTicketID(ctx, ticket.ID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment for ticket %d: %w", ticket.ID, apperr.ErrNotFound)
	}

	return response.PaymentToResponse(payment), nil
}

func (s *paymentService) ProcessPayment(ctx context.Context, userID int64, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), apperr.ErrBadInput)
	}

	ticket, err := s.ownedTicket(ctx, userID, req.TicketID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Ticket.UpdateStatus(ctx, ticket.ID, entity.TicketStatusPaid); err != nil {
		s.log.Error("Failed to mark ticket paid",
			zap.Error(err),
			zap.Int64("ticket_id", ticket.ID),
		)
		return nil, fmt.Errorf("process payment: %w", err)
	}

	// Only the card's last four digits are ever stored
	number := req.CardData.Number
	lastDigits := number
	if len(number) > 4 {
		lastDigits = number[len(number)-4:]
	}

	payment := &entity.Payment{
		TicketID:       ticket.ID,
		Value:          ticket.TicketType.Price,
		CardIssuer:     req.CardData.Issuer,
		CardLastDigits: lastDigits,
	}

	if _, err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}

	s.log.Info("Payment processed",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("value", payment.Value),
	)

	return response.PaymentToResponse(payment), nil
}

func (s *paymentService) ownedTicket(ctx context.Context, userID, ticketID int64) (*entity.Ticket, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %d: %w", ticketID, apperr.ErrNotFound)
	}

	if ticket.Enrollment == nil || ticket.Enrollment.UserID != userID {
		return nil, fmt.Errorf("ticket %d belongs to another user: %w", ticketID, apperr.ErrUnauthorized)
	}

	return ticket, nil
}
