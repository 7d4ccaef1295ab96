package usecase

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"go.uber.org/zap"
)

func ownedTicketRepo(ownerID int64) *mockTicketRepo {
	return &mockTicketRepo{
		findByID: func(ctx context.Context, id int64) (*entity.Ticket, error) {
			if id != 20 {
				return nil, nil
			}
			return &entity.Ticket{
				Base:         entity.Base{ID: 20},
				TicketTypeID: 2,
				EnrollmentID: 10,
				Status:       entity.TicketStatusReserved,
				TicketType:   &entity.TicketType{Base: entity.Base{ID: 2}, Price: 25000},
				Enrollment:   &entity.Enrollment{Base: entity.Base{ID: 10}, UserID: ownerID},
			}, nil
		},
	}
}

func validCard() request.CardData {
	return request.CardData{
		Issuer:         "VISA",
		Number:         "4111111111111111",
		Name:           "ANA SILVA",
		ExpirationDate: "12/29",
		CVV:            "123",
	}
}

func TestGetPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the payment for the caller's ticket", func(t *testing.T) {
		repo := testRepository(nil, ownedTicketRepo(1), nil, nil, nil, paymentFor(20))
		svc := NewPaymentService(repo, zap.NewNop())

		got, err := svc.GetPayment(ctx, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TicketID != 20 || got.Value != 25000 {
			t.Errorf("payment = %+v, want ticket 20 value 25000", got)
		}
	})

	t.Run("unknown ticket is not found", func(t *testing.T) {
		repo := testRepository(nil, ownedTicketRepo(1), nil, nil, nil, paymentFor(20))
		svc := NewPaymentService(repo, zap.NewNop())

		_, err := svc.GetPayment(ctx, 1, 99)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("someone else's ticket is unauthorized", func(t *testing.T) {
		repo := testRepository(nil, ownedTicketRepo(2), nil, nil, nil, paymentFor(20))
		svc := NewPaymentService(repo, zap.NewNop())

		_, err := svc.GetPayment(ctx, 1, 20)
		if !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("unpaid ticket has no payment", func(t *testing.T) {
		repo := testRepository(nil, ownedTicketRepo(1), nil, nil, nil, nil)
		svc := NewPaymentService(repo, zap.NewNop())

		_, err := svc.GetPayment(ctx, 1, 20)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the ticket paid and stores only the last digits", func(t *testing.T) {
		var updatedStatus entity.TicketStatus
		var stored *entity.Payment

		tickets := ownedTicketRepo(1)
		tickets.updateStatus = func(ctx context.Context, ticketID int64, status entity.TicketStatus) error {
			updatedStatus = status
			return nil
		}
		payments := &mockPaymentRepo{
			create: func(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
				payment.ID = 30
				stored = payment
				return payment, nil
			},
		}

		repo := testRepository(nil, tickets, nil, nil, nil, payments)
		svc := NewPaymentService(repo, zap.NewNop())

		got, err := svc.ProcessPayment(ctx, 1, &request.ProcessPaymentRequest{TicketID: 20, CardData: validCard()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updatedStatus != entity.TicketStatusPaid {
			t.Errorf("status = %s, want PAID", updatedStatus)
		}
		if stored.CardLastDigits != "1111" {
			t.Errorf("last digits = %s, want 1111", stored.CardLastDigits)
		}
		if stored.Value != 25000 {
			t.Errorf("value = %d, want ticket type price 25000", stored.Value)
		}
		if got.ID != 30 {
			t.Errorf("payment id = %d, want 30", got.ID)
		}
	})

	t.Run("rejects an incomplete card", func(t *testing.T) {
		repo := testRepository(nil, ownedTicketRepo(1), nil, nil, nil, nil)
		svc := NewPaymentService(repo, zap.NewNop())

		card := validCard()
		card.CVV = ""

		_, err := svc.ProcessPayment(ctx, 1, &request.ProcessPaymentRequest{TicketID: 20, CardData: card})
		if !errors.Is(err, apperr.ErrBadInput) {
			t.Errorf("error = %v, want ErrBadInput", err)
		}
	})

	t.Run("someone else's ticket is unauthorized", func(t *testing.T) {
		repo := testRepository(nil, ownedTicketRepo(2), nil, nil, nil, nil)
		svc := NewPaymentService(repo, zap.NewNop())

		_, err := svc.ProcessPayment(ctx, 1, &request.ProcessPaymentRequest{TicketID: 20, CardData: validCard()})
		if !errors.Is(err, apperr.ErrUnauthorized) {
			t.Errorf("error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("unknown ticket is not found", func(t *testing.T) {
		repo := testRepository(nil, ownedTicketRepo(1), nil, nil, nil, nil)
		svc := NewPaymentService(repo, zap.NewNop())

		_, err := svc.ProcessPayment(ctx, 1, &request.ProcessPaymentRequest{TicketID: 99, CardData: validCard()})
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
