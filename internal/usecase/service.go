package usecase

import (
	"time"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Ticket  TicketService
	Payment PaymentService
	Hotel   HotelService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, cache *redis.Client, log *zap.Logger) *Service {
	cacheTTL := time.Duration(config.Redis.CacheTTLSeconds) * time.Second
	tickets := NewTicketService(repo, log)

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Ticket:  tickets,
		Payment: NewPaymentService(repo, log),
		Hotel:   NewHotelService(repo, cache, cacheTTL, log),
		Booking: NewBookingService(repo, tickets, log),
	}
}
