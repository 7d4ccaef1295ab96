package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const hotelListCacheKey = "hotels:all"

type HotelService interface {
	GetHotels(ctx context.Context, userID int64) ([]*response.HotelResponse, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*response.HotelResponse, error)
}

type hotelService struct {
	repo     *repository.Repository
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewHotelService(repo *repository.Repository, cache *redis.Client, cacheTTL time.Duration, log *zap.Logger) HotelService {
	return &hotelService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) GetHotels(ctx context.Context, userID int64) ([]*response.HotelResponse, error) {
	if err := s.verifyTicketAndPayment(ctx, userID); err != nil {
		return nil, err
	}

	if cached := s.cachedHotels(ctx); cached != nil {
		return cached, nil
	}

	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get hotels", zap.Error(err))
		return nil, fmt.Errorf("get hotels: %w", err)
	}
	if len(hotels) == 0 {
		return nil, fmt.Errorf("no hotels: %w", apperr.ErrNotFound)
	}

	hotelResponses := make([]*response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		resp := response.HotelToResponse(hotel)
		hotelResponses[i] = &resp
	}

	s.storeHotels(ctx, hotelResponses)

	return hotelResponses, nil
}

func (s *hotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*response.HotelResponse, error) {
	if err := s.verifyTicketAndPayment(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to get hotel", zap.Error(err), zap.Int64("hotel_id", hotelID))
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, apperr.ErrNotFound)
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotelID)
	if err != nil {
		s.log.Error("Failed to get hotel rooms", zap.Error(err), zap.Int64("hotel_id", hotelID))
		return nil, fmt.Errorf("get hotel rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("hotel %d has no rooms: %w", hotelID, apperr.ErrNotFound)
	}

	hotel.Rooms = rooms
	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

// verifyTicketAndPayment gates the hotel catalog: the caller needs a
// paid-for, in-person, hotel-inclusive ticket. Unlike the booking gate
// this reports ineligibility as PaymentRequired.
func (s *hotelService) verifyTicketAndPayment(ctx context.Context, userID int64) error {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("verify ticket and payment: %w", err)
	}
	if enrollment == nil {
		return fmt.Errorf("enrollment for user %d: %w", userID, apperr.ErrNotFound)
	}

	ticket, err := s.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return fmt.Errorf("verify ticket and payment: %w", err)
	}
	if ticket == nil {
		return fmt.Errorf("ticket for enrollment %d: %w", enrollment.ID, apperr.ErrNotFound)
	}

	payment, err := s.repo.Payment.FindByTicketID(ctx, ticket.ID)
	if err != nil {
		return fmt.Errorf("verify ticket and payment: %w", err)
	}
	if payment == nil {
		return fmt.Errorf("payment for ticket %d: %w", ticket.ID, apperr.ErrNotFound)
	}

	if ticket.Status == entity.TicketStatusReserved {
		return fmt.Errorf("ticket %d is reserved: %w", ticket.ID, apperr.ErrPaymentRequired)
	}
	if ticket.TicketType.IsRemote {
		return fmt.Errorf("ticket %d is remote: %w", ticket.ID, apperr.ErrPaymentRequired)
	}
	if !ticket.TicketType.IncludesHotel {
		return fmt.Errorf("ticket %d does not include hotel: %w", ticket.ID, apperr.ErrPaymentRequired)
	}

	return nil
}

func (s *hotelService) cachedHotels(ctx context.Context) []*response.HotelResponse {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, hotelListCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("Hotel cache read failed", zap.Error(err))
		}
		return nil
	}

	var hotels []*response.HotelResponse
	if err := json.Unmarshal(data, &hotels); err != nil {
		s.log.Warn("Hotel cache decode failed", zap.Error(err))
		return nil
	}

	return hotels
}

func (s *hotelService) storeHotels(ctx context.Context, hotels []*response.HotelResponse) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(hotels)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, hotelListCacheKey, data, s.cacheTTL).Err(); err != nil {
		s.log.Warn("Hotel cache write failed", zap.Error(err))
	}
}
