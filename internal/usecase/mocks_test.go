package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/database"
)

// Mock repositories: structs of func fields so each test swaps in only
// the behavior it cares about. Unset funcs return the zero values.

type mockEnrollmentRepo struct {
	findByUserID func(ctx context.Context, userID int64) (*entity.Enrollment, error)
}

func (m *mockEnrollmentRepo) FindByUserID(ctx context.Context, userID int64) (*entity.Enrollment, error) {
	if m.findByUserID != nil {
		return m.findByUserID(ctx, userID)
	}
	return nil, nil
}

type mockTicketRepo struct {
	findAllTypes       func(ctx context.Context) ([]*entity.TicketType, error)
	findByEnrollmentID func(ctx context.Context, enrollmentID int64) (*entity.Ticket, error)
	findByID           func(ctx context.Context, id int64) (*entity.Ticket, error)
	create             func(ctx context.Context, ticketTypeID, enrollmentID int64) (*entity.Ticket, error)
	updateStatus       func(ctx context.Context, ticketID int64, status entity.TicketStatus) error
}

func (m *mockTicketRepo) FindAllTypes(ctx context.Context) ([]*entity.TicketType, error) {
	if m.findAllTypes != nil {
		return m.findAllTypes(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*entity.Ticket, error) {
	if m.findByEnrollmentID != nil {
		return m.findByEnrollmentID(ctx, enrollmentID)
	}
	return nil, nil
}

func (m *mockTicketRepo) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepo) Create(ctx context.Context, ticketTypeID, enrollmentID int64) (*entity.Ticket, error) {
	if m.create != nil {
		return m.create(ctx, ticketTypeID, enrollmentID)
	}
	return nil, nil
}

func (m *mockTicketRepo) UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) error {
	if m.updateStatus != nil {
		return m.updateStatus(ctx, ticketID, status)
	}
	return nil
}

type mockHotelRepo struct {
	findAll  func(ctx context.Context) ([]*entity.Hotel, error)
	findByID func(ctx context.Context, id int64) (*entity.Hotel, error)
}

func (m *mockHotelRepo) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	if m.findAll != nil {
		return m.findAll(ctx)
	}
	return nil, nil
}

func (m *mockHotelRepo) FindByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, nil
}

type mockRoomRepo struct {
	findByID      func(ctx context.Context, id int64) (*entity.Room, error)
	findByHotelID func(ctx context.Context, hotelID int64) ([]*entity.Room, error)
	consumeSlot   func(ctx context.Context, q database.Executor, roomID int64) (bool, error)
	releaseSlot   func(ctx context.Context, q database.Executor, roomID int64) error
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, nil
}

func (m *mockRoomRepo) FindByHotelID(ctx context.Context, hotelID int64) ([]*entity.Room, error) {
	if m.findByHotelID != nil {
		return m.findByHotelID(ctx, hotelID)
	}
	return nil, nil
}

func (m *mockRoomRepo) ConsumeSlot(ctx context.Context, q database.Executor, roomID int64) (bool, error) {
	if m.consumeSlot != nil {
		return m.consumeSlot(ctx, q, roomID)
	}
	return true, nil
}

func (m *mockRoomRepo) ReleaseSlot(ctx context.Context, q database.Executor, roomID int64) error {
	if m.releaseSlot != nil {
		return m.releaseSlot(ctx, q, roomID)
	}
	return nil
}

type mockBookingRepo struct {
	findByUserID func(ctx context.Context, userID int64) (*entity.Booking, error)
	create       func(ctx context.Context, userID, roomID int64) (int64, error)
	moveToRoom   func(ctx context.Context, bookingID, fromRoomID, toRoomID int64) error
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID int64) (*entity.Booking, error) {
	if m.findByUserID != nil {
		return m.findByUserID(ctx, userID)
	}
	return nil, nil
}

func (m *mockBookingRepo) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	if m.create != nil {
		return m.create(ctx, userID, roomID)
	}
	return 0, nil
}

func (m *mockBookingRepo) MoveToRoom(ctx context.Context, bookingID, fromRoomID, toRoomID int64) error {
	if m.moveToRoom != nil {
		return m.moveToRoom(ctx, bookingID, fromRoomID, toRoomID)
	}
	return nil
}

type mockPaymentRepo struct {
	findByTicketID func(ctx context.Context, ticketID int64) (*entity.Payment, error)
	create         func(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
}

func (m *mockPaymentRepo) FindByTicketID(ctx context.Context, ticketID int64) (*entity.Payment, error) {
	if m.findByTicketID != nil {
		return m.findByTicketID(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	if m.create != nil {
		return m.create(ctx, payment)
	}
	return payment, nil
}

type mockUserRepo struct {
	create      func(ctx context.Context, email, passwordHash string) (*entity.User, error)
	findByID    func(ctx context.Context, id int64) (*entity.User, error)
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, email, passwordHash string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, email, passwordHash)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, nil
}

type mockSessionRepo struct {
	create        func(ctx context.Context, userID int64, token string) (*entity.Session, error)
	findByToken   func(ctx context.Context, token string) (*entity.Session, error)
	deleteByToken func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int64, token string) (*entity.Session, error) {
	if m.create != nil {
		return m.create(ctx, userID, token)
	}
	return &entity.Session{UserID: userID, Token: token}, nil
}

func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	if m.findByToken != nil {
		return m.findByToken(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByToken != nil {
		return m.deleteByToken(ctx, token)
	}
	return nil
}

// mockTicketService stands in for the eligibility gate in booking tests.
type mockTicketService struct {
	verifyBookingEligibility func(ctx context.Context, userID int64) (*entity.Ticket, error)
}

func (m *mockTicketService) GetTicketTypes(ctx context.Context) ([]*response.TicketTypeResponse, error) {
	return nil, nil
}

func (m *mockTicketService) GetUserTicket(ctx context.Context, userID int64) (*response.TicketResponse, error) {
	return nil, nil
}

func (m *mockTicketService) CreateTicket(ctx context.Context, userID int64, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	return nil, nil
}

func (m *mockTicketService) GetUserEnrollment(ctx context.Context, userID int64) (*response.EnrollmentResponse, error) {
	return nil, nil
}

func (m *mockTicketService) VerifyBookingEligibility(ctx context.Context, userID int64) (*entity.Ticket, error) {
	if m.verifyBookingEligibility != nil {
		return m.verifyBookingEligibility(ctx, userID)
	}
	return &entity.Ticket{}, nil
}

func testRepository(
	enrollments *mockEnrollmentRepo,
	tickets *mockTicketRepo,
	hotels *mockHotelRepo,
	rooms *mockRoomRepo,
	bookings *mockBookingRepo,
	payments *mockPaymentRepo,
) *repository.Repository {
	if enrollments == nil {
		enrollments = &mockEnrollmentRepo{}
	}
	if tickets == nil {
		tickets = &mockTicketRepo{}
	}
	if hotels == nil {
		hotels = &mockHotelRepo{}
	}
	if rooms == nil {
		rooms = &mockRoomRepo{}
	}
	if bookings == nil {
		bookings = &mockBookingRepo{}
	}
	if payments == nil {
		payments = &mockPaymentRepo{}
	}

	return &repository.Repository{
		User:       &mockUserRepo{},
		Session:    &mockSessionRepo{},
		Enrollment: enrollments,
		Ticket:     tickets,
		Hotel:      hotels,
		Room:       rooms,
		Booking:    bookings,
		Payment:    payments,
	}
}
