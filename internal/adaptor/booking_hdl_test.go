package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockBookingService struct {
	getBooking    func(ctx context.Context, userID int64) (*response.BookingResponse, error)
	createBooking func(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	updateBooking func(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error)
}

func (m *mockBookingService) GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error) {
	return m.getBooking(ctx, userID)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	return m.createBooking(ctx, userID, req)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error) {
	return m.updateBooking(ctx, userID, bookingID, req)
}

func bookingRouter(svc *mockBookingService) *chi.Mux {
	h := NewBookingHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/booking", h.GetBooking)
	r.Post("/api/booking", h.CreateBooking)
	r.Put("/api/booking/{bookingId}", h.UpdateBooking)
	return r
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(utils.SetUserContext(req.Context(), 1))
}

func TestBookingStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no booking", fmt.Errorf("booking: %w", apperr.ErrNotFound), http.StatusNotFound},
		{"cannot book", fmt.Errorf("booking: %w", apperr.ErrCannotBook), http.StatusForbidden},
		{"bad input", fmt.Errorf("booking: %w", apperr.ErrBadInput), http.StatusBadRequest},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := bookingRouter(&mockBookingService{
				getBooking: func(ctx context.Context, userID int64) (*response.BookingResponse, error) {
					return nil, tc.err
				},
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/booking", ""))

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestGetBookingHandler(t *testing.T) {
	t.Run("returns the booking", func(t *testing.T) {
		router := bookingRouter(&mockBookingService{
			getBooking: func(ctx context.Context, userID int64) (*response.BookingResponse, error) {
				return &response.BookingResponse{ID: 7, Room: response.RoomResponse{ID: 3, Name: "101"}}, nil
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/booking", ""))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var body utils.Response
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if !body.Status {
			t.Error("status flag = false, want true")
		}
	})

	t.Run("requires an authenticated user", func(t *testing.T) {
		router := bookingRouter(&mockBookingService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/booking", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestCreateBookingHandler(t *testing.T) {
	t.Run("passes the room id through", func(t *testing.T) {
		var gotRoomID int64
		router := bookingRouter(&mockBookingService{
			createBooking: func(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
				gotRoomID = req.RoomID
				return &response.CreateBookingResponse{BookingID: 42}, nil
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/booking", `{"roomId": 3}`))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotRoomID != 3 {
			t.Errorf("room id = %d, want 3", gotRoomID)
		}
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		router := bookingRouter(&mockBookingService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/booking", `{`))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("rejects a missing room id", func(t *testing.T) {
		router := bookingRouter(&mockBookingService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/booking", `{}`))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestUpdateBookingHandler(t *testing.T) {
	t.Run("parses the booking id from the path", func(t *testing.T) {
		var gotBookingID int64
		router := bookingRouter(&mockBookingService{
			updateBooking: func(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error) {
				gotBookingID = bookingID
				return &response.CreateBookingResponse{BookingID: bookingID}, nil
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/booking/7", `{"roomId": 5}`))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotBookingID != 7 {
			t.Errorf("booking id = %d, want 7", gotBookingID)
		}
	})

	t.Run("rejects a non-numeric booking id", func(t *testing.T) {
		router := bookingRouter(&mockBookingService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/booking/abc", `{"roomId": 5}`))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
