package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/model"
)

// memBookingStore records created bookings in memory.
type memBookingStore struct {
	nextID   uint64
	bookings []model.Booking
}

func (m *memBookingStore) Create(_ context.Context, b *model.Booking) error {
	m.nextID++
	b.ID = m.nextID
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookingStore) ListByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	out := []model.Booking{}
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// memPropertyFinder knows a single listed property.
type memPropertyFinder struct{ knownID uint64 }

func (m memPropertyFinder) Exists(_ context.Context, id uint64) (bool, error) {
	return id == m.knownID, nil
}

func newUserHandlerForTest() (*UserHandler, *memBookingStore) {
	store := &memBookingStore{}
	return NewUserHandler(store, memPropertyFinder{knownID: 1}), store
}

func postBooking(t *testing.T, h *UserHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/user/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(5)) // as JWTAuth would store it
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	return rec
}

func bookingBody(propertyID uint64, start, end string) string {
	b, _ := json.Marshal(map[string]any{
		"property_id": propertyID,
		"start_date":  start,
		"end_date":    end,
		"guests":      2,
	})
	return string(b)
}

func TestCreateBookingSucceeds(t *testing.T) {
	h, store := newUserHandlerForTest()
	rec := postBooking(t, h, bookingBody(1, "2026-09-01", "2026-09-05"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var b model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.UserID != 5 {
		t.Errorf("user_id = %d, want the authenticated principal 5", b.UserID)
	}
	if b.Status != "CONFIRMED" {
		t.Errorf("status = %q, want CONFIRMED", b.Status)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("stored bookings = %d, want 1", len(store.bookings))
	}
}

func TestCreateBookingRejectsBadDateRange(t *testing.T) {
	h, store := newUserHandlerForTest()
	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2026-09-05", "2026-09-01"},
		{"end equals start", "2026-09-01", "2026-09-01"},
		{"malformed start", "tomorrow", "2026-09-05"},
		{"missing end", "2026-09-01", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postBooking(t, h, bookingBody(1, tc.start, tc.end))
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", rec.Code)
			}
		})
	}
	if len(store.bookings) != 0 {
		t.Fatalf("stored bookings = %d, want 0 after rejected requests", len(store.bookings))
	}
}

func TestCreateBookingUnknownProperty(t *testing.T) {
	h, store := newUserHandlerForTest()
	rec := postBooking(t, h, bookingBody(42, "2026-09-01", "2026-09-05"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if len(store.bookings) != 0 {
		t.Fatal("a booking for an unknown property must not be stored")
	}
}

func TestListBookingsReturnsOwnOnly(t *testing.T) {
	h, store := newUserHandlerForTest()
	store.bookings = []model.Booking{
		{ID: 1, UserID: 5, PropertyID: 1},
		{ID: 2, UserID: 9, PropertyID: 1},
	}
	store.nextID = 2

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/user/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(5))
	if err := h.ListBookings(c); err != nil {
		t.Fatalf("ListBookings returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Items []model.Booking `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].UserID != 5 {
		t.Fatalf("items = %+v, want exactly the principal's booking", resp.Items)
	}
}
