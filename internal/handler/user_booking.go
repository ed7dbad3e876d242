package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/middleware"
	"github.com/DiveshR/property-booking-api/internal/model"
	"github.com/DiveshR/property-booking-api/internal/queue"
	"github.com/DiveshR/property-booking-api/internal/service"
)

// dateLayout is the wire format for booking dates.
const dateLayout = "2006-01-02"

// BookingStore is the persistence surface of the booking endpoints.
// *repository.BookingRepo satisfies it.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
}

// PropertyFinder answers whether a property id refers to a real listing.
// *repository.PropertyRepo satisfies it.
type PropertyFinder interface {
	Exists(ctx context.Context, id uint64) (bool, error)
}

// UserHandler serves the user-scoped booking endpoints. Routes using it
// are wrapped in JWTAuth plus RequireAbility(bookings-manage).
type UserHandler struct {
	Bookings BookingStore
	Props    PropertyFinder
}

func NewUserHandler(bookings BookingStore, props PropertyFinder) *UserHandler {
	if bookings == nil || props == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Bookings: bookings, Props: props}
}

// ListBookings handles GET /v1/user/bookings.
func (h *UserHandler) ListBookings(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type createBookingReq struct {
	PropertyID uint64 `json:"property_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Guests     uint16 `json:"guests"`
}

// CreateBooking handles POST /v1/user/bookings. The booking principal is
// always the authenticated user.
func (h *UserHandler) CreateBooking(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.PropertyID == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "property_id is required"})
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "end_date must be YYYY-MM-DD"})
	}
	if !end.After(start) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "end_date must be after start_date"})
	}
	if req.Guests == 0 {
		req.Guests = 1
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, err := h.Props.Exists(ctx, req.PropertyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	}

	b := &model.Booking{
		UserID:     userID,
		PropertyID: req.PropertyID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Guests:     req.Guests,
		Status:     "CONFIRMED",
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}

	publishBookingCreated(b)
	return c.JSON(http.StatusCreated, b)
}

// publishBookingCreated emits the booking.created event, best effort.
func publishBookingCreated(b *model.Booking) {
	ev := queue.BookingCreatedEvent{
		BookingID:  b.ID,
		UserID:     b.UserID,
		PropertyID: b.PropertyID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Guests:     b.Guests,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := contextWithPublishTimeout()
		defer cancel()
		if err := service.PublishBookingCreated(ctx, ev); err != nil {
			log.Printf("booking.created publish skipped: %v", err)
		}
	}()
}
