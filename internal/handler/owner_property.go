package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/middleware"
	"github.com/DiveshR/property-booking-api/internal/model"
	"github.com/DiveshR/property-booking-api/internal/queue"
	"github.com/DiveshR/property-booking-api/internal/repository"
	"github.com/DiveshR/property-booking-api/internal/service"
)

// OwnerHandler serves the owner-scoped property endpoints. Routes using
// it are wrapped in JWTAuth plus RequireAbility(properties-manage), so
// handlers only deal with an already-authorized Owner principal.
type OwnerHandler struct {
	Props    *repository.PropertyRepo
	Listings *service.PropertyService
}

func NewOwnerHandler(props *repository.PropertyRepo, listings *service.PropertyService) *OwnerHandler {
	if props == nil || listings == nil {
		panic("nil dependency passed to NewOwnerHandler")
	}
	return &OwnerHandler{Props: props, Listings: listings}
}

type createPropertyReq struct {
	AddressStreet   string   `json:"address_street"`
	AddressPostcode string   `json:"address_postcode"`
	CityID          uint64   `json:"city_id"`
	Lat             *float64 `json:"lat"`
	Long            *float64 `json:"long"`
}

// ListProperties handles GET /v1/owner/properties and returns the
// authenticated owner's listings.
func (h *OwnerHandler) ListProperties(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Props.ListByOwner(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateProperty handles POST /v1/owner/properties. The owner is always
// the authenticated principal; the body cannot set it. When both lat and
// long are absent the creation workflow geocodes the composed address
// before the insert, and any geocoding failure aborts the creation.
func (h *OwnerHandler) CreateProperty(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createPropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.AddressStreet = strings.TrimSpace(req.AddressStreet)
	req.AddressPostcode = strings.TrimSpace(req.AddressPostcode)
	if req.AddressStreet == "" || req.AddressPostcode == "" || req.CityID == 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "address_street, address_postcode and city_id are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Listings.CreateListing(ctx, service.CreateListingInput{
		AddressStreet:   req.AddressStreet,
		AddressPostcode: req.AddressPostcode,
		CityID:          req.CityID,
		Lat:             req.Lat,
		Long:            req.Long,
	}, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCityNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "city not found"})
		case errors.Is(err, service.ErrGeocodeFailed):
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not geocode address"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create property"})
	}

	publishPropertyListed(p)
	return c.JSON(http.StatusCreated, p)
}

// publishPropertyListed emits the property.listed event. Best effort:
// the HTTP response never fails because the broker is down.
func publishPropertyListed(p *model.Property) {
	ev := queue.PropertyListedEvent{
		PropertyID:      p.ID,
		OwnerID:         p.OwnerID,
		CityID:          p.CityID,
		AddressStreet:   p.AddressStreet,
		AddressPostcode: p.AddressPostcode,
		Lat:             p.Lat,
		Long:            p.Long,
		ListedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := contextWithPublishTimeout()
		defer cancel()
		if err := service.PublishPropertyListed(ctx, ev); err != nil {
			log.Printf("property.listed publish skipped: %v", err)
		}
	}()
}
