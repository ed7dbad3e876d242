package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/geocoder"
	"github.com/DiveshR/property-booking-api/internal/model"
	"github.com/DiveshR/property-booking-api/internal/repository"
	"github.com/DiveshR/property-booking-api/internal/service"
)

type memPropertyStore struct{ nextID uint64 }

func (m *memPropertyStore) Create(_ context.Context, p *model.Property) error {
	m.nextID++
	p.ID = m.nextID
	return nil
}

type memCityStore struct{}

func (memCityStore) GetCityWithCountry(_ context.Context, id uint64) (repository.CityWithCountry, error) {
	if id != 1 {
		return repository.CityWithCountry{}, repository.ErrCityNotFound
	}
	return repository.CityWithCountry{
		City:        model.City{ID: 1, CountryID: 1, Name: "Dehradun"},
		CountryName: "India",
	}, nil
}

type memGeocoder struct{ err error }

func (m memGeocoder) Geocode(_ context.Context, _ string) (geocoder.Point, error) {
	if m.err != nil {
		return geocoder.Point{}, m.err
	}
	return geocoder.Point{Lat: 30.3165, Long: 78.0322}, nil
}

func newOwnerHandlerForTest(geoErr error) *OwnerHandler {
	svc := service.NewPropertyService(&memPropertyStore{}, memCityStore{}, memGeocoder{err: geoErr}, false)
	// The list endpoint needs a real repository; create-path tests leave it unused.
	return &OwnerHandler{Props: &repository.PropertyRepo{}, Listings: svc}
}

func postProperty(t *testing.T, h *OwnerHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/owner/properties", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(7)) // as JWTAuth would store it
	if err := h.CreateProperty(c); err != nil {
		t.Fatalf("CreateProperty returned error: %v", err)
	}
	return rec
}

func TestCreatePropertyOwnerIsPrincipal(t *testing.T) {
	h := newOwnerHandlerForTest(nil)
	rec := postProperty(t, h, `{"address_street":"1 Main St","address_postcode":"00000","city_id":1,"owner_id":999}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var p model.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.OwnerID != 7 {
		t.Errorf("owner_id = %d, want the principal 7 regardless of the body", p.OwnerID)
	}
	if p.Lat == nil || p.Long == nil {
		t.Error("geocoded coordinates must be set on the created property")
	}
}

func TestCreatePropertyMissingFields(t *testing.T) {
	h := newOwnerHandlerForTest(nil)
	rec := postProperty(t, h, `{"address_street":"","city_id":1}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCreatePropertyUnknownCity(t *testing.T) {
	h := newOwnerHandlerForTest(nil)
	rec := postProperty(t, h, `{"address_street":"1 Main St","address_postcode":"00000","city_id":42}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreatePropertyGeocoderFailure(t *testing.T) {
	h := newOwnerHandlerForTest(geocoder.ErrNoMatch)
	rec := postProperty(t, h, `{"address_street":"1 Main St","address_postcode":"00000","city_id":1}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
