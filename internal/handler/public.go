package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/model"
	"github.com/DiveshR/property-booking-api/internal/repository"
)

// PropertySearcher is the query surface of the public search endpoint.
// *repository.PropertyRepo satisfies it.
type PropertySearcher interface {
	Search(ctx context.Context, q repository.SearchQuery) ([]model.PropertyWithCity, error)
}

// PublicHandler exposes the unauthenticated endpoints: property search
// and the static geo reference data.
type PublicHandler struct {
	Props PropertySearcher
	Geo   *repository.GeoRepo
}

func NewPublicHandler(props PropertySearcher, geo *repository.GeoRepo) *PublicHandler {
	return &PublicHandler{Props: props, Geo: geo}
}

// SearchProperties handles GET /v1/search?city=&country=. Both filters
// are optional numeric ids and combine with AND. The response is a bare
// JSON array of properties, each with its city embedded.
func (h *PublicHandler) SearchProperties(c echo.Context) error {
	q := repository.SearchQuery{}
	if v, ok, err := optionalID(c.QueryParam("city")); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "city must be a numeric id"})
	} else if ok {
		q.CityID = &v
	}
	if v, ok, err := optionalID(c.QueryParam("country")); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "country must be a numeric id"})
	} else if ok {
		q.CountryID = &v
	}

	items, err := h.Props.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// ListCountries handles GET /v1/countries.
func (h *PublicHandler) ListCountries(c echo.Context) error {
	items, err := h.Geo.ListCountries(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// ListCities handles GET /v1/cities?country=.
func (h *PublicHandler) ListCities(c echo.Context) error {
	var countryID *uint64
	if v, ok, err := optionalID(c.QueryParam("country")); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "country must be a numeric id"})
	} else if ok {
		countryID = &v
	}
	items, err := h.Geo.ListCities(c.Request().Context(), countryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// ListGeoobjects handles GET /v1/geoobjects.
func (h *PublicHandler) ListGeoobjects(c echo.Context) error {
	items, err := h.Geo.ListGeoobjects(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// optionalID parses an optional numeric query parameter. ok is false
// when the parameter is absent.
func optionalID(s string) (v uint64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
