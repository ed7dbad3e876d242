package repository

import (
	"context"
	"database/sql"

	"github.com/DiveshR/property-booking-api/internal/model"
)

// CityWithCountry is a city joined with the name of its country, used by
// the property creation workflow to compose the full geocoding address.
type CityWithCountry struct {
	model.City
	CountryName string
}

// GeoRepo provides read access to the static reference tables:
// countries, cities and geoobjects.
type GeoRepo struct{ DB *sql.DB }

func NewGeoRepo(db *sql.DB) *GeoRepo { return &GeoRepo{DB: db} }

// GetCityWithCountry loads a city and its country name in one query.
// Returns ErrCityNotFound when the id does not exist.
func (r *GeoRepo) GetCityWithCountry(ctx context.Context, id uint64) (CityWithCountry, error) {
	var cw CityWithCountry
	err := r.DB.QueryRowContext(ctx, `
		SELECT c.id, c.country_id, c.name, c.lat, c.`+"`long`"+`, cn.name
		FROM cities c
		JOIN countries cn ON cn.id = c.country_id
		WHERE c.id = ? LIMIT 1`,
		id).Scan(&cw.ID, &cw.CountryID, &cw.Name, &cw.Lat, &cw.Long, &cw.CountryName)
	if err == sql.ErrNoRows {
		return cw, ErrCityNotFound
	}
	return cw, err
}

// ListCountries returns all countries.
func (r *GeoRepo) ListCountries(ctx context.Context) ([]model.Country, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, lat, `long` FROM countries ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Country, 0, 8)
	for rows.Next() {
		var cn model.Country
		if err := rows.Scan(&cn.ID, &cn.Name, &cn.Lat, &cn.Long); err != nil {
			return nil, err
		}
		out = append(out, cn)
	}
	return out, rows.Err()
}

// ListCities returns all cities, optionally narrowed to one country.
func (r *GeoRepo) ListCities(ctx context.Context, countryID *uint64) ([]model.City, error) {
	q := "SELECT id, country_id, name, lat, `long` FROM cities"
	args := []any{}
	if countryID != nil {
		q += " WHERE country_id = ?"
		args = append(args, *countryID)
	}
	q += " ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.City, 0, 16)
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.CountryID, &c.Name, &c.Lat, &c.Long); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListGeoobjects returns all points of interest.
func (r *GeoRepo) ListGeoobjects(ctx context.Context) ([]model.Geoobject, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, city_id, name, lat, `long` FROM geoobjects ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Geoobject, 0, 16)
	for rows.Next() {
		var g model.Geoobject
		if err := rows.Scan(&g.ID, &g.CityID, &g.Name, &g.Lat, &g.Long); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
