package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/DiveshR/property-booking-api/internal/model"
)

// PropertyRepo encapsulates all database queries related to properties.
type PropertyRepo struct{ DB *sql.DB }

func NewPropertyRepo(db *sql.DB) *PropertyRepo { return &PropertyRepo{DB: db} }

// Create inserts a new property. On success the property's ID field is
// populated with the auto-generated value, and a follow-up SELECT fills
// the timestamp columns so callers receive a fully populated record.
// Nil coordinates are stored as NULL.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	const qInsert = "INSERT INTO properties (owner_id, address_street, address_postcode, city_id, lat, `long`) VALUES (?,?,?,?,?,?)"
	res, err := r.DB.ExecContext(ctx, qInsert,
		p.OwnerID, p.AddressStreet, p.AddressPostcode, p.CityID, p.Lat, p.Long)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM properties WHERE id = ?"
	return r.DB.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// ListByOwner returns all properties belonging to one owner.
func (r *PropertyRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Property, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, address_street, address_postcode, city_id, lat, `+"`long`"+`, created_at, updated_at
		FROM properties WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Property, 0, 16)
	for rows.Next() {
		var (
			p         model.Property
			lat, long sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.AddressStreet, &p.AddressPostcode,
			&p.CityID, &lat, &long, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if lat.Valid {
			p.Lat = &lat.Float64
		}
		if long.Valid {
			p.Long = &long.Float64
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Exists reports whether a property with the given id is stored.
func (r *PropertyRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM properties WHERE id = ? LIMIT 1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SearchQuery carries the optional public search filters. Nil pointers
// mean "no filter"; both filters combine with AND when supplied.
type SearchQuery struct {
	CityID    *uint64
	CountryID *uint64
}

// searchConds translates a SearchQuery into WHERE fragments and their
// bind arguments. Kept separate from Search so the translation is
// testable without a database.
func searchConds(q SearchQuery) (string, []any) {
	where := []string{}
	args := []any{}
	if q.CityID != nil {
		where = append(where, "p.city_id = ?")
		args = append(args, *q.CityID)
	}
	if q.CountryID != nil {
		where = append(where, "c.country_id = ?")
		args = append(args, *q.CountryID)
	}
	if len(where) == 0 {
		return "1=1", args
	}
	return strings.Join(where, " AND "), args
}

// Search returns all properties matching the filters, each joined with
// its city. Rows come back in primary-key order; the endpoint promises
// no ordering contract.
func (r *PropertyRepo) Search(ctx context.Context, q SearchQuery) ([]model.PropertyWithCity, error) {
	cond, args := searchConds(q)

	rows, err := r.DB.QueryContext(ctx, `
		SELECT
			p.id, p.owner_id, p.address_street, p.address_postcode, p.city_id,
			p.lat, p.`+"`long`"+`, p.created_at, p.updated_at,
			c.id, c.country_id, c.name, c.lat, c.`+"`long`"+`
		FROM properties p
		JOIN cities c ON c.id = p.city_id
		WHERE `+cond+`
		ORDER BY p.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PropertyWithCity, 0, 32)
	for rows.Next() {
		var (
			pc        model.PropertyWithCity
			lat, long sql.NullFloat64
		)
		if err := rows.Scan(
			&pc.ID, &pc.OwnerID, &pc.AddressStreet, &pc.AddressPostcode, &pc.CityID,
			&lat, &long, &pc.CreatedAt, &pc.UpdatedAt,
			&pc.City.ID, &pc.City.CountryID, &pc.City.Name, &pc.City.Lat, &pc.City.Long,
		); err != nil {
			return nil, err
		}
		if lat.Valid {
			pc.Lat = &lat.Float64
		}
		if long.Valid {
			pc.Long = &long.Float64
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}
