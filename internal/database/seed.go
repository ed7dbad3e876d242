package database

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/DiveshR/property-booking-api/internal/auth"
	"github.com/DiveshR/property-booking-api/internal/utils"
)

// Seed inserts the static reference data the application expects: the role
// table, a small set of countries, cities and geoobjects, and the bootstrap
// Administrator account. All inserts are idempotent (INSERT IGNORE on fixed
// primary keys) so Seed is safe to run on every start when SEED_DATA=true.
func Seed(ctx context.Context, db *sql.DB, bcryptCost int) error {
	roles := []struct {
		id   uint8
		name string
	}{
		{auth.RoleAdministrator, "Administrator"},
		{auth.RoleOwner, "Owner"},
		{auth.RoleUser, "User"},
	}
	for _, r := range roles {
		if _, err := db.ExecContext(ctx,
			"INSERT IGNORE INTO roles (id, name) VALUES (?,?)", r.id, r.name); err != nil {
			return err
		}
	}

	countries := []struct {
		id        uint64
		name      string
		lat, long float64
	}{
		{1, "India", 20.5937, 78.9629},
		{2, "China", 35.8617, 104.1954},
	}
	for _, cn := range countries {
		if _, err := db.ExecContext(ctx,
			"INSERT IGNORE INTO countries (id, name, lat, `long`) VALUES (?,?,?,?)",
			cn.id, cn.name, cn.lat, cn.long); err != nil {
			return err
		}
	}

	cities := []struct {
		id, countryID uint64
		name          string
		lat, long     float64
	}{
		{1, 1, "Dehradun", 30.3165, 78.0322},
		{2, 2, "Beijing", 39.9042, 116.4074},
	}
	for _, ct := range cities {
		if _, err := db.ExecContext(ctx,
			"INSERT IGNORE INTO cities (id, country_id, name, lat, `long`) VALUES (?,?,?,?,?)",
			ct.id, ct.countryID, ct.name, ct.lat, ct.long); err != nil {
			return err
		}
	}

	geoobjects := []struct {
		id, cityID uint64
		name       string
		lat, long  float64
	}{
		{1, 1, "Indian Military Academy", 30.3382, 77.9922},
		{2, 2, "Baliqiao", 32.511, 120.833},
	}
	for _, g := range geoobjects {
		if _, err := db.ExecContext(ctx,
			"INSERT IGNORE INTO geoobjects (id, city_id, name, lat, `long`) VALUES (?,?,?,?,?)",
			g.id, g.cityID, g.name, g.lat, g.long); err != nil {
			return err
		}
	}

	// Bootstrap admin. The password comes from ADMIN_PASSWORD so deployments
	// never ship the default outside local development.
	pass := os.Getenv("ADMIN_PASSWORD")
	if pass == "" {
		pass = "password"
		log.Println("seed: ADMIN_PASSWORD not set, using default (dev only)")
	}
	hash, err := utils.HashPassword(pass, bcryptCost)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		"INSERT IGNORE INTO users (id, name, email, password_hash, role_id) VALUES (1, 'Administrator', 'superadmin@gmail.com', ?, ?)",
		hash, auth.RoleAdministrator)
	return err
}
