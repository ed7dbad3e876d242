package repository

import (
	"context"
	"database/sql"

	"github.com/DiveshR/property-booking-api/internal/model"
)

// BookingRepo encapsulates all database queries on the `bookings` table.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking and populates its ID and CreatedAt fields.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const qInsert = "INSERT INTO bookings (user_id, property_id, start_date, end_date, guests, status) VALUES (?,?,?,?,?,?)"
	res, err := r.DB.ExecContext(ctx, qInsert,
		b.UserID, b.PropertyID, b.StartDate, b.EndDate, b.Guests, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = "SELECT created_at FROM bookings WHERE id = ?"
	return r.DB.QueryRowContext(ctx, qSelect, b.ID).Scan(&b.CreatedAt)
}

// ListByUser returns all bookings made by one user, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, property_id, start_date, end_date, guests, status, created_at
		FROM bookings WHERE user_id = ? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0, 16)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.PropertyID, &b.StartDate,
			&b.EndDate, &b.Guests, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
