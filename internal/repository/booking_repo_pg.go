package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// ListPastByUser returns the user's bookings dated strictly before
	// the given day, joined with each flight's destination. Ordered by
	// date descending, id descending, so the result is deterministic
	// for same-day bookings.
	ListPastByUser(ctx context.Context, userID int64, before time.Time) ([]domain.PastBooking, error)
	// UpdateFields applies a partial update: nil patch fields keep the
	// stored value.
	UpdateFields(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, flight_id, user_id, date, passengers, created_at, updated_at FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.UserID, &b.Date, &b.Passengers, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ListPastByUser(ctx context.Context, userID int64, before time.Time) ([]domain.PastBooking, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.flight_id, b.user_id, b.date, b.passengers, b.created_at, b.updated_at, f.destination
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.user_id=$1 AND b.date < $2::date
		ORDER BY b.date DESC, b.id DESC`, userID, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.PastBooking, 0)
	for rows.Next() {
		var b domain.PastBooking
		if err := rows.Scan(&b.ID, &b.FlightID, &b.UserID, &b.Date, &b.Passengers, &b.CreatedAt, &b.UpdatedAt, &b.Destination); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateFields(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings
		SET date = COALESCE($1, date), passengers = COALESCE($2, passengers), updated_at = now()
		WHERE id=$3
		RETURNING id, flight_id, user_id, date, passengers, created_at, updated_at`,
		patch.Date, patch.Passengers, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.UserID, &b.Date, &b.Passengers, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
