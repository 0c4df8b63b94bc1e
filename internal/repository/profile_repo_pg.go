package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

type PGProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) ProfileRepository {
	return &PGProfileRepository{db: db}
}

func (r *PGProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT id, user_id, miles FROM profiles WHERE id=$1`, id)
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.UserID, &p.Miles); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

var _ ProfileRepository = (*PGProfileRepository)(nil)
