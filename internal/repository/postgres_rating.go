package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type PostgresRatingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRatingRepository(db *pgxpool.Pool) *PostgresRatingRepository {
	return &PostgresRatingRepository{
		db: db,
	}
}

func (p *PostgresRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `INSERT INTO ratings (movie_id, user_id, rating)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx,
		query,
		rating.MovieID,
		rating.UserID,
		rating.Rating).Scan(&rating.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateRating
		}

		return err
	}

	return nil
}

func (p *PostgresRatingRepository) GetAllByMovie(ctx context.Context, movieID int64) ([]*domain.Rating, error) {
	query := `SELECT id, movie_id, user_id, rating
		FROM ratings
		WHERE movie_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []*domain.Rating{}

	for rows.Next() {
		var rating domain.Rating

		err := rows.Scan(&rating.ID, &rating.MovieID, &rating.UserID, &rating.Rating)
		if err != nil {
			return nil, err
		}

		ratings = append(ratings, &rating)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}

func (p *PostgresRatingRepository) ExistsByUserAndMovie(ctx context.Context, userID, movieID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ratings WHERE user_id = $1 AND movie_id = $2)`

	var exists bool

	err := p.db.QueryRow(ctx, query, userID, movieID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresRatingRepository) ExistsByMovie(ctx context.Context, movieID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ratings WHERE movie_id = $1)`

	var exists bool

	err := p.db.QueryRow(ctx, query, movieID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
