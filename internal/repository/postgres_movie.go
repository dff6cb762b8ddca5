package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, description, genres, writer, director, cast_members,
			language, runtime, year_released, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.Writer,
		movie.Director,
		movie.CastMembers,
		movie.Language,
		movie.Runtime,
		movie.YearReleased,
		movie.OwnerID).Scan(&movie.ID, &movie.CreatedAt)
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	query := `SELECT count(*) OVER(), id, title, description, genres, writer, director,
			cast_members, language, runtime, year_released, owner_id, created_at
		FROM movies
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genres,
			&movie.Writer,
			&movie.Director,
			&movie.CastMembers,
			&movie.Language,
			&movie.Runtime,
			&movie.YearReleased,
			&movie.OwnerID,
			&movie.CreatedAt,
		)

		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetAllByOwner(ctx context.Context, ownerID int64) ([]*domain.Movie, error) {
	query := `SELECT id, title, description, genres, writer, director, cast_members,
			language, runtime, year_released, owner_id, created_at
		FROM movies
		WHERE owner_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genres,
			&movie.Writer,
			&movie.Director,
			&movie.CastMembers,
			&movie.Language,
			&movie.Runtime,
			&movie.YearReleased,
			&movie.OwnerID,
			&movie.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `SELECT id, title, description, genres, writer, director, cast_members,
			language, runtime, year_released, owner_id, created_at
		FROM movies
		WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genres,
		&movie.Writer,
		&movie.Director,
		&movie.CastMembers,
		&movie.Language,
		&movie.Runtime,
		&movie.YearReleased,
		&movie.OwnerID,
		&movie.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

// Update overwrites every mutable column. Partial updates are not
// supported anywhere in the contract, so no column is skipped.
func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, description = $2, genres = $3, writer = $4, director = $5,
			cast_members = $6, language = $7, runtime = $8, year_released = $9
		WHERE id = $10`

	result, err := p.db.Exec(ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Genres,
		movie.Writer,
		movie.Director,
		movie.CastMembers,
		movie.Language,
		movie.Runtime,
		movie.YearReleased,
		movie.ID)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
