package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type PostgresCommentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCommentRepository(db *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{
		db: db,
	}
}

func (p *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `INSERT INTO comments (movie_id, comment)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		comment.MovieID,
		comment.Comment).Scan(&comment.ID, &comment.CreatedAt)
}

func (p *PostgresCommentRepository) GetAllByMovie(ctx context.Context, movieID int64) ([]*domain.Comment, error) {
	query := `SELECT id, movie_id, comment, created_at
		FROM comments
		WHERE movie_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*domain.Comment{}

	for rows.Next() {
		var comment domain.Comment

		err := rows.Scan(&comment.ID, &comment.MovieID, &comment.Comment, &comment.CreatedAt)
		if err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (p *PostgresCommentRepository) ExistsByMovie(ctx context.Context, movieID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE movie_id = $1)`

	var exists bool

	err := p.db.QueryRow(ctx, query, movieID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
