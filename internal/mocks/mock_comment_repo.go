package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type MockCommentRepo struct {
	domain.CommentRepository
	CreateFunc        func(ctx context.Context, comment *domain.Comment) error
	GetAllByMovieFunc func(ctx context.Context, movieID int64) ([]*domain.Comment, error)
	ExistsByMovieFunc func(ctx context.Context, movieID int64) (bool, error)
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return m.CreateFunc(ctx, comment)
}

func (m *MockCommentRepo) GetAllByMovie(ctx context.Context, movieID int64) ([]*domain.Comment, error) {
	return m.GetAllByMovieFunc(ctx, movieID)
}

func (m *MockCommentRepo) ExistsByMovie(ctx context.Context, movieID int64) (bool, error) {
	return m.ExistsByMovieFunc(ctx, movieID)
}
