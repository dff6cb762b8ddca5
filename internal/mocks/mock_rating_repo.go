package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type MockRatingRepo struct {
	domain.RatingRepository
	CreateFunc               func(ctx context.Context, rating *domain.Rating) error
	GetAllByMovieFunc        func(ctx context.Context, movieID int64) ([]*domain.Rating, error)
	ExistsByUserAndMovieFunc func(ctx context.Context, userID, movieID int64) (bool, error)
	ExistsByMovieFunc        func(ctx context.Context, movieID int64) (bool, error)
}

func (m *MockRatingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	return m.CreateFunc(ctx, rating)
}

func (m *MockRatingRepo) GetAllByMovie(ctx context.Context, movieID int64) ([]*domain.Rating, error) {
	return m.GetAllByMovieFunc(ctx, movieID)
}

func (m *MockRatingRepo) ExistsByUserAndMovie(ctx context.Context, userID, movieID int64) (bool, error) {
	return m.ExistsByUserAndMovieFunc(ctx, userID, movieID)
}

func (m *MockRatingRepo) ExistsByMovie(ctx context.Context, movieID int64) (bool, error) {
	return m.ExistsByMovieFunc(ctx, movieID)
}
