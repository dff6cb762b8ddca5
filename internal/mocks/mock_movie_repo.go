package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc        func(ctx context.Context, movie *domain.Movie) error
	GetAllFunc        func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error)
	GetAllByOwnerFunc func(ctx context.Context, ownerID int64) ([]*domain.Movie, error)
	GetByIdFunc       func(ctx context.Context, id int64) (*domain.Movie, error)
	UpdateFunc        func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc        func(ctx context.Context, id int64) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetAllByOwner(ctx context.Context, ownerID int64) ([]*domain.Movie, error) {
	return m.GetAllByOwnerFunc(ctx, ownerID)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}
