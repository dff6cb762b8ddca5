package domain

import "context"

const (
	MinRating float64 = 0
	MaxRating float64 = 5
)

type Rating struct {
	ID      int64
	MovieID int64
	UserID  int64
	Rating  float64
}

type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) error
	GetAllByMovie(ctx context.Context, movieID int64) ([]*Rating, error)
	ExistsByUserAndMovie(ctx context.Context, userID, movieID int64) (bool, error)
	ExistsByMovie(ctx context.Context, movieID int64) (bool, error)
}
