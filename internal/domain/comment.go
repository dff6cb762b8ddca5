package domain

import (
	"context"
	"time"
)

// Comment has no author on purpose: the final schema iteration dropped
// comment ownership, and anonymous commenting is part of the contract.
type Comment struct {
	ID        int64
	MovieID   int64
	Comment   string
	CreatedAt time.Time
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetAllByMovie(ctx context.Context, movieID int64) ([]*Comment, error)
	ExistsByMovie(ctx context.Context, movieID int64) (bool, error)
}
