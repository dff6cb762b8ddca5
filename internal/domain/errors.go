package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already taken")
	ErrDuplicateRating    = errors.New("movie already rated by this user")
	ErrMovieHasDependents = errors.New("movie has existing ratings or comments")
)
