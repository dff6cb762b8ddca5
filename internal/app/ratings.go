package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-catalog-service/api"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

// CreateRating validates in a fixed order: the movie must exist before
// anything else, then the value range, then the one-rating-per-user
// constraint. The duplicate pre-check is racy; the unique index on
// (user_id, movie_id) is what actually guarantees the invariant.
func (app *Application) CreateRating(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	movieID, err := app.readMovieIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.RatingRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		issue := fmt.Sprintf("must be between %g and %g, got %g", domain.MinRating, domain.MaxRating, input.Rating)
		app.rangeErrorResponse(w, r, "rating", issue)
		return
	}

	exists, err := app.ratingRepo.ExistsByUserAndMovie(r.Context(), identity.UserID, movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if exists {
		app.logger.Warn("duplicate rating attempt", "movieId", movieID, "user", identity.Username)
		app.conflictResponse(w, r, domain.ErrDuplicateRating.Error())
		return
	}

	rating := domain.Rating{
		MovieID: movieID,
		UserID:  identity.UserID,
		Rating:  input.Rating,
	}

	err = app.ratingRepo.Create(r.Context(), &rating)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRating):
			app.conflictResponse(w, r, domain.ErrDuplicateRating.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.RatingResponse{
		Id:      rating.ID,
		MovieId: rating.MovieID,
		UserId:  rating.UserID,
		Rating:  rating.Rating,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListRatings(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readMovieIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	ratings, err := app.ratingRepo.GetAllByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.RatingResponse, len(ratings))
	for i, rating := range ratings {
		resp[i] = api.RatingResponse{
			Id:      rating.ID,
			MovieId: rating.MovieID,
			UserId:  rating.UserID,
			Rating:  rating.Rating,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
