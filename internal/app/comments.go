package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-service/api"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

// CreateComment is open to unauthenticated callers and records no author.
func (app *Application) CreateComment(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readMovieIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.CommentRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
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

	comment := domain.Comment{
		MovieID: movieID,
		Comment: input.Comment,
	}

	err = app.commentRepo.Create(r.Context(), &comment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CommentResponse{
		Id:        comment.ID,
		MovieId:   comment.MovieID,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListComments(w http.ResponseWriter, r *http.Request) {
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

	comments, err := app.commentRepo.GetAllByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CommentResponse, len(comments))
	for i, comment := range comments {
		resp[i] = api.CommentResponse{
			Id:        comment.ID,
			MovieId:   comment.MovieID,
			Comment:   comment.Comment,
			CreatedAt: comment.CreatedAt,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
