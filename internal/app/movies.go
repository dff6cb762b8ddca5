package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-service/api"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	var input api.MovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := toDomainMovie(input)
	movie.OwnerID = identity.UserID

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.logger.Info("movie created", "movieId", movie.ID, "owner", identity.Username)

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	filters := domain.MovieFilters{
		Page:     app.readIntQuery(r, "page", DefaultPage),
		PageSize: app.readIntQuery(r, "page_size", DefaultPageSize),
	}

	if filters.PageSize > MaxPageSize {
		filters.PageSize = MaxPageSize
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieResponses(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListOwnMovies(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	movies, err := app.movieRepo.GetAllByOwner(r.Context(), identity.UserID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieResponses(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ShowMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readMovieIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateMovie replaces every mutable field of the movie with the request
// payload, zero values included. Existence is checked before ownership so
// a missing movie reads as 404 for everyone, while an existing movie that
// belongs to someone else reads as 403.
func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	movieID, err := app.readMovieIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.MovieRequest

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

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if movie.OwnerID != identity.UserID {
		app.logger.Warn("unauthorized movie update attempt", "movieId", movieID, "user", identity.Username)
		app.forbiddenResponse(w, r)
		return
	}

	updated := toDomainMovie(input)
	updated.ID = movie.ID
	updated.OwnerID = movie.OwnerID
	updated.CreatedAt = movie.CreatedAt

	err = app.movieRepo.Update(r.Context(), &updated)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.logger.Info("movie updated", "movieId", movie.ID, "owner", identity.Username)

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(&updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovie checks, in order: existence, ownership, dependent ratings,
// dependent comments. Deletion is blocked while any dependent exists;
// there is no force path and no cascade.
func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	identity := app.contextGetIdentity(r)

	movieID, err := app.readMovieIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if movie.OwnerID != identity.UserID {
		app.logger.Warn("unauthorized movie deletion attempt", "movieId", movieID, "user", identity.Username)
		app.forbiddenResponse(w, r)
		return
	}

	hasRatings, err := app.ratingRepo.ExistsByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if hasRatings {
		app.logger.Warn("blocked deletion of movie with ratings", "movieId", movieID)
		app.dependentsConflictResponse(w, r)
		return
	}

	hasComments, err := app.commentRepo.ExistsByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if hasComments {
		app.logger.Warn("blocked deletion of movie with comments", "movieId", movieID)
		app.dependentsConflictResponse(w, r)
		return
	}

	err = app.movieRepo.Delete(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.logger.Info("movie deleted", "movieId", movieID, "owner", identity.Username)

	w.WriteHeader(http.StatusNoContent)
}

func toDomainMovie(input api.MovieRequest) domain.Movie {
	return domain.Movie{
		Title:        input.Title,
		Description:  input.Description,
		Genres:       input.Genres,
		Writer:       input.Writer,
		Director:     input.Director,
		CastMembers:  input.CastMembers,
		Language:     input.Language,
		Runtime:      input.Runtime,
		YearReleased: input.YearReleased,
	}
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	return api.MovieResponse{
		Id:           movie.ID,
		Title:        movie.Title,
		Description:  movie.Description,
		Genres:       movie.Genres,
		Writer:       movie.Writer,
		Director:     movie.Director,
		CastMembers:  movie.CastMembers,
		Language:     movie.Language,
		Runtime:      movie.Runtime,
		YearReleased: movie.YearReleased,
		OwnerId:      movie.OwnerID,
		CreatedAt:    movie.CreatedAt,
	}
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
