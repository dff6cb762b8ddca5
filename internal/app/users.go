package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-service/api"
	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input api.RegisterRequest

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

	// Username is checked before email so a request that collides on both
	// always reports the username first.
	taken, err := app.userRepo.ExistsByUsername(r.Context(), input.Username)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if taken {
		app.logger.Warn("registration attempt with existing username", "username", input.Username)
		app.badRequestResponse(w, r, domain.ErrDuplicateUsername)
		return
	}

	taken, err = app.userRepo.ExistsByEmail(r.Context(), input.Email)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if taken {
		app.logger.Warn("registration attempt with existing email")
		app.badRequestResponse(w, r, domain.ErrDuplicateEmail)
		return
	}

	user := domain.User{
		Username: input.Username,
		FullName: input.FullName,
		Email:    input.Email,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// A concurrent registration can still slip past the checks above; the
	// unique constraints decide, and the loser gets the same response.
	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, domain.ErrDuplicateEmail):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.UserResponse{
		Id:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
