package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/healthcheck", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Post("/tokens/authentication", app.CreateAuthenticationToken)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.With(app.requireAuthentication).Post("/", app.CreateMovie)
		r.With(app.requireAuthentication).Get("/me", app.ListOwnMovies)

		r.Route("/{movieID}", func(r chi.Router) {
			r.Get("/", app.ShowMovie)
			r.With(app.requireAuthentication).Put("/", app.UpdateMovie)
			r.With(app.requireAuthentication).Delete("/", app.DeleteMovie)

			r.With(app.requireAuthentication).Post("/ratings", app.CreateRating)
			r.Get("/ratings", app.ListRatings)

			// Comments are deliberately open to unauthenticated callers,
			// unlike ratings.
			r.Post("/comments", app.CreateComment)
			r.Get("/comments", app.ListComments)
		})
	})

	return r
}
