package app

import (
	"context"
	"net/http"

	"github.com/metinatakli/movie-catalog-service/internal/domain"
)

type contextKey string

const identityContextKey = contextKey("identity")

func (app *Application) contextSetIdentity(r *http.Request, identity domain.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityContextKey, identity)
	return r.WithContext(ctx)
}

// contextGetIdentity is only called from handlers behind
// requireAuthentication, so a missing identity is a programmer error.
func (app *Application) contextGetIdentity(r *http.Request) domain.Identity {
	identity, ok := r.Context().Value(identityContextKey).(domain.Identity)
	if !ok {
		panic("missing identity in request context")
	}

	return identity
}
