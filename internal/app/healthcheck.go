package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog-service/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthcheckResponse{
		Status: "UP",
		SystemInfo: api.SystemInfo{
			Environment: app.config.Env,
			Version:     version,
		},
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
