package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/reward-web/app"
	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/log"
	"github.com/mbolis/reward-web/routes/middlewares"
	"github.com/mbolis/reward-web/settings"
)

func GetSettings(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitor := middlewares.VisitorFrom(r.Context())
		s, err := app.Settings.Get(r.Context(), visitor.ID)
		if err != nil {
			httpx.LogInternalError(w, "settings.get", err)
			return
		}
		render.JSON(w, r, s)
	}
}

func UpdateSettings(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch settings.Patch
		if err := render.DecodeJSON(r.Body, &patch); err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.decode_settings", "invalid settings: %s", err)
			return
		}
		if err := app.Validator.Struct(patch); err != nil {
			httpx.LogValidation(w, r, "settings.update", err)
			return
		}

		visitor := middlewares.VisitorFrom(r.Context())
		s, err := app.Settings.Update(r.Context(), visitor.ID, patch)
		if err != nil {
			httpx.LogInternalError(w, "settings.update", err)
			return
		}
		render.JSON(w, r, s)
	}
}
