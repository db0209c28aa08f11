package routes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mbolis/reward-web/app"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/log"
	"github.com/mbolis/reward-web/model"
)

var (
	dashboardKey       = backend.QueryKey{"admin", "dashboard", "metrics"}
	diceKey            = backend.QueryKey{"admin", "dice", "event-params"}
	rouletteKey        = backend.QueryKey{"admin", "roulette", "config"}
	lotteryKey         = backend.QueryKey{"admin", "lottery", "config"}
	missionsKey        = backend.QueryKey{"admin", "missions"}
	rankingKey         = backend.QueryKey{"admin", "ranking"}
	externalRankingKey = backend.QueryKey{"admin", "external-ranking"}
)

// callerKey scopes a cached read to the caller's token, so one operator
// never reads what was fetched with another one's rights.
func callerKey(ctx context.Context, key backend.QueryKey, extra ...string) backend.QueryKey {
	sum := sha256.Sum256([]byte(backend.AccessToken(ctx)))
	k := make(backend.QueryKey, 0, len(key)+len(extra)+1)
	k = append(k, key...)
	k = append(k, extra...)
	return append(k, hex.EncodeToString(sum[:8]))
}

func cachedGet[T any](app app.App, key backend.QueryKey, fetch func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := backend.Query(r.Context(), app.Cache, callerKey(r.Context(), key), fetch)
		if err != nil {
			httpx.LogBackendError(w, r, "admin.get", err)
			return
		}
		render.JSON(w, r, v)
	}
}

func validatedPut[T any](app app.App, key backend.QueryKey, update func(context.Context, T) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body T
		if err := render.DecodeJSON(r.Body, &body); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if err := app.Validator.Struct(body); err != nil {
			httpx.LogValidation(w, r, "admin.put", err)
			return
		}

		v, err := update(r.Context(), body)
		if err != nil {
			httpx.LogBackendError(w, r, "admin.put", err)
			return
		}
		app.Cache.Invalidate(key)
		render.JSON(w, r, v)
	}
}

func CreateMission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mission model.Mission
		if err := render.DecodeJSON(r.Body, &mission); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if err := app.Validator.Struct(mission); err != nil {
			httpx.LogValidation(w, r, "admin.missions.create", err)
			return
		}

		created, err := app.Backend.CreateMission(r.Context(), mission)
		if err != nil {
			httpx.LogBackendError(w, r, "admin.missions.create", err)
			return
		}
		app.Cache.Invalidate(missionsKey)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}

func UpdateMission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		var mission model.Mission
		if err := render.DecodeJSON(r.Body, &mission); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if err := app.Validator.Struct(mission); err != nil {
			httpx.LogValidation(w, r, "admin.missions.update", err)
			return
		}

		updated, err := app.Backend.UpdateMission(r.Context(), missionID, mission)
		if err != nil {
			httpx.LogBackendError(w, r, "admin.missions.update", err)
			return
		}
		app.Cache.Invalidate(missionsKey)
		render.JSON(w, r, updated)
	}
}

func DeleteMission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		if err := app.Backend.DeleteMission(r.Context(), missionID); err != nil {
			httpx.LogBackendError(w, r, "admin.missions.delete", err)
			return
		}
		app.Cache.Invalidate(missionsKey)
		w.WriteHeader(http.StatusNoContent)
	}
}

func RankingByDate(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if err := app.Validator.Var(date, "required,datetime=2006-01-02"); err != nil {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.DebugLevel, "admin.ranking.date", "invalid date %q, expected YYYY-MM-DD", date)
			return
		}

		entries, err := backend.Query(r.Context(), app.Cache, callerKey(r.Context(), rankingKey, date), func(ctx context.Context) ([]model.RankingEntry, error) {
			return app.Backend.RankingByDate(ctx, date)
		})
		if err != nil {
			httpx.LogBackendError(w, r, "admin.ranking", err)
			return
		}
		render.JSON(w, r, entries)
	}
}

func ReplaceExternalRanking(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entries []model.ExternalRankingEntry
		if err := render.DecodeJSON(r.Body, &entries); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if err := app.Validator.Var(entries, "dive"); err != nil {
			httpx.LogValidation(w, r, "admin.external_ranking", err)
			return
		}

		saved, err := app.Backend.ReplaceExternalRanking(r.Context(), entries)
		if err != nil {
			httpx.LogBackendError(w, r, "admin.external_ranking", err)
			return
		}
		app.Cache.Invalidate(externalRankingKey)
		render.JSON(w, r, saved)
	}
}
