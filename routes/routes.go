package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mbolis/reward-web/app"
	"github.com/mbolis/reward-web/log"
	"github.com/mbolis/reward-web/routes/middlewares"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Logger, NoColor: true}),
		middleware.Recoverer,
		middlewares.Metrics,
	)

	root.Handle("/metrics", promhttp.Handler())

	root.Group(func(r chi.Router) {
		r.Use(middlewares.Identify(app.Visitors, app.VisitorTTL), middlewares.ForwardToken)

		r.Get("/", Home(app))

		r.Get("/surveys", ListSurveys(app))
		r.Get(`/surveys/{id:^\d+$}`, OpenSurvey(app))
		r.Post(`/surveys/{id:^\d+$}/responses/{rid:^\d+$}`, PostSurveyForm(app))
		r.Put(`/surveys/{id:^\d+$}/responses/{rid:^\d+$}/answers`, PutAnswer(app))

		r.Get("/attendance", ShowAttendance(app))
		r.Post("/attendance/claim", ClaimAttendance(app))
		r.Post("/attendance/dismiss", DismissAttendance(app))

		r.Get("/settings", GetSettings(app))
		r.Put("/settings", UpdateSettings(app))

		r.Mount("/admin/api", adminRouter(app))
	})

	return root
}

func adminRouter(app app.App) http.Handler {
	api := chi.NewRouter()
	api.Use(middlewares.RequireToken)

	api.Get("/dashboard/metrics", cachedGet(app, dashboardKey, app.Backend.DashboardMetrics))

	api.Get("/dice/event-params", cachedGet(app, diceKey, app.Backend.DiceEventParams))
	api.Put("/dice/event-params", validatedPut(app, diceKey, app.Backend.UpdateDiceEventParams))

	api.Get("/roulette/config", cachedGet(app, rouletteKey, app.Backend.RouletteConfig))
	api.Put("/roulette/config", validatedPut(app, rouletteKey, app.Backend.UpdateRouletteConfig))

	api.Get("/lottery/config", cachedGet(app, lotteryKey, app.Backend.LotteryConfig))
	api.Put("/lottery/config", validatedPut(app, lotteryKey, app.Backend.UpdateLotteryConfig))

	// CRUD missions
	api.Get("/missions", cachedGet(app, missionsKey, app.Backend.ListMissions))
	api.Post("/missions", CreateMission(app))
	api.Put(`/missions/{id:^\d+$}`, UpdateMission(app))
	api.Delete(`/missions/{id:^\d+$}`, DeleteMission(app))

	api.Get("/ranking", RankingByDate(app))
	api.Get("/external-ranking", cachedGet(app, externalRankingKey, app.Backend.ExternalRanking))
	api.Put("/external-ranking", ReplaceExternalRanking(app))

	return api
}
