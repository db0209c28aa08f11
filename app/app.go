package app

import (
	"github.com/go-chi/jwtauth/v5"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/config"
	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/settings"
	"github.com/mbolis/reward-web/survey"
)

type App struct {
	config.Config
	Backend   *backend.Client
	Cache     *backend.QueryCache
	Settings  *settings.Service
	Drafts    survey.DraftStore
	Visitors  *jwtauth.JWTAuth
	Validator *httpx.Validator
}
