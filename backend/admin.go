package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mbolis/reward-web/model"
)

func (c *Client) DashboardMetrics(ctx context.Context) (model.DashboardMetrics, error) {
	return doJSON[model.DashboardMetrics](c, ctx, "admin.dashboard", http.MethodGet, "/api/admin/dashboard/metrics", nil)
}

func (c *Client) DiceEventParams(ctx context.Context) (model.DiceEventParams, error) {
	return doJSON[model.DiceEventParams](c, ctx, "admin.dice.get", http.MethodGet, "/api/admin/dice/event-params", nil)
}

func (c *Client) UpdateDiceEventParams(ctx context.Context, p model.DiceEventParams) (model.DiceEventParams, error) {
	return doJSON[model.DiceEventParams](c, ctx, "admin.dice.update", http.MethodPut, "/api/admin/dice/event-params", p)
}

func (c *Client) RouletteConfig(ctx context.Context) (model.RouletteConfig, error) {
	return doJSON[model.RouletteConfig](c, ctx, "admin.roulette.get", http.MethodGet, "/api/admin/roulette/config", nil)
}

func (c *Client) UpdateRouletteConfig(ctx context.Context, cfg model.RouletteConfig) (model.RouletteConfig, error) {
	return doJSON[model.RouletteConfig](c, ctx, "admin.roulette.update", http.MethodPut, "/api/admin/roulette/config", cfg)
}

func (c *Client) LotteryConfig(ctx context.Context) (model.LotteryConfig, error) {
	return doJSON[model.LotteryConfig](c, ctx, "admin.lottery.get", http.MethodGet, "/api/admin/lottery/config", nil)
}

func (c *Client) UpdateLotteryConfig(ctx context.Context, cfg model.LotteryConfig) (model.LotteryConfig, error) {
	return doJSON[model.LotteryConfig](c, ctx, "admin.lottery.update", http.MethodPut, "/api/admin/lottery/config", cfg)
}

type missionList struct {
	Items []model.Mission `json:"items"`
}

func (c *Client) ListMissions(ctx context.Context) ([]model.Mission, error) {
	out, err := doJSON[missionList](c, ctx, "admin.missions.list", http.MethodGet, "/api/admin/missions", nil)
	return out.Items, err
}

func (c *Client) CreateMission(ctx context.Context, m model.Mission) (model.Mission, error) {
	return doJSON[model.Mission](c, ctx, "admin.missions.create", http.MethodPost, "/api/admin/missions", m)
}

func (c *Client) UpdateMission(ctx context.Context, id int, m model.Mission) (model.Mission, error) {
	path := fmt.Sprintf("/api/admin/missions/%d", id)
	return doJSON[model.Mission](c, ctx, "admin.missions.update", http.MethodPut, path, m)
}

func (c *Client) DeleteMission(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/admin/missions/%d", id)
	return c.call(ctx, "admin.missions.delete", http.MethodDelete, path, nil, nil, nil)
}

type rankingList struct {
	Items []model.RankingEntry `json:"items"`
}

// RankingByDate returns the leaderboard of one day, date formatted as
// YYYY-MM-DD.
func (c *Client) RankingByDate(ctx context.Context, date string) ([]model.RankingEntry, error) {
	var out rankingList
	err := c.call(ctx, "admin.ranking.by_date", http.MethodGet, "/api/admin/ranking", url.Values{"date": {date}}, nil, &out)
	return out.Items, err
}

type externalRankingList struct {
	Items []model.ExternalRankingEntry `json:"items"`
}

func (c *Client) ExternalRanking(ctx context.Context) ([]model.ExternalRankingEntry, error) {
	out, err := doJSON[externalRankingList](c, ctx, "admin.external_ranking.get", http.MethodGet, "/api/admin/external-ranking", nil)
	return out.Items, err
}

func (c *Client) ReplaceExternalRanking(ctx context.Context, entries []model.ExternalRankingEntry) ([]model.ExternalRankingEntry, error) {
	out, err := doJSON[externalRankingList](c, ctx, "admin.external_ranking.put", http.MethodPut, "/api/admin/external-ranking", externalRankingList{Items: entries})
	return out.Items, err
}
