package backend

import (
	"context"
	"net/http"

	"github.com/mbolis/reward-web/model"
)

func (c *Client) GetStreak(ctx context.Context) (model.StreakState, error) {
	return doJSON[model.StreakState](c, ctx, "attendance.get_streak", http.MethodGet, "/api/attendance/streak", nil)
}

func (c *Client) ClaimStreak(ctx context.Context, day int) (model.ClaimResult, error) {
	return doJSON[model.ClaimResult](c, ctx, "attendance.claim", http.MethodPost, "/api/attendance/claim", model.ClaimRequest{Day: day})
}
