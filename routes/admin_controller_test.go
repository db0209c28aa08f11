package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/model"
	"github.com/stretchr/testify/require"
)

const adminAuth = "Bearer admin-token"

func TestAdmin_RequiresToken(t *testing.T) {
	fake := newFakeBackend()
	c, base := newBrowser(t, fake)

	status, _ := send(t, c, http.MethodGet, base+"/admin/api/dice/event-params", "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Zero(t, fake.diceGets)
}

func TestAdmin_DiceParamsCachedUntilWrite(t *testing.T) {
	fake := newFakeBackend()
	c, base := newBrowser(t, fake)
	u := base + "/admin/api/dice/event-params"

	for i := 0; i < 2; i++ {
		status, body := send(t, c, http.MethodGet, u, "", "Authorization", adminAuth)
		require.Equal(t, http.StatusOK, status)
		var got model.DiceEventParams
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		require.Equal(t, 6, got.JackpotFace)
	}
	require.Equal(t, 1, fake.diceGets)
	require.Equal(t, adminAuth, fake.authHeader)

	updated := fake.dice
	updated.DailyFreeRolls = 5
	raw, err := json.Marshal(updated)
	require.NoError(t, err)
	status, _ := send(t, c, http.MethodPut, u, string(raw), "Authorization", adminAuth)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, fake.dicePuts)

	_, body := send(t, c, http.MethodGet, u, "", "Authorization", adminAuth)
	var got model.DiceEventParams
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Equal(t, 5, got.DailyFreeRolls)
	require.Equal(t, 2, fake.diceGets)
}

func TestAdmin_CacheIsPerCaller(t *testing.T) {
	fake := newFakeBackend()
	c, base := newBrowser(t, fake)
	u := base + "/admin/api/dice/event-params"

	send(t, c, http.MethodGet, u, "", "Authorization", adminAuth)
	send(t, c, http.MethodGet, u, "", "Authorization", "Bearer someone-else")
	require.Equal(t, 2, fake.diceGets)
}

func TestAdmin_InvalidDiceParamsNeverReachBackend(t *testing.T) {
	fake := newFakeBackend()
	c, base := newBrowser(t, fake)

	invalid := fake.dice
	invalid.JackpotFace = 9
	invalid.MaxRollsPerDay = 1
	raw, err := json.Marshal(invalid)
	require.NoError(t, err)

	status, body := send(t, c, http.MethodPut, base+"/admin/api/dice/event-params", string(raw), "Authorization", adminAuth)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	var errBody httpx.ErrorBody
	require.NoError(t, json.Unmarshal([]byte(body), &errBody))
	require.Equal(t, map[string]string{"jackpot_face": "lte", "max_rolls_per_day": "gtefield"}, errBody.Fields)
	require.Zero(t, fake.dicePuts)
}

func TestAdmin_BackendErrorPassesThrough(t *testing.T) {
	c, base := newBrowser(t, newFakeBackend())

	status, body := send(t, c, http.MethodDelete, base+"/admin/api/missions/404", "", "Authorization", adminAuth)
	require.Equal(t, http.StatusNotFound, status)

	var errBody httpx.ErrorBody
	require.NoError(t, json.Unmarshal([]byte(body), &errBody))
	require.Equal(t, "MISSION_NOT_FOUND", errBody.Code)
}

func TestAdmin_RankingDateIsValidated(t *testing.T) {
	c, base := newBrowser(t, newFakeBackend())

	for _, date := range []string{"15/10/2026", "2026-13-45", ""} {
		status, _ := send(t, c, http.MethodGet, base+"/admin/api/ranking?date="+date, "", "Authorization", adminAuth)
		require.Equal(t, http.StatusUnprocessableEntity, status, date)
	}
}

func TestMetrics_ExposesRequestCounters(t *testing.T) {
	c, base := newBrowser(t, newFakeBackend())

	get(t, c, base+"/surveys")
	status, body := get(t, c, base+"/metrics")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `rewardweb_http_requests_total{method="GET",route="/surveys",status="200"}`)
}
