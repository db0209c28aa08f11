package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/http/cookiejar"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mbolis/reward-web/app"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/config"
	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/model"
	"github.com/mbolis/reward-web/settings"
	"github.com/mbolis/reward-web/survey"
	"github.com/stretchr/testify/require"
)

// fakeBackend plays the rewards API for one survey, the attendance
// endpoints and a few admin resources.
type fakeBackend struct {
	mu sync.Mutex

	surveys    []model.Survey
	listFails  bool
	status     model.ResponseStatus
	answers    []model.Answer
	patches    []model.SaveAnswersRequest
	completes  []model.CompleteRequest
	streak     model.StreakState
	claimed    bool
	claims     []int
	dice       model.DiceEventParams
	diceGets   int
	dicePuts   int
	authHeader string
}

func holidaySurvey() model.Survey {
	return model.Survey{
		ID:     101,
		Title:  "Holiday Survey",
		Status: model.SurveyActive,
		Reward: model.SurveyReward{Kind: "DICE_TICKET", Amount: 1},
		Questions: []model.Question{{
			ID:       201,
			Type:     model.QuestionSingleChoice,
			Title:    "Which reward do you prefer?",
			Required: true,
			Options: []model.Option{
				{ID: 301, Value: "token", Label: "Token", OrderIndex: 0},
				{ID: 302, Value: "coupon", Label: "Coupon", OrderIndex: 1},
			},
		}, {
			ID:         202,
			OrderIndex: 1,
			Type:       model.QuestionText,
			Title:      "Anything else?",
		}},
	}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		surveys: []model.Survey{holidaySurvey()},
		status:  model.ResponsePending,
		claimed: true,
		dice: model.DiceEventParams{
			Enabled:           true,
			DailyFreeRolls:    3,
			MaxRollsPerDay:    10,
			JackpotFace:       6,
			JackpotRewardType: "DIAMOND",
			JackpotAmount:     5,
		},
	}
}

func (f *fakeBackend) session() model.SessionBootstrap {
	return model.SessionBootstrap{
		Response: model.SurveyResponse{ID: 9001, SurveyID: 101, Status: f.status},
		Survey:   holidaySurvey(),
		Answers:  f.answers,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authHeader = r.Header.Get("Authorization")

	switch route := r.Method + " " + r.URL.Path; route {
	case "GET /api/surveys/active":
		if f.listFails {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": map[string]any{"code": "INTERNAL"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": f.surveys})

	case "POST /api/surveys/101/responses":
		writeJSON(w, http.StatusOK, f.session())

	case "PATCH /api/surveys/101/responses/9001":
		var req model.SaveAnswersRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.patches = append(f.patches, req)
		f.answers = req.Answers
		writeJSON(w, http.StatusOK, f.session())

	case "POST /api/surveys/101/responses/9001/complete":
		var req model.CompleteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.completes = append(f.completes, req)
		f.status = model.ResponseCompleted
		resp := f.session().Response
		resp.RewardStatus = model.RewardGranted
		writeJSON(w, http.StatusOK, model.CompleteResult{Response: resp, RewardApplied: true, ToastMessage: "Granted: Dice Ticket"})

	case "GET /api/attendance/streak":
		writeJSON(w, http.StatusOK, f.streak)

	case "POST /api/attendance/claim":
		var req model.ClaimRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.claims = append(f.claims, req.Day)
		res := model.ClaimResult{Claimed: f.claimed}
		if f.claimed {
			res.ToastMessage = "출석 보상 지급 완료!"
		}
		writeJSON(w, http.StatusOK, res)

	case "GET /api/admin/dice/event-params":
		f.diceGets++
		writeJSON(w, http.StatusOK, f.dice)

	case "PUT /api/admin/dice/event-params":
		f.dicePuts++
		_ = json.NewDecoder(r.Body).Decode(&f.dice)
		writeJSON(w, http.StatusOK, f.dice)

	case "DELETE /api/admin/missions/404":
		writeJSON(w, http.StatusNotFound, map[string]any{"code": "MISSION_NOT_FOUND"})

	default:
		if strings.HasPrefix(r.URL.Path, "/api/surveys/") {
			writeJSON(w, http.StatusNotFound, map[string]any{"code": "SURVEY_NOT_FOUND"})
			return
		}
		http.NotFound(w, r)
	}
}

func intPtr(n int) *int { return &n }

// newBrowser wires the app against fake and returns a cookie-keeping client
// pointed at it.
func newBrowser(t *testing.T, fake *fakeBackend) (*http.Client, string) {
	t.Helper()

	api := httptest.NewServer(fake)
	t.Cleanup(api.Close)

	a := app.App{
		Config:    config.Config{VisitorTTL: time.Hour},
		Backend:   backend.New(api.URL),
		Cache:     backend.NewQueryCache(time.Minute),
		Settings:  settings.NewService(settings.NewMemoryStore()),
		Drafts:    survey.NewMemoryDrafts(),
		Visitors:  jwtauth.New("HS256", []byte("test-secret"), nil),
		Validator: httpx.NewValidator(),
	}
	web := httptest.NewServer(Wire(a))
	t.Cleanup(web.Close)

	return &http.Client{Jar: newJar(t)}, web.URL
}

func newJar(t *testing.T) http.CookieJar {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return jar
}
