package backend

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/mbolis/reward-web/model"
)

// fakeBackend serves the survey endpoints for one active survey and keeps
// what it was sent.
type fakeBackend struct {
	mu         sync.Mutex
	surveys    []model.Survey
	responseID int
	answers    []model.Answer
	status     model.ResponseStatus
	starts     int
	patches    []model.SaveAnswersRequest
	completes  []model.CompleteRequest
	authHeader string
}

func holidaySurvey() model.Survey {
	return model.Survey{
		ID:     101,
		Title:  "Holiday Survey",
		Status: model.SurveyActive,
		Reward: model.SurveyReward{Kind: "DICE_TICKET", Amount: 1},
		Questions: []model.Question{{
			ID:         201,
			OrderIndex: 0,
			Type:       model.QuestionSingleChoice,
			Title:      "Which reward do you prefer?",
			Required:   true,
			Options: []model.Option{
				{ID: 301, Value: "token", Label: "Token", OrderIndex: 0},
				{ID: 302, Value: "coupon", Label: "Coupon", OrderIndex: 1},
			},
		}},
	}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		surveys:    []model.Survey{holidaySurvey()},
		responseID: 9001,
		status:     model.ResponsePending,
	}
}

func (f *fakeBackend) session() model.SessionBootstrap {
	return model.SessionBootstrap{
		Response: model.SurveyResponse{
			ID:       f.responseID,
			SurveyID: 101,
			Status:   f.status,
		},
		Survey:  f.surveys[0],
		Answers: f.answers,
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

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/surveys/active":
		writeJSON(w, http.StatusOK, map[string]any{"items": f.surveys})

	case r.Method == http.MethodPost && r.URL.Path == "/api/surveys/101/responses":
		f.starts++
		writeJSON(w, http.StatusOK, f.session())

	case r.Method == http.MethodPatch && r.URL.Path == "/api/surveys/101/responses/9001":
		var req model.SaveAnswersRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.patches = append(f.patches, req)
		f.answers = req.Answers
		writeJSON(w, http.StatusOK, f.session())

	case r.Method == http.MethodPost && r.URL.Path == "/api/surveys/101/responses/9001/complete":
		var req model.CompleteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.completes = append(f.completes, req)
		f.status = model.ResponseCompleted
		resp := f.session().Response
		resp.RewardStatus = model.RewardGranted
		writeJSON(w, http.StatusOK, model.CompleteResult{
			Response:      resp,
			RewardApplied: true,
			ToastMessage:  "Granted: Dice Ticket",
		})

	case strings.HasPrefix(r.URL.Path, "/api/surveys/"):
		writeJSON(w, http.StatusNotFound, map[string]any{"code": "SURVEY_NOT_FOUND", "message": "no such survey"})

	default:
		http.NotFound(w, r)
	}
}
