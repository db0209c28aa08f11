package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mbolis/reward-web/model"
)

type activeSurveys struct {
	Items []model.Survey `json:"items"`
}

// ListActiveSurveys returns the surveys in the order the backend sent them.
func (c *Client) ListActiveSurveys(ctx context.Context) ([]model.Survey, error) {
	out, err := doJSON[activeSurveys](c, ctx, "surveys.list_active", http.MethodGet, "/api/surveys/active", nil)
	if err != nil {
		return nil, err
	}
	if out.Items == nil {
		return []model.Survey{}, nil
	}
	return out.Items, nil
}

// StartOrResumeSession opens the visitor's session for a survey. The backend
// returns the same pending session when called again before completion.
func (c *Client) StartOrResumeSession(ctx context.Context, surveyID int) (model.SessionBootstrap, error) {
	path := fmt.Sprintf("/api/surveys/%d/responses", surveyID)
	return doJSON[model.SessionBootstrap](c, ctx, "surveys.start_session", http.MethodPost, path, struct{}{})
}

// SaveAnswers stores a partial set of answers. The response status is left
// unchanged.
func (c *Client) SaveAnswers(ctx context.Context, surveyID, responseID int, req model.SaveAnswersRequest) (model.SessionBootstrap, error) {
	path := fmt.Sprintf("/api/surveys/%d/responses/%d", surveyID, responseID)
	return doJSON[model.SessionBootstrap](c, ctx, "surveys.save_answers", http.MethodPatch, path, req)
}

func (c *Client) CompleteSession(ctx context.Context, surveyID, responseID int, req model.CompleteRequest) (model.CompleteResult, error) {
	path := fmt.Sprintf("/api/surveys/%d/responses/%d/complete", surveyID, responseID)
	return doJSON[model.CompleteResult](c, ctx, "surveys.complete_session", http.MethodPost, path, req)
}
