// Package survey holds the client-side state of one survey session: the
// answers last confirmed by the backend and the visitor's unsaved edits.
package survey

import (
	"context"
	"sort"

	"github.com/mbolis/reward-web/model"
)

// API is the part of the backend client a session talks to.
type API interface {
	SaveAnswers(ctx context.Context, surveyID, responseID int, req model.SaveAnswersRequest) (model.SessionBootstrap, error)
	CompleteSession(ctx context.Context, surveyID, responseID int, req model.CompleteRequest) (model.CompleteResult, error)
}

type Session struct {
	Survey   model.Survey
	Response model.SurveyResponse

	server map[int]model.Answer
	local  map[int]model.Answer
}

// NewSession starts from a backend bootstrap. local holds edits carried over
// from earlier requests and may be nil.
func NewSession(b model.SessionBootstrap, local map[int]model.Answer) *Session {
	s := &Session{
		Survey:   b.Survey,
		Response: b.Response,
		server:   indexAnswers(b.Answers),
		local:    map[int]model.Answer{},
	}
	for id, a := range local {
		s.local[id] = a
	}
	return s
}

func indexAnswers(answers []model.Answer) map[int]model.Answer {
	m := make(map[int]model.Answer, len(answers))
	for _, a := range answers {
		m[a.QuestionID] = a
	}
	return m
}

// OnChange records an edit. It replaces any earlier edit of the same question.
func (s *Session) OnChange(a model.Answer) {
	s.local[a.QuestionID] = a
}

// LocalEdits returns a copy of the unsaved edits.
func (s *Session) LocalEdits() map[int]model.Answer {
	m := make(map[int]model.Answer, len(s.local))
	for id, a := range s.local {
		m[id] = a
	}
	return m
}

// Answer returns the merged answer of one question.
func (s *Session) Answer(questionID int) (model.Answer, bool) {
	if a, ok := s.local[questionID]; ok {
		return a, true
	}
	a, ok := s.server[questionID]
	return a, ok
}

// Merged returns one answer per question, a local edit replacing the server
// copy as a whole. Answers are ordered by ascending question id.
func (s *Session) Merged() []model.Answer {
	ids := make([]int, 0, len(s.server)+len(s.local))
	for id := range s.server {
		ids = append(ids, id)
	}
	for id := range s.local {
		if _, dup := s.server[id]; !dup {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	merged := make([]model.Answer, 0, len(ids))
	for _, id := range ids {
		a, _ := s.Answer(id)
		merged = append(merged, a)
	}
	return merged
}

// SaveRequest builds the PATCH body. last_question_id is the question of the
// last merged answer, not the one with the highest order_index.
func (s *Session) SaveRequest() model.SaveAnswersRequest {
	answers := s.Merged()
	req := model.SaveAnswersRequest{Answers: answers}
	if n := len(answers); n > 0 {
		last := answers[n-1].QuestionID
		req.LastQuestionID = &last
	}
	return req
}

// Save pushes the merged answers. On success the echoed answers become the
// new server baseline; local edits are kept. An echo without a response
// leaves the current one in place.
func (s *Session) Save(ctx context.Context, api API) error {
	echo, err := api.SaveAnswers(ctx, s.Survey.ID, s.Response.ID, s.SaveRequest())
	if err != nil {
		return err
	}
	s.server = indexAnswers(echo.Answers)
	return s.advance(echo.Response)
}

func (s *Session) advance(next model.SurveyResponse) error {
	if next.ID == 0 {
		return nil
	}
	return s.Response.Advance(next)
}

// Submit saves and then completes the session. A failure leaves the local
// state as it was so the visitor can try again.
func (s *Session) Submit(ctx context.Context, api API) (model.CompleteResult, error) {
	if err := s.Save(ctx, api); err != nil {
		return model.CompleteResult{}, err
	}

	res, err := api.CompleteSession(ctx, s.Survey.ID, s.Response.ID, model.CompleteRequest{ForceSubmit: true})
	if err != nil {
		return model.CompleteResult{}, err
	}
	if err := s.advance(res.Response); err != nil {
		return model.CompleteResult{}, err
	}
	return res, nil
}
