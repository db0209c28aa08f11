package survey

import (
	"context"
	"sync"

	"github.com/mbolis/reward-web/model"
)

// DraftStore keeps a visitor's unsaved edits between requests, per response.
type DraftStore interface {
	Load(ctx context.Context, owner string, responseID int) (map[int]model.Answer, error)
	Put(ctx context.Context, owner string, responseID int, a model.Answer) error
	Clear(ctx context.Context, owner string, responseID int) error
}

type draftKey struct {
	owner      string
	responseID int
}

type MemoryDrafts struct {
	mu     sync.Mutex
	drafts map[draftKey]map[int]model.Answer
}

func NewMemoryDrafts() *MemoryDrafts {
	return &MemoryDrafts{drafts: map[draftKey]map[int]model.Answer{}}
}

func (m *MemoryDrafts) Load(_ context.Context, owner string, responseID int) (map[int]model.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := map[int]model.Answer{}
	for id, a := range m.drafts[draftKey{owner, responseID}] {
		out[id] = a
	}
	return out, nil
}

func (m *MemoryDrafts) Put(_ context.Context, owner string, responseID int, a model.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := draftKey{owner, responseID}
	if m.drafts[k] == nil {
		m.drafts[k] = map[int]model.Answer{}
	}
	m.drafts[k][a.QuestionID] = a
	return nil
}

func (m *MemoryDrafts) Clear(_ context.Context, owner string, responseID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.drafts, draftKey{owner, responseID})
	return nil
}
