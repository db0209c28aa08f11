package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mbolis/reward-web/model"
	"github.com/pkg/errors"
)

// DraftStore persists unsaved survey edits, one row per question.
type DraftStore struct {
	db *sql.DB
}

func NewDraftStore(db *sql.DB) *DraftStore {
	return &DraftStore{db}
}

func (s *DraftStore) Load(ctx context.Context, owner string, responseID int) (map[int]model.Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_id, answer
		FROM draft_answer
		WHERE owner = ?
			AND response_id = ?`,
		owner,
		responseID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "db.drafts.load")
	}
	defer rows.Close()

	drafts := map[int]model.Answer{}
	for rows.Next() {
		var questionID int
		var raw string
		if err := rows.Scan(&questionID, &raw); err != nil {
			return nil, errors.Wrap(err, "db.drafts.load.scan")
		}

		var a model.Answer
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return nil, errors.Wrap(err, "db.drafts.load.parse_answer")
		}
		a.QuestionID = questionID
		drafts[questionID] = a
	}
	return drafts, errors.Wrap(rows.Err(), "db.drafts.load.rows")
}

func (s *DraftStore) Put(ctx context.Context, owner string, responseID int, a model.Answer) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return errors.Wrap(err, "db.drafts.put.marshal")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO draft_answer (owner, response_id, question_id, answer, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (owner, response_id, question_id) DO UPDATE SET
			answer = excluded.answer,
			updated_at = excluded.updated_at`,
		owner,
		responseID,
		a.QuestionID,
		string(raw),
		time.Now(),
	)
	return errors.Wrap(err, "db.drafts.put")
}

func (s *DraftStore) Clear(ctx context.Context, owner string, responseID int) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM draft_answer
		WHERE owner = ?
			AND response_id = ?`,
		owner,
		responseID,
	)
	return errors.Wrap(err, "db.drafts.clear")
}
