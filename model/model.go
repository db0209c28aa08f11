package model

import (
	"encoding/json"
	"errors"
	"time"
)

type SurveyStatus string

const (
	SurveyActive   SurveyStatus = "ACTIVE"
	SurveyInactive SurveyStatus = "INACTIVE"
)

type Survey struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Channel     string       `json:"channel"`
	Status      SurveyStatus `json:"status"`
	Reward      SurveyReward `json:"reward"`
	Questions   []Question   `json:"questions"`
}

type SurveyReward struct {
	Kind   string `json:"kind"`
	Amount int    `json:"amount"`
	Toast  string `json:"toast,omitempty"`
}

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "SINGLE_CHOICE"
	QuestionText         QuestionType = "TEXT"
	QuestionNumber       QuestionType = "NUMBER"
)

type Question struct {
	ID         int             `json:"id"`
	OrderIndex int             `json:"order_index"`
	Type       QuestionType    `json:"type"`
	Title      string          `json:"title"`
	HelperText string          `json:"helper_text,omitempty"`
	Required   bool            `json:"required"`
	Config     json.RawMessage `json:"config,omitempty"`
	Options    []Option        `json:"options"`
}

type Option struct {
	ID         int    `json:"id"`
	Value      string `json:"value"`
	Label      string `json:"label"`
	OrderIndex int    `json:"order_index"`
	Weight     int    `json:"weight"`
}

type ResponseStatus string

const (
	ResponsePending   ResponseStatus = "PENDING"
	ResponseCompleted ResponseStatus = "COMPLETED"
)

type RewardStatus string

const (
	RewardNone    RewardStatus = "NONE"
	RewardGranted RewardStatus = "GRANTED"
)

// SurveyResponse is one visitor's attempt at a survey. Its id always comes
// from the backend.
type SurveyResponse struct {
	ID             int            `json:"id"`
	SurveyID       int            `json:"survey_id"`
	Status         ResponseStatus `json:"status"`
	RewardStatus   RewardStatus   `json:"reward_status"`
	LastQuestionID *int           `json:"last_question_id"`
	StartedAt      *time.Time     `json:"started_at"`
	CompletedAt    *time.Time     `json:"completed_at"`
}

var ErrStatusRegression = errors.New("response status cannot go back to PENDING")

func (r SurveyResponse) Completed() bool {
	return r.Status == ResponseCompleted
}

// Advance replaces r with next unless that would move a completed response
// back to pending.
func (r *SurveyResponse) Advance(next SurveyResponse) error {
	if r.Completed() && !next.Completed() {
		return ErrStatusRegression
	}
	*r = next
	return nil
}

// Answer holds exactly one value slot, chosen by the question type.
type Answer struct {
	QuestionID   int      `json:"question_id" validate:"gt=0"`
	AnswerText   *string  `json:"answer_text,omitempty" validate:"required_without_all=AnswerNumber OptionID,excluded_with=AnswerNumber OptionID"`
	AnswerNumber *float64 `json:"answer_number,omitempty" validate:"excluded_with=OptionID"`
	OptionID     *int     `json:"option_id,omitempty"`
}

func TextAnswer(questionID int, text string) Answer {
	return Answer{QuestionID: questionID, AnswerText: &text}
}

func NumberAnswer(questionID int, n float64) Answer {
	return Answer{QuestionID: questionID, AnswerNumber: &n}
}

func ChoiceAnswer(questionID int, optionID int) Answer {
	return Answer{QuestionID: questionID, OptionID: &optionID}
}

// SessionBootstrap is what the backend returns when a session is opened or
// its answers are saved.
type SessionBootstrap struct {
	Response SurveyResponse `json:"response"`
	Survey   Survey         `json:"survey"`
	Answers  []Answer       `json:"answers"`
}

type SaveAnswersRequest struct {
	Answers        []Answer `json:"answers"`
	LastQuestionID *int     `json:"last_question_id"`
}

type CompleteRequest struct {
	ForceSubmit bool `json:"force_submit"`
}

type CompleteResult struct {
	Response      SurveyResponse `json:"response"`
	RewardApplied bool           `json:"reward_applied"`
	ToastMessage  string         `json:"toast_message,omitempty"`
}
