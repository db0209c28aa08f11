package model

import (
	"strconv"
	"strings"
)

type answerParser struct {
	raw      string
	clearing bool
	answer   Answer
	ok       bool
}

func (p *answerParser) VisitText(q Question, _ TextInput) {
	if strings.TrimSpace(p.raw) == "" {
		if p.clearing {
			p.answer, p.ok = TextAnswer(q.ID, ""), true
		}
		return
	}
	p.answer, p.ok = TextAnswer(q.ID, p.raw), true
}

func (p *answerParser) VisitNumber(q Question, _ NumberInput) {
	n, err := strconv.ParseFloat(strings.TrimSpace(p.raw), 64)
	if err != nil {
		return
	}
	p.answer, p.ok = NumberAnswer(q.ID, n), true
}

func (p *answerParser) VisitChoice(q Question, k ChoiceInput) {
	id, err := strconv.Atoi(strings.TrimSpace(p.raw))
	if err != nil {
		return
	}
	for _, o := range k.Options {
		if o.ID == id {
			p.answer, p.ok = ChoiceAnswer(q.ID, id), true
			return
		}
	}
}

// answerChecker reports whether an answer fills the slot its question's kind
// expects. A choice must name one of the question's options.
type answerChecker struct {
	answer Answer
	ok     bool
}

func (c *answerChecker) VisitText(_ Question, _ TextInput) {
	c.ok = c.answer.AnswerText != nil
}

func (c *answerChecker) VisitNumber(_ Question, _ NumberInput) {
	c.ok = c.answer.AnswerNumber != nil
}

func (c *answerChecker) VisitChoice(_ Question, k ChoiceInput) {
	if c.answer.OptionID == nil {
		return
	}
	for _, o := range k.Options {
		if o.ID == *c.answer.OptionID {
			c.ok = true
			return
		}
	}
}

// Value renders the populated slot as a form value.
func (a Answer) Value() string {
	switch {
	case a.AnswerText != nil:
		return *a.AnswerText
	case a.AnswerNumber != nil:
		return strconv.FormatFloat(*a.AnswerNumber, 'f', -1, 64)
	case a.OptionID != nil:
		return strconv.Itoa(*a.OptionID)
	}
	return ""
}
