package model

import "sort"

// InputKind is the rendering variant of a question. The set of variants is
// closed: implementations live in this file only.
type InputKind interface {
	Accept(v InputVisitor)
	isInputKind()
}

// InputVisitor has one method per InputKind. A new question type adds a
// method here, which breaks every visitor until it handles the new kind.
type InputVisitor interface {
	VisitText(q Question, k TextInput)
	VisitNumber(q Question, k NumberInput)
	VisitChoice(q Question, k ChoiceInput)
}

type TextInput struct {
	q Question
}

type NumberInput struct {
	q Question
}

type ChoiceInput struct {
	q       Question
	Options []Option
}

func (k TextInput) Accept(v InputVisitor)   { v.VisitText(k.q, k) }
func (k NumberInput) Accept(v InputVisitor) { v.VisitNumber(k.q, k) }
func (k ChoiceInput) Accept(v InputVisitor) { v.VisitChoice(k.q, k) }

func (TextInput) isInputKind()   {}
func (NumberInput) isInputKind() {}
func (ChoiceInput) isInputKind() {}

// Kind maps the type tag to its variant. Unknown tags render as a single
// choice question.
func (q Question) Kind() InputKind {
	switch q.Type {
	case QuestionText:
		return TextInput{q: q}
	case QuestionNumber:
		return NumberInput{q: q}
	default:
		return ChoiceInput{q: q, Options: q.Options}
	}
}

// ParseAnswer turns a raw form value into an answer for q. ok is false when
// the value is empty or does not fit the question type.
func (q Question) ParseAnswer(raw string) (a Answer, ok bool) {
	p := answerParser{raw: raw}
	q.Kind().Accept(&p)
	return p.answer, p.ok
}

// ParseEdit is ParseAnswer for a field the visitor submitted. When the
// question already has an answer, a blank text value clears it instead of
// being ignored.
func (q Question) ParseEdit(raw string, answered bool) (a Answer, ok bool) {
	p := answerParser{raw: raw, clearing: answered}
	q.Kind().Accept(&p)
	return p.answer, p.ok
}

// Accepts reports whether a answers q with the value slot q's type expects.
func (q Question) Accepts(a Answer) bool {
	if a.QuestionID != q.ID {
		return false
	}
	c := answerChecker{answer: a}
	q.Kind().Accept(&c)
	return c.ok
}

// OrderedQuestions returns the questions sorted by order_index. The sort is
// stable so equal indexes keep the order they were received in.
func (s Survey) OrderedQuestions() []Question {
	qs := make([]Question, len(s.Questions))
	copy(qs, s.Questions)
	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].OrderIndex < qs[j].OrderIndex
	})
	return qs
}

func (s Survey) Question(id int) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
