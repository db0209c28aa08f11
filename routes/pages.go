package routes

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/mbolis/reward-web/model"
	"github.com/mbolis/reward-web/reward"
	"github.com/mbolis/reward-web/survey"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"reward": reward.FormatRewardLine,
}).ParseFS(templateFS, "templates/*.html"))

type surveyListPage struct {
	Toast   string
	Failed  bool
	Surveys []model.Survey
}

type runnerPage struct {
	Survey     model.Survey
	ResponseID int
	Questions  []questionView
}

type retryPage struct {
	Toast    string
	Message  string
	RetryURL string
	BackURL  string
}

type questionView struct {
	ID         int
	Name       string
	Title      string
	HelperText string
	Required   bool
	Input      string
	Value      string
	Options    []optionView
}

type optionView struct {
	ID      int
	Label   string
	Checked bool
}

// questionViews renders every question with its merged answer, in display order.
func questionViews(s *survey.Session) []questionView {
	qs := s.Survey.OrderedQuestions()
	views := make([]questionView, 0, len(qs))
	for _, q := range qs {
		b := viewBuilder{session: s}
		q.Kind().Accept(&b)
		views = append(views, b.view)
	}
	return views
}

type viewBuilder struct {
	session *survey.Session
	view    questionView
}

func (b *viewBuilder) base(q model.Question, input string) {
	b.view = questionView{
		ID:         q.ID,
		Name:       fmt.Sprintf("q_%d", q.ID),
		Title:      q.Title,
		HelperText: q.HelperText,
		Required:   q.Required,
		Input:      input,
	}
	if a, ok := b.session.Answer(q.ID); ok {
		b.view.Value = a.Value()
	}
}

func (b *viewBuilder) VisitText(q model.Question, _ model.TextInput) {
	b.base(q, "text")
}

func (b *viewBuilder) VisitNumber(q model.Question, _ model.NumberInput) {
	b.base(q, "number")
}

func (b *viewBuilder) VisitChoice(q model.Question, k model.ChoiceInput) {
	b.base(q, "choice")
	for _, o := range k.Options {
		b.view.Options = append(b.view.Options, optionView{
			ID:      o.ID,
			Label:   o.Label,
			Checked: b.view.Value == strconv.Itoa(o.ID),
		})
	}
}
