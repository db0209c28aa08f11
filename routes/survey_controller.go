package routes

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mbolis/reward-web/app"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/log"
	"github.com/mbolis/reward-web/model"
	"github.com/mbolis/reward-web/routes/middlewares"
	"github.com/mbolis/reward-web/survey"
)

func ListSurveys(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := surveyListPage{Toast: httpx.PopToast(w, r)}

		surveys, err := app.Backend.ListActiveSurveys(r.Context())
		if err != nil {
			log.Warnf("backend.list_surveys: %s", err)
			page.Failed = true
			httpx.Render(w, backend.StatusOf(err), pages, "surveys", page)
			return
		}

		page.Surveys = surveys
		httpx.Render(w, http.StatusOK, pages, "surveys", page)
	}
}

func OpenSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		session, ok := loadSession(w, r, app, surveyID)
		if !ok {
			return
		}
		renderSession(w, http.StatusOK, session)
	}
}

// PostSurveyForm applies the submitted answers, then saves or submits them
// depending on the button pressed.
func PostSurveyForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}
		responseID, err := strconv.Atoi(chi.URLParam(r, "rid"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.rid")
			return
		}
		if err := r.ParseForm(); err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.parse_form", "invalid form: %s", err)
			return
		}

		session, ok := loadSession(w, r, app, surveyID)
		if !ok {
			return
		}
		if session.Response.ID != responseID {
			log.Debugf("survey.post_form: stale response %d, current is %d", responseID, session.Response.ID)
			http.Redirect(w, r, fmt.Sprintf("/surveys/%d", surveyID), http.StatusSeeOther)
			return
		}

		visitor := middlewares.VisitorFrom(r.Context())
		for _, q := range session.Survey.Questions {
			raw, present := r.PostForm[fmt.Sprintf("q_%d", q.ID)]
			if !present || len(raw) == 0 {
				continue
			}
			_, answered := session.Answer(q.ID)
			a, ok := q.ParseEdit(raw[0], answered)
			if !ok {
				continue
			}
			session.OnChange(a)
			if err := app.Drafts.Put(r.Context(), visitor.ID, session.Response.ID, a); err != nil {
				httpx.LogInternalError(w, "survey.post_form.draft", err)
				return
			}
		}

		if r.PostForm.Get("action") != "submit" {
			if err := session.Save(r.Context(), app.Backend); err != nil {
				log.Warnf("survey.save: %s", err)
			}
			renderSession(w, http.StatusOK, session)
			return
		}

		res, err := session.Submit(r.Context(), app.Backend)
		if err != nil {
			log.Warnf("survey.submit: %s", err)
			renderSession(w, http.StatusOK, session)
			return
		}
		if err := app.Drafts.Clear(r.Context(), visitor.ID, session.Response.ID); err != nil {
			log.Errorf("survey.submit.clear_drafts: %s", err)
		}

		toast := res.ToastMessage
		if toast == "" && res.RewardApplied {
			toast = session.Survey.Reward.Toast
		}
		httpx.SetToast(w, toast)
		http.Redirect(w, r, "/surveys", http.StatusSeeOther)
	}
}

// PutAnswer records a single answer change without saving it to the backend.
// The answer must fit a question of the visitor's current response.
func PutAnswer(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}
		responseID, err := strconv.Atoi(chi.URLParam(r, "rid"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.rid")
			return
		}

		var a model.Answer
		if err := render.DecodeJSON(r.Body, &a); err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.decode_answer", "invalid answer: %s", err)
			return
		}
		if err := app.Validator.Struct(a); err != nil {
			httpx.LogValidation(w, r, "survey.put_answer", err)
			return
		}

		bootstrap, err := app.Backend.StartOrResumeSession(r.Context(), surveyID)
		if err != nil {
			httpx.LogBackendError(w, r, "survey.put_answer.session", err)
			return
		}
		if bootstrap.Response.ID != responseID {
			httpx.LogStatusMsg(w, http.StatusConflict, log.DebugLevel, "survey.put_answer", "stale response %d, current is %d", responseID, bootstrap.Response.ID)
			return
		}

		q, ok := bootstrap.Survey.Question(a.QuestionID)
		if !ok {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.DebugLevel, "survey.put_answer", "unknown question %d", a.QuestionID)
			return
		}
		if !q.Accepts(a) {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.DebugLevel, "survey.put_answer", "answer does not fit %s question %d", q.Type, q.ID)
			return
		}

		visitor := middlewares.VisitorFrom(r.Context())
		if err := app.Drafts.Put(r.Context(), visitor.ID, responseID, a); err != nil {
			httpx.LogInternalError(w, "survey.put_answer.draft", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadSession starts or resumes the visitor's response and merges in their drafts.
// On failure it renders the retry panel and returns false.
func loadSession(w http.ResponseWriter, r *http.Request, app app.App, surveyID int) (*survey.Session, bool) {
	bootstrap, err := app.Backend.StartOrResumeSession(r.Context(), surveyID)
	if err != nil {
		log.Warnf("backend.start_session(%d): %s", surveyID, err)
		httpx.Render(w, backend.StatusOf(err), pages, "retry", retryPage{
			Message:  "설문을 불러오지 못했어요.",
			RetryURL: fmt.Sprintf("/surveys/%d", surveyID),
			BackURL:  "/surveys",
		})
		return nil, false
	}

	visitor := middlewares.VisitorFrom(r.Context())
	drafts, err := app.Drafts.Load(r.Context(), visitor.ID, bootstrap.Response.ID)
	if err != nil {
		httpx.LogInternalError(w, "survey.load_drafts", err)
		return nil, false
	}
	return survey.NewSession(bootstrap, drafts), true
}

func renderSession(w http.ResponseWriter, status int, s *survey.Session) {
	if s.Response.Completed() {
		httpx.Render(w, status, pages, "completed", s.Survey)
		return
	}
	httpx.Render(w, status, pages, "runner", runnerPage{
		Survey:     s.Survey,
		ResponseID: s.Response.ID,
		Questions:  questionViews(s),
	})
}
