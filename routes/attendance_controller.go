package routes

import (
	"context"
	"net/http"

	"github.com/mbolis/reward-web/app"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/httpx"
	"github.com/mbolis/reward-web/log"
	"github.com/mbolis/reward-web/routes/middlewares"
	"github.com/mbolis/reward-web/streak"
)

const (
	gamesURL        = "/games"
	claimFailedText = "출석 보상을 받지 못했어요. 잠시 후 다시 시도해 주세요."
)

type attendancePage struct {
	Toast       string
	Streak      int
	Cells       []streak.Cell
	ShowPlayCTA bool
	CanClaim    bool
	GamesURL    string
}

func newAttendancePage(m *streak.Modal, toast string) attendancePage {
	return attendancePage{
		Toast:       toast,
		Streak:      m.CurrentStreak(),
		Cells:       m.Cells(),
		ShowPlayCTA: m.ShowPlayCTA(),
		CanClaim:    m.CanClaim(),
		GamesURL:    gamesURL,
	}
}

// Home opens the attendance modal once per browser session, then the survey list.
func Home(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitor := middlewares.VisitorFrom(r.Context())
		seen, err := app.Settings.StreakModalSeen(r.Context(), visitor.SessionID)
		if err != nil {
			httpx.LogInternalError(w, "home.streak_modal_seen", err)
			return
		}

		if seen {
			http.Redirect(w, r, "/surveys", http.StatusSeeOther)
		} else {
			http.Redirect(w, r, "/attendance", http.StatusSeeOther)
		}
	}
}

func ShowAttendance(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toast := httpx.PopToast(w, r)

		state, err := app.Backend.GetStreak(r.Context())
		if err != nil {
			log.Warnf("backend.get_streak: %s", err)
			httpx.Render(w, backend.StatusOf(err), pages, "retry", retryPage{
				Toast:    toast,
				Message:  "출석 정보를 불러오지 못했어요.",
				RetryURL: "/attendance",
				BackURL:  "/surveys",
			})
			return
		}

		visitor := middlewares.VisitorFrom(r.Context())
		if err := app.Settings.MarkStreakModalSeen(r.Context(), visitor.SessionID); err != nil {
			log.Errorf("attendance.mark_seen: %s", err)
		}

		modal := streak.NewModal(state.StreakInfo, state.Rules)
		httpx.Render(w, http.StatusOK, pages, "attendance", newAttendancePage(modal, toast))
	}
}

// ClaimAttendance claims today's reward. Success closes the modal and shows the
// backend's toast on the survey list; failure reopens it with the button enabled.
func ClaimAttendance(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := app.Backend.GetStreak(r.Context())
		if err != nil {
			log.Warnf("backend.get_streak: %s", err)
			httpx.Render(w, backend.StatusOf(err), pages, "retry", retryPage{
				Message:  "출석 정보를 불러오지 못했어요.",
				RetryURL: "/attendance",
				BackURL:  "/surveys",
			})
			return
		}
		modal := streak.NewModal(state.StreakInfo, state.Rules)

		var toast string
		claimed, err := modal.Claim(r.Context(), func(ctx context.Context, day int) (bool, error) {
			res, err := app.Backend.ClaimStreak(ctx, day)
			if err != nil {
				return false, err
			}
			toast = res.ToastMessage
			return res.Claimed, nil
		})
		if err != nil || !claimed {
			if err != nil {
				log.Warnf("backend.claim_streak: %s", err)
			} else {
				log.Debug("attendance.claim: not claimed")
			}
			httpx.Render(w, http.StatusOK, pages, "attendance", newAttendancePage(modal, claimFailedText))
			return
		}

		visitor := middlewares.VisitorFrom(r.Context())
		if err := app.Settings.MarkStreakModalSeen(r.Context(), visitor.SessionID); err != nil {
			log.Errorf("attendance.mark_seen: %s", err)
		}
		httpx.SetToast(w, toast)
		http.Redirect(w, r, "/surveys", http.StatusSeeOther)
	}
}

func DismissAttendance(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitor := middlewares.VisitorFrom(r.Context())
		if err := app.Settings.MarkStreakModalSeen(r.Context(), visitor.SessionID); err != nil {
			httpx.LogInternalError(w, "attendance.dismiss", err)
			return
		}
		http.Redirect(w, r, "/surveys", http.StatusSeeOther)
	}
}
