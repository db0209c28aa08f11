package routes

import (
	"net/http"
	"strings"
	"testing"

	"github.com/mbolis/reward-web/model"
	"github.com/stretchr/testify/require"
)

func TestAttendance_NoStreakShowsPlayLink(t *testing.T) {
	fake := newFakeBackend()
	fake.streak = model.StreakState{StreakInfo: model.StreakInfo{CurrentStreak: 0}}
	c, base := newBrowser(t, fake)

	status, body := get(t, c, base+"/attendance")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "게임하러 가기")
	require.NotContains(t, body, "보상 받기")
	require.Equal(t, 7, strings.Count(body, `class="cell future"`))
}

func TestAttendance_LadderAndClaim(t *testing.T) {
	fake := newFakeBackend()
	fake.streak = model.StreakState{
		StreakInfo: model.StreakInfo{CurrentStreak: 3, ClaimableDay: intPtr(4)},
		Rules: []model.StreakRule{{
			Day:    7,
			Active: true,
			Grants: []model.RewardGrant{{Kind: model.GrantWallet, Type: "DIAMOND", Quantity: 10}},
		}},
	}
	c, base := newBrowser(t, fake)

	_, body := get(t, c, base+"/attendance")
	require.Equal(t, 3, strings.Count(body, `class="cell past"`))
	require.Equal(t, 1, strings.Count(body, `class="cell target"`))
	require.Equal(t, 3, strings.Count(body, `class="cell future"`))
	require.Contains(t, body, "룰렛 티켓 1장")
	require.Contains(t, body, "다이아몬드 10개")
	require.Contains(t, body, "보상 받기")

	status, path, body := postForm(t, c, base+"/attendance/claim", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "/surveys", path)
	require.Contains(t, body, "출석 보상 지급 완료!")
	require.Equal(t, []int{4}, fake.claims)
}

func TestAttendance_ClaimRejectedKeepsModalOpen(t *testing.T) {
	fake := newFakeBackend()
	fake.claimed = false
	fake.streak = model.StreakState{StreakInfo: model.StreakInfo{CurrentStreak: 2, ClaimableDay: intPtr(3)}}
	c, base := newBrowser(t, fake)

	_, path, body := postForm(t, c, base+"/attendance/claim", nil)
	require.Equal(t, "/attendance/claim", path)
	require.Contains(t, body, claimFailedText)
	require.Contains(t, body, "보상 받기")
	require.Equal(t, []int{3}, fake.claims)
}

func TestAttendance_NothingToClaim(t *testing.T) {
	fake := newFakeBackend()
	fake.streak = model.StreakState{StreakInfo: model.StreakInfo{CurrentStreak: 5}}
	c, base := newBrowser(t, fake)

	_, body := get(t, c, base+"/attendance")
	require.Contains(t, body, "오늘 보상을 이미 받았어요")
	require.Equal(t, 1, strings.Count(body, `class="cell target"`))

	_, _, _ = postForm(t, c, base+"/attendance/claim", nil)
	require.Empty(t, fake.claims)
}

func TestHome_ShowsAttendanceOncePerSession(t *testing.T) {
	fake := newFakeBackend()
	fake.streak = model.StreakState{StreakInfo: model.StreakInfo{CurrentStreak: 1, ClaimableDay: intPtr(2)}}
	c, base := newBrowser(t, fake)

	resp, err := c.Get(base + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "/attendance", resp.Request.URL.Path)

	resp, err = c.Get(base + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "/surveys", resp.Request.URL.Path)
}

func TestAttendance_Dismiss(t *testing.T) {
	c, base := newBrowser(t, newFakeBackend())

	_, path, _ := postForm(t, c, base+"/attendance/dismiss", nil)
	require.Equal(t, "/surveys", path)

	resp, err := c.Get(base + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "/surveys", resp.Request.URL.Path)
}
