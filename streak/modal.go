// Package streak models the attendance modal: a seven day reward ladder and a
// single claim action. The streak itself is computed by the backend.
package streak

import (
	"context"

	"github.com/mbolis/reward-web/model"
	"github.com/mbolis/reward-web/reward"
)

const Days = 7

type CellState string

const (
	Past   CellState = "past"
	Target CellState = "target"
	Future CellState = "future"
)

type Cell struct {
	Day   int
	State CellState
	Label string
}

// fixedLabels is what the ladder shows for these days whatever the rule data
// says. Days missing here read their DIAMOND grant from the rules.
var fixedLabels = map[int]string{
	1: labelOf("ROULETTE_TICKET", 1),
	2: labelOf("DICE_TICKET", 1),
	3: "패키지",
	5: "패키지",
}

var defaultDiamonds = map[int]int{4: 1, 6: 2, 7: 5}

func labelOf(rewardType string, amount int) string {
	if line := reward.FormatRewardLine(rewardType, amount); line != nil {
		return line.Text
	}
	return ""
}

type Modal struct {
	info  model.StreakInfo
	rules map[int]model.StreakRule
}

func NewModal(info model.StreakInfo, rules []model.StreakRule) *Modal {
	m := &Modal{info: info, rules: make(map[int]model.StreakRule, len(rules))}
	for _, r := range rules {
		m.rules[r.Day] = r
	}
	return m
}

func (m *Modal) CurrentStreak() int {
	return m.info.CurrentStreak
}

func (m *Modal) ClaimableDay() (int, bool) {
	if m.info.ClaimableDay == nil {
		return 0, false
	}
	return *m.info.ClaimableDay, true
}

// today is the day the ladder highlights: the claimable day when there is
// one, else the last day of the current streak.
func (m *Modal) today() int {
	if day, ok := m.ClaimableDay(); ok {
		return day
	}
	return m.info.CurrentStreak
}

func (m *Modal) Cells() []Cell {
	today := m.today()
	cells := make([]Cell, 0, Days)
	for day := 1; day <= Days; day++ {
		state := Future
		switch {
		case day < today:
			state = Past
		case day == today:
			state = Target
		}
		cells = append(cells, Cell{Day: day, State: state, Label: m.label(day)})
	}
	return cells
}

func (m *Modal) label(day int) string {
	if l, ok := fixedLabels[day]; ok {
		return l
	}
	return labelOf("DIAMOND", m.diamonds(day))
}

func (m *Modal) diamonds(day int) int {
	for _, g := range m.rules[day].Grants {
		if g.Type == "DIAMOND" && g.Quantity > 0 {
			return g.Quantity
		}
	}
	return defaultDiamonds[day]
}

// ShowPlayCTA is true before the first qualifying play. The claim button is
// replaced by a link to the games.
func (m *Modal) ShowPlayCTA() bool {
	return m.info.CurrentStreak == 0
}

func (m *Modal) CanClaim() bool {
	_, ok := m.ClaimableDay()
	return ok && !m.ShowPlayCTA()
}

// ClaimFunc performs the claim for day and reports whether it succeeded.
type ClaimFunc func(ctx context.Context, day int) (bool, error)

// Claim runs fn for the claimable day. A true result means the modal can be
// closed; false or an error leaves it open with the button enabled.
func (m *Modal) Claim(ctx context.Context, fn ClaimFunc) (bool, error) {
	if !m.CanClaim() {
		return false, nil
	}
	day, _ := m.ClaimableDay()
	return fn(ctx, day)
}
