// Package reward turns reward type codes into the text shown to visitors.
// Every reward display goes through FormatRewardLine.
package reward

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PendingFulfillment is shown under rewards that need manual approval by
// operators before they reach the reward inbox.
const PendingFulfillment = "지급대기/보상함"

type Line struct {
	Text            string
	FulfillmentHint string
}

type unit struct {
	name    string
	counter string
}

var units = map[string]unit{
	"POINT":           {"포인트", "P"},
	"CC_POINT":        {"포인트", "P"},
	"GAME_XP":         {"게임 경험치", "XP"},
	"DIAMOND":         {"다이아몬드", "개"},
	"ROULETTE_TICKET": {"룰렛 티켓", "장"},
	"ROULETTE_COIN":   {"룰렛 티켓", "장"},
	"DICE_TICKET":     {"주사위 티켓", "장"},
	"DICE_TOKEN":      {"주사위 티켓", "장"},
	"LOTTERY_TICKET":  {"복권 티켓", "장"},
	"GOLD_KEY":        {"골드 키", "개"},
	"DIAMOND_KEY":     {"다이아 키", "개"},
	"KEY":             {"열쇠", "개"},
}

// FormatRewardLine returns the display line for a reward, or nil when
// rewardType is blank.
func FormatRewardLine(rewardType string, amount int) *Line {
	code := strings.TrimSpace(rewardType)
	if code == "" {
		return nil
	}

	if g, ok := ParseGifticon(code); ok {
		return gifticonLine(g, amount)
	}

	if u, ok := units[strings.ToUpper(code)]; ok {
		if amount <= 0 {
			return &Line{Text: u.name}
		}
		return &Line{Text: u.name + " " + FormatNumber(amount) + u.counter}
	}

	if amount <= 0 {
		return &Line{Text: code}
	}
	return &Line{Text: code + " " + FormatNumber(amount)}
}

func gifticonLine(g Gifticon, amount int) *Line {
	text := "기프티콘"
	if g.Brand != "" {
		text = g.Brand + " " + text
	}

	value := amount
	if g.FaceValue > 0 {
		value = g.FaceValue
	}
	if value > 0 {
		text += " " + FormatNumber(value) + "원"
	}

	return &Line{Text: text, FulfillmentHint: PendingFulfillment}
}

// FormatNumber renders n with thousands separators.
func FormatNumber(n int) string {
	return message.NewPrinter(language.Korean).Sprintf("%d", n)
}
