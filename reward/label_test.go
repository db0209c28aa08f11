package reward

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRewardLine(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		amount   int
		wantText string
		wantHint string
	}{
		{"points", "POINT", 1500, "포인트 1,500P", ""},
		{"cc points alias", "CC_POINT", 20, "포인트 20P", ""},
		{"game xp", "GAME_XP", 300, "게임 경험치 300XP", ""},
		{"diamond", "DIAMOND", 5, "다이아몬드 5개", ""},
		{"diamond without amount", "DIAMOND", 0, "다이아몬드", ""},
		{"lower case code", "dice_ticket", 2, "주사위 티켓 2장", ""},
		{"unknown code", "MYSTERY_BOX", 1234567, "MYSTERY_BOX 1,234,567", ""},
		{"unknown code without amount", "MYSTERY_BOX", -1, "MYSTERY_BOX", ""},
		{"branded gifticon with face value", "BAEMIN_GIFTICON_10000", 1, "배민 기프티콘 10,000원", PendingFulfillment},
		{"brand without override", "EDIYA_GIFTICON", 4500, "EDIYA 기프티콘 4,500원", PendingFulfillment},
		{"brand with segments", "STARBUCKS_AMERICANO_GIFTICON", 0, "스타벅스 기프티콘", PendingFulfillment},
		{"case insensitive", "baemin_gifticon_5000", 0, "배민 기프티콘 5,000원", PendingFulfillment},
		{"unparsable gifticon", "GIFTICON", 3000, "기프티콘 3,000원", PendingFulfillment},
		{"gifticon substring", "SPECIAL-GIFTICON-X", 0, "기프티콘", PendingFulfillment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRewardLine(tt.typ, tt.amount)
			require.NotNil(t, got)
			require.Equal(t, tt.wantText, got.Text)
			require.Equal(t, tt.wantHint, got.FulfillmentHint)
		})
	}
}

func TestFormatRewardLine_Empty(t *testing.T) {
	require.Nil(t, FormatRewardLine("", 10))
	require.Nil(t, FormatRewardLine("   ", 10))
}

func TestFormatRewardLine_GifticonsAlwaysCarryHint(t *testing.T) {
	for _, code := range []string{
		"BAEMIN_GIFTICON", "cu_gifticon_3000", "xGIFTICONx", "A_B_C_GIFTICON_1", "gifticon",
	} {
		got := FormatRewardLine(code, 0)
		require.NotNil(t, got, code)
		require.Equal(t, PendingFulfillment, got.FulfillmentHint, code)
	}
}

func TestFormatRewardLine_TicketAndKeyQuantities(t *testing.T) {
	codes := []string{
		"ROULETTE_TICKET", "ROULETTE_COIN", "DICE_TICKET", "DICE_TOKEN",
		"LOTTERY_TICKET", "GOLD_KEY", "DIAMOND_KEY", "KEY",
	}
	for _, code := range codes {
		zero := FormatRewardLine(code, 0)
		require.NotNil(t, zero)
		require.False(t, strings.ContainsAny(zero.Text, "0123456789"), code)

		many := FormatRewardLine(code, 12345)
		require.NotNil(t, many)
		require.Contains(t, many.Text, "12,345", code)
	}
}

func TestParseGifticon(t *testing.T) {
	g, ok := ParseGifticon("BAEMIN_GIFTICON_20000")
	require.True(t, ok)
	require.Equal(t, Gifticon{Brand: "배민", FaceValue: 20000}, g)

	g, ok = ParseGifticon("GS25_GIFTICON")
	require.True(t, ok)
	require.Equal(t, Gifticon{Brand: "GS25"}, g)

	_, ok = ParseGifticon("DIAMOND")
	require.False(t, ok)
}
