package model

type DashboardMetrics struct {
	Date             string `json:"date"`
	DailyActiveUsers int    `json:"daily_active_users"`
	NewMembers       int    `json:"new_members"`
	GamesPlayed      int    `json:"games_played"`
	SurveysCompleted int    `json:"surveys_completed"`
	RewardsGranted   int    `json:"rewards_granted"`
	PendingGifticons int    `json:"pending_gifticons"`
}

type DiceEventParams struct {
	Enabled           bool   `json:"enabled"`
	DailyFreeRolls    int    `json:"daily_free_rolls" validate:"gte=0,lte=100"`
	NewMemberBonus    int    `json:"new_member_bonus" validate:"gte=0"`
	MaxRollsPerDay    int    `json:"max_rolls_per_day" validate:"gtefield=DailyFreeRolls"`
	JackpotFace       int    `json:"jackpot_face" validate:"gte=1,lte=6"`
	JackpotRewardType string `json:"jackpot_reward_type" validate:"required"`
	JackpotAmount     int    `json:"jackpot_amount" validate:"gt=0"`
}

type RouletteSegment struct {
	Label        string `json:"label" validate:"required"`
	RewardType   string `json:"reward_type" validate:"required"`
	RewardAmount int    `json:"reward_amount" validate:"gte=0"`
	Weight       int    `json:"weight" validate:"gt=0"`
}

type RouletteConfig struct {
	Enabled  bool              `json:"enabled"`
	Segments []RouletteSegment `json:"segments" validate:"min=2,max=12,dive"`
}

type LotteryPrize struct {
	Rank         int    `json:"rank" validate:"gt=0"`
	RewardType   string `json:"reward_type" validate:"required"`
	RewardAmount int    `json:"reward_amount" validate:"gte=0"`
	Winners      int    `json:"winners" validate:"gt=0"`
}

type LotteryConfig struct {
	Enabled      bool           `json:"enabled"`
	TicketType   string         `json:"ticket_type" validate:"required"`
	DrawSchedule string         `json:"draw_schedule" validate:"required"`
	Prizes       []LotteryPrize `json:"prizes" validate:"min=1,dive"`
}

type Mission struct {
	ID           int    `json:"id,omitempty"`
	Title        string `json:"title" validate:"required,max=100"`
	Description  string `json:"description" validate:"max=500"`
	Category     string `json:"category" validate:"required,oneof=DAILY WEEKLY SPECIAL"`
	TargetCount  int    `json:"target_count" validate:"gt=0"`
	RewardType   string `json:"reward_type" validate:"required"`
	RewardAmount int    `json:"reward_amount" validate:"gte=0"`
	Active       bool   `json:"active"`
}

type RankingEntry struct {
	Rank     int    `json:"rank"`
	UserID   int    `json:"user_id"`
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

type ExternalRankingEntry struct {
	Rank     int    `json:"rank" validate:"gt=0"`
	Nickname string `json:"nickname" validate:"required"`
	Score    int    `json:"score" validate:"gte=0"`
	Source   string `json:"source" validate:"required"`
}
