package model

type StreakInfo struct {
	CurrentStreak int  `json:"current_streak"`
	ClaimableDay  *int `json:"claimable_day"`
}

type GrantKind string

const (
	GrantWallet    GrantKind = "WALLET"
	GrantInventory GrantKind = "INVENTORY"
)

type RewardGrant struct {
	Kind     GrantKind `json:"kind"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
}

type StreakRule struct {
	Day    int           `json:"day"`
	Active bool          `json:"active"`
	Grants []RewardGrant `json:"grants"`
}

// StreakState is the attendance payload: the visitor's streak and the
// configured reward ladder.
type StreakState struct {
	StreakInfo
	Rules []StreakRule `json:"rules"`
}

type ClaimRequest struct {
	Day int `json:"day"`
}

type ClaimResult struct {
	Claimed      bool   `json:"claimed"`
	ToastMessage string `json:"toast_message,omitempty"`
}
