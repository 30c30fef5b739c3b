package model

import (
	"github.com/spacepet-lab/client/pkg/enum"
)

type QuestType string

var (
	QuestDaily     = enum.New(QuestType("daily"))
	QuestWeekly    = enum.New(QuestType("weekly"))
	QuestSpecial   = enum.New(QuestType("special"))
	QuestLegendary = enum.New(QuestType("legendary"))
)

type QuestCategory string

var (
	CategoryStaking     = enum.New(QuestCategory("staking"))
	CategoryLending     = enum.New(QuestCategory("lending"))
	CategoryLpProviding = enum.New(QuestCategory("lp_providing"))
	CategoryTrading     = enum.New(QuestCategory("trading"))
	CategoryExploration = enum.New(QuestCategory("exploration"))
	CategoryTraining    = enum.New(QuestCategory("training"))
	CategorySocial      = enum.New(QuestCategory("social"))
)

type ProgressStatus string

var (
	StatusNotStarted = enum.New(ProgressStatus("not_started"))
	StatusInProgress = enum.New(ProgressStatus("in_progress"))
	StatusCompleted  = enum.New(ProgressStatus("completed"))
	StatusClaimed    = enum.New(ProgressStatus("claimed"))
)

type QuestRequirement struct {
	Action string `json:"action"`

	// Amount is a decimal string, the minimum token quantity of the action.
	Amount   string `json:"amount,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

type QuestReward struct {
	Kaia       string   `json:"kaia,omitempty"`
	Experience int      `json:"experience,omitempty"`
	NFTTokenID string   `json:"nftTokenId,omitempty"`
	Items      []string `json:"items,omitempty"`
}

// Quest is owned and versioned by the backend, the client consumes it
// read-only. In particular IsAvailable is a precomputed eligibility flag that
// the client never recomputes.
type Quest struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Type             QuestType        `json:"type"`
	Category         QuestCategory    `json:"category"`
	Requirements     QuestRequirement `json:"requirements"`
	Rewards          QuestReward      `json:"rewards"`
	LevelRequirement int              `json:"levelRequirement"`
	IsAvailable      bool             `json:"isAvailable"`
}

type QuestProgress struct {
	QuestID            string         `json:"questId"`
	Status             ProgressStatus `json:"status"`
	Progress           float64        `json:"progress"`
	TargetAmount       float64        `json:"targetAmount"`
	ProgressPercentage float64        `json:"progressPercentage"`
	CanClaim           bool           `json:"canClaim"`
	StartedAt          string         `json:"startedAt,omitempty"`
	Quest              Quest          `json:"quest"`
}

type QuestStats struct {
	TotalQuests     int    `json:"totalQuests"`
	CompletedQuests int    `json:"completedQuests"`
	ClaimedRewards  int    `json:"claimedRewards"`
	TotalKaiaEarned string `json:"totalKaiaEarned"`
	TotalExpEarned  int    `json:"totalExpEarned"`
}

type GetQuestsRequest struct {
	Type     QuestType     `json:"type,omitempty"`
	Category QuestCategory `json:"category,omitempty"`
	Limit    int           `json:"limit,omitempty"`
	Offset   int           `json:"offset,omitempty"`
}

type GetQuestsResponse struct {
	Quests []Quest `json:"quests"`
}

type GetQuestProgressResponse struct {
	Progress []QuestProgress `json:"progress"`
}

type StartQuestResponse struct {
	Success  bool          `json:"success"`
	Progress QuestProgress `json:"progress"`
	Message  string        `json:"message,omitempty"`
}

type ClaimRewardResponse struct {
	Success bool        `json:"success"`
	Rewards QuestReward `json:"rewards"`
	Message string      `json:"message,omitempty"`
}
