package model

import (
	"github.com/spacepet-lab/client/pkg/enum"
)

type DefiQuestType string

var (
	DefiStaking     = enum.New(DefiQuestType("staking"))
	DefiLending     = enum.New(DefiQuestType("lending"))
	DefiLpProviding = enum.New(DefiQuestType("lp_providing"))
)

// PortfolioValues are decimal strings. Monetary magnitudes are never parsed
// into binary floats, comparisons go through exact decimal arithmetic.
type PortfolioValues struct {
	TotalValue   string `json:"totalValue"`
	StakingValue string `json:"stakingValue"`
	LendingValue string `json:"lendingValue"`
	LPValue      string `json:"lpValue"`
}

type QuestEligibility struct {
	Staking     bool `json:"staking"`
	Lending     bool `json:"lending"`
	LPProviding bool `json:"lpProviding"`
}

type DefiPortfolio struct {
	Portfolio        PortfolioValues  `json:"portfolio"`
	QuestEligibility QuestEligibility `json:"questEligibility"`
}

type PrepareDefiTransactionRequest struct {
	QuestType DefiQuestType `json:"questType"`

	// Amount is a decimal string token quantity.
	Amount   string `json:"amount"`
	Duration int    `json:"duration,omitempty"`
}

// DefiTransactionData is the phase-1 artifact of the delegation protocol. It
// is transient: consumed immediately to drive the signing phase or discarded.
type DefiTransactionData struct {
	Success         bool             `json:"success"`
	TransactionData *TransactionData `json:"transactionData,omitempty"`
	Message         string           `json:"message"`
	Instructions    []string         `json:"instructions,omitempty"`
	Error           string           `json:"error,omitempty"`
}

type ApprovalCheckResponse struct {
	Approved            bool             `json:"approved"`
	Allowance           string           `json:"allowance,omitempty"`
	ApprovalTransaction *TransactionData `json:"approvalTransaction,omitempty"`
	Message             string           `json:"message,omitempty"`
}

type DefiQuestStats struct {
	TotalParticipations int    `json:"totalParticipations"`
	CompletedQuests     int    `json:"completedQuests"`
	TotalValueLocked    string `json:"totalValueLocked"`
	TotalKaiaEarned     string `json:"totalKaiaEarned"`
}
