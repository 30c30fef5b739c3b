package model

import (
	"github.com/spacepet-lab/client/pkg/enum"
)

type TxType string

var (
	TxValueTransfer     = enum.New(TxType("value_transfer"))
	TxValueTransferMemo = enum.New(TxType("value_transfer_memo"))
	TxContractExecution = enum.New(TxType("contract_execution"))
)

// TransactionData is the canonical unsigned transaction the backend
// constructs. The client relays it untouched, it never re-derives fields.
type TransactionData struct {
	From     string `json:"from"`
	To       string `json:"to,omitempty"`
	Data     string `json:"data,omitempty"`
	Gas      string `json:"gas"`
	GasPrice string `json:"gasPrice,omitempty"`
	Value    string `json:"value,omitempty"`
	Type     TxType `json:"type"`
}

type GasDelegationRequest struct {
	From          string `json:"from"`
	To            string `json:"to,omitempty"`
	Data          string `json:"data,omitempty"`
	Gas           string `json:"gas"`
	GasPrice      string `json:"gasPrice,omitempty"`
	Value         string `json:"value,omitempty"`
	Memo          string `json:"memo,omitempty"`
	Type          TxType `json:"type"`
	UserSignature string `json:"userSignature,omitempty"`
}

// GasDelegationResponse is the irreversible side effect boundary. Once
// Success is true with a TxHash, the action is committed on-chain and must not
// be submitted again.
type GasDelegationResponse struct {
	Success           bool   `json:"success"`
	TxHash            string `json:"txHash,omitempty"`
	GasUsed           string `json:"gasUsed,omitempty"`
	EffectiveGasPrice string `json:"effectiveGasPrice,omitempty"`
	FeePayer          string `json:"feePayer,omitempty"`
	TransactionType   TxType `json:"transactionType,omitempty"`
	Error             string `json:"error,omitempty"`
}

type GasEstimationResponse struct {
	Success       bool   `json:"success"`
	EstimatedGas  string `json:"estimatedGas,omitempty"`
	GasPrice      string `json:"gasPrice,omitempty"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
	FeePayer      string `json:"feePayer,omitempty"`
	Error         string `json:"error,omitempty"`
}

type PrepareSigningResponse struct {
	Success bool `json:"success"`

	Transaction *TransactionData `json:"transaction,omitempty"`

	// EncodedTx is the RLP-style canonical encoding, TransactionHash is the
	// exact digest the wallet is expected to sign.
	EncodedTx       string `json:"encodedTx,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty"`

	Error string `json:"error,omitempty"`
}

type EligibilityResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

type GasDelegationStats struct {
	TotalDelegated  int    `json:"totalDelegated"`
	TotalGasPaid    string `json:"totalGasPaid"`
	RemainingQuota  int    `json:"remainingQuota"`
	DailyQuotaLimit int    `json:"dailyQuotaLimit"`
	FeePayerBalance string `json:"feePayerBalance,omitempty"`
}

type SupportedTypesResponse struct {
	Types []TxType `json:"types"`
}

type FeePayerResponse struct {
	Address string `json:"address"`
}
