package domain

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacepet-lab/client/internal/client"
	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/repository"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/internal/wallet"
	"github.com/spacepet-lab/client/pkg/enum"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/ethutil"
	"github.com/spacepet-lab/client/pkg/xcontext"
	"gorm.io/gorm"
)

// ParticipationResult is the outcome of one defi quest participation attempt.
// Prepared is always set once the backend answered the preparation call. A
// nil Delegation with a nil error means the backend declined to prepare the
// transaction, which is a business outcome, not a failure.
type ParticipationResult struct {
	Prepared   *model.DefiTransactionData
	Delegation *model.GasDelegationResponse

	// Progress is the snapshot fetched right after a commit. It is best
	// effort, a commit with a failed refresh still succeeded.
	Progress []model.QuestProgress
}

// Committed reports whether the participation reached the chain.
func (r *ParticipationResult) Committed() bool {
	return r != nil && r.Delegation != nil && r.Delegation.Success && r.Delegation.TxHash != ""
}

type DefiDomain interface {
	Portfolio(ctx context.Context, s *session.Session) (*model.DefiPortfolio, error)
	Quests(ctx context.Context, s *session.Session) ([]model.Quest, error)
	Progress(ctx context.Context, s *session.Session) ([]model.QuestProgress, error)
	Claim(ctx context.Context, s *session.Session, progress model.QuestProgress) (*model.ClaimRewardResponse, error)
	Stats(ctx context.Context, s *session.Session) (*model.DefiQuestStats, error)
	CheckSufficientBalance(ctx context.Context, s *session.Session, amount string) (bool, error)
	RecommendedQuest(ctx context.Context, s *session.Session) *model.Quest
	Participate(ctx context.Context, s *session.Session, req *model.PrepareDefiTransactionRequest) (*ParticipationResult, error)
}

type defiDomain struct {
	defiCaller  client.DefiQuestCaller
	gasCaller   client.GasDelegationCaller
	receiptRepo repository.ReceiptRepository
	signer      wallet.Signer
}

func NewDefiDomain(
	defiCaller client.DefiQuestCaller,
	gasCaller client.GasDelegationCaller,
	receiptRepo repository.ReceiptRepository,
	signer wallet.Signer,
) *defiDomain {
	return &defiDomain{
		defiCaller:  defiCaller,
		gasCaller:   gasCaller,
		receiptRepo: receiptRepo,
		signer:      signer,
	}
}

func (d *defiDomain) Portfolio(
	ctx context.Context, s *session.Session,
) (*model.DefiPortfolio, error) {
	return d.defiCaller.GetPortfolio(ctx, s)
}

func (d *defiDomain) Quests(
	ctx context.Context, s *session.Session,
) ([]model.Quest, error) {
	return d.defiCaller.GetQuests(ctx, s)
}

func (d *defiDomain) Progress(
	ctx context.Context, s *session.Session,
) ([]model.QuestProgress, error) {
	return d.defiCaller.GetProgress(ctx, s)
}

func (d *defiDomain) Claim(
	ctx context.Context, s *session.Session, progress model.QuestProgress,
) (*model.ClaimRewardResponse, error) {
	if progress.Status == model.StatusClaimed {
		return nil, errorx.New(errorx.AlreadyCommitted, "Reward was already claimed")
	}

	if !progress.CanClaim {
		return nil, errorx.New(errorx.NotEligible, "Reward is not claimable yet")
	}

	return d.defiCaller.Claim(ctx, s, progress.QuestID)
}

func (d *defiDomain) Stats(
	ctx context.Context, s *session.Session,
) (*model.DefiQuestStats, error) {
	return d.defiCaller.GetStats(ctx, s)
}

// CheckSufficientBalance compares the requested amount against the portfolio
// total value with exact decimal arithmetic. Amounts like
// 99.999999999999999999 and 100 never collapse into the same float.
func (d *defiDomain) CheckSufficientBalance(
	ctx context.Context, s *session.Session, amount string,
) (bool, error) {
	requested, err := decimal.NewFromString(amount)
	if err != nil {
		return false, errorx.New(errorx.BadRequest, "Invalid amount %s", amount)
	}

	if requested.Sign() <= 0 {
		return false, errorx.New(errorx.BadRequest, "Amount must be positive")
	}

	portfolio, err := d.defiCaller.GetPortfolio(ctx, s)
	if err != nil {
		return false, err
	}

	total, err := decimal.NewFromString(portfolio.Portfolio.TotalValue)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot parse portfolio total value: %v", err)
		return false, errorx.New(errorx.BadResponse, "Invalid portfolio response")
	}

	return requested.LessThanOrEqual(total), nil
}

// RecommendedQuest picks the first available quest the portfolio is eligible
// for. It is decorative, any failure degrades to no recommendation.
func (d *defiDomain) RecommendedQuest(
	ctx context.Context, s *session.Session,
) *model.Quest {
	portfolio, err := d.defiCaller.GetPortfolio(ctx, s)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot load portfolio for recommendation: %v", err)
		return nil
	}

	quests, err := d.defiCaller.GetQuests(ctx, s)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot load defi quests for recommendation: %v", err)
		return nil
	}

	eligible := map[model.QuestCategory]bool{
		model.CategoryStaking:     portfolio.QuestEligibility.Staking,
		model.CategoryLending:     portfolio.QuestEligibility.Lending,
		model.CategoryLpProviding: portfolio.QuestEligibility.LPProviding,
	}

	for i := range quests {
		if quests[i].IsAvailable && eligible[quests[i].Category] {
			return &quests[i]
		}
	}

	return nil
}

// ValidateTransactionData collects every shape problem of a backend-prepared
// transaction. An empty slice means the transaction is safe to relay.
func ValidateTransactionData(tx *model.TransactionData) []string {
	if tx == nil {
		return []string{"transaction data is missing"}
	}

	var issues []string
	if !ethutil.IsHexAddress(tx.From) {
		issues = append(issues, "from is not a valid address")
	}

	if tx.To != "" && !ethutil.IsHexAddress(tx.To) {
		issues = append(issues, "to is not a valid address")
	}

	if !ethutil.IsNumericString(tx.Gas) {
		issues = append(issues, "gas is not a numeric string")
	}

	if tx.GasPrice != "" && !ethutil.IsNumericString(tx.GasPrice) {
		issues = append(issues, "gasPrice is not a numeric string")
	}

	if tx.Value != "" && !ethutil.IsNumericString(tx.Value) {
		issues = append(issues, "value is not a numeric string")
	}

	if tx.Data != "" && !ethutil.IsHexData(tx.Data) {
		issues = append(issues, "data is not hex encoded")
	}

	if _, err := enum.ToEnum[model.TxType](string(tx.Type)); err != nil {
		issues = append(issues, "unknown transaction type")
	}

	return issues
}

// Participate runs the whole gas-delegated participation protocol: prepare
// the quest transaction, prepare it for signing, verify the digest, sign it
// locally and hand it to the fee payer. Each phase consumes the previous
// phase's artifact and nothing is retried past the delegation call, which is
// the irreversible step.
func (d *defiDomain) Participate(
	ctx context.Context, s *session.Session, req *model.PrepareDefiTransactionRequest,
) (*ParticipationResult, error) {
	if req == nil {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty request")
	}

	if d.signer == nil {
		return nil, errorx.New(errorx.BadRequest, "No wallet key configured")
	}

	if _, err := decimal.NewFromString(req.Amount); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid amount %s", req.Amount)
	}

	questType, err := enum.ToEnum[model.DefiQuestType](string(req.QuestType))
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid quest type %s", req.QuestType)
	}

	if err := d.checkApproval(ctx, s, questType, req.Amount); err != nil {
		return nil, err
	}

	prepared, err := d.defiCaller.PrepareTransaction(ctx, s, req)
	if err != nil {
		return nil, err
	}

	result := &ParticipationResult{Prepared: prepared}
	if !prepared.Success {
		return result, nil
	}

	if issues := ValidateTransactionData(prepared.TransactionData); len(issues) > 0 {
		xcontext.Logger(ctx).Errorf("Backend prepared a malformed transaction: %s", strings.Join(issues, "; "))
		return nil, errorx.New(errorx.BadResponse, "Prepared transaction is malformed")
	}

	delegation, err := d.delegate(ctx, s, prepared.TransactionData)
	if err != nil {
		return nil, err
	}

	result.Delegation = delegation
	if result.Committed() {
		progress, err := d.defiCaller.GetProgress(ctx, s)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot refresh progress after commit: %v", err)
		} else {
			result.Progress = progress
		}
	}

	return result, nil
}

// checkApproval runs the token approval pre-flight for quest types that move
// tokens through a contract. A missing allowance stops the flow before any
// transaction is prepared.
func (d *defiDomain) checkApproval(
	ctx context.Context, s *session.Session, questType model.DefiQuestType, amount string,
) error {
	var approval *model.ApprovalCheckResponse
	var err error
	switch questType {
	case model.DefiStaking:
		approval, err = d.defiCaller.CheckStakingApproval(ctx, s, amount)
	case model.DefiLending:
		approval, err = d.defiCaller.CheckLendingApproval(ctx, s, amount)
	default:
		return nil
	}

	if err != nil {
		return err
	}

	if !approval.Approved {
		msg := approval.Message
		if msg == "" {
			msg = "Token approval is required before participating"
		}

		return errorx.New(errorx.NotEligible, "%s", msg)
	}

	return nil
}

// delegate runs the signing and delegation phases for a prepared transaction.
// The informational estimation, the eligibility gate and the signing
// preparation have no ordering dependency between each other, so they fan out
// together with their results captured per call.
func (d *defiDomain) delegate(
	ctx context.Context, s *session.Session, tx *model.TransactionData,
) (*model.GasDelegationResponse, error) {
	delegationReq := &model.GasDelegationRequest{
		From:     tx.From,
		To:       tx.To,
		Data:     tx.Data,
		Gas:      tx.Gas,
		GasPrice: tx.GasPrice,
		Value:    tx.Value,
		Type:     tx.Type,
	}

	var (
		wg sync.WaitGroup

		estimation     *model.GasEstimationResponse
		estimationErr  error
		signing        *model.PrepareSigningResponse
		signingErr     error
		eligibility    *model.EligibilityResponse
		eligibilityErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		estimation, estimationErr = d.gasCaller.Estimate(ctx, s, delegationReq)
	}()
	go func() {
		defer wg.Done()
		signing, signingErr = d.gasCaller.PrepareForSigning(ctx, s, delegationReq)
	}()
	go func() {
		defer wg.Done()
		eligibility, eligibilityErr = d.gasCaller.CheckEligibility(ctx, s, d.signer.Address())
	}()
	wg.Wait()

	// The estimation is display data only, its failure does not stop the flow.
	if estimationErr != nil {
		xcontext.Logger(ctx).Warnf("Cannot estimate delegated gas: %v", estimationErr)
	} else if estimation != nil && estimation.EstimatedCost != "" {
		xcontext.Logger(ctx).Infof("Estimated delegated cost: %s", estimation.EstimatedCost)
	}

	if eligibilityErr != nil {
		return nil, eligibilityErr
	}

	if !eligibility.Eligible {
		reason := eligibility.Reason
		if reason == "" {
			reason = "Address is not eligible for gas delegation"
		}

		return nil, errorx.New(errorx.NotEligible, "%s", reason)
	}

	if signingErr != nil {
		return nil, signingErr
	}

	if !signing.Success {
		msg := signing.Error
		if msg == "" {
			msg = "Backend could not prepare the transaction for signing"
		}

		return nil, errorx.New(errorx.BadResponse, "%s", msg)
	}

	// The signature commits to exactly this digest. Refuse to sign when the
	// reported hash and the canonical encoding disagree.
	if err := ethutil.VerifyTxHash(signing.EncodedTx, signing.TransactionHash); err != nil {
		xcontext.Logger(ctx).Errorf("Signing preparation failed integrity check: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Prepared transaction failed integrity check")
	}

	if err := d.guardNotCommitted(ctx, signing.TransactionHash); err != nil {
		return nil, err
	}

	signature, err := d.signer.SignHash(signing.TransactionHash)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sign transaction hash: %v", err)
		return nil, errorx.New(errorx.Internal, "Cannot sign transaction")
	}

	delegationReq.UserSignature = signature
	delegation, err := d.gasCaller.Delegate(ctx, s, delegationReq)
	if err != nil {
		return nil, err
	}

	if delegation.Success && delegation.TxHash != "" {
		d.recordReceipt(ctx, signing.TransactionHash, delegationReq, delegation)
	}

	return delegation, nil
}

// guardNotCommitted refuses to re-delegate a transaction whose signed digest
// already produced an on-chain commit.
func (d *defiDomain) guardNotCommitted(ctx context.Context, sigHash string) error {
	receipt, err := d.receiptRepo.GetBySigHash(ctx, sigHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		xcontext.Logger(ctx).Errorf("Cannot check delegation receipts: %v", err)
		return errorx.Unknown
	}

	return errorx.New(errorx.AlreadyCommitted,
		"Transaction was already committed as %s", receipt.TxHash)
}

// recordReceipt persists the commit locally. The commit already happened, so
// a write failure is logged and swallowed.
func (d *defiDomain) recordReceipt(
	ctx context.Context,
	sigHash string,
	req *model.GasDelegationRequest,
	resp *model.GasDelegationResponse,
) {
	err := d.receiptRepo.Create(ctx, &entity.DelegationReceipt{
		Base:              entity.Base{ID: uuid.NewString()},
		TxHash:            resp.TxHash,
		SigHash:           sigHash,
		FromAddress:       req.From,
		TxType:            string(resp.TransactionType),
		GasUsed:           resp.GasUsed,
		EffectiveGasPrice: resp.EffectiveGasPrice,
		FeePayer:          resp.FeePayer,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record delegation receipt: %v", err)
	}
}
