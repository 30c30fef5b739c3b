package testutil

import (
	"context"
	"errors"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
)

// Sample session used across tests.
var Session1 = &session.Session{
	LineUserID:    "U1234567890",
	WalletAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
	User: model.User{
		ID:            "user1",
		LineUserID:    "U1234567890",
		DisplayName:   "Captain",
		WalletAddress: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		Level:         3,
	},
}

type MockQuestCaller struct {
	GetQuestsFunc   func(context.Context, *session.Session, *model.GetQuestsRequest) ([]model.Quest, error)
	GetProgressFunc func(context.Context, *session.Session) ([]model.QuestProgress, error)
	StartFunc       func(context.Context, *session.Session, string) (*model.QuestProgress, error)
	ClaimFunc       func(context.Context, *session.Session, string) (*model.ClaimRewardResponse, error)
	GetStatsFunc    func(context.Context, *session.Session) (*model.QuestStats, error)
}

func (c *MockQuestCaller) GetQuests(
	ctx context.Context, s *session.Session, req *model.GetQuestsRequest,
) ([]model.Quest, error) {
	if c.GetQuestsFunc != nil {
		return c.GetQuestsFunc(ctx, s, req)
	}

	return nil, errors.New("not implemented")
}

func (c *MockQuestCaller) GetProgress(
	ctx context.Context, s *session.Session,
) ([]model.QuestProgress, error) {
	if c.GetProgressFunc != nil {
		return c.GetProgressFunc(ctx, s)
	}

	return nil, errors.New("not implemented")
}

func (c *MockQuestCaller) Start(
	ctx context.Context, s *session.Session, questID string,
) (*model.QuestProgress, error) {
	if c.StartFunc != nil {
		return c.StartFunc(ctx, s, questID)
	}

	return nil, errors.New("not implemented")
}

func (c *MockQuestCaller) Claim(
	ctx context.Context, s *session.Session, questID string,
) (*model.ClaimRewardResponse, error) {
	if c.ClaimFunc != nil {
		return c.ClaimFunc(ctx, s, questID)
	}

	return nil, errors.New("not implemented")
}

func (c *MockQuestCaller) GetStats(
	ctx context.Context, s *session.Session,
) (*model.QuestStats, error) {
	if c.GetStatsFunc != nil {
		return c.GetStatsFunc(ctx, s)
	}

	return nil, errors.New("not implemented")
}

type MockDefiQuestCaller struct {
	GetPortfolioFunc         func(context.Context, *session.Session) (*model.DefiPortfolio, error)
	GetQuestsFunc            func(context.Context, *session.Session) ([]model.Quest, error)
	PrepareTransactionFunc   func(context.Context, *session.Session, *model.PrepareDefiTransactionRequest) (*model.DefiTransactionData, error)
	GetProgressFunc          func(context.Context, *session.Session) ([]model.QuestProgress, error)
	ClaimFunc                func(context.Context, *session.Session, string) (*model.ClaimRewardResponse, error)
	GetStatsFunc             func(context.Context, *session.Session) (*model.DefiQuestStats, error)
	CheckStakingApprovalFunc func(context.Context, *session.Session, string) (*model.ApprovalCheckResponse, error)
	CheckLendingApprovalFunc func(context.Context, *session.Session, string) (*model.ApprovalCheckResponse, error)
}

func (c *MockDefiQuestCaller) GetPortfolio(
	ctx context.Context, s *session.Session,
) (*model.DefiPortfolio, error) {
	if c.GetPortfolioFunc != nil {
		return c.GetPortfolioFunc(ctx, s)
	}

	return nil, errors.New("not implemented")
}

func (c *MockDefiQuestCaller) GetQuests(
	ctx context.Context, s *session.Session,
) ([]model.Quest, error) {
	if c.GetQuestsFunc != nil {
		return c.GetQuestsFunc(ctx, s)
	}

	return nil, errors.New("not implemented")
}

func (c *MockDefiQuestCaller) PrepareTransaction(
	ctx context.Context, s *session.Session, req *model.PrepareDefiTransactionRequest,
) (*model.DefiTransactionData, error) {
	if c.PrepareTransactionFunc != nil {
		return c.PrepareTransactionFunc(ctx, s, req)
	}

	return nil, errors.New("not implemented")
}

func (c *MockDefiQuestCaller) GetProgress(
	ctx context.Context, s *session.Session,
) ([]model.QuestProgress, error) {
	if c.GetProgressFunc != nil {
		return c.GetProgressFunc(ctx, s)
	}

	return nil, errors.New("not implemented")
}

func (c *MockDefiQuestCaller) Claim(
	ctx context.Context, s *session.Session, questID string,
) (*model.ClaimRewardResponse, error) {
	if c.ClaimFunc != nil {
		return c.ClaimFunc(ctx, s, questID)
	}

	return nil, errors.New("not implemented")
}

func (c *MockDefiQuestCaller) GetStats(
	ctx context.Context, s *session.Session,
) (*model.DefiQuestStats, error) {
	if c.GetStatsFunc != nil {
		return c.GetStatsFunc(ctx, s)
	}

	return nil, errors.New("not implemented")
}

func (c *MockDefiQuestCaller) CheckStakingApproval(
	ctx context.Context, s *session.Session, amount string,
) (*model.ApprovalCheckResponse, error) {
	if c.CheckStakingApprovalFunc != nil {
		return c.CheckStakingApprovalFunc(ctx, s, amount)
	}

	return nil, errors.New("not implemented")
}

func (c *MockDefiQuestCaller) CheckLendingApproval(
	ctx context.Context, s *session.Session, amount string,
) (*model.ApprovalCheckResponse, error) {
	if c.CheckLendingApprovalFunc != nil {
		return c.CheckLendingApprovalFunc(ctx, s, amount)
	}

	return nil, errors.New("not implemented")
}

type MockGasDelegationCaller struct {
	EstimateFunc          func(context.Context, *session.Session, *model.GasDelegationRequest) (*model.GasEstimationResponse, error)
	PrepareForSigningFunc func(context.Context, *session.Session, *model.GasDelegationRequest) (*model.PrepareSigningResponse, error)
	DelegateFunc          func(context.Context, *session.Session, *model.GasDelegationRequest) (*model.GasDelegationResponse, error)
	CheckEligibilityFunc  func(context.Context, *session.Session, string) (*model.EligibilityResponse, error)
	GetStatsFunc          func(context.Context, *session.Session) (*model.GasDelegationStats, error)
	GetSupportedTypesFunc func(context.Context) ([]model.TxType, error)
	GetFeePayerFunc       func(context.Context) (string, error)
}

func (c *MockGasDelegationCaller) Estimate(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest,
) (*model.GasEstimationResponse, error) {
	if c.EstimateFunc != nil {
		return c.EstimateFunc(ctx, s, req)
	}

	return nil, errors.New("not implemented")
}

func (c *MockGasDelegationCaller) PrepareForSigning(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest,
) (*model.PrepareSigningResponse, error) {
	if c.PrepareForSigningFunc != nil {
		return c.PrepareForSigningFunc(ctx, s, req)
	}

	return nil, errors.New("not implemented")
}

func (c *MockGasDelegationCaller) Delegate(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest,
) (*model.GasDelegationResponse, error) {
	if c.DelegateFunc != nil {
		return c.DelegateFunc(ctx, s, req)
	}

	return nil, errors.New("not implemented")
}

func (c *MockGasDelegationCaller) CheckEligibility(
	ctx context.Context, s *session.Session, address string,
) (*model.EligibilityResponse, error) {
	if c.CheckEligibilityFunc != nil {
		return c.CheckEligibilityFunc(ctx, s, address)
	}

	return nil, errors.New("not implemented")
}

func (c *MockGasDelegationCaller) GetStats(
	ctx context.Context, s *session.Session,
) (*model.GasDelegationStats, error) {
	if c.GetStatsFunc != nil {
		return c.GetStatsFunc(ctx, s)
	}

	return nil, errors.New("not implemented")
}

func (c *MockGasDelegationCaller) GetSupportedTypes(ctx context.Context) ([]model.TxType, error) {
	if c.GetSupportedTypesFunc != nil {
		return c.GetSupportedTypesFunc(ctx)
	}

	return nil, errors.New("not implemented")
}

func (c *MockGasDelegationCaller) GetFeePayer(ctx context.Context) (string, error) {
	if c.GetFeePayerFunc != nil {
		return c.GetFeePayerFunc(ctx)
	}

	return "", errors.New("not implemented")
}

type MockAuthCaller struct {
	SimpleLoginFunc         func(context.Context, *model.SimpleLoginRequest) (*model.SimpleLoginResponse, error)
	SelectPetFunc           func(context.Context, *session.Session, *model.SelectPetRequest) (*model.SelectPetResponse, error)
	UpdateWalletAddressFunc func(context.Context, *session.Session, string) (*model.UpdateWalletAddressResponse, error)
}

func (c *MockAuthCaller) SimpleLogin(
	ctx context.Context, req *model.SimpleLoginRequest,
) (*model.SimpleLoginResponse, error) {
	if c.SimpleLoginFunc != nil {
		return c.SimpleLoginFunc(ctx, req)
	}

	return nil, errors.New("not implemented")
}

func (c *MockAuthCaller) SelectPet(
	ctx context.Context, s *session.Session, req *model.SelectPetRequest,
) (*model.SelectPetResponse, error) {
	if c.SelectPetFunc != nil {
		return c.SelectPetFunc(ctx, s, req)
	}

	return nil, errors.New("not implemented")
}

func (c *MockAuthCaller) UpdateWalletAddress(
	ctx context.Context, s *session.Session, address string,
) (*model.UpdateWalletAddressResponse, error) {
	if c.UpdateWalletAddressFunc != nil {
		return c.UpdateWalletAddressFunc(ctx, s, address)
	}

	return nil, errors.New("not implemented")
}
