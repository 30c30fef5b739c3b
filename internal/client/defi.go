package client

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/enum"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

type DefiQuestCaller interface {
	GetPortfolio(ctx context.Context, s *session.Session) (*model.DefiPortfolio, error)
	GetQuests(ctx context.Context, s *session.Session) ([]model.Quest, error)
	PrepareTransaction(ctx context.Context, s *session.Session, req *model.PrepareDefiTransactionRequest) (*model.DefiTransactionData, error)
	GetProgress(ctx context.Context, s *session.Session) ([]model.QuestProgress, error)
	Claim(ctx context.Context, s *session.Session, questID string) (*model.ClaimRewardResponse, error)
	GetStats(ctx context.Context, s *session.Session) (*model.DefiQuestStats, error)
	CheckStakingApproval(ctx context.Context, s *session.Session, amount string) (*model.ApprovalCheckResponse, error)
	CheckLendingApproval(ctx context.Context, s *session.Session, amount string) (*model.ApprovalCheckResponse, error)
}

type defiQuestCaller struct {
	apiGenerator api.Generator
}

func NewDefiQuestCaller(apiGenerator api.Generator) *defiQuestCaller {
	return &defiQuestCaller{apiGenerator: apiGenerator}
}

func (c *defiQuestCaller) GetPortfolio(
	ctx context.Context, s *session.Session,
) (*model.DefiPortfolio, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/defi/portfolio").GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call defi portfolio: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.DefiPortfolio{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode defi portfolio response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid defi portfolio response")
	}

	return result, nil
}

func (c *defiQuestCaller) GetQuests(
	ctx context.Context, s *session.Session,
) ([]model.Quest, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/defi/available").GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call defi quests: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.GetQuestsResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode defi quests response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid defi quests response")
	}

	return result.Quests, nil
}

// PrepareTransaction is the phase-1 entry point of the delegation protocol.
// A success=false result is an expected business outcome carried in the
// returned value, not an error. Callers must branch on Success before
// proceeding to the signing phase.
func (c *defiQuestCaller) PrepareTransaction(
	ctx context.Context, s *session.Session, req *model.PrepareDefiTransactionRequest,
) (*model.DefiTransactionData, error) {
	if _, err := enum.ToEnum[model.DefiQuestType](string(req.QuestType)); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid quest type %s", req.QuestType)
	}

	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/defi/prepare-transaction").
		Body(api.JSONOf(req)).
		POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call prepare defi transaction: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "Invalid prepare transaction response")
	}

	result := &model.DefiTransactionData{}
	if err := mapstructure.Decode(map[string]any(body), result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode prepare transaction response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid prepare transaction response")
	}

	return result, nil
}

func (c *defiQuestCaller) GetProgress(
	ctx context.Context, s *session.Session,
) ([]model.QuestProgress, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/defi/progress").GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call defi progress: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.GetQuestProgressResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode defi progress response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid defi progress response")
	}

	return result.Progress, nil
}

func (c *defiQuestCaller) Claim(
	ctx context.Context, s *session.Session, questID string,
) (*model.ClaimRewardResponse, error) {
	if questID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quest id")
	}

	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/defi/%s/claim", questID).POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call claim defi quest: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.ClaimRewardResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode defi claim response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid defi claim response")
	}

	return result, nil
}

func (c *defiQuestCaller) GetStats(
	ctx context.Context, s *session.Session,
) (*model.DefiQuestStats, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/defi/stats").GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call defi stats: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.DefiQuestStats{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode defi stats response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid defi stats response")
	}

	return result, nil
}

// CheckStakingApproval is the pre-flight allowance check of the staking
// instrument. Skipping it risks an on-chain revert the client cannot recover
// from automatically.
func (c *defiQuestCaller) CheckStakingApproval(
	ctx context.Context, s *session.Session, amount string,
) (*model.ApprovalCheckResponse, error) {
	return c.checkApproval(ctx, s, "/quests/defi/check-staking-approval", amount)
}

func (c *defiQuestCaller) CheckLendingApproval(
	ctx context.Context, s *session.Session, amount string,
) (*model.ApprovalCheckResponse, error) {
	return c.checkApproval(ctx, s, "/quests/defi/check-lending-approval", amount)
}

func (c *defiQuestCaller) checkApproval(
	ctx context.Context, s *session.Session, path, amount string,
) (*model.ApprovalCheckResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New(path).
		Body(api.JSON{"amount": amount}).
		POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call approval check: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.ApprovalCheckResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode approval check response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid approval check response")
	}

	return result, nil
}
