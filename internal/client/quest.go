package client

import (
	"context"
	"strconv"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

type QuestCaller interface {
	GetQuests(ctx context.Context, s *session.Session, req *model.GetQuestsRequest) ([]model.Quest, error)
	GetProgress(ctx context.Context, s *session.Session) ([]model.QuestProgress, error)
	Start(ctx context.Context, s *session.Session, questID string) (*model.QuestProgress, error)
	Claim(ctx context.Context, s *session.Session, questID string) (*model.ClaimRewardResponse, error)
	GetStats(ctx context.Context, s *session.Session) (*model.QuestStats, error)
}

type questCaller struct {
	apiGenerator api.Generator
}

func NewQuestCaller(apiGenerator api.Generator) *questCaller {
	return &questCaller{apiGenerator: apiGenerator}
}

func (c *questCaller) GetQuests(
	ctx context.Context, s *session.Session, req *model.GetQuestsRequest,
) ([]model.Quest, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	query := api.Parameter{}
	if req != nil {
		if req.Type != "" {
			query["type"] = string(req.Type)
		}
		if req.Category != "" {
			query["category"] = string(req.Category)
		}
		if req.Limit > 0 {
			query["limit"] = strconv.Itoa(req.Limit)
		}
		if req.Offset > 0 {
			query["offset"] = strconv.Itoa(req.Offset)
		}
	}

	resp, err := c.apiGenerator.New("/quests").Query(query).GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call get quests: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.GetQuestsResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode quests response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid quests response")
	}

	return result.Quests, nil
}

func (c *questCaller) GetProgress(
	ctx context.Context, s *session.Session,
) ([]model.QuestProgress, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/progress").GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call get quest progress: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.GetQuestProgressResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode quest progress response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid quest progress response")
	}

	return result.Progress, nil
}

// Start triggers the not_started to in_progress transition. Eligibility is
// enforced server side, the caller only relays the rejection.
func (c *questCaller) Start(
	ctx context.Context, s *session.Session, questID string,
) (*model.QuestProgress, error) {
	if questID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quest id")
	}

	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/%s/start", questID).POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call start quest: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.StartQuestResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode start quest response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid start quest response")
	}

	return &result.Progress, nil
}

// Claim triggers the completed to claimed transition. The backend rejects a
// claim whose progress is not claimable.
func (c *questCaller) Claim(
	ctx context.Context, s *session.Session, questID string,
) (*model.ClaimRewardResponse, error) {
	if questID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quest id")
	}

	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/%s/claim", questID).POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call claim quest: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.ClaimRewardResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode claim response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid claim response")
	}

	return result, nil
}

func (c *questCaller) GetStats(
	ctx context.Context, s *session.Session,
) (*model.QuestStats, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/quests/stats").GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call quest stats: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.QuestStats{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode quest stats response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid quest stats response")
	}

	return result, nil
}
