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

type LeaderboardCaller interface {
	GetRankings(ctx context.Context, s *session.Session, req *model.GetRankingsRequest) ([]model.RankingEntry, error)
}

type leaderboardCaller struct {
	apiGenerator api.Generator
}

func NewLeaderboardCaller(apiGenerator api.Generator) *leaderboardCaller {
	return &leaderboardCaller{apiGenerator: apiGenerator}
}

func (c *leaderboardCaller) GetRankings(
	ctx context.Context, s *session.Session, req *model.GetRankingsRequest,
) ([]model.RankingEntry, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	query := api.Parameter{}
	if req != nil {
		if req.Type != "" {
			query["type"] = req.Type
		}
		if req.Period != "" {
			query["period"] = req.Period
		}
		if req.Limit > 0 {
			query["limit"] = strconv.Itoa(req.Limit)
		}
	}

	resp, err := c.apiGenerator.New("/leaderboard/rankings").Query(query).GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call leaderboard rankings: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.GetRankingsResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode rankings response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid rankings response")
	}

	return result.Rankings, nil
}
