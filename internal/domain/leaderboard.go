package domain

import (
	"context"

	"github.com/spacepet-lab/client/internal/client"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
)

type LeaderboardDomain interface {
	Board(ctx context.Context, s *session.Session, req *model.GetRankingsRequest) ([]model.RankingRow, error)
}

type leaderboardDomain struct {
	leaderboardCaller client.LeaderboardCaller
}

func NewLeaderboardDomain(leaderboardCaller client.LeaderboardCaller) *leaderboardDomain {
	return &leaderboardDomain{leaderboardCaller: leaderboardCaller}
}

func (d *leaderboardDomain) Board(
	ctx context.Context, s *session.Session, req *model.GetRankingsRequest,
) ([]model.RankingRow, error) {
	if req == nil {
		req = &model.GetRankingsRequest{}
	}
	req.Limit = clampLimit(ctx, req.Limit)

	entries, err := d.leaderboardCaller.GetRankings(ctx, s, req)
	if err != nil {
		return nil, err
	}

	rows := make([]model.RankingRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, model.ConvertRankingEntry(entry))
	}

	return rows, nil
}
