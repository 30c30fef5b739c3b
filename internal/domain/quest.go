package domain

import (
	"context"

	mathUtil "github.com/pkg/math"
	"github.com/puzpuzpuz/xsync"
	"github.com/spacepet-lab/client/internal/client"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

// QuestBoard is everything the quest screen renders in one load. Stats are
// decorative and may be nil when their request failed.
type QuestBoard struct {
	Quests   []model.Quest
	Progress []model.QuestProgress
	Stats    *model.QuestStats
}

type QuestDomain interface {
	Load(ctx context.Context, s *session.Session, req *model.GetQuestsRequest) (*QuestBoard, error)
	Refresh(ctx context.Context, s *session.Session, board *QuestBoard) (*QuestBoard, error)
	Start(ctx context.Context, s *session.Session, quest model.Quest) (*model.QuestProgress, error)
	Claim(ctx context.Context, s *session.Session, progress model.QuestProgress) (*model.ClaimRewardResponse, error)
	Stats(ctx context.Context, s *session.Session) (*model.QuestStats, error)
}

type questDomain struct {
	questCaller client.QuestCaller

	// inflight holds the quest ids with a mutation currently running.
	// Repeated taps on the same card do not fan out into parallel requests.
	inflight *xsync.MapOf[string, bool]
}

func NewQuestDomain(questCaller client.QuestCaller) *questDomain {
	return &questDomain{
		questCaller: questCaller,
		inflight:    xsync.NewMapOf[bool](),
	}
}

func clampLimit(ctx context.Context, limit int) int {
	cfg := xcontext.Configs(ctx).Quest
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}

	return mathUtil.MinInt(limit, cfg.MaxLimit)
}

// Load fetches the quest list, the progress snapshot and the stats in
// parallel. Quests and progress are required, stats failures degrade to nil.
func (d *questDomain) Load(
	ctx context.Context, s *session.Session, req *model.GetQuestsRequest,
) (*QuestBoard, error) {
	if req == nil {
		req = &model.GetQuestsRequest{}
	}
	req.Limit = clampLimit(ctx, req.Limit)

	board := &QuestBoard{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		quests, err := d.questCaller.GetQuests(groupCtx, s, req)
		if err != nil {
			return err
		}

		board.Quests = quests
		return nil
	})

	group.Go(func() error {
		progress, err := d.questCaller.GetProgress(groupCtx, s)
		if err != nil {
			return err
		}

		board.Progress = progress
		return nil
	})

	group.Go(func() error {
		stats, err := d.questCaller.GetStats(groupCtx, s)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot load quest stats: %v", err)
			return nil
		}

		board.Stats = stats
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return board, nil
}

// Refresh re-fetches the progress snapshot and merges it into the board. The
// merge never rolls a quest status backwards, so a late stale response leaves
// the board untouched.
func (d *questDomain) Refresh(
	ctx context.Context, s *session.Session, board *QuestBoard,
) (*QuestBoard, error) {
	fresh, err := d.questCaller.GetProgress(ctx, s)
	if err != nil {
		return nil, err
	}

	if board == nil {
		return &QuestBoard{Progress: fresh}, nil
	}

	return &QuestBoard{
		Quests:   board.Quests,
		Progress: MergeProgressList(board.Progress, fresh),
		Stats:    board.Stats,
	}, nil
}

func (d *questDomain) Start(
	ctx context.Context, s *session.Session, quest model.Quest,
) (*model.QuestProgress, error) {
	if !quest.IsAvailable {
		return nil, errorx.New(errorx.NotEligible, "Quest is not available yet")
	}

	release, err := d.acquire(quest.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	return d.questCaller.Start(ctx, s, quest.ID)
}

func (d *questDomain) Claim(
	ctx context.Context, s *session.Session, progress model.QuestProgress,
) (*model.ClaimRewardResponse, error) {
	if progress.Status == model.StatusClaimed {
		return nil, errorx.New(errorx.AlreadyCommitted, "Reward was already claimed")
	}

	if !progress.CanClaim {
		return nil, errorx.New(errorx.NotEligible, "Reward is not claimable yet")
	}

	release, err := d.acquire(progress.QuestID)
	if err != nil {
		return nil, err
	}
	defer release()

	return d.questCaller.Claim(ctx, s, progress.QuestID)
}

func (d *questDomain) Stats(
	ctx context.Context, s *session.Session,
) (*model.QuestStats, error) {
	return d.questCaller.GetStats(ctx, s)
}

// acquire marks a quest as having a mutation in flight. The second concurrent
// action on the same quest fails instead of racing the first.
func (d *questDomain) acquire(questID string) (func(), error) {
	if _, loaded := d.inflight.LoadOrStore(questID, true); loaded {
		return nil, errorx.New(errorx.TooManyRequests, "Another action on this quest is in flight")
	}

	return func() { d.inflight.Delete(questID) }, nil
}
