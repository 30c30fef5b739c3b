package domain

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_questDomain_Load(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockQuestCaller{
		GetQuestsFunc: func(ctx context.Context, s *session.Session, req *model.GetQuestsRequest) ([]model.Quest, error) {
			require.Equal(t, 20, req.Limit)
			return []model.Quest{{ID: "q1", IsAvailable: true}}, nil
		},
		GetProgressFunc: func(ctx context.Context, s *session.Session) ([]model.QuestProgress, error) {
			return []model.QuestProgress{{QuestID: "q1", Status: model.StatusInProgress}}, nil
		},
		GetStatsFunc: func(ctx context.Context, s *session.Session) (*model.QuestStats, error) {
			return nil, errorx.Unknown
		},
	}

	board, err := NewQuestDomain(caller).Load(ctx, testutil.Session1, nil)
	require.NoError(t, err)
	require.Len(t, board.Quests, 1)
	require.Len(t, board.Progress, 1)

	// Stats are decorative, their failure does not fail the load.
	require.Nil(t, board.Stats)
}

func Test_questDomain_Load_ClampsLimit(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockQuestCaller{
		GetQuestsFunc: func(ctx context.Context, s *session.Session, req *model.GetQuestsRequest) ([]model.Quest, error) {
			require.Equal(t, 50, req.Limit)
			return nil, nil
		},
		GetProgressFunc: func(ctx context.Context, s *session.Session) ([]model.QuestProgress, error) {
			return nil, nil
		},
		GetStatsFunc: func(ctx context.Context, s *session.Session) (*model.QuestStats, error) {
			return &model.QuestStats{}, nil
		},
	}

	_, err := NewQuestDomain(caller).Load(ctx, testutil.Session1, &model.GetQuestsRequest{Limit: 1000})
	require.NoError(t, err)
}

func Test_questDomain_Refresh_KeepsFurtherAlongSnapshot(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockQuestCaller{
		GetProgressFunc: func(ctx context.Context, s *session.Session) ([]model.QuestProgress, error) {
			return []model.QuestProgress{
				{QuestID: "q1", Status: model.StatusInProgress, Progress: 10},
			}, nil
		},
	}

	board := &QuestBoard{Progress: []model.QuestProgress{
		{QuestID: "q1", Status: model.StatusCompleted, Progress: 100},
	}}

	refreshed, err := NewQuestDomain(caller).Refresh(ctx, testutil.Session1, board)
	require.NoError(t, err)
	require.Equal(t, model.StatusCompleted, refreshed.Progress[0].Status)
}

func Test_questDomain_Start_RequiresAvailability(t *testing.T) {
	ctx := testutil.MockContext()
	d := NewQuestDomain(&testutil.MockQuestCaller{})

	_, err := d.Start(ctx, testutil.Session1, model.Quest{ID: "q1", IsAvailable: false})
	require.Error(t, err)
	require.Equal(t, errorx.NotEligible, err.(errorx.Error).Code)
}

func Test_questDomain_Claim_CanClaimIsTheOnlyGate(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockQuestCaller{
		ClaimFunc: func(ctx context.Context, s *session.Session, questID string) (*model.ClaimRewardResponse, error) {
			return &model.ClaimRewardResponse{Success: true}, nil
		},
	}
	d := NewQuestDomain(caller)

	// Not claimable yet.
	_, err := d.Claim(ctx, testutil.Session1, model.QuestProgress{
		QuestID: "q1", Status: model.StatusCompleted, CanClaim: false,
	})
	require.Error(t, err)
	require.Equal(t, errorx.NotEligible, err.(errorx.Error).Code)

	// Already claimed.
	_, err = d.Claim(ctx, testutil.Session1, model.QuestProgress{
		QuestID: "q1", Status: model.StatusClaimed,
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyCommitted, err.(errorx.Error).Code)

	// Claimable, even while the quest itself shows in progress. The flag is
	// the sole gate.
	resp, err := d.Claim(ctx, testutil.Session1, model.QuestProgress{
		QuestID: "q1", Status: model.StatusInProgress, CanClaim: true,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func Test_questDomain_Claim_SingleFlightPerQuest(t *testing.T) {
	ctx := testutil.MockContext()

	started := make(chan struct{})
	finish := make(chan struct{})
	var calls int32
	caller := &testutil.MockQuestCaller{
		ClaimFunc: func(ctx context.Context, s *session.Session, questID string) (*model.ClaimRewardResponse, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
				<-finish
			}
			return &model.ClaimRewardResponse{Success: true}, nil
		},
	}
	d := NewQuestDomain(caller)

	progress := model.QuestProgress{QuestID: "q1", Status: model.StatusCompleted, CanClaim: true}

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = d.Claim(ctx, testutil.Session1, progress)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first claim never started")
	}

	_, secondErr := d.Claim(ctx, testutil.Session1, progress)
	require.Error(t, secondErr)
	require.Equal(t, errorx.TooManyRequests, secondErr.(errorx.Error).Code)

	close(finish)
	wg.Wait()
	require.NoError(t, firstErr)

	// The guard is released after the first claim returned.
	_, err := d.Claim(ctx, testutil.Session1, progress)
	require.NoError(t, err)
}
