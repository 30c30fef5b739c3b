package client

import (
	"context"
	"testing"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_questCaller_GetQuests(t *testing.T) {
	ctx := testutil.MockContext()

	var gotPath string
	var gotQuery api.Parameter
	generator := &api.MockAPIGenerator{
		NewFunc: func(path string) { gotPath = path },
	}
	generator.MockClient.QueryFunc = func(query api.Parameter) api.Client {
		gotQuery = query
		return &generator.MockClient
	}
	generator.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return &api.Response{
			Code:    200,
			RawBody: []byte(`{"quests":[{"id":"daily-checkin","title":"Daily check-in","isAvailable":true}]}`),
		}, nil
	}

	quests, err := NewQuestCaller(generator).GetQuests(ctx, testutil.Session1, &model.GetQuestsRequest{
		Type:  model.QuestDaily,
		Limit: 10,
	})
	require.NoError(t, err)
	require.Equal(t, "/quests", gotPath)
	require.Equal(t, "daily", gotQuery["type"])
	require.Equal(t, "10", gotQuery["limit"])
	require.Len(t, quests, 1)
	require.Equal(t, "daily-checkin", quests[0].ID)
	require.True(t, quests[0].IsAvailable)
}

func Test_questCaller_GetQuests_NoSession(t *testing.T) {
	ctx := testutil.MockContext()

	called := false
	generator := &api.MockAPIGenerator{}
	generator.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		called = true
		return &api.Response{Code: 200}, nil
	}

	// A missing session fails before any request is sent.
	_, err := NewQuestCaller(generator).GetQuests(ctx, &session.Session{}, nil)
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
	require.False(t, called)
}

func Test_questCaller_Start(t *testing.T) {
	ctx := testutil.MockContext()

	var gotPath string
	generator := &api.MockAPIGenerator{
		NewFunc: func(path string) { gotPath = path },
	}
	generator.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return &api.Response{
			Code:    200,
			RawBody: []byte(`{"success":true,"progress":{"questId":"q1","status":"in_progress"}}`),
		}, nil
	}

	progress, err := NewQuestCaller(generator).Start(ctx, testutil.Session1, "q1")
	require.NoError(t, err)
	require.Equal(t, "/quests/q1/start", gotPath)
	require.Equal(t, model.StatusInProgress, progress.Status)

	_, err = NewQuestCaller(generator).Start(ctx, testutil.Session1, "")
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_questCaller_Claim_RelaysBackendRejection(t *testing.T) {
	ctx := testutil.MockContext()

	generator := &api.MockAPIGenerator{}
	generator.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return &api.Response{
			Code: 400,
			Body: api.JSON{"message": "Quest is not completed yet"},
		}, nil
	}

	_, err := NewQuestCaller(generator).Claim(ctx, testutil.Session1, "q1")
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
	require.Equal(t, "Quest is not completed yet", err.(errorx.Error).Message)
}
