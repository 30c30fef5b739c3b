package client

import (
	"context"
	"testing"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_defiQuestCaller_PrepareTransaction(t *testing.T) {
	ctx := testutil.MockContext()

	var gotPath string
	generator := &api.MockAPIGenerator{
		NewFunc: func(path string) { gotPath = path },
	}
	generator.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return &api.Response{
			Code: 200,
			Body: api.JSON{
				"success": true,
				"transactionData": map[string]any{
					"from": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
					"to":   "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
					"data": "0xdeadbeef",
					"gas":  "500000",
					"type": "contract_execution",
				},
				"message": "Sign and submit within 5 minutes",
			},
		}, nil
	}

	resp, err := NewDefiQuestCaller(generator).PrepareTransaction(ctx, testutil.Session1, &model.PrepareDefiTransactionRequest{
		QuestType: model.DefiStaking,
		Amount:    "10",
	})
	require.NoError(t, err)
	require.Equal(t, "/quests/defi/prepare-transaction", gotPath)
	require.True(t, resp.Success)
	require.NotNil(t, resp.TransactionData)
	require.Equal(t, model.TxContractExecution, resp.TransactionData.Type)
	require.Equal(t, "500000", resp.TransactionData.Gas)
	require.Equal(t, "Sign and submit within 5 minutes", resp.Message)
}

func Test_defiQuestCaller_PrepareTransaction_UnknownType(t *testing.T) {
	ctx := testutil.MockContext()

	called := false
	generator := &api.MockAPIGenerator{}
	generator.MockClient.POSTFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		called = true
		return &api.Response{Code: 200}, nil
	}

	_, err := NewDefiQuestCaller(generator).PrepareTransaction(ctx, testutil.Session1, &model.PrepareDefiTransactionRequest{
		QuestType: "yield_farming",
		Amount:    "10",
	})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
	require.False(t, called)
}

func Test_defiQuestCaller_GetPortfolio(t *testing.T) {
	ctx := testutil.MockContext()

	generator := &api.MockAPIGenerator{}
	generator.MockClient.GETFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		return &api.Response{
			Code: 200,
			RawBody: []byte(`{
				"portfolio": {"totalValue": "1234.56", "stakingValue": "1000", "lendingValue": "234.56", "lpValue": "0"},
				"questEligibility": {"staking": true, "lending": true, "lpProviding": false}
			}`),
		}, nil
	}

	portfolio, err := NewDefiQuestCaller(generator).GetPortfolio(ctx, testutil.Session1)
	require.NoError(t, err)
	require.Equal(t, "1234.56", portfolio.Portfolio.TotalValue)
	require.True(t, portfolio.QuestEligibility.Lending)
	require.False(t, portfolio.QuestEligibility.LPProviding)
}
