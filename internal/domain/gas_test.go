package domain

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/repository"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_gasDomain_Preview_CapturesErrorsPerField(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockGasDelegationCaller{
		EstimateFunc: func(ctx context.Context, s *session.Session, req *model.GasDelegationRequest) (*model.GasEstimationResponse, error) {
			return &model.GasEstimationResponse{Success: true, EstimatedGas: "21000"}, nil
		},
		CheckEligibilityFunc: func(ctx context.Context, s *session.Session, address string) (*model.EligibilityResponse, error) {
			return nil, errorx.Unknown
		},
		GetStatsFunc: func(ctx context.Context, s *session.Session) (*model.GasDelegationStats, error) {
			return &model.GasDelegationStats{RemainingQuota: 5}, nil
		},
	}

	d := NewGasDomain(caller, repository.NewReceiptRepository())
	preview := d.Preview(ctx, testutil.Session1, &model.GasDelegationRequest{}, testutil.Session1.WalletAddress)

	require.NoError(t, preview.EstimationErr)
	require.Equal(t, "21000", preview.Estimation.EstimatedGas)

	// The failed eligibility call does not hide the others.
	require.Error(t, preview.EligibilityErr)
	require.Nil(t, preview.Eligibility)

	require.NoError(t, preview.StatsErr)
	require.Equal(t, 5, preview.Stats.RemainingQuota)
}

func Test_gasDomain_History(t *testing.T) {
	ctx := testutil.MockContext()
	receiptRepo := repository.NewReceiptRepository()
	d := NewGasDomain(&testutil.MockGasDelegationCaller{}, receiptRepo)

	address := "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
	for _, txHash := range []string{"0x01", "0x02"} {
		require.NoError(t, receiptRepo.Create(ctx, &entity.DelegationReceipt{
			Base:        entity.Base{ID: uuid.NewString()},
			TxHash:      txHash,
			SigHash:     "sig" + txHash,
			FromAddress: address,
		}))
	}

	receipts, err := d.History(ctx, address, 0, 10)
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	// Another address sees nothing.
	receipts, err = d.History(ctx, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", 0, 10)
	require.NoError(t, err)
	require.Empty(t, receipts)

	_, err = d.History(ctx, "not-an-address", 0, 10)
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}
