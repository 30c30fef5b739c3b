package domain

import (
	"context"
	"sync"

	"github.com/spacepet-lab/client/internal/client"
	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/repository"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/ethutil"
)

// DelegationPreview gathers the informational calls around a delegation
// before anything is signed. Each field carries its own error so one failing
// call does not hide the others.
type DelegationPreview struct {
	Estimation    *model.GasEstimationResponse
	EstimationErr error

	Eligibility    *model.EligibilityResponse
	EligibilityErr error

	Stats    *model.GasDelegationStats
	StatsErr error
}

type GasDomain interface {
	Estimate(ctx context.Context, s *session.Session, req *model.GasDelegationRequest) (*model.GasEstimationResponse, error)
	Eligibility(ctx context.Context, s *session.Session, address string) (*model.EligibilityResponse, error)
	Preview(ctx context.Context, s *session.Session, req *model.GasDelegationRequest, address string) *DelegationPreview
	Stats(ctx context.Context, s *session.Session) (*model.GasDelegationStats, error)
	SupportedTypes(ctx context.Context) ([]model.TxType, error)
	FeePayer(ctx context.Context) (string, error)
	History(ctx context.Context, fromAddress string, offset, limit int) ([]entity.DelegationReceipt, error)
}

type gasDomain struct {
	gasCaller   client.GasDelegationCaller
	receiptRepo repository.ReceiptRepository
}

func NewGasDomain(
	gasCaller client.GasDelegationCaller,
	receiptRepo repository.ReceiptRepository,
) *gasDomain {
	return &gasDomain{
		gasCaller:   gasCaller,
		receiptRepo: receiptRepo,
	}
}

func (d *gasDomain) Estimate(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest,
) (*model.GasEstimationResponse, error) {
	return d.gasCaller.Estimate(ctx, s, req)
}

func (d *gasDomain) Eligibility(
	ctx context.Context, s *session.Session, address string,
) (*model.EligibilityResponse, error) {
	if !ethutil.IsHexAddress(address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid address %s", address)
	}

	return d.gasCaller.CheckEligibility(ctx, s, address)
}

// Preview fans the estimation, eligibility and stats calls out in parallel
// and waits for all of them. None of them is load bearing for the protocol,
// so errors are captured per field instead of aborting the bundle.
func (d *gasDomain) Preview(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest, address string,
) *DelegationPreview {
	preview := &DelegationPreview{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		preview.Estimation, preview.EstimationErr = d.gasCaller.Estimate(ctx, s, req)
	}()

	go func() {
		defer wg.Done()
		preview.Eligibility, preview.EligibilityErr = d.gasCaller.CheckEligibility(ctx, s, address)
	}()

	go func() {
		defer wg.Done()
		preview.Stats, preview.StatsErr = d.gasCaller.GetStats(ctx, s)
	}()

	wg.Wait()
	return preview
}

func (d *gasDomain) Stats(
	ctx context.Context, s *session.Session,
) (*model.GasDelegationStats, error) {
	return d.gasCaller.GetStats(ctx, s)
}

func (d *gasDomain) SupportedTypes(ctx context.Context) ([]model.TxType, error) {
	return d.gasCaller.GetSupportedTypes(ctx)
}

func (d *gasDomain) FeePayer(ctx context.Context) (string, error) {
	return d.gasCaller.GetFeePayer(ctx)
}

// History lists the locally recorded delegation receipts of an address,
// newest first.
func (d *gasDomain) History(
	ctx context.Context, fromAddress string, offset, limit int,
) ([]entity.DelegationReceipt, error) {
	if !ethutil.IsHexAddress(fromAddress) {
		return nil, errorx.New(errorx.BadRequest, "Invalid address %s", fromAddress)
	}

	return d.receiptRepo.GetList(ctx, fromAddress, offset, clampLimit(ctx, limit))
}
