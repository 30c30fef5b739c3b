package client

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

// GasDelegationCaller relays the fee-delegation protocol. The end user signs
// a transaction as its sender, the backend-operated fee payer co-signs and
// broadcasts it. No fee-payer key ever reaches this client.
type GasDelegationCaller interface {
	Estimate(ctx context.Context, s *session.Session, req *model.GasDelegationRequest) (*model.GasEstimationResponse, error)
	PrepareForSigning(ctx context.Context, s *session.Session, req *model.GasDelegationRequest) (*model.PrepareSigningResponse, error)
	Delegate(ctx context.Context, s *session.Session, req *model.GasDelegationRequest) (*model.GasDelegationResponse, error)
	CheckEligibility(ctx context.Context, s *session.Session, address string) (*model.EligibilityResponse, error)
	GetStats(ctx context.Context, s *session.Session) (*model.GasDelegationStats, error)
	GetSupportedTypes(ctx context.Context) ([]model.TxType, error)
	GetFeePayer(ctx context.Context) (string, error)
}

type gasDelegationCaller struct {
	apiGenerator api.Generator
}

func NewGasDelegationCaller(apiGenerator api.Generator) *gasDelegationCaller {
	return &gasDelegationCaller{apiGenerator: apiGenerator}
}

// Estimate is informational, it carries no ordering dependency with the
// signing preparation.
func (c *gasDelegationCaller) Estimate(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest,
) (*model.GasEstimationResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/blockchain/gas-delegation/estimate").
		Body(api.JSONOf(req)).
		POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call gas estimate: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.GasEstimationResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode gas estimate response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid gas estimate response")
	}

	return result, nil
}

// PrepareForSigning asks the backend for the canonical unsigned transaction,
// its encoding and the exact digest the wallet must sign. The hash is never
// re-derived client side from mutated fields.
func (c *gasDelegationCaller) PrepareForSigning(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest,
) (*model.PrepareSigningResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/blockchain/gas-delegation/prepare-signing").
		Body(api.JSONOf(req)).
		POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call prepare signing: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "Invalid prepare signing response")
	}

	result := &model.PrepareSigningResponse{}
	if err := mapstructure.Decode(map[string]any(body), result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode prepare signing response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid prepare signing response")
	}

	if result.Success && (result.EncodedTx == "" || result.TransactionHash == "") {
		return nil, errorx.New(errorx.BadResponse, "Prepare signing response misses encoding or hash")
	}

	return result, nil
}

// Delegate submits the user-signed transaction for fee delegation. The
// request must carry a signature produced over the exact prepare-signing
// output. A success response is a committed on-chain action.
func (c *gasDelegationCaller) Delegate(
	ctx context.Context, s *session.Session, req *model.GasDelegationRequest,
) (*model.GasDelegationResponse, error) {
	if req.UserSignature == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow delegation without user signature")
	}

	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/blockchain/gas-delegation/delegate").
		Body(api.JSONOf(req)).
		POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call delegate: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.GasDelegationResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode delegate response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid delegate response")
	}

	return result, nil
}

// CheckEligibility is an independent gate, callable any time before the
// signing preparation.
func (c *gasDelegationCaller) CheckEligibility(
	ctx context.Context, s *session.Session, address string,
) (*model.EligibilityResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/blockchain/gas-delegation/check-eligibility").
		Body(api.JSON{"address": address}).
		POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call check eligibility: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.EligibilityResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode eligibility response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid eligibility response")
	}

	return result, nil
}

func (c *gasDelegationCaller) GetStats(
	ctx context.Context, s *session.Session,
) (*model.GasDelegationStats, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/blockchain/gas-delegation/stats").GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call gas stats: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.GasDelegationStats{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode gas stats response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid gas stats response")
	}

	return result, nil
}

func (c *gasDelegationCaller) GetSupportedTypes(ctx context.Context) ([]model.TxType, error) {
	resp, err := c.apiGenerator.New("/blockchain/gas-delegation/supported-types").GET(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call supported types: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.SupportedTypesResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode supported types response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid supported types response")
	}

	return result.Types, nil
}

func (c *gasDelegationCaller) GetFeePayer(ctx context.Context) (string, error) {
	resp, err := c.apiGenerator.New("/blockchain/gas-delegation/fee-payer").GET(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call fee payer: %v", err)
		return "", errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return "", err
	}

	result := model.FeePayerResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode fee payer response: %v", err)
		return "", errorx.New(errorx.BadResponse, "Invalid fee payer response")
	}

	return result.Address, nil
}
