package client

import (
	"context"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

type AuthCaller interface {
	SimpleLogin(ctx context.Context, req *model.SimpleLoginRequest) (*model.SimpleLoginResponse, error)
	SelectPet(ctx context.Context, s *session.Session, req *model.SelectPetRequest) (*model.SelectPetResponse, error)
	UpdateWalletAddress(ctx context.Context, s *session.Session, address string) (*model.UpdateWalletAddressResponse, error)
}

type authCaller struct {
	apiGenerator api.Generator
}

func NewAuthCaller(apiGenerator api.Generator) *authCaller {
	return &authCaller{apiGenerator: apiGenerator}
}

// SimpleLogin is the only unauthenticated call, it creates the session that
// every other caller derives its identity header from.
func (c *authCaller) SimpleLogin(
	ctx context.Context, req *model.SimpleLoginRequest,
) (*model.SimpleLoginResponse, error) {
	if req.LineUserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty line user id")
	}

	resp, err := c.apiGenerator.New("/auth/simple-login").
		Body(api.JSONOf(req)).
		POST(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call simple login: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.SimpleLoginResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode login response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid login response")
	}

	return result, nil
}

func (c *authCaller) SelectPet(
	ctx context.Context, s *session.Session, req *model.SelectPetRequest,
) (*model.SelectPetResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/auth/select-pet").
		Body(api.JSONOf(req)).
		POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call select pet: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.SelectPetResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode select pet response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid select pet response")
	}

	return result, nil
}

func (c *authCaller) UpdateWalletAddress(
	ctx context.Context, s *session.Session, address string,
) (*model.UpdateWalletAddressResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/users/wallet-address").
		Body(api.JSONOf(&model.UpdateWalletAddressRequest{WalletAddress: address})).
		PUT(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call update wallet address: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.UpdateWalletAddressResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode update wallet response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid update wallet response")
	}

	return result, nil
}
