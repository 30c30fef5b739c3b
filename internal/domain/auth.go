package domain

import (
	"context"

	"github.com/spacepet-lab/client/internal/client"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/ethutil"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

type AuthDomain interface {
	Login(ctx context.Context, req *model.SimpleLoginRequest) (*session.Session, error)
	Current(ctx context.Context) (*session.Session, error)
	SelectPet(ctx context.Context, s *session.Session, req *model.SelectPetRequest) (*session.Session, error)
	ConnectWallet(ctx context.Context, s *session.Session, address string) (*session.Session, error)
	Logout(ctx context.Context) error
}

type authDomain struct {
	authCaller client.AuthCaller
	store      *session.Store
}

func NewAuthDomain(authCaller client.AuthCaller, store *session.Store) *authDomain {
	return &authDomain{
		authCaller: authCaller,
		store:      store,
	}
}

// Login authenticates against the backend with a LINE user id and persists
// the resulting session locally. Login is the only unauthenticated entry
// point of the whole surface.
func (d *authDomain) Login(
	ctx context.Context, req *model.SimpleLoginRequest,
) (*session.Session, error) {
	if req == nil || req.LineUserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty line user id")
	}

	resp, err := d.authCaller.SimpleLogin(ctx, req)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Login was rejected"
		}

		return nil, errorx.New(errorx.Unauthenticated, "%s", msg)
	}

	s := &session.Session{
		LineUserID:    resp.User.LineUserID,
		WalletAddress: resp.User.WalletAddress,
		User:          resp.User,
	}

	if err := d.store.Save(ctx, s); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot persist session: %v", err)
		return nil, errorx.Unknown
	}

	return s, nil
}

// Current loads the persisted session. A missing or unreadable record yields
// an Unauthenticated error, not a crash.
func (d *authDomain) Current(ctx context.Context) (*session.Session, error) {
	s, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !s.Valid() {
		return nil, errorx.New(errorx.Unauthenticated, "No authenticated session")
	}

	return s, nil
}

func (d *authDomain) SelectPet(
	ctx context.Context, s *session.Session, req *model.SelectPetRequest,
) (*session.Session, error) {
	if req == nil || req.PetType == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty pet type")
	}

	resp, err := d.authCaller.SelectPet(ctx, s, req)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, errorx.New(errorx.BadRequest, "%s", resp.Message)
	}

	updated := *s
	updated.Pet = &resp.Pet
	if err := d.store.Save(ctx, &updated); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot persist session: %v", err)
		return nil, errorx.Unknown
	}

	return &updated, nil
}

// ConnectWallet registers a wallet address with the backend and records it on
// the session. The address is validated before any request is sent.
func (d *authDomain) ConnectWallet(
	ctx context.Context, s *session.Session, address string,
) (*session.Session, error) {
	if !ethutil.IsHexAddress(address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address %s", address)
	}

	resp, err := d.authCaller.UpdateWalletAddress(ctx, s, address)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, errorx.New(errorx.BadRequest, "%s", resp.Message)
	}

	updated := *s
	updated.WalletAddress = address
	updated.User.WalletAddress = address
	if err := d.store.Save(ctx, &updated); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot persist session: %v", err)
		return nil, errorx.Unknown
	}

	return &updated, nil
}

func (d *authDomain) Logout(ctx context.Context) error {
	return d.store.Clear(ctx)
}
