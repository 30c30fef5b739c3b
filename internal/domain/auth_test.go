package domain

import (
	"context"
	"testing"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/repository"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(caller *testutil.MockAuthCaller) *authDomain {
	return NewAuthDomain(caller, session.NewStore(repository.NewSessionRepository()))
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockAuthCaller{
		SimpleLoginFunc: func(ctx context.Context, req *model.SimpleLoginRequest) (*model.SimpleLoginResponse, error) {
			return &model.SimpleLoginResponse{
				Success: true,
				User: model.User{
					ID:          "user1",
					LineUserID:  req.LineUserID,
					DisplayName: req.DisplayName,
					Level:       1,
				},
				IsNew: true,
			}, nil
		},
	}
	d := newAuthFixture(caller)

	sess, err := d.Login(ctx, &model.SimpleLoginRequest{LineUserID: "U42", DisplayName: "Captain"})
	require.NoError(t, err)
	require.Equal(t, "U42", sess.LineUserID)

	// The session survives a reload.
	current, err := d.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "U42", current.LineUserID)
	require.Equal(t, "Captain", current.User.DisplayName)

	require.NoError(t, d.Logout(ctx))
	_, err = d.Current(ctx)
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}

func Test_authDomain_Login_Rejected(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockAuthCaller{
		SimpleLoginFunc: func(ctx context.Context, req *model.SimpleLoginRequest) (*model.SimpleLoginResponse, error) {
			return &model.SimpleLoginResponse{Success: false, Message: "Banned user"}, nil
		},
	}
	d := newAuthFixture(caller)

	_, err := d.Login(ctx, &model.SimpleLoginRequest{LineUserID: "U42"})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)

	_, err = d.Login(ctx, &model.SimpleLoginRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_authDomain_ConnectWallet(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockAuthCaller{
		SimpleLoginFunc: func(ctx context.Context, req *model.SimpleLoginRequest) (*model.SimpleLoginResponse, error) {
			return &model.SimpleLoginResponse{
				Success: true,
				User:    model.User{ID: "user1", LineUserID: req.LineUserID},
			}, nil
		},
		UpdateWalletAddressFunc: func(ctx context.Context, s *session.Session, address string) (*model.UpdateWalletAddressResponse, error) {
			return &model.UpdateWalletAddressResponse{Success: true}, nil
		},
	}
	d := newAuthFixture(caller)

	sess, err := d.Login(ctx, &model.SimpleLoginRequest{LineUserID: "U42"})
	require.NoError(t, err)

	address := "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
	sess, err = d.ConnectWallet(ctx, sess, address)
	require.NoError(t, err)
	require.Equal(t, address, sess.WalletAddress)
	require.Equal(t, address, sess.User.WalletAddress)

	// The connected wallet is persisted too.
	current, err := d.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, address, current.WalletAddress)

	_, err = d.ConnectWallet(ctx, sess, "bogus")
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_authDomain_SelectPet(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &testutil.MockAuthCaller{
		SimpleLoginFunc: func(ctx context.Context, req *model.SimpleLoginRequest) (*model.SimpleLoginResponse, error) {
			return &model.SimpleLoginResponse{
				Success: true,
				User:    model.User{ID: "user1", LineUserID: req.LineUserID},
			}, nil
		},
		SelectPetFunc: func(ctx context.Context, s *session.Session, req *model.SelectPetRequest) (*model.SelectPetResponse, error) {
			return &model.SelectPetResponse{
				Success: true,
				Pet:     model.Pet{ID: "pet1", Type: req.PetType, Name: req.Name, Level: 1},
			}, nil
		},
	}
	d := newAuthFixture(caller)

	sess, err := d.Login(ctx, &model.SimpleLoginRequest{LineUserID: "U42"})
	require.NoError(t, err)

	sess, err = d.SelectPet(ctx, sess, &model.SelectPetRequest{PetType: "cat", Name: "Nebula"})
	require.NoError(t, err)
	require.NotNil(t, sess.Pet)
	require.Equal(t, "Nebula", sess.Pet.Name)

	current, err := d.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current.Pet)
	require.Equal(t, "cat", current.Pet.Type)
}
