package client

import (
	"context"

	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

// identityOpt derives the identity header of an authenticated request from
// the session. It fails before any request is sent when no session exists.
func identityOpt(ctx context.Context, s *session.Session) (api.Opt, error) {
	id, err := s.Identity()
	if err != nil {
		return nil, err
	}

	return api.Identity(xcontext.Configs(ctx).Backend.IdentityHeader, id), nil
}
