package main

import (
	"fmt"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/urfave/cli/v2"
)

func (s *srv) cmdLogin(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.authDomain.Login(s.ctx, &model.SimpleLoginRequest{
		LineUserID:  cctx.String("user"),
		DisplayName: cctx.String("name"),
		PictureURL:  cctx.String("picture"),
	})
	if err != nil {
		return err
	}

	return printJSON(sess.User)
}

func (s *srv) cmdWhoami(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	return printJSON(sess)
}

func (s *srv) cmdLogout(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	return s.authDomain.Logout(s.ctx)
}

func (s *srv) cmdSelectPet(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	sess, err = s.authDomain.SelectPet(s.ctx, sess, &model.SelectPetRequest{
		PetType: cctx.String("type"),
		Name:    cctx.String("name"),
	})
	if err != nil {
		return err
	}

	return printJSON(sess.Pet)
}

func (s *srv) cmdConnectWallet(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	address := cctx.String("address")
	if address == "" {
		if s.signer == nil {
			return fmt.Errorf("no address given and no wallet key configured")
		}

		address = s.signer.Address()
	}

	sess, err = s.authDomain.ConnectWallet(s.ctx, sess, address)
	if err != nil {
		return err
	}

	return printJSON(sess.User)
}
