package main

import (
	"github.com/spacepet-lab/client/internal/model"
	"github.com/urfave/cli/v2"
)

func (s *srv) cmdGasEstimate(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	address, err := s.walletAddress(cctx, sess)
	if err != nil {
		return err
	}

	estimation, err := s.gasDomain.Estimate(s.ctx, sess, transferRequest(cctx, address))
	if err != nil {
		return err
	}

	return printJSON(estimation)
}

func (s *srv) cmdGasEligibility(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	address, err := s.walletAddress(cctx, sess)
	if err != nil {
		return err
	}

	eligibility, err := s.gasDomain.Eligibility(s.ctx, sess, address)
	if err != nil {
		return err
	}

	return printJSON(eligibility)
}

func transferRequest(cctx *cli.Context, from string) *model.GasDelegationRequest {
	txType := model.TxValueTransfer
	if cctx.String("memo") != "" {
		txType = model.TxValueTransferMemo
	}

	return &model.GasDelegationRequest{
		From:  from,
		To:    cctx.String("to"),
		Value: cctx.String("value"),
		Memo:  cctx.String("memo"),
		Type:  txType,
	}
}

func (s *srv) cmdGasPreview(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	address, err := s.walletAddress(cctx, sess)
	if err != nil {
		return err
	}

	preview := s.gasDomain.Preview(s.ctx, sess, transferRequest(cctx, address), address)

	return printJSON(preview)
}

func (s *srv) cmdGasStats(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	stats, err := s.gasDomain.Stats(s.ctx, sess)
	if err != nil {
		return err
	}

	return printJSON(stats)
}

func (s *srv) cmdGasTypes(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	types, err := s.gasDomain.SupportedTypes(s.ctx)
	if err != nil {
		return err
	}

	return printJSON(types)
}

func (s *srv) cmdGasFeePayer(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	feePayer, err := s.gasDomain.FeePayer(s.ctx)
	if err != nil {
		return err
	}

	return printJSON(model.FeePayerResponse{Address: feePayer})
}

func (s *srv) cmdGasHistory(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	address, err := s.walletAddress(cctx, sess)
	if err != nil {
		return err
	}

	receipts, err := s.gasDomain.History(s.ctx, address, cctx.Int("offset"), cctx.Int("limit"))
	if err != nil {
		return err
	}

	return printJSON(receipts)
}
