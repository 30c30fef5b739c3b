package main

import (
	"fmt"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/urfave/cli/v2"
)

func (s *srv) cmdDefiPortfolio(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	portfolio, err := s.defiDomain.Portfolio(s.ctx, sess)
	if err != nil {
		return err
	}

	return printJSON(portfolio)
}

func (s *srv) cmdDefiQuests(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	quests, err := s.defiDomain.Quests(s.ctx, sess)
	if err != nil {
		return err
	}

	return printJSON(quests)
}

func (s *srv) cmdDefiRecommend(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	quest := s.defiDomain.RecommendedQuest(s.ctx, sess)
	if quest == nil {
		fmt.Println("No recommended quest right now")
		return nil
	}

	return printJSON(quest)
}

func (s *srv) cmdDefiParticipate(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	if s.signer == nil {
		return fmt.Errorf("participation needs a wallet key, set wallet.priv_key in the config")
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	result, err := s.defiDomain.Participate(s.ctx, sess, &model.PrepareDefiTransactionRequest{
		QuestType: model.DefiQuestType(cctx.String("type")),
		Amount:    cctx.String("amount"),
		Duration:  cctx.Int("duration"),
	})
	if err != nil {
		return err
	}

	if !result.Committed() {
		fmt.Println("Participation was not committed:")
	}

	return printJSON(result)
}

func (s *srv) cmdDefiProgress(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	progress, err := s.defiDomain.Progress(s.ctx, sess)
	if err != nil {
		return err
	}

	return printJSON(progress)
}

func (s *srv) cmdDefiClaim(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	questID := cctx.Args().First()
	if questID == "" {
		return fmt.Errorf("missing quest id argument")
	}

	progressList, err := s.defiDomain.Progress(s.ctx, sess)
	if err != nil {
		return err
	}

	for i := range progressList {
		if progressList[i].QuestID == questID {
			resp, err := s.defiDomain.Claim(s.ctx, sess, progressList[i])
			if err != nil {
				return err
			}

			return printJSON(resp)
		}
	}

	return fmt.Errorf("no progress for quest %s", questID)
}

func (s *srv) cmdDefiStats(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	stats, err := s.defiDomain.Stats(s.ctx, sess)
	if err != nil {
		return err
	}

	return printJSON(stats)
}
