package main

import (
	"fmt"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/urfave/cli/v2"
)

func (s *srv) cmdQuestList(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	board, err := s.questDomain.Load(s.ctx, sess, &model.GetQuestsRequest{
		Type:     model.QuestType(cctx.String("type")),
		Category: model.QuestCategory(cctx.String("category")),
		Limit:    cctx.Int("limit"),
		Offset:   cctx.Int("offset"),
	})
	if err != nil {
		return err
	}

	return printJSON(board)
}

func (s *srv) cmdQuestStart(cctx *cli.Context) error {
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

	quest, err := s.findQuest(sess, questID)
	if err != nil {
		return err
	}

	progress, err := s.questDomain.Start(s.ctx, sess, *quest)
	if err != nil {
		return err
	}

	return printJSON(progress)
}

func (s *srv) cmdQuestClaim(cctx *cli.Context) error {
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

	progress, err := s.findProgress(sess, questID)
	if err != nil {
		return err
	}

	resp, err := s.questDomain.Claim(s.ctx, sess, *progress)
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (s *srv) cmdQuestStats(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	stats, err := s.questDomain.Stats(s.ctx, sess)
	if err != nil {
		return err
	}

	return printJSON(stats)
}

func (s *srv) findQuest(sess *session.Session, questID string) (*model.Quest, error) {
	board, err := s.questDomain.Load(s.ctx, sess, nil)
	if err != nil {
		return nil, err
	}

	for i := range board.Quests {
		if board.Quests[i].ID == questID {
			return &board.Quests[i], nil
		}
	}

	return nil, fmt.Errorf("not found quest %s", questID)
}

func (s *srv) findProgress(sess *session.Session, questID string) (*model.QuestProgress, error) {
	board, err := s.questDomain.Load(s.ctx, sess, nil)
	if err != nil {
		return nil, err
	}

	for i := range board.Progress {
		if board.Progress[i].QuestID == questID {
			return &board.Progress[i], nil
		}
	}

	return nil, fmt.Errorf("no progress for quest %s", questID)
}
