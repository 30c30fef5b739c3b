package main

import (
	"fmt"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/urfave/cli/v2"
)

func (s *srv) cmdLeaderboard(cctx *cli.Context) error {
	if err := s.load(cctx); err != nil {
		return err
	}

	sess, err := s.currentSession()
	if err != nil {
		return err
	}

	rows, err := s.leaderboardDomain.Board(s.ctx, sess, &model.GetRankingsRequest{
		Type:   cctx.String("type"),
		Period: cctx.String("period"),
		Limit:  cctx.Int("limit"),
	})
	if err != nil {
		return err
	}

	return printJSON(rows)
}

func (s *srv) cmdInventoryList(cctx *cli.Context) error {
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

	var items []model.ItemView
	if cctx.Bool("equipped") {
		items, err = s.inventoryDomain.Equipped(s.ctx, sess, address)
	} else {
		items, err = s.inventoryDomain.Items(s.ctx, sess, address)
	}
	if err != nil {
		return err
	}

	return printJSON(items)
}

func (s *srv) cmdInventoryEquip(cctx *cli.Context) error {
	return s.equipAction(cctx, true)
}

func (s *srv) cmdInventoryUnequip(cctx *cli.Context) error {
	return s.equipAction(cctx, false)
}

func (s *srv) equipAction(cctx *cli.Context, equip bool) error {
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

	itemID := cctx.Args().First()
	if itemID == "" {
		return fmt.Errorf("missing item id argument")
	}

	req := &model.EquipItemRequest{WalletAddress: address, ItemID: itemID}
	var resp *model.EquipItemResponse
	if equip {
		resp, err = s.inventoryDomain.Equip(s.ctx, sess, req)
	} else {
		resp, err = s.inventoryDomain.Unequip(s.ctx, sess, req)
	}
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (s *srv) cmdInventorySell(cctx *cli.Context) error {
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

	itemID := cctx.Args().First()
	if itemID == "" {
		return fmt.Errorf("missing item id argument")
	}

	items, err := s.inventoryDomain.Items(s.ctx, sess, address)
	if err != nil {
		return err
	}

	for _, view := range items {
		if view.ID == itemID {
			resp, err := s.inventoryDomain.Sell(s.ctx, sess, address, view.Item)
			if err != nil {
				return err
			}

			return printJSON(resp)
		}
	}

	return fmt.Errorf("not found item %s", itemID)
}
