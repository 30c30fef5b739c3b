package domain

import (
	"context"
	"testing"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type mockInventoryCaller struct {
	items    []model.Item
	lastSell *model.SellItemRequest
}

func (c *mockInventoryCaller) GetByWallet(
	ctx context.Context, s *session.Session, walletAddress string,
) ([]model.Item, error) {
	return c.items, nil
}

func (c *mockInventoryCaller) GetEquipped(
	ctx context.Context, s *session.Session, walletAddress string,
) ([]model.Item, error) {
	equipped := []model.Item{}
	for _, item := range c.items {
		if item.Equipped {
			equipped = append(equipped, item)
		}
	}

	return equipped, nil
}

func (c *mockInventoryCaller) Equip(
	ctx context.Context, s *session.Session, req *model.EquipItemRequest,
) (*model.EquipItemResponse, error) {
	return &model.EquipItemResponse{Success: true}, nil
}

func (c *mockInventoryCaller) Unequip(
	ctx context.Context, s *session.Session, req *model.EquipItemRequest,
) (*model.EquipItemResponse, error) {
	return &model.EquipItemResponse{Success: true}, nil
}

func (c *mockInventoryCaller) Sell(
	ctx context.Context, s *session.Session, req *model.SellItemRequest,
) (*model.SellItemResponse, error) {
	c.lastSell = req
	return &model.SellItemResponse{Success: true, TxHash: "0xsold"}, nil
}

func Test_inventoryDomain_Items(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &mockInventoryCaller{items: []model.Item{
		{ID: "i1", Name: "Star helmet", Score: 250, Equipped: true},
		{ID: "i2", Name: "Moon boots", Score: 80},
	}}
	d := NewInventoryDomain(caller)

	address := "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
	views, err := d.Items(ctx, testutil.Session1, address)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, model.RarityEpic, views[0].Rarity)
	require.Equal(t, 31, views[0].PriceUSDT)
	require.Equal(t, model.RarityBasic, views[1].Rarity)

	equipped, err := d.Equipped(ctx, testutil.Session1, address)
	require.NoError(t, err)
	require.Len(t, equipped, 1)

	_, err = d.Items(ctx, testutil.Session1, "bogus")
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_inventoryDomain_Sell_DerivesPrice(t *testing.T) {
	ctx := testutil.MockContext()
	caller := &mockInventoryCaller{}
	d := NewInventoryDomain(caller)

	address := "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
	resp, err := d.Sell(ctx, testutil.Session1, address, model.Item{ID: "i1", Score: 320})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, 64, caller.lastSell.PriceUSDT)
	require.Equal(t, address, caller.lastSell.WalletAddress)

	_, err = d.Sell(ctx, testutil.Session1, address, model.Item{Score: 320})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}
