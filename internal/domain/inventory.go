package domain

import (
	"context"

	"github.com/spacepet-lab/client/internal/client"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/ethutil"
)

type InventoryDomain interface {
	Items(ctx context.Context, s *session.Session, walletAddress string) ([]model.ItemView, error)
	Equipped(ctx context.Context, s *session.Session, walletAddress string) ([]model.ItemView, error)
	Equip(ctx context.Context, s *session.Session, req *model.EquipItemRequest) (*model.EquipItemResponse, error)
	Unequip(ctx context.Context, s *session.Session, req *model.EquipItemRequest) (*model.EquipItemResponse, error)
	Sell(ctx context.Context, s *session.Session, walletAddress string, item model.Item) (*model.SellItemResponse, error)
}

type inventoryDomain struct {
	inventoryCaller client.InventoryCaller
}

func NewInventoryDomain(inventoryCaller client.InventoryCaller) *inventoryDomain {
	return &inventoryDomain{inventoryCaller: inventoryCaller}
}

func (d *inventoryDomain) Items(
	ctx context.Context, s *session.Session, walletAddress string,
) ([]model.ItemView, error) {
	if !ethutil.IsHexAddress(walletAddress) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address %s", walletAddress)
	}

	items, err := d.inventoryCaller.GetByWallet(ctx, s, walletAddress)
	if err != nil {
		return nil, err
	}

	return convertItems(items), nil
}

func (d *inventoryDomain) Equipped(
	ctx context.Context, s *session.Session, walletAddress string,
) ([]model.ItemView, error) {
	if !ethutil.IsHexAddress(walletAddress) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address %s", walletAddress)
	}

	items, err := d.inventoryCaller.GetEquipped(ctx, s, walletAddress)
	if err != nil {
		return nil, err
	}

	return convertItems(items), nil
}

func (d *inventoryDomain) Equip(
	ctx context.Context, s *session.Session, req *model.EquipItemRequest,
) (*model.EquipItemResponse, error) {
	return d.inventoryCaller.Equip(ctx, s, req)
}

func (d *inventoryDomain) Unequip(
	ctx context.Context, s *session.Session, req *model.EquipItemRequest,
) (*model.EquipItemResponse, error) {
	return d.inventoryCaller.Unequip(ctx, s, req)
}

// Sell lists an item on the marketplace at its score-derived price. The
// price is computed here, the seller never picks a number.
func (d *inventoryDomain) Sell(
	ctx context.Context, s *session.Session, walletAddress string, item model.Item,
) (*model.SellItemResponse, error) {
	if !ethutil.IsHexAddress(walletAddress) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address %s", walletAddress)
	}

	if item.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty item id")
	}

	return d.inventoryCaller.Sell(ctx, s, &model.SellItemRequest{
		WalletAddress: walletAddress,
		ItemID:        item.ID,
		PriceUSDT:     model.ItemPriceUSDT(item.Score),
	})
}

func convertItems(items []model.Item) []model.ItemView {
	views := make([]model.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, model.ConvertItem(item))
	}

	return views
}
