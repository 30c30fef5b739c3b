package client

import (
	"context"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/session"
	"github.com/spacepet-lab/client/pkg/api"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

type InventoryCaller interface {
	GetByWallet(ctx context.Context, s *session.Session, walletAddress string) ([]model.Item, error)
	GetEquipped(ctx context.Context, s *session.Session, walletAddress string) ([]model.Item, error)
	Equip(ctx context.Context, s *session.Session, req *model.EquipItemRequest) (*model.EquipItemResponse, error)
	Unequip(ctx context.Context, s *session.Session, req *model.EquipItemRequest) (*model.EquipItemResponse, error)
	Sell(ctx context.Context, s *session.Session, req *model.SellItemRequest) (*model.SellItemResponse, error)
}

type inventoryCaller struct {
	apiGenerator api.Generator
}

func NewInventoryCaller(apiGenerator api.Generator) *inventoryCaller {
	return &inventoryCaller{apiGenerator: apiGenerator}
}

func (c *inventoryCaller) GetByWallet(
	ctx context.Context, s *session.Session, walletAddress string,
) ([]model.Item, error) {
	return c.getItems(ctx, s, "/inventory/wallet/%s", walletAddress)
}

func (c *inventoryCaller) GetEquipped(
	ctx context.Context, s *session.Session, walletAddress string,
) ([]model.Item, error) {
	return c.getItems(ctx, s, "/inventory/equipped/%s", walletAddress)
}

func (c *inventoryCaller) getItems(
	ctx context.Context, s *session.Session, path, walletAddress string,
) ([]model.Item, error) {
	if walletAddress == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty wallet address")
	}

	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New(path, walletAddress).GET(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call inventory: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := model.GetInventoryResponse{}
	if err := resp.Decode(&result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode inventory response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid inventory response")
	}

	return result.Items, nil
}

func (c *inventoryCaller) Equip(
	ctx context.Context, s *session.Session, req *model.EquipItemRequest,
) (*model.EquipItemResponse, error) {
	return c.equipAction(ctx, s, "/inventory/equip", req)
}

func (c *inventoryCaller) Unequip(
	ctx context.Context, s *session.Session, req *model.EquipItemRequest,
) (*model.EquipItemResponse, error) {
	return c.equipAction(ctx, s, "/inventory/unequip", req)
}

func (c *inventoryCaller) equipAction(
	ctx context.Context, s *session.Session, path string, req *model.EquipItemRequest,
) (*model.EquipItemResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New(path).Body(api.JSONOf(req)).POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call equip action: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.EquipItemResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode equip response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid equip response")
	}

	return result, nil
}

func (c *inventoryCaller) Sell(
	ctx context.Context, s *session.Session, req *model.SellItemRequest,
) (*model.SellItemResponse, error) {
	opt, err := identityOpt(ctx, s)
	if err != nil {
		return nil, err
	}

	resp, err := c.apiGenerator.New("/inventory/sell").Body(api.JSONOf(req)).POST(ctx, opt)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call sell item: %v", err)
		return nil, errorx.Unknown
	}

	if err := resp.ParseError(); err != nil {
		return nil, err
	}

	result := &model.SellItemResponse{}
	if err := resp.Decode(result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode sell response: %v", err)
		return nil, errorx.New(errorx.BadResponse, "Invalid sell response")
	}

	return result, nil
}
