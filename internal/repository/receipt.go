package repository

import (
	"context"

	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.DelegationReceipt) error
	GetByTxHash(ctx context.Context, txHash string) (*entity.DelegationReceipt, error)
	GetBySigHash(ctx context.Context, sigHash string) (*entity.DelegationReceipt, error)
	GetList(ctx context.Context, fromAddress string, offset, limit int) ([]entity.DelegationReceipt, error)
}

type receiptRepository struct{}

func NewReceiptRepository() ReceiptRepository {
	return &receiptRepository{}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.DelegationReceipt) error {
	return xcontext.DB(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByTxHash(ctx context.Context, txHash string) (*entity.DelegationReceipt, error) {
	result := &entity.DelegationReceipt{}
	if err := xcontext.DB(ctx).Take(result, "tx_hash=?", txHash).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *receiptRepository) GetBySigHash(ctx context.Context, sigHash string) (*entity.DelegationReceipt, error) {
	result := &entity.DelegationReceipt{}
	if err := xcontext.DB(ctx).Take(result, "sig_hash=?", sigHash).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *receiptRepository) GetList(
	ctx context.Context, fromAddress string, offset, limit int,
) ([]entity.DelegationReceipt, error) {
	result := []entity.DelegationReceipt{}
	if err := xcontext.DB(ctx).
		Where("from_address=?", fromAddress).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
