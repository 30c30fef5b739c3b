package repository

import (
	"context"

	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

type SessionRepository interface {
	Get(ctx context.Context) (*entity.Session, error)
	Upsert(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context) error
}

type sessionRepository struct{}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	result := &entity.Session{}
	if err := xcontext.DB(ctx).Order("created_at desc").Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sessionRepository) Upsert(ctx context.Context, session *entity.Session) error {
	existing := &entity.Session{}
	err := xcontext.DB(ctx).Take(existing, "line_user_id=?", session.LineUserID).Error
	if err != nil {
		return xcontext.DB(ctx).Create(session).Error
	}

	session.ID = existing.ID
	return xcontext.DB(ctx).Model(existing).Updates(map[string]any{
		"wallet_address": session.WalletAddress,
		"user_json":      session.UserJSON,
		"pet_json":       session.PetJSON,
	}).Error
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	return xcontext.DB(ctx).Where("1 = 1").Delete(&entity.Session{}).Error
}
