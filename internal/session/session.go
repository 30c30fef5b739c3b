package session

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/spacepet-lab/client/internal/entity"
	"github.com/spacepet-lab/client/internal/model"
	"github.com/spacepet-lab/client/internal/repository"
	"github.com/spacepet-lab/client/pkg/errorx"
	"github.com/spacepet-lab/client/pkg/xcontext"
)

// Session is the authenticated session passed explicitly into every caller.
// Authenticated requests derive their identity header from it, there is no
// ambient global lookup.
type Session struct {
	LineUserID    string
	WalletAddress string
	User          model.User
	Pet           *model.Pet
}

func (s *Session) Valid() bool {
	return s != nil && s.LineUserID != ""
}

// Identity returns the identity header value of this session. A missing
// session fails fast before any request is sent.
func (s *Session) Identity() (string, error) {
	if !s.Valid() {
		return "", errorx.New(errorx.Unauthenticated, "No authenticated session")
	}

	return s.LineUserID, nil
}

// Store persists sessions in the local sqlite store. Missing or malformed
// persisted values are treated as absent, never as an error.
type Store struct {
	sessionRepo repository.SessionRepository
}

func NewStore(sessionRepo repository.SessionRepository) *Store {
	return &Store{sessionRepo: sessionRepo}
}

func (st *Store) Load(ctx context.Context) (*Session, error) {
	record, err := st.sessionRepo.Get(ctx)
	if err != nil {
		return nil, nil
	}

	session := &Session{
		LineUserID:    record.LineUserID,
		WalletAddress: record.WalletAddress,
	}

	if len(record.UserJSON) > 0 {
		if err := json.Unmarshal(record.UserJSON, &session.User); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot parse stored user record: %v", err)
			session.User = model.User{}
		}
	}

	if len(record.PetJSON) > 0 {
		pet := model.Pet{}
		if err := json.Unmarshal(record.PetJSON, &pet); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot parse stored pet record: %v", err)
		} else {
			session.Pet = &pet
		}
	}

	return session, nil
}

func (st *Store) Save(ctx context.Context, session *Session) error {
	if !session.Valid() {
		return errorx.New(errorx.BadRequest, "Cannot save an empty session")
	}

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return err
	}

	var petJSON []byte
	if session.Pet != nil {
		if petJSON, err = json.Marshal(session.Pet); err != nil {
			return err
		}
	}

	return st.sessionRepo.Upsert(ctx, &entity.Session{
		Base:          entity.Base{ID: uuid.NewString()},
		LineUserID:    session.LineUserID,
		WalletAddress: session.WalletAddress,
		UserJSON:      userJSON,
		PetJSON:       petJSON,
	})
}

func (st *Store) Clear(ctx context.Context) error {
	return st.sessionRepo.Delete(ctx)
}
