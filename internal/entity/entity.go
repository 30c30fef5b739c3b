package entity

import (
	"context"
	"time"

	"github.com/spacepet-lab/client/pkg/xcontext"
	"gorm.io/gorm"
)

type Base struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Session is the locally persisted session record, the analogue of the
// browser storage the web client keeps. Raw JSON blobs are treated as absent
// when they fail to parse, parse failures are never an error.
type Session struct {
	Base

	LineUserID    string `gorm:"uniqueIndex"`
	WalletAddress string
	UserJSON      []byte
	PetJSON       []byte
}

// DelegationReceipt records a fee-delegated submission that got a successful
// tx hash back. Its presence blocks any repeat submission of the same hash.
type DelegationReceipt struct {
	Base

	TxHash string `gorm:"uniqueIndex"`

	// SigHash is the prepare-signing digest the user signed. A receipt with
	// the same digest means the same prepared transaction was already
	// committed.
	SigHash           string `gorm:"uniqueIndex"`
	FromAddress       string
	TxType            string
	GasUsed           string
	EffectiveGasPrice string
	FeePayer          string
}

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Session{},
		&DelegationReceipt{},
	)
}
