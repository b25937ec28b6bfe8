package domain

import (
	"context"
	"time"

	receiptdomain "github.com/smallbiznis/pompabon/internal/receipt/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoreKey is the fixed slot under which the single in-progress form
// draft is persisted.
const StoreKey = "pompabon:draft"

// Record is the persisted draft slot: one row keyed by StoreKey with
// the form field values as a JSON payload.
type Record struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Payload   datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}

func (Record) TableName() string {
	return "draft_slots"
}

type Repository interface {
	Find(ctx context.Context, db *gorm.DB, key string) (*Record, error)
	Upsert(ctx context.Context, db *gorm.DB, record *Record) error
}

// Service persists in-progress form values across reloads. Transaction-
// scoped fields (total amount, transaction number, and the derived
// volume) are excluded from rehydration and cleared after a successful
// print; everything else is restored verbatim.
type Service interface {
	Load(ctx context.Context) (receiptdomain.Transaction, error)
	Save(ctx context.Context, tx receiptdomain.Transaction) (receiptdomain.Transaction, error)
	ClearTransactionScoped(ctx context.Context) error
}
