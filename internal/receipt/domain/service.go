package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type PrintRequest struct {
	Transaction Transaction
}

type PrintResponse struct {
	JobID             snowflake.ID `json:"job_id"`
	TransactionNumber string       `json:"transaction_number"`
	VolumeLiters      float64      `json:"volume_liters"`
}

type PreviewResponse struct {
	TransactionNumber string `json:"transaction_number"`
	Text              string `json:"text"`
}

// Service composes fuel receipts and dispatches them to the printer.
type Service interface {
	// Print validates the transaction, fills the transaction number if
	// absent, composes the command stream and sends it to the device.
	// On success the persisted draft's transaction-scoped fields are
	// cleared; on dispatch failure they are left untouched so the
	// operator can retry without re-entering data.
	Print(ctx context.Context, req PrintRequest) (PrintResponse, error)

	// Preview composes the receipt and returns its text rows without
	// touching the printer or the draft.
	Preview(ctx context.Context, req PrintRequest) (PreviewResponse, error)
}
