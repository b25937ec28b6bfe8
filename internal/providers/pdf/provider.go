package pdf

import (
	"context"
	"io"
)

// Provider renders an A4 duplicate of a printed receipt for archiving
// and on-screen preview. The thermal stream stays the source of truth;
// this is a convenience copy.
type Provider interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}
