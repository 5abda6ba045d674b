package ledger

import (
	"context"
	"fmt"
)

// TransferClient moves a pre-approved allowance from the buyer's account to
// the seller's, for exactly the given amount in the ledger's minor unit.
// Implementations must attempt the transfer exactly once per call; retrying
// is the caller's decision, never the client's.
type TransferClient interface {
	Transfer(ctx context.Context, from, to string, amount uint64) (*Receipt, error)
}

// Receipt acknowledges a settled transfer.
type Receipt struct {
	BlockIndex uint64 `json:"blockIndex"`
}

// TransferError is any failed transfer: network trouble, insufficient
// allowance, a bad destination. Message carries the ledger's own wording
// so callers can surface it unmasked.
type TransferError struct {
	Message string
}

func (e *TransferError) Error() string {
	return e.Message
}

func NewTransferError(format string, args ...interface{}) *TransferError {
	return &TransferError{Message: fmt.Sprintf(format, args...)}
}
