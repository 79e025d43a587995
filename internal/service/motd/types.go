// Package motd aggregates node status for the root endpoint: the message of
// the day, the enabled block-production method, the chain tip and the
// network constants.
package motd

import (
	"context"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=motd

// Repository is the ledger surface the aggregation reads.
type Repository interface {
	LastBlock(ctx context.Context) (*model.Block, error)
}

// StateStore is the fast-state surface the aggregation reads.
type StateStore interface {
	MOTD(ctx context.Context) (string, time.Time, error)
	SetMOTD(ctx context.Context, motd string, now time.Time) error
	Work(ctx context.Context) (uint64, error)
	Flag(ctx context.Context, name string) (bool, error)
}
