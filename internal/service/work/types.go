// Package work exposes the mining difficulty surface: the current target,
// the day-long history ring and the reward projection for the next block.
package work

import (
	"context"

	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=work

// Repository is the ledger surface the engine reads.
type Repository interface {
	LastBlock(ctx context.Context) (*model.Block, error)
	CountUnpaidNames(ctx context.Context) (int, error)
	CountPenalized(ctx context.Context) (int, error)
	UnpaidNameStats(ctx context.Context) (postgres.NameStats, error)
}

// StateStore is the fast-state surface holding the target and the ring.
type StateStore interface {
	Work(ctx context.Context) (uint64, error)
	PushWorkSample(ctx context.Context, work uint64) error
	WorkOverTime(ctx context.Context) ([]uint64, error)
}
