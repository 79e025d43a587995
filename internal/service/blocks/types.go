// Package blocks implements the block engine: submission validation, the
// proof-of-work gate, reward computation, work retargeting and the genesis
// bootstrap.
package blocks

import (
	"context"

	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=blocks

// Repository is the durable store surface the engine uses.
type Repository interface {
	Block(ctx context.Context, id uint64) (*model.Block, error)
	LastBlock(ctx context.Context) (*model.Block, error)
	LowestHashBlock(ctx context.Context) (*model.Block, error)
	CreateBlock(ctx context.Context, row *model.Block) error
	AppendBlock(ctx context.Context, block *model.Block, baseValue uint32) (*model.Transaction, error)
	Blocks(ctx context.Context, limit, offset int, ascending bool) ([]model.Block, int, error)
	BlocksByAddress(ctx context.Context, address string, limit, offset int) ([]model.Block, int, error)
	LookupBlocks(ctx context.Context, addresses []string, order postgres.LookupOrder, limit, offset int) ([]model.Block, int, error)
}

// StateStore is the fast state surface the engine uses: the work target,
// the elected validator and the block-production flags.
type StateStore interface {
	Work(ctx context.Context) (uint64, error)
	SetWork(ctx context.Context, work uint64) error
	Validator(ctx context.Context) (string, error)
	SetValidator(ctx context.Context, address string) error
	Flag(ctx context.Context, name string) (bool, error)
	GenesisDone(ctx context.Context) (bool, error)
	MarkGenesisDone(ctx context.Context) error
}

// AuthLogger records mining submissions against the auth log.
type AuthLogger interface {
	LogMining(meta model.RequestMeta, address string)
}
