// Package addresses implements the address ledger: lazy account creation,
// the private-key authentication contract and the deduplicated auth log.
package addresses

import (
	"context"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=addresses

// Repository is the durable store surface the ledger uses.
type Repository interface {
	Address(ctx context.Context, address string) (*model.Address, error)
	CreateAddress(ctx context.Context, row *model.Address) error
	SetPrivatekeyHash(ctx context.Context, address, hash string) error
	Addresses(ctx context.Context, limit, offset int) ([]model.Address, int, error)
	RichAddresses(ctx context.Context, limit, offset int) ([]model.Address, int, error)
	LookupAddresses(ctx context.Context, addresses []string) ([]model.Address, error)
	CountNamesByOwner(ctx context.Context, owner string) (int, error)
	InsertAuthLogEntries(ctx context.Context, entries []model.AuthLogEntry) error
	PruneAuthLog(ctx context.Context, before time.Time) (int, error)
}
