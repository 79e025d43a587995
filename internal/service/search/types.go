// Package search implements the typed search surface: exact-match probes
// across the ledger entities plus transaction-focused extended search.
package search

import (
	"context"

	"github.com/tstnetwork/tstnode/internal/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=search

// Repository is the ledger surface the probes read.
type Repository interface {
	Address(ctx context.Context, address string) (*model.Address, error)
	Block(ctx context.Context, id uint64) (*model.Block, error)
	Transaction(ctx context.Context, id uint64) (*model.Transaction, error)
	Name(ctx context.Context, name string) (*model.Name, error)
	AddressTransactions(ctx context.Context, address string, limit, offset int) ([]model.Transaction, int, error)
	NameTransactions(ctx context.Context, name string, limit, offset int) ([]model.Transaction, int, error)
	MetadataTransactions(ctx context.Context, query string, limit, offset int) ([]model.Transaction, int, error)
}
