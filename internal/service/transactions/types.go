// Package transactions implements the value-transfer engine: atomic
// transfers, name-aware recipient routing and the ledger queries.
package transactions

import (
	"context"

	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=transactions

// Repository is the durable store surface the engine uses.
type Repository interface {
	Name(ctx context.Context, name string) (*model.Name, error)
	PerformTransfer(ctx context.Context, sender, recipient string, amount uint64, row *model.Transaction) error
	Transaction(ctx context.Context, id uint64) (*model.Transaction, error)
	Transactions(ctx context.Context, limit, offset int, ascending bool) ([]model.Transaction, int, error)
	AddressTransactions(ctx context.Context, address string, limit, offset int) ([]model.Transaction, int, error)
	LookupTransactions(ctx context.Context, addresses []string, includeMined bool, order postgres.LookupOrder, limit, offset int) ([]model.Transaction, int, error)
}

// Authenticator resolves a private key to its authenticated address row.
type Authenticator interface {
	Authenticate(ctx context.Context, meta model.RequestMeta, privatekey string, logType model.AuthLogType) (*model.Address, error)
}
