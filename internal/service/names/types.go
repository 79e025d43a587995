// Package names implements the name registry: purchase, transfer, data
// record updates and the unpaid-pool queries.
package names

import (
	"context"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=names

// Repository is the durable store surface the registry uses.
type Repository interface {
	Name(ctx context.Context, name string) (*model.Name, error)
	RegisterName(ctx context.Context, name *model.Name, cost uint64, row *model.Transaction) error
	TransferName(ctx context.Context, name, owner, newOwner string, now time.Time, row *model.Transaction) error
	UpdateNameRecord(ctx context.Context, name, owner string, record *string, now time.Time, row *model.Transaction) error
	Names(ctx context.Context, limit, offset int) ([]model.Name, int, error)
	NewestNames(ctx context.Context, limit, offset int) ([]model.Name, int, error)
	NamesByOwner(ctx context.Context, owner string, limit, offset int) ([]model.Name, int, error)
	CountNames(ctx context.Context) (int, error)
	CountUnpaidNames(ctx context.Context) (int, error)
	LookupNames(ctx context.Context, owners []string, order postgres.LookupOrder, limit, offset int) ([]model.Name, int, error)
}

// Authenticator resolves a private key to its authenticated address row.
type Authenticator interface {
	Authenticate(ctx context.Context, meta model.RequestMeta, privatekey string, logType model.AuthLogType) (*model.Address, error)
}
