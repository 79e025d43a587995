// Package transport exposes the JSON HTTP surface over the engines.
package transport

import (
	"context"
	"net/http"

	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/service/motd"
	"github.com/tstnetwork/tstnode/internal/service/search"
	"github.com/tstnetwork/tstnode/internal/service/work"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=transport

// AddressService is the address surface the handlers use.
type AddressService interface {
	Get(ctx context.Context, address string, fetchNames bool) (*model.Address, int, error)
	List(ctx context.Context, limit, offset int) ([]model.Address, int, error)
	Rich(ctx context.Context, limit, offset int) ([]model.Address, int, error)
	Lookup(ctx context.Context, addresses []string) ([]model.Address, error)
}

// BlockService is the block surface the handlers use.
type BlockService interface {
	Get(ctx context.Context, height uint64) (*model.Block, error)
	Last(ctx context.Context) (*model.Block, error)
	Lowest(ctx context.Context) (*model.Block, error)
	List(ctx context.Context, limit, offset int, ascending bool) ([]model.Block, int, error)
	ByAddress(ctx context.Context, address string, limit, offset int) ([]model.Block, int, error)
	NextBaseValue(ctx context.Context) (uint32, error)
	Submit(ctx context.Context, meta model.RequestMeta, address string, nonce []byte) (*model.Block, uint64, error)
	Lookup(ctx context.Context, addresses []string, orderBy string, descending bool, limit, offset int) ([]model.Block, int, error)
}

// TransactionService is the transaction surface the handlers use.
type TransactionService interface {
	Get(ctx context.Context, id uint64) (*model.Transaction, error)
	List(ctx context.Context, limit, offset int, ascending bool) ([]model.Transaction, int, error)
	ByAddress(ctx context.Context, address string, limit, offset int) ([]model.Transaction, int, error)
	Push(ctx context.Context, meta model.RequestMeta, privatekey, to string, amount uint64, metadata *string) (*model.Transaction, error)
	Lookup(ctx context.Context, addresses []string, includeMined bool, orderBy string, descending bool, limit, offset int) ([]model.Transaction, int, error)
}

// NameService is the registry surface the handlers use.
type NameService interface {
	Cost() uint64
	Bonus(ctx context.Context) (int, error)
	Get(ctx context.Context, name string) (*model.Name, error)
	Check(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]model.Name, int, error)
	Newest(ctx context.Context, limit, offset int) ([]model.Name, int, error)
	ByOwner(ctx context.Context, owner string, limit, offset int) ([]model.Name, int, error)
	Register(ctx context.Context, meta model.RequestMeta, privatekey, name string) (*model.Name, error)
	Transfer(ctx context.Context, meta model.RequestMeta, privatekey, name, to string) (*model.Name, error)
	UpdateARecord(ctx context.Context, meta model.RequestMeta, privatekey, name, record string) (*model.Name, error)
	Lookup(ctx context.Context, owners []string, orderBy string, descending bool, limit, offset int) ([]model.Name, int, error)
}

// StakingService is the staking surface the handlers use.
type StakingService interface {
	Get(ctx context.Context, address string) (*model.Stake, error)
	List(ctx context.Context, limit, offset int) ([]model.Stake, int, error)
	Deposit(ctx context.Context, meta model.RequestMeta, privatekey string, amount uint64) (*model.Stake, error)
	Withdraw(ctx context.Context, meta model.RequestMeta, privatekey string, amount uint64) (*model.Stake, error)
	Validator(ctx context.Context) (string, error)
	Penalties(ctx context.Context, limit, offset int) ([]model.Address, int, error)
}

// WorkService is the work surface the handlers use.
type WorkService interface {
	Current(ctx context.Context) (uint64, error)
	Day(ctx context.Context) ([]uint64, error)
	Detailed(ctx context.Context) (*work.Detail, error)
}

// SearchService is the search surface the handlers use.
type SearchService interface {
	Query(ctx context.Context, query string) (*search.Result, error)
	Extended(ctx context.Context, query string) (*search.ExtendedResult, error)
	ExtendedTransactions(ctx context.Context, query, kind string, limit, offset int) ([]model.Transaction, int, error)
}

// MOTDService aggregates the node status document.
type MOTDService interface {
	Get(ctx context.Context) (*motd.Info, error)
}

// GatewayHandlers mounts the WebSocket handshake endpoints.
type GatewayHandlers interface {
	StartHandler(w http.ResponseWriter, r *http.Request)
	ConnectHandler(w http.ResponseWriter, r *http.Request)
}
