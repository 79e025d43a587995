// Package gateway is the WebSocket front of the node: token handshake,
// session lifecycle, request/response messages and event fan-out.
package gateway

import (
	"context"

	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/service/motd"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=gateway

// AddressService resolves and authenticates addresses.
type AddressService interface {
	Authenticate(ctx context.Context, meta model.RequestMeta, privatekey string, logType model.AuthLogType) (*model.Address, error)
	Get(ctx context.Context, address string, fetchNames bool) (*model.Address, int, error)
}

// BlockService accepts block submissions.
type BlockService interface {
	Submit(ctx context.Context, meta model.RequestMeta, address string, nonce []byte) (*model.Block, uint64, error)
}

// TransactionService pushes transfers.
type TransactionService interface {
	Push(ctx context.Context, meta model.RequestMeta, privatekey, to string, amount uint64, metadata *string) (*model.Transaction, error)
}

// StakeService reads staking positions.
type StakeService interface {
	Get(ctx context.Context, address string) (*model.Stake, error)
}

// WorkService reads the current work target.
type WorkService interface {
	Current(ctx context.Context) (uint64, error)
}

// MOTDService supplies the hello payload.
type MOTDService interface {
	Get(ctx context.Context) (*motd.Info, error)
}

// Metrics observes gateway activity.
type Metrics interface {
	SessionOpened()
	SessionClosed()
	EventBroadcast(event string)
	EventDropped()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) SessionOpened()        {}
func (NopMetrics) SessionClosed()        {}
func (NopMetrics) EventBroadcast(string) {}
func (NopMetrics) EventDropped()         {}
