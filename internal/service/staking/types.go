// Package staking implements the proof-of-stake engine: deposits,
// withdrawals, validator penalties and the weighted validator lottery.
package staking

import (
	"context"

	"github.com/tstnetwork/tstnode/internal/model"
)

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=staking

// Repository is the durable store surface the engine uses.
type Repository interface {
	Address(ctx context.Context, address string) (*model.Address, error)
	DepositStake(ctx context.Context, address string, amount uint64, row *model.Transaction) (*model.Stake, error)
	WithdrawStake(ctx context.Context, address string, amount uint64, row *model.Transaction) (*model.Stake, error)
	PenalizeStaker(ctx context.Context, address string, penalty uint64) (*model.Stake, error)
	ValidatorCandidates(ctx context.Context) ([]model.Address, error)
	Stakes(ctx context.Context, limit, offset int) ([]model.Address, int, error)
	Penalties(ctx context.Context, limit, offset int) ([]model.Address, int, error)
}

// StateStore holds the current validator election.
type StateStore interface {
	Validator(ctx context.Context) (string, error)
	SetValidator(ctx context.Context, address string) error
}

// Authenticator resolves a private key to its authenticated address row.
type Authenticator interface {
	Authenticate(ctx context.Context, meta model.RequestMeta, privatekey string, logType model.AuthLogType) (*model.Address, error)
}
