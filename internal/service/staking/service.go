package staking

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/bus"
	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/crypto"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
)

// Service is the proof-of-stake engine.
type Service struct {
	repo      Repository
	state     StateStore
	auth      Authenticator
	publisher bus.Publisher
	constants config.Constants
	logger    *zap.Logger
	now       func() time.Time
	roll      func(total uint64) uint64
}

// New builds the engine.
func New(repo Repository, state StateStore, auth Authenticator, publisher bus.Publisher, constants config.Constants, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		state:     state,
		auth:      auth,
		publisher: publisher,
		constants: constants,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		roll: func(total uint64) uint64 {
			return uint64(rand.Int63n(int64(total)))
		},
	}
}

// Deposit moves amount from the sender's balance into their stake and marks
// the stake active.
func (s *Service) Deposit(ctx context.Context, meta model.RequestMeta, privatekey string, amount uint64) (*model.Stake, error) {
	if amount < 1 {
		return nil, apierr.InvalidParameter("amount")
	}
	sender, err := s.auth.Authenticate(ctx, meta, privatekey, model.AuthLogAuth)
	if err != nil {
		return nil, err
	}
	// Fast rejection; the repository re-checks under a row lock.
	if sender.Balance < amount {
		return nil, apierr.InsufficientFunds()
	}

	from := model.PseudoStaking
	row := &model.Transaction{
		From:      &from,
		To:        sender.Address,
		Value:     amount,
		Time:      s.now(),
		UserAgent: meta.UserAgent,
		Origin:    meta.Origin,
	}
	view, err := s.repo.DepositStake(ctx, sender.Address, amount, row)
	if err != nil {
		if errors.Is(err, postgres.ErrInsufficientFunds) {
			return nil, apierr.InsufficientFunds()
		}
		return nil, err
	}

	s.publisher.Publish(bus.Event{Type: bus.EventTransaction, Transaction: row})
	s.publisher.Publish(bus.Event{Type: bus.EventStake, Stake: view})
	return view, nil
}

// Withdraw moves amount from the sender's stake back to their balance. The
// stake stays active only while something is left in it.
func (s *Service) Withdraw(ctx context.Context, meta model.RequestMeta, privatekey string, amount uint64) (*model.Stake, error) {
	if amount < 1 {
		return nil, apierr.InvalidParameter("amount")
	}
	sender, err := s.auth.Authenticate(ctx, meta, privatekey, model.AuthLogAuth)
	if err != nil {
		return nil, err
	}
	// Fast rejection; the repository re-checks under a row lock.
	if sender.Stake < amount {
		return nil, apierr.InsufficientFunds()
	}

	row := &model.Transaction{
		From:      &sender.Address,
		To:        model.PseudoStaking,
		Value:     amount,
		Time:      s.now(),
		UserAgent: meta.UserAgent,
		Origin:    meta.Origin,
	}
	view, err := s.repo.WithdrawStake(ctx, sender.Address, amount, row)
	if err != nil {
		if errors.Is(err, postgres.ErrInsufficientFunds) {
			return nil, apierr.InsufficientFunds()
		}
		return nil, err
	}

	s.publisher.Publish(bus.Event{Type: bus.EventTransaction, Transaction: row})
	s.publisher.Publish(bus.Event{Type: bus.EventStake, Stake: view})
	return view, nil
}

// Penalize docks a validator that sat out its epoch. The deduction is capped
// at the configured penalty and at whatever stake is left.
func (s *Service) Penalize(ctx context.Context, address string) error {
	view, err := s.repo.PenalizeStaker(ctx, address, s.constants.ValidatorPenalty)
	if err != nil {
		return err
	}
	if view == nil {
		return nil
	}
	s.logger.Info("penalized absent validator",
		zap.String("address", address),
		zap.Uint64("remaining_stake", view.Stake))

	s.publisher.Publish(bus.Event{Type: bus.EventStake, Stake: view})
	return nil
}

// SelectValidator runs one election epoch: the previous validator is
// penalized for the block it never produced, then a new one is drawn with
// probability proportional to stake.
func (s *Service) SelectValidator(ctx context.Context) error {
	previous, err := s.state.Validator(ctx)
	if err != nil {
		return err
	}
	if previous != "" {
		if err := s.Penalize(ctx, previous); err != nil {
			return err
		}
	}

	candidates, err := s.repo.ValidatorCandidates(ctx)
	if err != nil {
		return err
	}
	validator := s.pickValidator(candidates)
	if err := s.state.SetValidator(ctx, validator); err != nil {
		return err
	}

	s.logger.Info("validator elected",
		zap.String("validator", validator),
		zap.Int("candidates", len(candidates)))
	s.publisher.Publish(bus.Event{Type: bus.EventValidator, Validator: validator})
	return nil
}

// pickValidator draws one candidate weighted by stake. Ties on a cumulative
// boundary go to the earlier candidate.
func (s *Service) pickValidator(candidates []model.Address) string {
	var total uint64
	for _, c := range candidates {
		total += c.Stake
	}
	if total == 0 {
		return ""
	}

	r := s.roll(total)
	var sum uint64
	for _, c := range candidates {
		sum += c.Stake
		if r < sum {
			return c.Address
		}
	}
	return candidates[len(candidates)-1].Address
}

// Validator returns the address elected for the current epoch, empty when
// nobody holds the slot.
func (s *Service) Validator(ctx context.Context) (string, error) {
	return s.state.Validator(ctx)
}

// Get returns the staking position of a single address.
func (s *Service) Get(ctx context.Context, address string) (*model.Stake, error) {
	if !crypto.IsValidAddress(s.constants.AddressPrefix, address) {
		return nil, apierr.InvalidParameter("address")
	}
	row, err := s.repo.Address(ctx, address)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierr.AddressNotFound()
	}
	view := row.StakeView()
	return &view, nil
}

// List returns active staking positions, largest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]model.Stake, int, error) {
	rows, total, err := s.repo.Stakes(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views := make([]model.Stake, len(rows))
	for i := range rows {
		views[i] = rows[i].StakeView()
	}
	return views, total, nil
}

// Penalties returns addresses currently carrying a validator penalty.
func (s *Service) Penalties(ctx context.Context, limit, offset int) ([]model.Address, int, error) {
	return s.repo.Penalties(ctx, limit, offset)
}
