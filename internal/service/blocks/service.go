package blocks

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/bus"
	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/crypto"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/repository/postgres"
	"github.com/tstnetwork/tstnode/internal/repository/redisstore"
)

// GenesisAddress receives the genesis block. It is a legacy-form address no
// key derives to.
const GenesisAddress = "0000000000"

// Service is the block engine.
type Service struct {
	repo      Repository
	store     StateStore
	authLog   AuthLogger
	publisher bus.Publisher
	constants config.Constants
	debug     bool
	logger    *zap.Logger
	now       func() time.Time
}

// New builds the engine. debug enables the free-nonce flag, which bypasses
// the proof-of-work check and must stay off in production.
func New(repo Repository, store StateStore, authLog AuthLogger, publisher bus.Publisher, constants config.Constants, debug bool, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		authLog:   authLog,
		publisher: publisher,
		constants: constants,
		debug:     debug,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates a block submission against the active production method
// and, when accepted, appends the block, credits the producer and retargets
// the work. The new work target is returned alongside the block.
func (s *Service) Submit(ctx context.Context, meta model.RequestMeta, address string, nonce []byte) (*model.Block, uint64, error) {
	mining, err := s.store.Flag(ctx, redisstore.FlagMining)
	if err != nil {
		return nil, 0, err
	}
	staking, err := s.store.Flag(ctx, redisstore.FlagStaking)
	if err != nil {
		return nil, 0, err
	}
	if !mining && !staking {
		return nil, 0, apierr.MiningDisabled()
	}

	if address == "" {
		return nil, 0, apierr.MissingParameter("address")
	}
	if !crypto.IsV2Address(s.constants.AddressPrefix, address) {
		return nil, 0, apierr.InvalidParameter("address")
	}
	if len(nonce) == 0 {
		return nil, 0, apierr.MissingParameter("nonce")
	}
	if len(nonce) > s.constants.NonceMaxSize {
		return nil, 0, apierr.LargeParameter("nonce")
	}

	s.authLog.LogMining(meta, address)

	last, err := s.repo.LastBlock(ctx)
	if err != nil {
		return nil, 0, err
	}
	if last == nil {
		return nil, 0, apierr.BlockNotFound()
	}

	work, err := s.store.Work(ctx)
	if err != nil {
		return nil, 0, err
	}
	if work == 0 {
		work = s.constants.MaxWork
	}

	solution := EvaluateSolution(address, shortHashOf(last), nonce)

	switch {
	case mining:
		if !solution.MeetsWork(work) {
			free, err := s.freeNonce(ctx)
			if err != nil {
				return nil, 0, err
			}
			if !free {
				return nil, 0, apierr.SolutionIncorrect()
			}
		}
	default:
		validator, err := s.store.Validator(ctx)
		if err != nil {
			return nil, 0, err
		}
		if address != validator {
			return nil, 0, apierr.UnselectedValidator()
		}
	}

	now := s.now()
	block := &model.Block{
		ID:         last.ID + 1,
		Hash:       &solution.Hash,
		Address:    address,
		Nonce:      nonce,
		Time:       now,
		Difficulty: work,
		UserAgent:  meta.UserAgent,
		Origin:     meta.Origin,
	}

	reward, err := s.repo.AppendBlock(ctx, block, BaseValue(last.ID))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, 0, apierr.SolutionDuplicate()
		}
		return nil, 0, err
	}

	newWork := Retarget(work, now.Sub(last.Time).Seconds(), s.constants)
	if err := s.store.SetWork(ctx, newWork); err != nil {
		s.logger.Error("work not retargeted", zap.Error(err), zap.Uint64("height", block.ID))
	}
	if staking {
		// The elected validator produced its block; clear the election so
		// the next rotation does not penalize it.
		if err := s.store.SetValidator(ctx, ""); err != nil {
			s.logger.Error("validator not cleared", zap.Error(err))
		}
	}

	s.logger.Info("block accepted",
		zap.Uint64("height", block.ID),
		zap.String("address", address),
		zap.Uint32("value", block.Value),
		zap.Uint64("new_work", newWork))

	s.publisher.Publish(bus.Event{Type: bus.EventBlock, Block: block, NewWork: newWork})
	s.publisher.Publish(bus.Event{Type: bus.EventTransaction, Transaction: reward})
	return block, newWork, nil
}

// EnsureGenesis inserts the genesis block once per deployment, seeding the
// chain an empty-node submission would otherwise have nothing to extend.
func (s *Service) EnsureGenesis(ctx context.Context) error {
	done, err := s.store.GenesisDone(ctx)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	if last, err := s.repo.LastBlock(ctx); err != nil {
		return err
	} else if last == nil {
		hash := strings.Repeat("0", 64)
		err := s.repo.CreateBlock(ctx, &model.Block{
			ID:         1,
			Hash:       &hash,
			Address:    GenesisAddress,
			Nonce:      []byte{},
			Time:       s.now(),
			Difficulty: s.constants.MaxWork,
			Value:      50,
		})
		if err != nil {
			return err
		}
		s.logger.Info("genesis block created")
	}

	return s.store.MarkGenesisDone(ctx)
}

// Get returns the block at the given height.
func (s *Service) Get(ctx context.Context, height uint64) (*model.Block, error) {
	row, err := s.repo.Block(ctx, height)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierr.BlockNotFound()
	}
	return row, nil
}

// Last returns the chain tip.
func (s *Service) Last(ctx context.Context) (*model.Block, error) {
	row, err := s.repo.LastBlock(ctx)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierr.BlockNotFound()
	}
	return row, nil
}

// Lowest returns the hardest solution mined so far, the block whose hash
// sorts lowest.
func (s *Service) Lowest(ctx context.Context) (*model.Block, error) {
	row, err := s.repo.LowestHashBlock(ctx)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierr.BlockNotFound()
	}
	return row, nil
}

// List returns blocks, ascending from genesis or descending from the tip.
func (s *Service) List(ctx context.Context, limit, offset int, ascending bool) ([]model.Block, int, error) {
	return s.repo.Blocks(ctx, limit, offset, ascending)
}

// ByAddress returns the blocks produced by an address.
func (s *Service) ByAddress(ctx context.Context, address string, limit, offset int) ([]model.Block, int, error) {
	if !crypto.IsValidAddress(s.constants.AddressPrefix, address) {
		return nil, 0, apierr.InvalidParameter("address")
	}
	return s.repo.BlocksByAddress(ctx, address, limit, offset)
}

// NextBaseValue returns the base reward of the next block.
func (s *Service) NextBaseValue(ctx context.Context) (uint32, error) {
	last, err := s.repo.LastBlock(ctx)
	if err != nil {
		return 0, err
	}
	if last == nil {
		return 0, apierr.BlockNotFound()
	}
	return BaseValue(last.ID), nil
}

// freeNonce reports whether the debug-only free nonce flag bypasses the
// work check. Production never honors the flag.
func (s *Service) freeNonce(ctx context.Context) (bool, error) {
	if !s.debug {
		return false, nil
	}
	return s.store.Flag(ctx, redisstore.FlagFreeNonce)
}

// lookupColumns whitelists the sortable columns of the lookup surface. The
// wire name height maps onto the id column.
var lookupColumns = map[string]string{
	"height":     "id",
	"address":    "address",
	"time":       "time",
	"difficulty": "difficulty",
	"value":      "value",
}

// Lookup lists the blocks produced by any of the given addresses, or all
// blocks when none are given, with a caller-chosen sort. Addresses are
// validated; the sort column must be on the whitelist.
func (s *Service) Lookup(ctx context.Context, addresses []string, orderBy string, descending bool, limit, offset int) ([]model.Block, int, error) {
	for _, address := range addresses {
		if !crypto.IsValidAddress(s.constants.AddressPrefix, address) {
			return nil, 0, apierr.InvalidParameter("addresses")
		}
	}
	if orderBy == "" {
		orderBy = "height"
	}
	column, ok := lookupColumns[orderBy]
	if !ok {
		return nil, 0, apierr.InvalidParameter("orderBy")
	}
	order := postgres.LookupOrder{Column: column, Descending: descending}
	return s.repo.LookupBlocks(ctx, addresses, order, limit, offset)
}
