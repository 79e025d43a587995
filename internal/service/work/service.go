package work

import (
	"context"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/service/blocks"
	"github.com/tstnetwork/tstnode/pkg/safe"
)

// Detail is the reward projection for the next block.
type Detail struct {
	Work       uint64 `json:"work"`
	Unpaid     int    `json:"unpaid"`
	BaseValue  uint32 `json:"base_value"`
	BlockValue uint32 `json:"block_value"`

	Decrease Decrease `json:"decrease"`
}

// Decrease describes how the reward shrinks as unpaid names run out: how
// much the next block removes, how many blocks until the soonest expiry, and
// how many until the name bonus is gone entirely.
type Decrease struct {
	Value  int    `json:"value"`
	Blocks uint32 `json:"blocks"`
	Reset  uint32 `json:"reset"`
}

// Service is the work surface.
type Service struct {
	repo      Repository
	state     StateStore
	constants config.Constants
	logger    *zap.Logger
}

// New builds the engine.
func New(repo Repository, state StateStore, constants config.Constants, logger *zap.Logger) *Service {
	return &Service{repo: repo, state: state, constants: constants, logger: logger}
}

// Current returns the work target in effect. A store that has never been
// seeded reads as the easiest target.
func (s *Service) Current(ctx context.Context) (uint64, error) {
	work, err := s.state.Work(ctx)
	if err != nil {
		return 0, err
	}
	if work == 0 {
		return s.constants.MaxWork, nil
	}
	return work, nil
}

// Day returns the sampled work history, oldest first.
func (s *Service) Day(ctx context.Context) ([]uint64, error) {
	return s.state.WorkOverTime(ctx)
}

// Detailed returns the current target together with the value of the next
// block and how that value decays as names and penalties expire.
func (s *Service) Detailed(ctx context.Context) (*Detail, error) {
	work, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	last, err := s.repo.LastBlock(ctx)
	if err != nil {
		return nil, err
	}
	var lastID uint64
	if last != nil {
		lastID = last.ID
	}

	stats, err := s.repo.UnpaidNameStats(ctx)
	if err != nil {
		return nil, err
	}
	unpaid, err := s.repo.CountUnpaidNames(ctx)
	if err != nil {
		return nil, err
	}
	penalized, err := s.repo.CountPenalized(ctx)
	if err != nil {
		return nil, err
	}

	base := blocks.BaseValue(lastID)
	bonus, err := safe.Uint32(unpaid + penalized)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Work:       work,
		Unpaid:     unpaid,
		BaseValue:  base,
		BlockValue: base + bonus,
		Decrease: Decrease{
			Value:  stats.Expiring,
			Blocks: stats.MinUnpaid,
			Reset:  stats.MaxUnpaid,
		},
	}, nil
}

// Sample records the current target into the history ring. The scheduler
// calls this once a minute.
func (s *Service) Sample(ctx context.Context) error {
	work, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if err := s.state.PushWorkSample(ctx, work); err != nil {
		return err
	}
	s.logger.Debug("sampled work", zap.Uint64("work", work))
	return nil
}
