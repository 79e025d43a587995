// Package scheduler runs the node's periodic jobs: the work sampler, the
// auth-log pruner and the validator rotation.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/clock"
	"github.com/tstnetwork/tstnode/internal/repository/redisstore"
)

// Flags gates jobs on runtime feature flags.
type Flags interface {
	Flag(ctx context.Context, name string) (bool, error)
}

// Job is one periodic task.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error

	// Gate, when non-empty, names a feature flag that must be set for the
	// job to run its tick.
	Gate string
}

// Scheduler drives a set of jobs until its context ends. Tick failures are
// logged and the loop keeps going.
type Scheduler struct {
	flags  Flags
	logger *zap.Logger
	jobs   []Job
	wg     sync.WaitGroup
}

// New builds a scheduler over the given jobs.
func New(flags Flags, logger *zap.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{flags: flags, logger: logger, jobs: jobs}
}

// Start launches one goroutine per job. It returns immediately; Wait blocks
// until every loop has observed the context cancellation.
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		job := job
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.loop(ctx, job)
		}()
	}
}

// Wait blocks until all job loops have stopped.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	logger := s.logger.With(zap.String("job", job.Name))
	logger.Info("job started", zap.Duration("interval", job.Interval))

	for {
		if err := clock.SleepWithContext(ctx, job.Interval); err != nil {
			logger.Info("job stopped")
			return
		}
		s.tick(ctx, job, logger)
	}
}

func (s *Scheduler) tick(ctx context.Context, job Job, logger *zap.Logger) {
	if job.Gate != "" {
		enabled, err := s.flags.Flag(ctx, job.Gate)
		if err != nil {
			logger.Error("flag check failed", zap.Error(err))
			return
		}
		if !enabled {
			return
		}
	}

	started := time.Now()
	if err := job.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Error("tick failed", zap.Error(err))
		return
	}
	logger.Debug("tick done", zap.Duration("took", time.Since(started)))
}

// Jobs assembles the node's standard job set.
func Jobs(
	workInterval time.Duration,
	sampleWork func(ctx context.Context) error,
	pruneInterval time.Duration,
	pruneAuthLog func(ctx context.Context) error,
	epochInterval time.Duration,
	rotateValidator func(ctx context.Context) error,
) []Job {
	return []Job{
		{Name: "work-sampler", Interval: workInterval, Run: sampleWork},
		{Name: "authlog-pruner", Interval: pruneInterval, Run: pruneAuthLog},
		{Name: "validator-rotation", Interval: epochInterval, Run: rotateValidator, Gate: redisstore.FlagStaking},
	}
}
