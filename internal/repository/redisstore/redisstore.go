// Package redisstore holds the mutable runtime state of the node that does
// not belong in the ledger: the current work target, the selected validator,
// the work history ring and the message of the day.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const keySeparator = ":"

const (
	keyWork        = "work"
	keyWorkRing    = "work" + keySeparator + "ring"
	keyValidator   = "validator"
	keyMOTD        = "motd"
	keyMOTDSet     = "motd" + keySeparator + "set"
	keyGenesisDone = "genesis"
	keyFlag        = "flag"
)

// Feature flags stored under flag:<name>. Mining and staking are mutually
// exclusive; the bootstrap path enforces that when seeding them.
const (
	FlagMining    = "mining"
	FlagStaking   = "staking"
	FlagFreeNonce = "freenonce"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	Prefix   string
}

// Store wraps a Redis client with the node's key schema. Missing keys read
// as zero values; the bootstrap path seeds them.
type Store struct {
	client   *redis.Client
	prefix   string
	ringSize int64
	metrics  Metrics
}

// New connects to Redis and verifies the connection. ringSize bounds the
// work history list.
func New(ctx context.Context, opts Options, ringSize int, metrics Metrics) (*Store, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis addr is required")
	}
	if ringSize <= 0 {
		return nil, errors.New("ring size must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "node"
	}

	return &Store{
		client:   client,
		prefix:   prefix,
		ringSize: int64(ringSize),
		metrics:  metrics,
	}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ping verifies connectivity, for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) key(name string) string {
	return s.prefix + keySeparator + name
}

func (s *Store) observe(operation string, err error, started time.Time) {
	if s.metrics != nil {
		s.metrics.Observe(operation, err, started)
	}
}

// Work returns the current work target, or zero when none has been seeded
// yet.
func (s *Store) Work(ctx context.Context) (_ uint64, err error) {
	started := time.Now()
	defer func() { s.observe("work", err, started) }()

	raw, err := s.client.Get(ctx, s.key(keyWork)).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get work: %w", err)
	}

	work, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse work %q: %w", raw, err)
	}
	return work, nil
}

// SetWork replaces the current work target.
func (s *Store) SetWork(ctx context.Context, work uint64) (err error) {
	started := time.Now()
	defer func() { s.observe("set_work", err, started) }()

	if err = s.client.Set(ctx, s.key(keyWork), strconv.FormatUint(work, 10), 0).Err(); err != nil {
		return fmt.Errorf("set work: %w", err)
	}
	return nil
}

// PushWorkSample prepends a work sample to the history ring and trims the
// ring to its fixed size.
func (s *Store) PushWorkSample(ctx context.Context, work uint64) (err error) {
	started := time.Now()
	defer func() { s.observe("push_work_sample", err, started) }()

	key := s.key(keyWorkRing)
	if err = s.client.LPush(ctx, key, strconv.FormatUint(work, 10)).Err(); err != nil {
		return fmt.Errorf("push work sample: %w", err)
	}
	if err = s.client.LTrim(ctx, key, 0, s.ringSize-1).Err(); err != nil {
		return fmt.Errorf("trim work ring: %w", err)
	}
	return nil
}

// WorkOverTime returns the work history, oldest sample first.
func (s *Store) WorkOverTime(ctx context.Context) (_ []uint64, err error) {
	started := time.Now()
	defer func() { s.observe("work_over_time", err, started) }()

	raw, err := s.client.LRange(ctx, s.key(keyWorkRing), 0, s.ringSize-1).Result()
	if err != nil {
		return nil, fmt.Errorf("range work ring: %w", err)
	}

	samples := make([]uint64, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		work, parseErr := strconv.ParseUint(raw[i], 10, 64)
		if parseErr != nil {
			err = fmt.Errorf("parse work sample %q: %w", raw[i], parseErr)
			return nil, err
		}
		samples = append(samples, work)
	}
	return samples, nil
}

// Validator returns the address selected to submit the next block, or an
// empty string while proof of work is in effect.
func (s *Store) Validator(ctx context.Context) (_ string, err error) {
	started := time.Now()
	defer func() { s.observe("validator", err, started) }()

	validator, err := s.client.Get(ctx, s.key(keyValidator)).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get validator: %w", err)
	}
	return validator, nil
}

// SetValidator stores the selected validator. An empty address clears the
// selection.
func (s *Store) SetValidator(ctx context.Context, address string) (err error) {
	started := time.Now()
	defer func() { s.observe("set_validator", err, started) }()

	key := s.key(keyValidator)
	if address == "" {
		if err = s.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("clear validator: %w", err)
		}
		return nil
	}
	if err = s.client.Set(ctx, key, address, 0).Err(); err != nil {
		return fmt.Errorf("set validator: %w", err)
	}
	return nil
}

// MOTD returns the message of the day and when it was set. A node that has
// never stored one returns empty values.
func (s *Store) MOTD(ctx context.Context) (motd string, setAt time.Time, err error) {
	started := time.Now()
	defer func() { s.observe("motd", err, started) }()

	motd, err = s.client.Get(ctx, s.key(keyMOTD)).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return "", time.Time{}, nil
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("get motd: %w", err)
	}

	raw, err := s.client.Get(ctx, s.key(keyMOTDSet)).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return motd, time.Time{}, nil
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("get motd time: %w", err)
	}

	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parse motd time %q: %w", raw, err)
	}
	return motd, time.UnixMilli(unix).UTC(), nil
}

// SetMOTD replaces the message of the day.
func (s *Store) SetMOTD(ctx context.Context, motd string, now time.Time) (err error) {
	started := time.Now()
	defer func() { s.observe("set_motd", err, started) }()

	if err = s.client.Set(ctx, s.key(keyMOTD), motd, 0).Err(); err != nil {
		return fmt.Errorf("set motd: %w", err)
	}
	if err = s.client.Set(ctx, s.key(keyMOTDSet), strconv.FormatInt(now.UnixMilli(), 10), 0).Err(); err != nil {
		return fmt.Errorf("set motd time: %w", err)
	}
	return nil
}

// Flag reports whether the named feature flag is set.
func (s *Store) Flag(ctx context.Context, name string) (_ bool, err error) {
	started := time.Now()
	defer func() { s.observe("flag", err, started) }()

	raw, err := s.client.Get(ctx, s.key(keyFlag+keySeparator+name)).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get flag %s: %w", name, err)
	}
	return raw == "1", nil
}

// SetFlag sets or clears the named feature flag.
func (s *Store) SetFlag(ctx context.Context, name string, value bool) (err error) {
	started := time.Now()
	defer func() { s.observe("set_flag", err, started) }()

	raw := "0"
	if value {
		raw = "1"
	}
	if err = s.client.Set(ctx, s.key(keyFlag+keySeparator+name), raw, 0).Err(); err != nil {
		return fmt.Errorf("set flag %s: %w", name, err)
	}
	return nil
}

// GenesisDone reports whether the genesis bootstrap already ran against this
// deployment.
func (s *Store) GenesisDone(ctx context.Context) (_ bool, err error) {
	started := time.Now()
	defer func() { s.observe("genesis_done", err, started) }()

	_, err = s.client.Get(ctx, s.key(keyGenesisDone)).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get genesis flag: %w", err)
	}
	return true, nil
}

// MarkGenesisDone records that the genesis bootstrap ran.
func (s *Store) MarkGenesisDone(ctx context.Context) (err error) {
	started := time.Now()
	defer func() { s.observe("mark_genesis_done", err, started) }()

	if err = s.client.Set(ctx, s.key(keyGenesisDone), "1", 0).Err(); err != nil {
		return fmt.Errorf("set genesis flag: %w", err)
	}
	return nil
}
