// Package postgres implements the durable store of the node on PostgreSQL.
// Every mutating engine path runs inside a single transaction obtained from
// RunInTransaction, so a crash either keeps all side effects of an operation
// or none of them.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository exposes the table operations of the node. A Repository bound to
// a transaction (see RunInTransaction) shares the metrics sink of its parent.
type Repository struct {
	db      orm.DB
	pg      *pg.DB
	metrics Metrics
}

// New connects to PostgreSQL using a postgres:// DSN and verifies the
// connection.
func New(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	options, err := pg.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	db := pg.Connect(options)
	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: db, pg: db, metrics: metrics}, nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	if r.pg == nil {
		return nil
	}
	return r.pg.Close()
}

// Ping verifies connectivity, for health checks.
func (r *Repository) Ping(ctx context.Context) error {
	if r.pg == nil {
		return nil
	}
	return r.pg.Ping(ctx)
}

// RunInTransaction executes fn with a Repository bound to a single database
// transaction. Calls nest: a Repository that is already transactional reuses
// its transaction.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.pg == nil {
		return fn(r)
	}
	return r.pg.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(&Repository{db: tx, metrics: r.metrics})
	})
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	if r.metrics != nil {
		r.metrics.Observe(operation, err, started)
	}
}

// uniqueViolation is the SQLSTATE of a unique-constraint violation. The
// broader IntegrityViolation covers the whole 23xxx class and would also
// match check-constraint hits, which are not duplicates.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation, which the block engine maps to solution_duplicate and the name
// registry to name_taken.
func IsUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolation
	}
	return false
}

// notFoundIsNil swallows pg.ErrNoRows so absent rows surface as nil values.
func notFoundIsNil(err error) error {
	if errors.Is(err, pg.ErrNoRows) {
		return nil
	}
	return err
}
