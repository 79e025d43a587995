package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
)

// InsertAuthLogEntries stores a batch of authentication log entries.
func (r *Repository) InsertAuthLogEntries(ctx context.Context, entries []model.AuthLogEntry) (err error) {
	started := time.Now()
	defer func() { r.observe("insert_auth_log", err, started) }()

	if len(entries) == 0 {
		return nil
	}
	if _, err = r.db.ModelContext(ctx, &entries).Insert(); err != nil {
		return fmt.Errorf("insert auth log entries: %w", err)
	}
	return nil
}

// PruneAuthLog deletes authentication log entries older than the cutoff and
// returns how many were removed.
func (r *Repository) PruneAuthLog(ctx context.Context, before time.Time) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("prune_auth_log", err, started) }()

	res, err := r.db.ModelContext(ctx, (*model.AuthLogEntry)(nil)).
		Where("time < ?", before).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("prune auth log: %w", err)
	}
	return res.RowsAffected(), nil
}
