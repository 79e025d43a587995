package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
)

// NameStats summarizes the unpaid name pool for mining reward projections.
type NameStats struct {
	Total     int    `pg:"total"`
	Expiring  int    `pg:"expiring"`
	MinUnpaid uint32 `pg:"min_unpaid"`
	MaxUnpaid uint32 `pg:"max_unpaid"`
}

// Name returns the registered name row, or nil when the name is free.
func (r *Repository) Name(ctx context.Context, name string) (_ *model.Name, err error) {
	started := time.Now()
	defer func() { r.observe("name", err, started) }()

	row := new(model.Name)
	err = r.db.ModelContext(ctx, row).Where("name = ?", name).Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select name: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// NameForUpdate returns the name row locked with FOR UPDATE so transfers and
// record updates of the same name serialize.
func (r *Repository) NameForUpdate(ctx context.Context, name string) (_ *model.Name, err error) {
	started := time.Now()
	defer func() { r.observe("name_for_update", err, started) }()

	row := new(model.Name)
	err = r.db.ModelContext(ctx, row).Where("name = ?", name).For("UPDATE").Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select name for update: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// CreateName registers a name. The primary key makes a concurrent purchase
// of the same name fail with an integrity violation.
func (r *Repository) CreateName(ctx context.Context, row *model.Name) (err error) {
	started := time.Now()
	defer func() { r.observe("create_name", err, started) }()

	if _, err = r.db.ModelContext(ctx, row).Insert(); err != nil {
		return fmt.Errorf("insert name: %w", err)
	}
	return nil
}

// Names lists registered names alphabetically together with the total count.
func (r *Repository) Names(ctx context.Context, limit, offset int) (_ []model.Name, total int, err error) {
	started := time.Now()
	defer func() { r.observe("names", err, started) }()

	var rows []model.Name
	total, err = r.db.ModelContext(ctx, &rows).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select names: %w", err)
	}
	return rows, total, nil
}

// NewestNames lists names by registration time, newest first.
func (r *Repository) NewestNames(ctx context.Context, limit, offset int) (_ []model.Name, total int, err error) {
	started := time.Now()
	defer func() { r.observe("newest_names", err, started) }()

	var rows []model.Name
	total, err = r.db.ModelContext(ctx, &rows).
		Order("registered DESC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select newest names: %w", err)
	}
	return rows, total, nil
}

// NamesByOwner lists the names owned by an address.
func (r *Repository) NamesByOwner(ctx context.Context, owner string, limit, offset int) (_ []model.Name, total int, err error) {
	started := time.Now()
	defer func() { r.observe("names_by_owner", err, started) }()

	var rows []model.Name
	total, err = r.db.ModelContext(ctx, &rows).
		Where("owner = ?", owner).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select names by owner: %w", err)
	}
	return rows, total, nil
}

// CountNames returns the number of registered names.
func (r *Repository) CountNames(ctx context.Context) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("count_names", err, started) }()

	count, err := r.db.ModelContext(ctx, (*model.Name)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("count names: %w", err)
	}
	return count, nil
}

// CountNamesByOwner returns the number of names owned by an address.
func (r *Repository) CountNamesByOwner(ctx context.Context, owner string) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("count_names_by_owner", err, started) }()

	count, err := r.db.ModelContext(ctx, (*model.Name)(nil)).
		Where("owner = ?", owner).
		Count()
	if err != nil {
		return 0, fmt.Errorf("count names by owner: %w", err)
	}
	return count, nil
}

// UpdateNameOwner reassigns a name and bumps its update time.
func (r *Repository) UpdateNameOwner(ctx context.Context, name, owner string, now time.Time) (err error) {
	started := time.Now()
	defer func() { r.observe("update_name_owner", err, started) }()

	res, err := r.db.ModelContext(ctx, (*model.Name)(nil)).
		Set("owner = ?", owner).
		Set("updated = ?", now).
		Where("name = ?", name).
		Update()
	if err != nil {
		return fmt.Errorf("update name owner: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("update name owner: name %q does not exist", name)
	}
	return nil
}

// UpdateNameARecord replaces the data record of a name. A nil record clears
// it.
func (r *Repository) UpdateNameARecord(ctx context.Context, name string, record *string, now time.Time) (err error) {
	started := time.Now()
	defer func() { r.observe("update_name_a_record", err, started) }()

	res, err := r.db.ModelContext(ctx, (*model.Name)(nil)).
		Set("a = ?", record).
		Set("updated = ?", now).
		Where("name = ?", name).
		Update()
	if err != nil {
		return fmt.Errorf("update name record: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("update name record: name %q does not exist", name)
	}
	return nil
}

// CountUnpaidNames returns how many names still pay out to miners.
func (r *Repository) CountUnpaidNames(ctx context.Context) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("count_unpaid_names", err, started) }()

	count, err := r.db.ModelContext(ctx, (*model.Name)(nil)).
		Where("unpaid > 0").
		Count()
	if err != nil {
		return 0, fmt.Errorf("count unpaid names: %w", err)
	}
	return count, nil
}

// DecayUnpaidNames decrements the unpaid counter of every name that still
// has one. Called once per accepted block.
func (r *Repository) DecayUnpaidNames(ctx context.Context) (err error) {
	started := time.Now()
	defer func() { r.observe("decay_unpaid_names", err, started) }()

	_, err = r.db.ModelContext(ctx, (*model.Name)(nil)).
		Set("unpaid = unpaid - 1").
		Where("unpaid > 0").
		Update()
	if err != nil {
		return fmt.Errorf("decay unpaid names: %w", err)
	}
	return nil
}

// UnpaidNameStats reports the shape of the unpaid pool: how many names are
// still paying out, how many stop after the next block, and the closest and
// furthest expiries.
func (r *Repository) UnpaidNameStats(ctx context.Context) (_ NameStats, err error) {
	started := time.Now()
	defer func() { r.observe("unpaid_name_stats", err, started) }()

	var stats NameStats
	err = r.db.ModelContext(ctx, (*model.Name)(nil)).
		ColumnExpr("count(*) AS total").
		ColumnExpr("count(*) FILTER (WHERE unpaid = 1) AS expiring").
		ColumnExpr("coalesce(min(unpaid), 0) AS min_unpaid").
		ColumnExpr("coalesce(max(unpaid), 0) AS max_unpaid").
		Where("unpaid > 0").
		Select(&stats)
	if err != nil {
		return NameStats{}, fmt.Errorf("select unpaid name stats: %w", err)
	}
	return stats, nil
}
