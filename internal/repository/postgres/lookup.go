package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"

	"github.com/tstnetwork/tstnode/internal/model"
)

// LookupOrder is a validated sort for the lookup queries. Column names must
// come from the transport whitelists, never from raw request input.
type LookupOrder struct {
	Column     string
	Descending bool
}

func (o LookupOrder) apply(q *orm.Query) *orm.Query {
	direction := "ASC"
	if o.Descending {
		direction = "DESC"
	}
	return q.OrderExpr("? ?", pg.Ident(o.Column), pg.Safe(direction))
}

// LookupTransactions lists the entries involving any of the addresses, with
// a caller-chosen sort. Mined rows are skipped unless includeMined is set.
func (r *Repository) LookupTransactions(ctx context.Context, addresses []string, includeMined bool, order LookupOrder, limit, offset int) (_ []model.Transaction, total int, err error) {
	started := time.Now()
	defer func() { r.observe("lookup_transactions", err, started) }()

	var rows []model.Transaction
	query := r.db.ModelContext(ctx, &rows)
	if len(addresses) > 0 {
		query = query.Where(`("from" IN (?) OR "to" IN (?))`, pg.In(addresses), pg.In(addresses))
	}
	if !includeMined {
		query = query.Where(`"from" IS NOT NULL`)
	}

	total, err = order.apply(query).
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("lookup transactions: %w", err)
	}
	return rows, total, nil
}

// LookupBlocks lists the blocks produced by any of the addresses (or all
// blocks when none are given), with a caller-chosen sort.
func (r *Repository) LookupBlocks(ctx context.Context, addresses []string, order LookupOrder, limit, offset int) (_ []model.Block, total int, err error) {
	started := time.Now()
	defer func() { r.observe("lookup_blocks", err, started) }()

	var rows []model.Block
	query := r.db.ModelContext(ctx, &rows)
	if len(addresses) > 0 {
		query = query.Where("address IN (?)", pg.In(addresses))
	}

	total, err = order.apply(query).
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("lookup blocks: %w", err)
	}
	return rows, total, nil
}

// LookupNames lists the names owned by any of the addresses (or all names
// when none are given), with a caller-chosen sort.
func (r *Repository) LookupNames(ctx context.Context, owners []string, order LookupOrder, limit, offset int) (_ []model.Name, total int, err error) {
	started := time.Now()
	defer func() { r.observe("lookup_names", err, started) }()

	var rows []model.Name
	query := r.db.ModelContext(ctx, &rows)
	if len(owners) > 0 {
		query = query.Where("owner IN (?)", pg.In(owners))
	}

	total, err = order.apply(query).
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("lookup names: %w", err)
	}
	return rows, total, nil
}
