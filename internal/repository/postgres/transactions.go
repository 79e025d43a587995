package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
)

// Transaction returns the ledger entry with the given id, or nil when it
// does not exist.
func (r *Repository) Transaction(ctx context.Context, id uint64) (_ *model.Transaction, err error) {
	started := time.Now()
	defer func() { r.observe("transaction", err, started) }()

	row := new(model.Transaction)
	err = r.db.ModelContext(ctx, row).Where("id = ?", id).Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select transaction: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// CreateTransaction appends a ledger entry and fills in its assigned id.
func (r *Repository) CreateTransaction(ctx context.Context, row *model.Transaction) (err error) {
	started := time.Now()
	defer func() { r.observe("create_transaction", err, started) }()

	if _, err = r.db.ModelContext(ctx, row).Returning("id").Insert(); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Transactions lists ledger entries together with the total count.
func (r *Repository) Transactions(ctx context.Context, limit, offset int, ascending bool) (_ []model.Transaction, total int, err error) {
	started := time.Now()
	defer func() { r.observe("transactions", err, started) }()

	order := "id DESC"
	if ascending {
		order = "id ASC"
	}

	var rows []model.Transaction
	total, err = r.db.ModelContext(ctx, &rows).
		Order(order).
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select transactions: %w", err)
	}
	return rows, total, nil
}

// AddressTransactions lists the entries an address participated in, as
// sender or recipient, newest first.
func (r *Repository) AddressTransactions(ctx context.Context, address string, limit, offset int) (_ []model.Transaction, total int, err error) {
	started := time.Now()
	defer func() { r.observe("address_transactions", err, started) }()

	var rows []model.Transaction
	total, err = r.db.ModelContext(ctx, &rows).
		WhereOr(`"from" = ?`, address).
		WhereOr(`"to" = ?`, address).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select address transactions: %w", err)
	}
	return rows, total, nil
}

// NameTransactions lists the entries that touched a name, newest first.
// This covers the purchase, transfers and data record updates of the name.
func (r *Repository) NameTransactions(ctx context.Context, name string, limit, offset int) (_ []model.Transaction, total int, err error) {
	started := time.Now()
	defer func() { r.observe("name_transactions", err, started) }()

	var rows []model.Transaction
	total, err = r.db.ModelContext(ctx, &rows).
		WhereOr("name = ?", name).
		WhereOr("sent_name = ?", name).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select name transactions: %w", err)
	}
	return rows, total, nil
}

// MetadataTransactions lists the entries whose metadata contains the query
// string, newest first.
func (r *Repository) MetadataTransactions(ctx context.Context, query string, limit, offset int) (_ []model.Transaction, total int, err error) {
	started := time.Now()
	defer func() { r.observe("metadata_transactions", err, started) }()

	var rows []model.Transaction
	total, err = r.db.ModelContext(ctx, &rows).
		Where("op ILIKE ?", "%"+escapeLike(query)+"%").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select metadata transactions: %w", err)
	}
	return rows, total, nil
}

// CountAddressTransactions returns how many ledger entries involve the
// address.
func (r *Repository) CountAddressTransactions(ctx context.Context, address string) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("count_address_transactions", err, started) }()

	count, err := r.db.ModelContext(ctx, (*model.Transaction)(nil)).
		WhereOr(`"from" = ?`, address).
		WhereOr(`"to" = ?`, address).
		Count()
	if err != nil {
		return 0, fmt.Errorf("count address transactions: %w", err)
	}
	return count, nil
}

// CountTransactions returns the ledger length.
func (r *Repository) CountTransactions(ctx context.Context) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("count_transactions", err, started) }()

	count, err := r.db.ModelContext(ctx, (*model.Transaction)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// escapeLike escapes the LIKE wildcards in a user supplied search string.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
