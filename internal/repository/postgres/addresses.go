package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/tstnetwork/tstnode/internal/model"
)

// Address returns the row for address, or nil when the address has never
// been seen.
func (r *Repository) Address(ctx context.Context, address string) (_ *model.Address, err error) {
	started := time.Now()
	defer func() { r.observe("address", err, started) }()

	row := new(model.Address)
	err = r.db.ModelContext(ctx, row).Where("address = ?", address).Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select address: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// AddressForUpdate returns the row for address locked with FOR UPDATE. It is
// only meaningful inside RunInTransaction; concurrent spenders of the same
// address serialize on this lock.
func (r *Repository) AddressForUpdate(ctx context.Context, address string) (_ *model.Address, err error) {
	started := time.Now()
	defer func() { r.observe("address_for_update", err, started) }()

	row := new(model.Address)
	err = r.db.ModelContext(ctx, row).Where("address = ?", address).For("UPDATE").Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select address for update: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// CreateAddress inserts a new address row.
func (r *Repository) CreateAddress(ctx context.Context, row *model.Address) (err error) {
	started := time.Now()
	defer func() { r.observe("create_address", err, started) }()

	if _, err = r.db.ModelContext(ctx, row).Insert(); err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// Addresses lists addresses ordered by first appearance together with the
// total row count.
func (r *Repository) Addresses(ctx context.Context, limit, offset int) (_ []model.Address, total int, err error) {
	started := time.Now()
	defer func() { r.observe("addresses", err, started) }()

	var rows []model.Address
	total, err = r.db.ModelContext(ctx, &rows).
		Order("firstseen ASC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select addresses: %w", err)
	}
	return rows, total, nil
}

// RichAddresses lists addresses ordered by balance, highest first.
func (r *Repository) RichAddresses(ctx context.Context, limit, offset int) (_ []model.Address, total int, err error) {
	started := time.Now()
	defer func() { r.observe("rich_addresses", err, started) }()

	var rows []model.Address
	total, err = r.db.ModelContext(ctx, &rows).
		Order("balance DESC").
		Order("firstseen ASC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select rich addresses: %w", err)
	}
	return rows, total, nil
}

// LookupAddresses returns the rows for the given addresses. Unknown addresses
// are simply absent from the result.
func (r *Repository) LookupAddresses(ctx context.Context, addresses []string) (_ []model.Address, err error) {
	started := time.Now()
	defer func() { r.observe("lookup_addresses", err, started) }()

	if len(addresses) == 0 {
		return nil, nil
	}
	var rows []model.Address
	err = r.db.ModelContext(ctx, &rows).
		Where("address IN (?)", pg.In(addresses)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("select addresses by list: %w", err)
	}
	return rows, nil
}

// SetPrivatekeyHash stores the authentication digest of an address. The
// digest is written once, on the first authenticated use of the address.
func (r *Repository) SetPrivatekeyHash(ctx context.Context, address, hash string) (err error) {
	started := time.Now()
	defer func() { r.observe("set_privatekey_hash", err, started) }()

	_, err = r.db.ModelContext(ctx, (*model.Address)(nil)).
		Set("privatekey_hash = ?", hash).
		Where("address = ?", address).
		Update()
	if err != nil {
		return fmt.Errorf("update privatekey hash: %w", err)
	}
	return nil
}

// AdjustBalance applies atomic deltas to the balance counters of an address.
// Negative deltas decrement; the schema check constraint rejects a balance
// below zero as a last line of defense.
func (r *Repository) AdjustBalance(ctx context.Context, address string, balance, totalIn, totalOut int64) (err error) {
	started := time.Now()
	defer func() { r.observe("adjust_balance", err, started) }()

	res, err := r.db.ModelContext(ctx, (*model.Address)(nil)).
		Set("balance = balance + ?", balance).
		Set("totalin = totalin + ?", totalIn).
		Set("totalout = totalout + ?", totalOut).
		Where("address = ?", address).
		Update()
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("adjust balance: address %q does not exist", address)
	}
	return nil
}

// CreditOrCreateAddress credits amount to an address, creating the row when
// the address receives funds for the first time.
func (r *Repository) CreditOrCreateAddress(ctx context.Context, address string, amount uint64, now time.Time) (err error) {
	started := time.Now()
	defer func() { r.observe("credit_address", err, started) }()

	res, err := r.db.ModelContext(ctx, (*model.Address)(nil)).
		Set("balance = balance + ?", amount).
		Set("totalin = totalin + ?", amount).
		Where("address = ?", address).
		Update()
	if err != nil {
		return fmt.Errorf("credit address: %w", err)
	}
	if res.RowsAffected() > 0 {
		return nil
	}

	row := &model.Address{
		Address:   address,
		Balance:   amount,
		TotalIn:   amount,
		FirstSeen: now,
	}
	if _, err = r.db.ModelContext(ctx, row).Insert(); err != nil {
		return fmt.Errorf("create credited address: %w", err)
	}
	return nil
}

// AdjustStake applies a delta to the stake of an address and flips its
// participation flag.
func (r *Repository) AdjustStake(ctx context.Context, address string, delta int64, active bool) (err error) {
	started := time.Now()
	defer func() { r.observe("adjust_stake", err, started) }()

	res, err := r.db.ModelContext(ctx, (*model.Address)(nil)).
		Set("stake = stake + ?", delta).
		Set("stake_active = ?", active).
		Where("address = ?", address).
		Update()
	if err != nil {
		return fmt.Errorf("adjust stake: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("adjust stake: address %q does not exist", address)
	}
	return nil
}

// IncrementPenalty raises the outstanding penalty of an address.
func (r *Repository) IncrementPenalty(ctx context.Context, address string, amount uint64) (err error) {
	started := time.Now()
	defer func() { r.observe("increment_penalty", err, started) }()

	res, err := r.db.ModelContext(ctx, (*model.Address)(nil)).
		Set("penalty = penalty + ?", amount).
		Where("address = ?", address).
		Update()
	if err != nil {
		return fmt.Errorf("increment penalty: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("increment penalty: address %q does not exist", address)
	}
	return nil
}

// DecayPenalties decrements every outstanding penalty by one unit. Called
// once per accepted block.
func (r *Repository) DecayPenalties(ctx context.Context) (err error) {
	started := time.Now()
	defer func() { r.observe("decay_penalties", err, started) }()

	_, err = r.db.ModelContext(ctx, (*model.Address)(nil)).
		Set("penalty = penalty - 1").
		Where("penalty > 0").
		Update()
	if err != nil {
		return fmt.Errorf("decay penalties: %w", err)
	}
	return nil
}

// CountPenalized returns how many addresses still carry a nonzero penalty.
func (r *Repository) CountPenalized(ctx context.Context) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("count_penalized", err, started) }()

	count, err := r.db.ModelContext(ctx, (*model.Address)(nil)).
		Where("penalty > 0").
		Count()
	if err != nil {
		return 0, fmt.Errorf("count penalized addresses: %w", err)
	}
	return count, nil
}

// ValidatorCandidates returns every address eligible for the validator
// lottery, ordered by address so the weighted draw is deterministic for a
// given roll.
func (r *Repository) ValidatorCandidates(ctx context.Context) (_ []model.Address, err error) {
	started := time.Now()
	defer func() { r.observe("validator_candidates", err, started) }()

	var rows []model.Address
	err = r.db.ModelContext(ctx, &rows).
		Where("stake > 0").
		Where("stake_active = TRUE").
		Order("address ASC").
		Select()
	if err != nil {
		return nil, fmt.Errorf("select validator candidates: %w", err)
	}
	return rows, nil
}

// Stakes lists addresses with a nonzero stake, largest first.
func (r *Repository) Stakes(ctx context.Context, limit, offset int) (_ []model.Address, total int, err error) {
	started := time.Now()
	defer func() { r.observe("stakes", err, started) }()

	var rows []model.Address
	total, err = r.db.ModelContext(ctx, &rows).
		Where("stake > 0").
		Order("stake DESC").
		Order("address ASC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select stakes: %w", err)
	}
	return rows, total, nil
}

// Penalties lists addresses with a nonzero penalty, largest first.
func (r *Repository) Penalties(ctx context.Context, limit, offset int) (_ []model.Address, total int, err error) {
	started := time.Now()
	defer func() { r.observe("penalties", err, started) }()

	var rows []model.Address
	total, err = r.db.ModelContext(ctx, &rows).
		Where("penalty > 0").
		Order("penalty DESC").
		Order("address ASC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select penalties: %w", err)
	}
	return rows, total, nil
}

// TotalBalance returns the sum of all balances, the circulating supply.
func (r *Repository) TotalBalance(ctx context.Context) (_ uint64, err error) {
	started := time.Now()
	defer func() { r.observe("total_balance", err, started) }()

	var supply uint64
	err = r.db.ModelContext(ctx, (*model.Address)(nil)).
		ColumnExpr("coalesce(sum(balance), 0)").
		Select(&supply)
	if err != nil {
		return 0, fmt.Errorf("sum balances: %w", err)
	}
	return supply, nil
}
