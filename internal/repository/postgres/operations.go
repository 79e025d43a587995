package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/pkg/safe"
)

// The composite operations below are the write paths of the engines. Each
// one runs its full side-effect set inside a single transaction, so a crash
// either keeps every effect of an operation or none of them. Funds and
// ownership are re-read under a FOR UPDATE lock inside the transaction;
// the checks the engines run beforehand are only a fast path and can go
// stale under concurrent spends.

var (
	// ErrInsufficientFunds reports that the locked re-read found less
	// balance or stake than the operation spends.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotNameOwner reports that the locked name row is missing or no
	// longer owned by the expected address.
	ErrNotNameOwner = errors.New("not the name owner")
)

// PerformTransfer moves value from sender to recipient and records the
// ledger entry: sender loses balance and gains totalout, recipient gains
// balance and totalin, creating the recipient row on its first credit.
func (r *Repository) PerformTransfer(ctx context.Context, sender, recipient string, amount uint64, row *model.Transaction) (err error) {
	started := time.Now()
	defer func() { r.observe("perform_transfer", err, started) }()

	amt, err := safe.Int64(amount)
	if err != nil {
		return fmt.Errorf("transfer amount: %w", err)
	}

	return r.RunInTransaction(ctx, func(tx *Repository) error {
		locked, err := tx.AddressForUpdate(ctx, sender)
		if err != nil {
			return err
		}
		if locked == nil || locked.Balance < amount {
			return ErrInsufficientFunds
		}
		if err := tx.AdjustBalance(ctx, sender, -amt, 0, amt); err != nil {
			return err
		}
		if err := tx.CreditOrCreateAddress(ctx, recipient, amount, row.Time); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, row)
	})
}

// AppendBlock appends a block to the chain and applies every bookkeeping
// effect of its acceptance: the reward is computed from the unpaid name and
// penalty pools, the block and its mined transaction are inserted, both
// pools decay by one and the producer is credited. The caller fills every
// block field except Value; the reward transaction is returned.
//
// Concurrent submissions for the same height race on the block primary key
// and hash index; the loser surfaces an integrity violation, which callers
// detect through IsUniqueViolation.
func (r *Repository) AppendBlock(ctx context.Context, block *model.Block, baseValue uint32) (_ *model.Transaction, err error) {
	started := time.Now()
	defer func() { r.observe("append_block", err, started) }()

	var reward *model.Transaction
	err = r.RunInTransaction(ctx, func(tx *Repository) error {
		unpaidNames, err := tx.CountUnpaidNames(ctx)
		if err != nil {
			return err
		}
		penalized, err := tx.CountPenalized(ctx)
		if err != nil {
			return err
		}

		nameBonus, err := safe.Uint32(unpaidNames)
		if err != nil {
			return fmt.Errorf("name bonus: %w", err)
		}
		penaltyBonus, err := safe.Uint32(penalized)
		if err != nil {
			return fmt.Errorf("penalty bonus: %w", err)
		}

		block.Value = baseValue + nameBonus + penaltyBonus
		if err := tx.CreateBlock(ctx, block); err != nil {
			return err
		}

		reward = &model.Transaction{
			To:        block.Address,
			Value:     uint64(block.Value),
			Time:      block.Time,
			UserAgent: block.UserAgent,
			Origin:    block.Origin,
		}
		if err := tx.CreateTransaction(ctx, reward); err != nil {
			return err
		}

		if err := tx.DecayUnpaidNames(ctx); err != nil {
			return err
		}
		if err := tx.DecayPenalties(ctx); err != nil {
			return err
		}
		return tx.CreditOrCreateAddress(ctx, block.Address, uint64(block.Value), block.Time)
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// RegisterName debits the purchase cost from the buyer and inserts the name
// together with its purchase transaction. The name starts with its unpaid
// counter at the full cost.
func (r *Repository) RegisterName(ctx context.Context, name *model.Name, cost uint64, row *model.Transaction) (err error) {
	started := time.Now()
	defer func() { r.observe("register_name", err, started) }()

	amt, err := safe.Int64(cost)
	if err != nil {
		return fmt.Errorf("name cost: %w", err)
	}

	return r.RunInTransaction(ctx, func(tx *Repository) error {
		locked, err := tx.AddressForUpdate(ctx, name.Owner)
		if err != nil {
			return err
		}
		if locked == nil || locked.Balance < cost {
			return ErrInsufficientFunds
		}
		if err := tx.AdjustBalance(ctx, name.Owner, -amt, 0, amt); err != nil {
			return err
		}
		if err := tx.CreateName(ctx, name); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, row)
	})
}

// TransferName reassigns a name and records the zero-value transfer entry.
// owner is the address expected to hold the name at commit time.
func (r *Repository) TransferName(ctx context.Context, name, owner, newOwner string, now time.Time, row *model.Transaction) (err error) {
	started := time.Now()
	defer func() { r.observe("transfer_name", err, started) }()

	return r.RunInTransaction(ctx, func(tx *Repository) error {
		locked, err := tx.NameForUpdate(ctx, name)
		if err != nil {
			return err
		}
		if locked == nil || locked.Owner != owner {
			return ErrNotNameOwner
		}
		if err := tx.UpdateNameOwner(ctx, name, newOwner, now); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, row)
	})
}

// UpdateNameRecord replaces the data record of a name and records the
// update entry. owner is the address expected to hold the name at commit
// time.
func (r *Repository) UpdateNameRecord(ctx context.Context, name, owner string, record *string, now time.Time, row *model.Transaction) (err error) {
	started := time.Now()
	defer func() { r.observe("update_name_record", err, started) }()

	return r.RunInTransaction(ctx, func(tx *Repository) error {
		locked, err := tx.NameForUpdate(ctx, name)
		if err != nil {
			return err
		}
		if locked == nil || locked.Owner != owner {
			return ErrNotNameOwner
		}
		if err := tx.UpdateNameARecord(ctx, name, record, now); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, row)
	})
}

// DepositStake moves amount from the balance of an address into its stake,
// marks the stake active and records the staking entry. The position after
// the deposit is returned.
func (r *Repository) DepositStake(ctx context.Context, address string, amount uint64, row *model.Transaction) (_ *model.Stake, err error) {
	started := time.Now()
	defer func() { r.observe("deposit_stake", err, started) }()

	amt, err := safe.Int64(amount)
	if err != nil {
		return nil, fmt.Errorf("stake amount: %w", err)
	}

	var view model.Stake
	err = r.RunInTransaction(ctx, func(tx *Repository) error {
		locked, err := tx.AddressForUpdate(ctx, address)
		if err != nil {
			return err
		}
		if locked == nil || locked.Balance < amount {
			return ErrInsufficientFunds
		}
		view = model.Stake{Owner: address, Stake: locked.Stake + amount, Active: true}

		if err := tx.AdjustBalance(ctx, address, -amt, 0, 0); err != nil {
			return err
		}
		if err := tx.AdjustStake(ctx, address, amt, true); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// WithdrawStake moves amount from the stake of an address back into its
// balance and records the staking entry. The stake stays active only while
// something is left in it; the position after the withdrawal is returned.
func (r *Repository) WithdrawStake(ctx context.Context, address string, amount uint64, row *model.Transaction) (_ *model.Stake, err error) {
	started := time.Now()
	defer func() { r.observe("withdraw_stake", err, started) }()

	amt, err := safe.Int64(amount)
	if err != nil {
		return nil, fmt.Errorf("stake amount: %w", err)
	}

	var view model.Stake
	err = r.RunInTransaction(ctx, func(tx *Repository) error {
		locked, err := tx.AddressForUpdate(ctx, address)
		if err != nil {
			return err
		}
		if locked == nil || locked.Stake < amount {
			return ErrInsufficientFunds
		}
		remaining := locked.Stake - amount
		view = model.Stake{Owner: address, Stake: remaining, Active: remaining > 0}

		if err := tx.AdjustStake(ctx, address, -amt, view.Active); err != nil {
			return err
		}
		if err := tx.AdjustBalance(ctx, address, amt, 0, 0); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, row)
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// PenalizeStaker docks the stake of an address by at most penalty, moves the
// deduction into its penalty counter and deactivates its participation. The
// position after the deduction is returned, nil when the address is unknown.
func (r *Repository) PenalizeStaker(ctx context.Context, address string, penalty uint64) (_ *model.Stake, err error) {
	started := time.Now()
	defer func() { r.observe("penalize_staker", err, started) }()

	var view *model.Stake
	err = r.RunInTransaction(ctx, func(tx *Repository) error {
		locked, err := tx.AddressForUpdate(ctx, address)
		if err != nil {
			return err
		}
		if locked == nil {
			return nil
		}

		p := penalty
		if locked.Stake < p {
			p = locked.Stake
		}
		amt, err := safe.Int64(p)
		if err != nil {
			return fmt.Errorf("penalty amount: %w", err)
		}
		view = &model.Stake{Owner: address, Stake: locked.Stake - p, Active: false}

		if err := tx.AdjustStake(ctx, address, -amt, false); err != nil {
			return err
		}
		if p == 0 {
			return nil
		}
		return tx.IncrementPenalty(ctx, address, p)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
