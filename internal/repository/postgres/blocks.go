package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tstnetwork/tstnode/internal/model"
)

// Block returns the block with the given height, or nil when no such block
// exists.
func (r *Repository) Block(ctx context.Context, id uint64) (_ *model.Block, err error) {
	started := time.Now()
	defer func() { r.observe("block", err, started) }()

	row := new(model.Block)
	err = r.db.ModelContext(ctx, row).Where("id = ?", id).Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select block: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// LastBlock returns the chain tip, or nil when the chain is empty.
func (r *Repository) LastBlock(ctx context.Context) (_ *model.Block, err error) {
	started := time.Now()
	defer func() { r.observe("last_block", err, started) }()

	row := new(model.Block)
	err = r.db.ModelContext(ctx, row).Order("id DESC").Limit(1).Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select last block: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// LastBlockForUpdate returns the chain tip locked with FOR UPDATE. Block
// submission locks the tip so only one submission extends the chain at a
// time.
func (r *Repository) LastBlockForUpdate(ctx context.Context) (_ *model.Block, err error) {
	started := time.Now()
	defer func() { r.observe("last_block_for_update", err, started) }()

	row := new(model.Block)
	err = r.db.ModelContext(ctx, row).Order("id DESC").Limit(1).For("UPDATE").Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select last block for update: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// LowestHashBlock returns the block whose hash sorts lowest, the hardest
// solution mined so far. Blocks without a hash do not participate.
func (r *Repository) LowestHashBlock(ctx context.Context) (_ *model.Block, err error) {
	started := time.Now()
	defer func() { r.observe("lowest_hash_block", err, started) }()

	row := new(model.Block)
	err = r.db.ModelContext(ctx, row).
		Where("hash IS NOT NULL").
		OrderExpr("hash ASC").
		Limit(1).
		Select()
	if err != nil {
		if err = notFoundIsNil(err); err != nil {
			return nil, fmt.Errorf("select lowest hash block: %w", err)
		}
		return nil, nil
	}
	return row, nil
}

// CreateBlock appends a block. The unique index on hash makes replays of an
// already spent solution fail with an integrity violation, which callers
// detect through IsUniqueViolation.
func (r *Repository) CreateBlock(ctx context.Context, row *model.Block) (err error) {
	started := time.Now()
	defer func() { r.observe("create_block", err, started) }()

	if _, err = r.db.ModelContext(ctx, row).Insert(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

// Blocks lists blocks together with the total count. Ascending order starts
// from the genesis block, descending from the tip.
func (r *Repository) Blocks(ctx context.Context, limit, offset int, ascending bool) (_ []model.Block, total int, err error) {
	started := time.Now()
	defer func() { r.observe("blocks", err, started) }()

	order := "id DESC"
	if ascending {
		order = "id ASC"
	}

	var rows []model.Block
	total, err = r.db.ModelContext(ctx, &rows).
		Order(order).
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select blocks: %w", err)
	}
	return rows, total, nil
}

// BlocksByAddress lists the blocks mined or validated by an address.
func (r *Repository) BlocksByAddress(ctx context.Context, address string, limit, offset int) (_ []model.Block, total int, err error) {
	started := time.Now()
	defer func() { r.observe("blocks_by_address", err, started) }()

	var rows []model.Block
	total, err = r.db.ModelContext(ctx, &rows).
		Where("address = ?", address).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("select blocks by address: %w", err)
	}
	return rows, total, nil
}

// CountBlocks returns the chain height as a row count.
func (r *Repository) CountBlocks(ctx context.Context) (_ int, err error) {
	started := time.Now()
	defer func() { r.observe("count_blocks", err, started) }()

	count, err := r.db.ModelContext(ctx, (*model.Block)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return count, nil
}
