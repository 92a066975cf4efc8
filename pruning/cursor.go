package pruning

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/types"
)

// cursor reads and advances the pruning boundaries inside one transaction. Every accepted
// move appends a row to pruning_log carrying both the batch and the sub-block pointer.
type cursor struct {
	tx   *gorm.DB
	info *types.PruningInfo
}

func loadCursor(tx *gorm.DB) (*cursor, error) {
	info, err := db.QueryPruningInfo(tx)
	if err != nil {
		return nil, fmt.Errorf("read pruning info: %w: %w", ErrStorageFailure, err)
	}
	return &cursor{tx: tx, info: info}, nil
}

// checkSoft validates a soft prune target. noop is true when the target equals the current
// soft boundary.
func (c *cursor) checkSoft(batch types.BatchNumber, subBlock types.SubBlockNumber) (noop bool, err error) {
	if c.info.LastSoftPrunedBatch == nil {
		return false, nil
	}
	softBatch, softSubBlock := *c.info.LastSoftPrunedBatch, *c.info.LastSoftPrunedSubBlock
	if batch < softBatch || subBlock < softSubBlock {
		return false, fmt.Errorf("%w: soft prune target (batch=%d, sub_block=%d) is behind soft boundary (batch=%d, sub_block=%d)",
			ErrInvalidBound, batch, subBlock, softBatch, softSubBlock)
	}
	return batch == softBatch && subBlock == softSubBlock, nil
}

// checkHard validates a hard prune target against both boundaries. noop is true when the
// target equals the current hard boundary.
func (c *cursor) checkHard(batch types.BatchNumber, subBlock types.SubBlockNumber) (noop bool, err error) {
	if c.info.LastSoftPrunedBatch == nil {
		return false, fmt.Errorf("%w: hard prune target (batch=%d, sub_block=%d) requested before any soft prune",
			ErrInvalidBound, batch, subBlock)
	}
	softBatch, softSubBlock := *c.info.LastSoftPrunedBatch, *c.info.LastSoftPrunedSubBlock
	if batch > softBatch || subBlock > softSubBlock {
		return false, fmt.Errorf("%w: hard prune target (batch=%d, sub_block=%d) is ahead of soft boundary (batch=%d, sub_block=%d)",
			ErrInvalidBound, batch, subBlock, softBatch, softSubBlock)
	}
	if c.info.LastHardPrunedBatch == nil {
		return false, nil
	}
	hardBatch, hardSubBlock := *c.info.LastHardPrunedBatch, *c.info.LastHardPrunedSubBlock
	if batch < hardBatch || subBlock < hardSubBlock {
		return false, fmt.Errorf("%w: hard prune target (batch=%d, sub_block=%d) is behind hard boundary (batch=%d, sub_block=%d)",
			ErrInvalidBound, batch, subBlock, hardBatch, hardSubBlock)
	}
	return batch == hardBatch && subBlock == hardSubBlock, nil
}

// hardRange is the sub-block range a hard prune to subBlock removes:
// (last hard pruned, subBlock].
func (c *cursor) hardRange(subBlock types.SubBlockNumber) pruneRange {
	r := pruneRange{to: uint64(subBlock)}
	if c.info.LastHardPrunedSubBlock != nil {
		from := uint64(*c.info.LastHardPrunedSubBlock)
		r.after = &from
	}
	return r
}

func (c *cursor) advance(pruneType db.PruneType, runID string, batch types.BatchNumber, subBlock types.SubBlockNumber) error {
	row := &db.PruningLog{
		RunId:          runID,
		PrunedBatch:    uint32(batch),
		PrunedSubBlock: uint64(subBlock),
		Type:           pruneType,
		CreatedTime:    time.Now().Unix(),
	}
	if err := db.InsertPruningLog(c.tx, row); err != nil {
		return fmt.Errorf("append %s pruning log: %w: %w", pruneType, ErrStorageFailure, err)
	}
	switch pruneType {
	case db.SoftPrune:
		c.info.LastSoftPrunedBatch, c.info.LastSoftPrunedSubBlock = &batch, &subBlock
	case db.HardPrune:
		c.info.LastHardPrunedBatch, c.info.LastHardPrunedSubBlock = &batch, &subBlock
	}
	return nil
}

func newRunID() string {
	return ulid.Make().String()
}

// pruneRange selects sub-block numbers in (after, to]; a nil after means from genesis.
type pruneRange struct {
	after *uint64
	to    uint64
}

func (r pruneRange) scope(column string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where(column+" <= ?", r.to)
		if r.after != nil {
			tx = tx.Where(column+" > ?", *r.after)
		}
		return tx
	}
}

func (r pruneRange) first() uint64 {
	if r.after == nil {
		return 0
	}
	return *r.after + 1
}
