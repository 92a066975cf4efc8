package pruning

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/types"
)

// cascadingDeleter removes the per sub-block and per batch rows of a pruned range. Children
// go before their parents.
type cascadingDeleter struct{}

func (cascadingDeleter) delete(tx *gorm.DB, r pruneRange, batch types.BatchNumber, stats *types.PruningStats) error {
	res := tx.Scopes(r.scope("sub_block_number")).Delete(&db.Event{})
	if res.Error != nil {
		return fmt.Errorf("delete events: %w: %w", ErrStorageFailure, res.Error)
	}
	stats.DeletedEvents = res.RowsAffected

	res = tx.Scopes(r.scope("sub_block_number")).Delete(&db.CrossDomainLog{})
	if res.Error != nil {
		return fmt.Errorf("delete cross-domain logs: %w: %w", ErrStorageFailure, res.Error)
	}
	stats.DeletedCrossDomainLogs = res.RowsAffected

	res = tx.Scopes(r.scope("number")).Delete(&db.SubBlock{})
	if res.Error != nil {
		return fmt.Errorf("delete sub-blocks: %w: %w", ErrStorageFailure, res.Error)
	}
	stats.DeletedSubBlocks = res.RowsAffected

	// A batch goes once none of its sub-blocks is left, so it has no lower bound: a batch
	// kept by an earlier call because it straddled that bound is picked up now.
	ownedSubBlocks := tx.Session(&gorm.Session{NewDB: true}).
		Model(&db.SubBlock{}).Select("1").Where("sub_block.batch_number = batch.number")
	res = tx.Where("number <= ?", uint32(batch)).Where("NOT EXISTS (?)", ownedSubBlocks).Delete(&db.Batch{})
	if res.Error != nil {
		return fmt.Errorf("delete batches: %w: %w", ErrStorageFailure, res.Error)
	}
	stats.DeletedBatches = res.RowsAffected
	return nil
}
