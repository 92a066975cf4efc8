package types

import "fmt"

type BatchNumber uint32

type SubBlockNumber uint64

// PruningInfo is a point-in-time snapshot of the pruning boundaries. A nil pointer means
// nothing has been pruned of that kind yet.
type PruningInfo struct {
	LastSoftPrunedSubBlock *SubBlockNumber `json:"last_soft_pruned_sub_block"`
	LastSoftPrunedBatch    *BatchNumber    `json:"last_soft_pruned_batch"`
	LastHardPrunedSubBlock *SubBlockNumber `json:"last_hard_pruned_sub_block"`
	LastHardPrunedBatch    *BatchNumber    `json:"last_hard_pruned_batch"`
}

// IsHardPruned reports whether the sub-block is at or below the hard-pruned boundary.
func (p *PruningInfo) IsHardPruned(subBlock SubBlockNumber) bool {
	return p.LastHardPrunedSubBlock != nil && subBlock <= *p.LastHardPrunedSubBlock
}

// IsBatchHardPruned reports whether the batch is at or below the hard-pruned boundary.
func (p *PruningInfo) IsBatchHardPruned(batch BatchNumber) bool {
	return p.LastHardPrunedBatch != nil && batch <= *p.LastHardPrunedBatch
}

// IsSoftPruned reports whether the sub-block is at or below the soft-pruned boundary, i.e.
// it is either already gone or about to disappear.
func (p *PruningInfo) IsSoftPruned(subBlock SubBlockNumber) bool {
	return p.LastSoftPrunedSubBlock != nil && subBlock <= *p.LastSoftPrunedSubBlock
}

// IsBatchSoftPruned reports whether the batch is at or below the soft-pruned boundary.
func (p *PruningInfo) IsBatchSoftPruned(batch BatchNumber) bool {
	return p.LastSoftPrunedBatch != nil && batch <= *p.LastSoftPrunedBatch
}

func (p PruningInfo) String() string {
	return fmt.Sprintf("soft=(batch=%s, sub_block=%s) hard=(batch=%s, sub_block=%s)",
		optString(p.LastSoftPrunedBatch), optString(p.LastSoftPrunedSubBlock),
		optString(p.LastHardPrunedBatch), optString(p.LastHardPrunedSubBlock))
}

// PruningStats holds the row counts removed by one hard prune call.
type PruningStats struct {
	DeletedBatches         int64 `json:"deleted_batches"`
	DeletedSubBlocks       int64 `json:"deleted_sub_blocks"`
	DeletedEvents          int64 `json:"deleted_events"`
	DeletedCrossDomainLogs int64 `json:"deleted_cross_domain_logs"`
	DeletedStorageWrites   int64 `json:"deleted_storage_writes"`
	ClearedTransactions    int64 `json:"cleared_transactions"`
}

func (s *PruningStats) IsZero() bool {
	return *s == PruningStats{}
}

func optString[T BatchNumber | SubBlockNumber](v *T) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *v)
}
