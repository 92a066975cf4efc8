package pruning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/logging"
	"github.com/bnb-chain/ledger-pruner/metrics"
	"github.com/bnb-chain/ledger-pruner/types"
)

// Engine is the pruning surface used by drivers and the query layer.
type Engine interface {
	GetPruningInfo(ctx context.Context) (*types.PruningInfo, error)
	SoftPruneBatchesRange(ctx context.Context, batch types.BatchNumber, subBlock types.SubBlockNumber) error
	HardPruneBatchesRange(ctx context.Context, batch types.BatchNumber, subBlock types.SubBlockNumber) (*types.PruningStats, error)
	ClearTransactionFields(ctx context.Context, from, to types.SubBlockNumber) (int64, error)
}

// Pruning is the only writer of the pruning boundaries. Every call runs in its own database
// transaction. Calls are expected to be serialized by the caller; there is no lock here.
type Pruning struct {
	db        *gorm.DB
	compactor compactor
	deleter   cascadingDeleter
	scrubber  scrubber
}

var _ Engine = (*Pruning)(nil)

func NewPruning(db *gorm.DB) *Pruning {
	return &Pruning{db: db}
}

func (p *Pruning) GetPruningInfo(ctx context.Context) (*types.PruningInfo, error) {
	info, err := db.QueryPruningInfo(p.db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("read pruning info: %w: %w", ErrStorageFailure, err)
	}
	return info, nil
}

// SoftPruneBatchesRange marks everything up to the given batch and sub-block as retired.
// Nothing is deleted. Re-issuing the current bound is a no-op.
func (p *Pruning) SoftPruneBatchesRange(ctx context.Context, batch types.BatchNumber, subBlock types.SubBlockNumber) error {
	runID := newRunID()
	var advanced bool
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := loadCursor(tx)
		if err != nil {
			return err
		}
		noop, err := c.checkSoft(batch, subBlock)
		if err != nil || noop {
			return err
		}
		advanced = true
		return c.advance(db.SoftPrune, runID, batch, subBlock)
	})
	if err != nil {
		metrics.PruneErrorsCounter.WithLabelValues(string(db.SoftPrune)).Inc()
		logging.Logger.Errorf("failed to soft prune, run_id=%s, batch=%d, sub_block=%d, err=%s", runID, batch, subBlock, err.Error())
		return wrapStorageErr(err)
	}
	if !advanced {
		logging.Logger.Debugf("soft prune target is the current boundary, batch=%d, sub_block=%d", batch, subBlock)
		return nil
	}
	metrics.SoftPrunedBatchGauge.Set(float64(batch))
	metrics.SoftPrunedSubBlockGauge.Set(float64(subBlock))
	logging.Logger.Infof("soft pruned, run_id=%s, batch=%d, sub_block=%d", runID, batch, subBlock)
	return nil
}

// HardPruneBatchesRange removes the data of sub-blocks in (last hard pruned, subBlock] and
// of batches up to batch whose sub-blocks are all gone, compacts storage writes at or below
// subBlock and clears the payload of transactions of the removed sub-blocks. Either all of
// it commits together with the new boundary or nothing does. Re-issuing the current bound
// returns zero stats.
func (p *Pruning) HardPruneBatchesRange(ctx context.Context, batch types.BatchNumber, subBlock types.SubBlockNumber) (*types.PruningStats, error) {
	runID := newRunID()
	start := time.Now()
	stats := &types.PruningStats{}
	var advanced bool
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := loadCursor(tx)
		if err != nil {
			return err
		}
		noop, err := c.checkHard(batch, subBlock)
		if err != nil || noop {
			return err
		}
		r := c.hardRange(subBlock)

		if stats.ClearedTransactions, err = p.scrubber.clear(tx, r.first(), r.to); err != nil {
			return err
		}
		if stats.DeletedStorageWrites, err = p.compactor.compact(tx, r.to); err != nil {
			return err
		}
		if err = p.deleter.delete(tx, r, batch, stats); err != nil {
			return err
		}
		advanced = true
		return c.advance(db.HardPrune, runID, batch, subBlock)
	})
	if err != nil {
		metrics.PruneErrorsCounter.WithLabelValues(string(db.HardPrune)).Inc()
		logging.Logger.Errorf("failed to hard prune, run_id=%s, batch=%d, sub_block=%d, err=%s", runID, batch, subBlock, err.Error())
		return nil, wrapStorageErr(err)
	}
	if !advanced {
		logging.Logger.Debugf("hard prune target is the current boundary, batch=%d, sub_block=%d", batch, subBlock)
		return &types.PruningStats{}, nil
	}
	metrics.HardPruneDuration.Observe(time.Since(start).Seconds())
	metrics.HardPrunedBatchGauge.Set(float64(batch))
	metrics.HardPrunedSubBlockGauge.Set(float64(subBlock))
	metrics.PrunedRowsCounter.WithLabelValues("batch").Add(float64(stats.DeletedBatches))
	metrics.PrunedRowsCounter.WithLabelValues("sub_block").Add(float64(stats.DeletedSubBlocks))
	metrics.PrunedRowsCounter.WithLabelValues("event").Add(float64(stats.DeletedEvents))
	metrics.PrunedRowsCounter.WithLabelValues("cross_domain_log").Add(float64(stats.DeletedCrossDomainLogs))
	metrics.PrunedRowsCounter.WithLabelValues("storage_write").Add(float64(stats.DeletedStorageWrites))
	metrics.PrunedRowsCounter.WithLabelValues("ledger_tx").Add(float64(stats.ClearedTransactions))
	logging.Logger.Infof("hard pruned, run_id=%s, batch=%d, sub_block=%d, batches=%d, sub_blocks=%d, events=%d, cross_domain_logs=%d, storage_writes=%d, txs=%d, elapsed=%s",
		runID, batch, subBlock, stats.DeletedBatches, stats.DeletedSubBlocks, stats.DeletedEvents,
		stats.DeletedCrossDomainLogs, stats.DeletedStorageWrites, stats.ClearedTransactions, time.Since(start))
	return stats, nil
}

// ClearTransactionFields clears the payload of transactions included in sub-blocks
// [from, to] and returns how many were cleared. It does not depend on the pruning
// boundaries. Only rows not scrubbed yet are counted, so repeating the call over a range
// that was already cleared returns 0.
func (p *Pruning) ClearTransactionFields(ctx context.Context, from, to types.SubBlockNumber) (int64, error) {
	if from > to {
		return 0, fmt.Errorf("%w: empty sub-block range [%d, %d]", ErrInvalidBound, from, to)
	}
	var affected int64
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		affected, err = p.scrubber.clear(tx, uint64(from), uint64(to))
		return err
	})
	if err != nil {
		logging.Logger.Errorf("failed to clear transaction fields, from=%d, to=%d, err=%s", from, to, err.Error())
		return 0, wrapStorageErr(err)
	}
	logging.Logger.Infof("cleared transaction fields, from=%d, to=%d, affected=%d", from, to, affected)
	return affected, nil
}

// wrapStorageErr tags errors raised by the transaction itself (begin, commit, context) that
// did not come from a pruning step.
func wrapStorageErr(err error) error {
	if errors.Is(err, ErrInvalidBound) || errors.Is(err, ErrStorageFailure) || errors.Is(err, ErrConsistencyViolation) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
