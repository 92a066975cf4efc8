package pruner

import (
	"context"
	"time"

	"github.com/bnb-chain/ledger-pruner/config"
	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/logging"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/types"
)

// Pruner drives the pruning engine from a retention policy: it keeps the most recent
// RetainedBatches batches, moves the soft boundary at most BatchesPerIteration batches per
// tick and hard prunes a soft boundary once it is older than the removal delay. All state
// is read back from the pruning log on every tick, so a restarted pruner picks up where
// the previous one stopped.
type Pruner struct {
	engine   pruning.Engine
	ledgerDB db.LedgerDao
	config   *config.PrunerConfig
	now      func() time.Time

	// last boundary whose transactions were cleared, only used with ClearTransactionsOnly
	cleared *boundary
}

func NewPruner(engine pruning.Engine, ledgerDB db.LedgerDao, cfg *config.PrunerConfig) *Pruner {
	return &Pruner{
		engine:   engine,
		ledgerDB: ledgerDB,
		config:   cfg,
		now:      time.Now,
	}
}

func (p *Pruner) StartLoop(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.config.GetInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logging.Logger.Infof("pruner stopped")
				return
			case <-ticker.C:
				if err := p.Prune(ctx); err != nil {
					logging.Logger.Errorf("failed to prune, err=%s", err.Error())
					continue
				}
			}
		}
	}()
}

// Prune runs one step of the policy. At most one soft prune and one hard prune are issued.
func (p *Pruner) Prune(ctx context.Context) error {
	if p.config.ClearTransactionsOnly {
		return p.clearTransactions(ctx)
	}
	info, err := p.engine.GetPruningInfo(ctx)
	if err != nil {
		return err
	}
	logging.Logger.Debugf("pruning boundaries: %s", info)
	if !hasPendingRemoval(info) {
		var last *boundary
		if info.LastHardPrunedBatch != nil {
			last = &boundary{batch: *info.LastHardPrunedBatch, subBlock: *info.LastHardPrunedSubBlock}
		}
		next, found, err := p.nextTarget(last)
		if err != nil || !found {
			return err
		}
		if err = p.engine.SoftPruneBatchesRange(ctx, next.batch, next.subBlock); err != nil {
			return err
		}
		if info, err = p.engine.GetPruningInfo(ctx); err != nil {
			return err
		}
	}
	return p.hardPruneIfDue(ctx, info)
}

func hasPendingRemoval(info *types.PruningInfo) bool {
	if info.LastSoftPrunedBatch == nil {
		return false
	}
	if info.LastHardPrunedBatch == nil {
		return true
	}
	return *info.LastSoftPrunedSubBlock > *info.LastHardPrunedSubBlock ||
		*info.LastSoftPrunedBatch > *info.LastHardPrunedBatch
}

func (p *Pruner) hardPruneIfDue(ctx context.Context, info *types.PruningInfo) error {
	soft, err := p.ledgerDB.GetLatestPruningLog(db.SoftPrune)
	if err != nil || soft == nil {
		return err
	}
	dueAt := time.Unix(soft.CreatedTime, 0).Add(p.config.GetRemovalDelay())
	if p.now().Before(dueAt) {
		logging.Logger.Debugf("soft pruned boundary is not due yet, batch=%d, due_at=%s", soft.PrunedBatch, dueAt)
		return nil
	}
	_, err = p.engine.HardPruneBatchesRange(ctx, *info.LastSoftPrunedBatch, *info.LastSoftPrunedSubBlock)
	return err
}

// boundary is the last retired batch and sub-block.
type boundary struct {
	batch    types.BatchNumber
	subBlock types.SubBlockNumber
}

// nextTarget picks the batch to retire after last, nil when nothing was retired yet, and
// the sub-block bound that goes with it. found is false when nothing can be retired.
func (p *Pruner) nextTarget(last *boundary) (next boundary, found bool, err error) {
	latest, err := p.ledgerDB.GetLatestBatch()
	if err != nil || latest == nil {
		return next, false, err
	}
	if latest.Number < p.config.RetainedBatches {
		return next, false, nil
	}
	retained := types.BatchNumber(latest.Number - p.config.RetainedBatches)
	step := types.BatchNumber(p.config.GetBatchesPerIteration())
	limit := step - 1
	if last != nil {
		if retained <= last.batch {
			return next, false, nil
		}
		limit = last.batch + step
	}
	next.batch = retained
	if next.batch > limit {
		next.batch = limit
	}
	// an empty batch is retired together with the sub-blocks of the batches before it
	subBlock, err := p.ledgerDB.GetLastSubBlockUpToBatch(uint32(next.batch))
	if err != nil {
		return next, false, err
	}
	switch {
	case subBlock != nil && (last == nil || types.SubBlockNumber(subBlock.Number) >= last.subBlock):
		next.subBlock = types.SubBlockNumber(subBlock.Number)
		return next, true, nil
	case last != nil:
		// only empty batches since the last boundary
		next.subBlock = last.subBlock
		return next, true, nil
	case next.batch < retained:
		// nothing retired yet and the leading batches are all empty
		next.batch = retained
		if subBlock, err = p.ledgerDB.GetLastSubBlockUpToBatch(uint32(next.batch)); err != nil || subBlock == nil {
			return next, false, err
		}
		next.subBlock = types.SubBlockNumber(subBlock.Number)
		return next, true, nil
	default:
		return next, false, nil
	}
}

func (p *Pruner) clearTransactions(ctx context.Context) error {
	next, found, err := p.nextTarget(p.cleared)
	if err != nil || !found {
		return err
	}
	var from types.SubBlockNumber
	if p.cleared != nil {
		from = p.cleared.subBlock + 1
	}
	if next.subBlock >= from {
		if _, err = p.engine.ClearTransactionFields(ctx, from, next.subBlock); err != nil {
			return err
		}
	}
	p.cleared = &next
	return nil
}
