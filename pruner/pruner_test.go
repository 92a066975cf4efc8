package pruner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/ledger-pruner/config"
	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/testutil"
	"github.com/bnb-chain/ledger-pruner/types"
)

func newTestPruner(t *testing.T, cfg *config.PrunerConfig) (*Pruner, *pruning.Pruning, db.LedgerDao) {
	ledgerDB := testutil.NewTestDB(t)
	dao := db.NewLedgerSvcDB(ledgerDB)
	engine := pruning.NewPruning(ledgerDB)
	return NewPruner(engine, dao, cfg), engine, dao
}

func boundaries(t *testing.T, engine pruning.Engine) (soft, hard *types.BatchNumber) {
	info, err := engine.GetPruningInfo(context.Background())
	require.NoError(t, err)
	return info.LastSoftPrunedBatch, info.LastHardPrunedBatch
}

func TestPrunerFollowsRetention(t *testing.T) {
	ctx := context.Background()
	p, engine, dao := newTestPruner(t, &config.PrunerConfig{
		Enable:              true,
		RetainedBatches:     3,
		BatchesPerIteration: 4,
	})

	// empty ledger
	require.NoError(t, p.Prune(ctx))
	soft, hard := boundaries(t, engine)
	assert.Nil(t, soft)
	assert.Nil(t, hard)

	testutil.InsertRealisticBatches(t, dao, 10)

	require.NoError(t, p.Prune(ctx))
	soft, hard = boundaries(t, engine)
	require.NotNil(t, hard)
	assert.EqualValues(t, 3, *soft)
	assert.EqualValues(t, 3, *hard)
	info, err := engine.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, *info.LastHardPrunedSubBlock)

	// capped by retention rather than by the iteration size
	require.NoError(t, p.Prune(ctx))
	_, hard = boundaries(t, engine)
	assert.EqualValues(t, 6, *hard)
	assert.EqualValues(t, 3, testutil.Count(t, dao.DB(), &db.Batch{}))

	require.NoError(t, p.Prune(ctx))
	_, hard = boundaries(t, engine)
	assert.EqualValues(t, 6, *hard)
}

func TestPrunerWaitsForRemovalDelay(t *testing.T) {
	ctx := context.Background()
	p, engine, dao := newTestPruner(t, &config.PrunerConfig{
		Enable:              true,
		RetainedBatches:     2,
		BatchesPerIteration: 10,
		RemovalDelaySeconds: 3600,
	})
	testutil.InsertRealisticBatches(t, dao, 6)
	now := time.Now()
	p.now = func() time.Time { return now }

	require.NoError(t, p.Prune(ctx))
	soft, hard := boundaries(t, engine)
	assert.EqualValues(t, 3, *soft)
	assert.Nil(t, hard)

	// the pending boundary is kept, no new soft prune is issued
	require.NoError(t, p.Prune(ctx))
	soft, hard = boundaries(t, engine)
	assert.EqualValues(t, 3, *soft)
	assert.Nil(t, hard)

	now = now.Add(2 * time.Hour)
	require.NoError(t, p.Prune(ctx))
	soft, hard = boundaries(t, engine)
	assert.EqualValues(t, 3, *soft)
	assert.EqualValues(t, 3, *hard)
}

func TestPrunerResumesFromPruningLog(t *testing.T) {
	ctx := context.Background()
	ledgerDB := testutil.NewTestDB(t)
	dao := db.NewLedgerSvcDB(ledgerDB)
	engine := pruning.NewPruning(ledgerDB)
	testutil.InsertRealisticBatches(t, dao, 10)
	require.NoError(t, engine.SoftPruneBatchesRange(ctx, 2, 5))

	cfg := &config.PrunerConfig{Enable: true, RetainedBatches: 1, BatchesPerIteration: 2}
	require.NoError(t, NewPruner(engine, dao, cfg).Prune(ctx))
	soft, hard := boundaries(t, engine)
	assert.EqualValues(t, 2, *soft)
	assert.EqualValues(t, 2, *hard)

	require.NoError(t, NewPruner(engine, dao, cfg).Prune(ctx))
	soft, hard = boundaries(t, engine)
	assert.EqualValues(t, 4, *soft)
	assert.EqualValues(t, 4, *hard)
}

func TestPrunerClearTransactionsOnly(t *testing.T) {
	ctx := context.Background()
	p, engine, dao := newTestPruner(t, &config.PrunerConfig{
		Enable:                true,
		RetainedBatches:       2,
		BatchesPerIteration:   2,
		ClearTransactionsOnly: true,
	})
	testutil.InsertRealisticBatches(t, dao, 8)
	old := testutil.InsertExecutedTx(t, dao, 1, 1)
	later := testutil.InsertExecutedTx(t, dao, 2, 6)
	recent := testutil.InsertExecutedTx(t, dao, 3, 14)

	require.NoError(t, p.Prune(ctx))
	txs, err := dao.GetTransactions([]string{old, later, recent})
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	require.NoError(t, p.Prune(ctx))
	txs, err = dao.GetTransactions([]string{old, later, recent})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, recent, txs[0].Hash)

	soft, hard := boundaries(t, engine)
	assert.Nil(t, soft)
	assert.Nil(t, hard)
	assert.EqualValues(t, 8, testutil.Count(t, dao.DB(), &db.Batch{}))
}

func TestPrunerRetiresEmptyBatches(t *testing.T) {
	ctx := context.Background()
	p, engine, dao := newTestPruner(t, &config.PrunerConfig{
		Enable:              true,
		RetainedBatches:     2,
		BatchesPerIteration: 1,
	})
	for n := uint32(0); n < 10; n++ {
		require.NoError(t, dao.SaveBatch(&db.Batch{Number: n, Timestamp: uint64(n)}))
		// batch 2 and 5 own no sub-blocks
		if n == 2 || n == 5 {
			continue
		}
		testutil.InsertSubBlock(t, dao, uint64(n)*2, n)
		testutil.InsertSubBlock(t, dao, uint64(n)*2+1, n)
	}

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Prune(ctx))
	}
	info, err := engine.GetPruningInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info.LastHardPrunedBatch)
	assert.EqualValues(t, 7, *info.LastHardPrunedBatch)
	assert.EqualValues(t, 15, *info.LastHardPrunedSubBlock)
	assert.EqualValues(t, 2, testutil.Count(t, dao.DB(), &db.Batch{}))
}

func TestPrunerSkipsEmptyLeadingBatches(t *testing.T) {
	ctx := context.Background()
	p, engine, dao := newTestPruner(t, &config.PrunerConfig{
		Enable:              true,
		RetainedBatches:     1,
		BatchesPerIteration: 2,
	})
	for n := uint32(0); n < 6; n++ {
		require.NoError(t, dao.SaveBatch(&db.Batch{Number: n, Timestamp: uint64(n)}))
		if n < 3 {
			continue
		}
		testutil.InsertSubBlock(t, dao, uint64(n)*2, n)
	}

	require.NoError(t, p.Prune(ctx))
	info, err := engine.GetPruningInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info.LastHardPrunedBatch)
	assert.EqualValues(t, 4, *info.LastHardPrunedBatch)
	assert.EqualValues(t, 8, *info.LastHardPrunedSubBlock)
	assert.EqualValues(t, 1, testutil.Count(t, dao.DB(), &db.Batch{}))
}
