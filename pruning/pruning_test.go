package pruning

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/testutil"
	"github.com/bnb-chain/ledger-pruner/types"
)

func newTestPruning(t *testing.T) (*Pruning, db.LedgerDao) {
	ledgerDB := testutil.NewTestDB(t)
	return NewPruning(ledgerDB), db.NewLedgerSvcDB(ledgerDB)
}

func batchPtr(n types.BatchNumber) *types.BatchNumber {
	return &n
}

func subBlockPtr(n types.SubBlockNumber) *types.SubBlockNumber {
	return &n
}

func TestSoftPruning(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestPruning(t)

	info, err := p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.PruningInfo{}, info)

	require.NoError(t, p.SoftPruneBatchesRange(ctx, 5, 11))
	info, err = p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.PruningInfo{
		LastSoftPrunedSubBlock: subBlockPtr(11),
		LastSoftPrunedBatch:    batchPtr(5),
	}, info)

	require.NoError(t, p.SoftPruneBatchesRange(ctx, 10, 21))
	info, err = p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.PruningInfo{
		LastSoftPrunedSubBlock: subBlockPtr(21),
		LastSoftPrunedBatch:    batchPtr(10),
	}, info)

	_, err = p.HardPruneBatchesRange(ctx, 10, 21)
	require.NoError(t, err)
	info, err = p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.PruningInfo{
		LastSoftPrunedSubBlock: subBlockPtr(21),
		LastSoftPrunedBatch:    batchPtr(10),
		LastHardPrunedSubBlock: subBlockPtr(21),
		LastHardPrunedBatch:    batchPtr(10),
	}, info)
}

// TestPruningInfoIsOneSnapshot commits a soft and a hard prune right after GetPruningInfo
// reads the pruning log and checks that the result reflects either the state before or
// after, never a mix.
func TestPruningInfoIsOneSnapshot(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)
	testutil.InsertRealisticBatches(t, dao, 10)
	require.NoError(t, p.SoftPruneBatchesRange(ctx, 2, 5))
	_, err := p.HardPruneBatchesRange(ctx, 2, 5)
	require.NoError(t, err)

	ledgerDB := dao.DB()
	fired := false
	const callbackName = "test:prune_after_read"
	require.NoError(t, ledgerDB.Callback().Query().After("gorm:query").Register(callbackName, func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "pruning_log" {
			return
		}
		fired = true
		require.NoError(t, p.SoftPruneBatchesRange(ctx, 6, 13))
		_, err := p.HardPruneBatchesRange(ctx, 6, 13)
		require.NoError(t, err)
	}))
	defer func() {
		_ = ledgerDB.Callback().Query().Remove(callbackName)
	}()

	info, err := p.GetPruningInfo(ctx)
	require.NoError(t, err)
	require.True(t, fired)
	assert.Equal(t, &types.PruningInfo{
		LastSoftPrunedSubBlock: subBlockPtr(5),
		LastSoftPrunedBatch:    batchPtr(2),
		LastHardPrunedSubBlock: subBlockPtr(5),
		LastHardPrunedBatch:    batchPtr(2),
	}, info)

	info, err = p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.PruningInfo{
		LastSoftPrunedSubBlock: subBlockPtr(13),
		LastSoftPrunedBatch:    batchPtr(6),
		LastHardPrunedSubBlock: subBlockPtr(13),
		LastHardPrunedBatch:    batchPtr(6),
	}, info)
}

func TestSoftPruningRejectsEarlierBound(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)

	require.NoError(t, p.SoftPruneBatchesRange(ctx, 5, 11))
	// same bound is accepted without a new log row
	require.NoError(t, p.SoftPruneBatchesRange(ctx, 5, 11))
	assert.EqualValues(t, 1, testutil.Count(t, dao.DB(), &db.PruningLog{}))

	err := p.SoftPruneBatchesRange(ctx, 4, 11)
	assert.ErrorIs(t, err, ErrInvalidBound)
	err = p.SoftPruneBatchesRange(ctx, 5, 10)
	assert.ErrorIs(t, err, ErrInvalidBound)

	info, err := p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, batchPtr(5), info.LastSoftPrunedBatch)
	assert.Equal(t, subBlockPtr(11), info.LastSoftPrunedSubBlock)
}

func TestHardPruningBounds(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)
	testutil.InsertRealisticBatches(t, dao, 10)

	_, err := p.HardPruneBatchesRange(ctx, 1, 3)
	assert.ErrorIs(t, err, ErrInvalidBound, "hard prune before any soft prune")

	require.NoError(t, p.SoftPruneBatchesRange(ctx, 5, 11))
	_, err = p.HardPruneBatchesRange(ctx, 6, 11)
	assert.ErrorIs(t, err, ErrInvalidBound, "batch ahead of soft boundary")
	_, err = p.HardPruneBatchesRange(ctx, 5, 12)
	assert.ErrorIs(t, err, ErrInvalidBound, "sub-block ahead of soft boundary")

	_, err = p.HardPruneBatchesRange(ctx, 3, 7)
	require.NoError(t, err)
	_, err = p.HardPruneBatchesRange(ctx, 2, 7)
	assert.ErrorIs(t, err, ErrInvalidBound, "batch behind hard boundary")
	_, err = p.HardPruneBatchesRange(ctx, 3, 6)
	assert.ErrorIs(t, err, ErrInvalidBound, "sub-block behind hard boundary")

	info, err := p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, batchPtr(3), info.LastHardPrunedBatch)
	assert.Equal(t, subBlockPtr(7), info.LastHardPrunedSubBlock)
	assert.EqualValues(t, 12, testutil.Count(t, dao.DB(), &db.SubBlock{}))
}

func assertBatchesExist(t *testing.T, dao db.LedgerDao, from, to uint32) {
	for n := from; n <= to; n++ {
		batch, err := dao.GetBatch(n)
		require.NoError(t, err)
		assert.NotNil(t, batch, "batch %d", n)
		for _, sb := range []uint64{uint64(n) * 2, uint64(n)*2 + 1} {
			subBlock, err := dao.GetSubBlock(sb)
			require.NoError(t, err)
			assert.NotNil(t, subBlock, "sub-block %d", sb)
		}
	}
}

func assertBatchesGone(t *testing.T, dao db.LedgerDao, from, to uint32) {
	for n := from; n <= to; n++ {
		batch, err := dao.GetBatch(n)
		require.NoError(t, err)
		assert.Nil(t, batch, "batch %d", n)
		for _, sb := range []uint64{uint64(n) * 2, uint64(n)*2 + 1} {
			subBlock, err := dao.GetSubBlock(sb)
			require.NoError(t, err)
			assert.Nil(t, subBlock, "sub-block %d", sb)
			events, err := dao.GetEvents(sb)
			require.NoError(t, err)
			assert.Empty(t, events)
			logs, err := dao.GetCrossDomainLogs(sb)
			require.NoError(t, err)
			assert.Empty(t, logs)
			assert.Empty(t, testutil.StorageWritesAt(t, dao.DB(), sb))
		}
	}
}

func TestBatchesCanBeHardPruned(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)
	testutil.InsertRealisticBatches(t, dao, 10)
	txHash := testutil.InsertExecutedTx(t, dao, 0xaa, 3)

	assertBatchesExist(t, dao, 0, 9)
	require.NoError(t, p.SoftPruneBatchesRange(ctx, 10, 21))

	stats, err := p.HardPruneBatchesRange(ctx, 5, 11)
	require.NoError(t, err)
	assert.Equal(t, &types.PruningStats{
		DeletedBatches:         6,
		DeletedSubBlocks:       12,
		DeletedEvents:          60,
		DeletedCrossDomainLogs: 60,
		ClearedTransactions:    1,
	}, stats)
	assertBatchesGone(t, dao, 0, 5)
	assertBatchesExist(t, dao, 6, 9)

	tx, err := dao.GetTransactionDetails(txHash)
	require.NoError(t, err)
	assert.Nil(t, tx)

	stats, err = p.HardPruneBatchesRange(ctx, 10, 21)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.DeletedBatches)
	assert.EqualValues(t, 8, stats.DeletedSubBlocks)
	assert.EqualValues(t, 40, stats.DeletedEvents)
	assert.EqualValues(t, 40, stats.DeletedCrossDomainLogs)
	assertBatchesGone(t, dao, 0, 9)

	info, err := p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, batchPtr(10), info.LastHardPrunedBatch)
}

func TestHardPruningIsIdempotent(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)
	testutil.InsertRealisticBatches(t, dao, 4)
	require.NoError(t, p.SoftPruneBatchesRange(ctx, 3, 7))

	stats, err := p.HardPruneBatchesRange(ctx, 1, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.DeletedBatches)
	logRows := testutil.Count(t, dao.DB(), &db.PruningLog{})

	stats, err = p.HardPruneBatchesRange(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, stats.IsZero())
	assert.Equal(t, logRows, testutil.Count(t, dao.DB(), &db.PruningLog{}))

	info, err := p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, batchPtr(1), info.LastHardPrunedBatch)
	assert.Equal(t, subBlockPtr(3), info.LastHardPrunedSubBlock)
}

func TestBatchStraddlingBoundIsKept(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)
	testutil.InsertRealisticBatches(t, dao, 4)
	require.NoError(t, p.SoftPruneBatchesRange(ctx, 3, 7))

	// sub-block 4 belongs to batch 2, whose sub-block 5 is not pruned yet
	stats, err := p.HardPruneBatchesRange(ctx, 2, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.DeletedBatches)
	assert.EqualValues(t, 5, stats.DeletedSubBlocks)
	batch, err := dao.GetBatch(2)
	require.NoError(t, err)
	assert.NotNil(t, batch)

	stats, err = p.HardPruneBatchesRange(ctx, 3, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.DeletedBatches)
	assert.EqualValues(t, 3, stats.DeletedSubBlocks)
	assertBatchesGone(t, dao, 0, 3)
}

func TestStorageLogsPruning(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)
	testutil.InsertRealisticBatches(t, dao, 10)

	require.NoError(t, dao.InsertStorageLogs(1, "", []types.StorageLog{testutil.StorageLog(1, 1)}))
	// the first write is overwritten in sub-block 1, the second one is kept throughout
	// and the third one is overwritten in sub-block 15
	require.NoError(t, dao.InsertStorageLogs(0, "", []types.StorageLog{
		testutil.StorageLog(1, 2),
		testutil.StorageLog(2, 3),
		testutil.StorageLog(3, 4),
	}))
	require.NoError(t, dao.InsertStorageLogs(15, "", []types.StorageLog{testutil.StorageLog(3, 5)}))
	// same key twice in one sub-block, the later write wins
	require.NoError(t, dao.InsertStorageLogs(17, "", []types.StorageLog{
		testutil.StorageLog(5, 5),
		testutil.StorageLog(5, 7),
	}))
	require.NoError(t, p.SoftPruneBatchesRange(ctx, 10, 21))

	stats, err := p.HardPruneBatchesRange(ctx, 4, 9)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.DeletedStorageWrites)
	assert.Equal(t, testutil.Pairs(testutil.StorageLog(2, 3), testutil.StorageLog(3, 4)), testutil.StorageWritesAt(t, dao.DB(), 0))
	assert.Equal(t, testutil.Pairs(testutil.StorageLog(1, 1)), testutil.StorageWritesAt(t, dao.DB(), 1))
	assert.Len(t, testutil.StorageWritesAt(t, dao.DB(), 17), 2, "writes above the bound are untouched")

	stats, err = p.HardPruneBatchesRange(ctx, 10, 21)
	require.NoError(t, err)
	assert.Equal(t, &types.PruningStats{
		DeletedBatches:         5,
		DeletedSubBlocks:       10,
		DeletedEvents:          50,
		DeletedCrossDomainLogs: 50,
		DeletedStorageWrites:   2,
	}, stats)
	assert.Equal(t, testutil.Pairs(testutil.StorageLog(2, 3)), testutil.StorageWritesAt(t, dao.DB(), 0))
	assert.Equal(t, testutil.Pairs(testutil.StorageLog(1, 1)), testutil.StorageWritesAt(t, dao.DB(), 1))
	assert.Equal(t, testutil.Pairs(testutil.StorageLog(3, 5)), testutil.StorageWritesAt(t, dao.DB(), 15))
	assert.Equal(t, testutil.Pairs(testutil.StorageLog(5, 7)), testutil.StorageWritesAt(t, dao.DB(), 17))
	assert.EqualValues(t, 4, testutil.Count(t, dao.DB(), &db.StorageWrite{}))
}

func TestTransactionsAreHandledAfterPruning(t *testing.T) {
	ctx := context.Background()
	p, dao := newTestPruning(t)
	require.NoError(t, dao.SaveSubBlock(&db.SubBlock{Number: 1, Hash: db.HashToString(testutil.Hash(1))}))
	txHash := testutil.InsertExecutedTx(t, dao, 0x42, 1)

	affected, err := p.ClearTransactionFields(ctx, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	txs, err := dao.GetTransactions([]string{txHash})
	require.NoError(t, err)
	assert.Empty(t, txs)
	receipts, err := dao.GetTransactionReceipts([]string{txHash})
	require.NoError(t, err)
	assert.Empty(t, receipts)
	details, err := dao.GetTransactionDetails(txHash)
	require.NoError(t, err)
	assert.Nil(t, details)

	// the sub-block and the identity row stay
	subBlock, err := dao.GetSubBlock(1)
	require.NoError(t, err)
	assert.NotNil(t, subBlock)
	included, err := dao.GetSubBlockTransactions(1)
	require.NoError(t, err)
	require.Len(t, included, 1)
	assert.Equal(t, txHash, included[0].Hash)
	_, ok := included[0].Payload()
	assert.False(t, ok)
	assert.Nil(t, included[0].Input)

	affected, err = p.ClearTransactionFields(ctx, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	_, err = p.ClearTransactionFields(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidBound)
}

type ledgerSnapshot struct {
	batches, subBlocks, events, logs, writes, pruningLogs int64
	scrubbed                                             int64
}

func takeSnapshot(t *testing.T, ledgerDB *gorm.DB) ledgerSnapshot {
	var scrubbed int64
	require.NoError(t, ledgerDB.Model(&db.LedgerTx{}).Where("scrubbed = ?", true).Count(&scrubbed).Error)
	return ledgerSnapshot{
		batches:     testutil.Count(t, ledgerDB, &db.Batch{}),
		subBlocks:   testutil.Count(t, ledgerDB, &db.SubBlock{}),
		events:      testutil.Count(t, ledgerDB, &db.Event{}),
		logs:        testutil.Count(t, ledgerDB, &db.CrossDomainLog{}),
		writes:      testutil.Count(t, ledgerDB, &db.StorageWrite{}),
		pruningLogs: testutil.Count(t, ledgerDB, &db.PruningLog{}),
		scrubbed:    scrubbed,
	}
}

func seedForFailure(t *testing.T) (*Pruning, db.LedgerDao) {
	p, dao := newTestPruning(t)
	testutil.InsertRealisticBatches(t, dao, 6)
	testutil.InsertExecutedTx(t, dao, 0xaa, 2)
	require.NoError(t, dao.InsertStorageLogs(0, "", []types.StorageLog{testutil.StorageLog(1, 1), testutil.StorageLog(2, 2)}))
	require.NoError(t, dao.InsertStorageLogs(3, "", []types.StorageLog{testutil.StorageLog(1, 3)}))
	require.NoError(t, p.SoftPruneBatchesRange(context.Background(), 5, 11))
	return p, dao
}

func TestHardPruningFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	p, dao := seedForFailure(t)
	ledgerDB := dao.DB()
	before := takeSnapshot(t, ledgerDB)

	const callbackName = "test:fail_batch_delete"
	require.NoError(t, ledgerDB.Callback().Delete().Before("gorm:delete").Register(callbackName, func(tx *gorm.DB) {
		if tx.Statement.Table == "batch" {
			_ = tx.AddError(errors.New("disk on fire"))
		}
	}))

	stats, err := p.HardPruneBatchesRange(ctx, 3, 7)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Equal(t, before, takeSnapshot(t, ledgerDB))
	info, err := p.GetPruningInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, info.LastHardPrunedBatch)

	require.NoError(t, ledgerDB.Callback().Delete().Remove(callbackName))
	stats, err = p.HardPruneBatchesRange(ctx, 3, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.DeletedBatches)
	assert.EqualValues(t, 1, stats.DeletedStorageWrites)
	assert.EqualValues(t, 1, stats.ClearedTransactions)
}

func TestHardPruningConsistencyViolationRollsBack(t *testing.T) {
	ctx := context.Background()
	p, dao := seedForFailure(t)
	ledgerDB := dao.DB()
	before := takeSnapshot(t, ledgerDB)
	lostKey := db.HashToString(testutil.StorageLog(2, 2).Key.HashedKey())

	// simulates a compaction statement that also drops the only write of a key
	const callbackName = "test:lose_key"
	require.NoError(t, ledgerDB.Callback().Raw().After("gorm:raw").Register(callbackName, func(tx *gorm.DB) {
		if tx.Error == nil && strings.HasPrefix(tx.Statement.SQL.String(), "DELETE FROM storage_write") {
			_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
				"DELETE FROM storage_write WHERE hashed_key = ?", lostKey)
			if err != nil {
				_ = tx.AddError(err)
			}
		}
	}))
	defer func() {
		_ = ledgerDB.Callback().Raw().Remove(callbackName)
	}()

	_, err := p.HardPruneBatchesRange(ctx, 3, 7)
	assert.ErrorIs(t, err, ErrConsistencyViolation)
	assert.Equal(t, before, takeSnapshot(t, ledgerDB))
}

func TestCancelledHardPruneChangesNothing(t *testing.T) {
	p, dao := seedForFailure(t)
	before := takeSnapshot(t, dao.DB())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.HardPruneBatchesRange(ctx, 3, 7)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Equal(t, before, takeSnapshot(t, dao.DB()))
}

// TestCurrentValueInvariant checks, over random histories and random prune sequences, that
// each key keeps exactly its last write at or below the hard boundary and every write above
// it.
func TestCurrentValueInvariant(t *testing.T) {
	ctx := context.Background()
	rnd := rand.New(rand.NewSource(7))

	for round := 0; round < 5; round++ {
		p, dao := newTestPruning(t)
		const subBlocks = 40
		type write struct {
			subBlock uint64
			value    byte
		}
		history := make(map[byte][]write)
		for sb := uint64(0); sb < subBlocks; sb++ {
			logs := make([]types.StorageLog, 0)
			for i := rnd.Intn(4); i > 0; i-- {
				key, value := byte(rnd.Intn(6)+1), byte(rnd.Intn(250)+1)
				logs = append(logs, testutil.StorageLog(key, value))
				history[key] = append(history[key], write{sb, value})
			}
			require.NoError(t, dao.InsertStorageLogs(sb, "", logs))
		}
		require.NoError(t, p.SoftPruneBatchesRange(ctx, subBlocks, subBlocks))

		bound := uint64(0)
		for bound < subBlocks {
			bound += uint64(rnd.Intn(10))
			if bound > subBlocks {
				bound = subBlocks
			}
			_, err := p.HardPruneBatchesRange(ctx, types.BatchNumber(bound), types.SubBlockNumber(bound))
			require.NoError(t, err)

			stored, err := dao.GetStorageWrites(0, subBlocks)
			require.NoError(t, err)
			byKey := make(map[string][]*db.StorageWrite)
			for _, w := range stored {
				byKey[w.HashedKey] = append(byKey[w.HashedKey], w)
			}
			for key, writes := range history {
				hashedKey := db.HashToString(testutil.StorageLog(key, 0).Key.HashedKey())
				rows := byKey[hashedKey]

				var lastBelow *write
				above := make([]write, 0)
				for i := range writes {
					if writes[i].subBlock <= bound {
						lastBelow = &writes[i]
					} else {
						above = append(above, writes[i])
					}
				}
				expected := make([]write, 0)
				if lastBelow != nil {
					expected = append(expected, *lastBelow)
				}
				expected = append(expected, above...)
				actual := make([]write, 0, len(rows))
				for _, r := range rows {
					actual = append(actual, write{r.SubBlockNumber, db.StringToHash(r.Value).Bytes()[0]})
				}
				require.Equal(t, expected, actual, "round %d, key %d, bound %d", round, key, bound)

				latest, err := dao.GetLatestStorageWrite(hashedKey)
				require.NoError(t, err)
				assert.Equal(t, writes[len(writes)-1].value, db.StringToHash(latest.Value).Bytes()[0])
			}
		}
	}
}
