package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/ledger-pruner/cache"
	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/testutil"
	"github.com/bnb-chain/ledger-pruner/types"
)

func newTestLedger(t *testing.T) (Ledger, db.LedgerDao, *pruning.Pruning) {
	ledgerDB := testutil.NewTestDB(t)
	dao := db.NewLedgerSvcDB(ledgerDB)
	headers, err := cache.NewLocalCache(16)
	require.NoError(t, err)
	return NewLedgerService(dao, headers), dao, pruning.NewPruning(ledgerDB)
}

func errCode(t *testing.T, err error) int64 {
	var svcErr Err
	require.True(t, errors.As(err, &svcErr), "unexpected error %v", err)
	return svcErr.Code
}

func TestReadsFollowPruningBoundaries(t *testing.T) {
	ctx := context.Background()
	ledger, dao, p := newTestLedger(t)
	testutil.InsertRealisticBatches(t, dao, 6)

	batch, err := ledger.GetBatch(1)
	require.NoError(t, err)
	assert.False(t, batch.Deprecated)

	require.NoError(t, p.SoftPruneBatchesRange(ctx, 3, 7))
	batch, err = ledger.GetBatch(1)
	require.NoError(t, err)
	assert.True(t, batch.Deprecated)
	subBlock, err := ledger.GetSubBlock(7)
	require.NoError(t, err)
	assert.True(t, subBlock.Deprecated)
	subBlock, err = ledger.GetSubBlock(8)
	require.NoError(t, err)
	assert.False(t, subBlock.Deprecated)

	_, err = p.HardPruneBatchesRange(ctx, 3, 7)
	require.NoError(t, err)

	// batch 1 is cached but the boundary check comes first
	_, err = ledger.GetBatch(1)
	assert.EqualValues(t, PrunedErr.Code, errCode(t, err))
	_, err = ledger.GetSubBlock(7)
	assert.EqualValues(t, PrunedErr.Code, errCode(t, err))
	_, err = ledger.GetBatch(42)
	assert.EqualValues(t, NotFoundErr.Code, errCode(t, err))

	batch, err = ledger.GetBatch(4)
	require.NoError(t, err)
	assert.EqualValues(t, 4, batch.Number)
}

func TestBatchHeaderCachedOnceSealed(t *testing.T) {
	ledgerDB := testutil.NewTestDB(t)
	dao := db.NewLedgerSvcDB(ledgerDB)
	headers, err := cache.NewLocalCache(16)
	require.NoError(t, err)
	ledger := NewLedgerService(dao, headers)
	require.NoError(t, dao.SaveBatch(&db.Batch{Number: 3, Timestamp: 30, L2TxCount: 2}))

	batch, err := ledger.GetBatch(3)
	require.NoError(t, err)
	assert.Empty(t, batch.Hash)
	_, found := headers.Get("3")
	assert.False(t, found)

	require.NoError(t, dao.UpdateBatchHash(3, db.HashToString(testutil.Hash(3))))
	batch, err = ledger.GetBatch(3)
	require.NoError(t, err)
	assert.Equal(t, testutil.Hash(3).Hex(), batch.Hash)
	cached, found := headers.Get("3")
	require.True(t, found)
	assert.Equal(t, db.HashToString(testutil.Hash(3)), cached.(*db.Batch).Hash)

	// served from the cache from now on
	require.NoError(t, dao.UpdateBatchHash(3, db.HashToString(testutil.Hash(4))))
	batch, err = ledger.GetBatch(3)
	require.NoError(t, err)
	assert.Equal(t, testutil.Hash(3).Hex(), batch.Hash)
	assert.EqualValues(t, 2, batch.L2TxCount)
}

func TestReceiptsCarryEventsAndLogs(t *testing.T) {
	ledger, dao, _ := newTestLedger(t)
	require.NoError(t, dao.SaveSubBlock(&db.SubBlock{Number: 1, Hash: db.HashToString(testutil.Hash(1))}))
	txHash := testutil.InsertExecutedTx(t, dao, 0x42, 1)
	require.NoError(t, dao.SaveEvents(1, []*db.Event{{
		TxHash:  txHash,
		Address: db.AddressToString(testutil.Address(7)),
		Topic1:  db.HashToString(testutil.Hash(8)),
		Value:   []byte{0x01},
	}}))
	require.NoError(t, dao.SaveCrossDomainLogs(1, []*db.CrossDomainLog{{
		TxHash:  txHash,
		ShardId: 2,
		Sender:  db.AddressToString(testutil.Address(7)),
		Key:     db.HashToString(testutil.Hash(9)),
		Value:   db.HashToString(testutil.Hash(10)),
	}}))

	receipts, err := ledger.GetTransactionReceipts([]common.Hash{common.HexToHash(txHash)})
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	require.Len(t, receipts[0].Events, 1)
	assert.Equal(t, []string{testutil.Hash(8).Hex()}, receipts[0].Events[0].Topics)
	assert.Equal(t, "0x01", receipts[0].Events[0].Value)
	require.Len(t, receipts[0].CrossDomainLogs, 1)
	assert.EqualValues(t, 2, receipts[0].CrossDomainLogs[0].ShardID)
	assert.Equal(t, testutil.Address(7).Hex(), receipts[0].CrossDomainLogs[0].Sender)
}

func TestTransactionLookupsAfterScrub(t *testing.T) {
	ctx := context.Background()
	ledger, dao, p := newTestLedger(t)
	require.NoError(t, dao.SaveSubBlock(&db.SubBlock{Number: 1, Hash: db.HashToString(testutil.Hash(1))}))
	txHash := testutil.InsertExecutedTx(t, dao, 0x42, 1)
	hash := common.HexToHash(txHash)

	details, err := ledger.GetTransactionDetails(hash)
	require.NoError(t, err)
	assert.EqualValues(t, 1, details.SubBlockNumber)
	assert.Equal(t, "0xdead42", details.Input)
	assert.Equal(t, hash.Hex(), details.Hash)
	receipts, err := ledger.GetTransactionReceipts([]common.Hash{hash})
	require.NoError(t, err)
	assert.Len(t, receipts, 1)

	affected, err := p.ClearTransactionFields(ctx, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = ledger.GetTransactionDetails(hash)
	assert.EqualValues(t, NotFoundErr.Code, errCode(t, err))
	receipts, err = ledger.GetTransactionReceipts([]common.Hash{hash})
	require.NoError(t, err)
	assert.Empty(t, receipts)

	subBlock, err := ledger.GetSubBlock(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, subBlock.TxCount)
}

func TestStorageValueReads(t *testing.T) {
	ctx := context.Background()
	ledger, dao, p := newTestLedger(t)
	testutil.InsertRealisticBatches(t, dao, 5)
	key := testutil.StorageLog(1, 0).Key.HashedKey()
	require.NoError(t, dao.InsertStorageLogs(0, "", []types.StorageLog{testutil.StorageLog(1, 1)}))
	require.NoError(t, dao.InsertStorageLogs(2, "", []types.StorageLog{testutil.StorageLog(1, 2)}))
	require.NoError(t, dao.InsertStorageLogs(6, "", []types.StorageLog{testutil.StorageLog(1, 3)}))

	require.NoError(t, p.SoftPruneBatchesRange(ctx, 2, 5))
	_, err := p.HardPruneBatchesRange(ctx, 2, 5)
	require.NoError(t, err)

	value, err := ledger.GetStorageValue(key, nil)
	require.NoError(t, err)
	assert.Equal(t, testutil.Hash(3).Hex(), value.Value)

	at := types.SubBlockNumber(5)
	value, err = ledger.GetStorageValue(key, &at)
	require.NoError(t, err)
	assert.Equal(t, testutil.Hash(2).Hex(), value.Value)
	assert.EqualValues(t, 2, value.SubBlockNumber)

	at = 4
	_, err = ledger.GetStorageValue(key, &at)
	assert.EqualValues(t, PrunedErr.Code, errCode(t, err))

	_, err = ledger.GetStorageValue(testutil.Hash(9), nil)
	assert.EqualValues(t, NotFoundErr.Code, errCode(t, err))
}
