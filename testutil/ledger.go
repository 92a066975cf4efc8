package testutil

import (
	"bytes"
	"fmt"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/types"
)

const (
	EventsPerSubBlock          = 5
	CrossDomainLogsPerSubBlock = 5
)

// NewTestDB opens a migrated SQLite ledger in a temp dir removed with the test.
func NewTestDB(t testing.TB) *gorm.DB {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ledgerDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.AutoMigrateDB(ledgerDB)
	t.Cleanup(func() {
		if sqlDB, err := ledgerDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return ledgerDB
}

func Hash(seed byte) common.Hash {
	return common.BytesToHash(bytes.Repeat([]byte{seed}, common.HashLength))
}

func Address(seed byte) common.Address {
	return common.BytesToAddress(bytes.Repeat([]byte{seed}, common.AddressLength))
}

// StorageLog builds a write whose key and value are derived from the seeds.
func StorageLog(keySeed, valueSeed byte) types.StorageLog {
	key := types.NewStorageKey(Address(keySeed), Hash(keySeed))
	return types.NewWriteLog(key, Hash(valueSeed))
}

// InsertSubBlock stores a sub-block owned by batchNumber together with its events and
// cross-domain logs: two at tx index 0 and three at tx index 1.
func InsertSubBlock(t testing.TB, dao db.LedgerDao, subBlockNumber uint64, batchNumber uint32) {
	require.NoError(t, dao.SaveSubBlock(&db.SubBlock{
		Number:    subBlockNumber,
		Hash:      db.HashToString(common.BigToHash(new(big.Int).SetUint64(subBlockNumber + 1))),
		Timestamp: subBlockNumber,
	}))
	require.NoError(t, dao.MarkSubBlocksAsExecutedInBatch(batchNumber))

	events := make([]*db.Event, 0, EventsPerSubBlock)
	logs := make([]*db.CrossDomainLog, 0, CrossDomainLogsPerSubBlock)
	for i := 0; i < EventsPerSubBlock; i++ {
		txSeed, txIndex := byte(1), 0
		if i >= 2 {
			txSeed, txIndex = 2, 1
		}
		events = append(events, &db.Event{
			TxHash:            db.HashToString(Hash(txSeed)),
			TxIndexInBlock:    txIndex,
			EventIndexInBlock: i,
			Address:           db.AddressToString(Address(byte(i))),
			Topic1:            db.HashToString(Hash(byte(i))),
			Value:             []byte{byte(i)},
		})
		logs = append(logs, &db.CrossDomainLog{
			TxHash:          db.HashToString(Hash(txSeed)),
			TxIndexInBlock:  txIndex,
			LogIndexInBlock: i,
			Sender:          db.AddressToString(Address(2)),
			Key:             db.HashToString(Hash(3)),
			Value:           db.HashToString(common.Hash{}),
		})
	}
	require.NoError(t, dao.SaveEvents(subBlockNumber, events))
	require.NoError(t, dao.SaveCrossDomainLogs(subBlockNumber, logs))
}

// InsertRealisticBatches stores batches [0, count) with sub-blocks 2n and 2n+1 each.
func InsertRealisticBatches(t testing.TB, dao db.LedgerDao, count uint32) {
	for n := uint32(0); n < count; n++ {
		require.NoError(t, dao.SaveBatch(&db.Batch{
			Number:    n,
			Hash:      db.HashToString(Hash(byte(n))),
			Timestamp: uint64(n),
			L1TxCount: 3,
			L2TxCount: 5,
		}))
		InsertSubBlock(t, dao, uint64(n)*2, n)
		InsertSubBlock(t, dao, uint64(n)*2+1, n)
	}
}

// InsertExecutedTx stores a transaction and marks it executed in the sub-block.
func InsertExecutedTx(t testing.TB, dao db.LedgerDao, seed byte, subBlockNumber uint64) string {
	hash := db.HashToString(Hash(seed))
	require.NoError(t, dao.InsertTransaction(&db.LedgerTx{
		Hash:      hash,
		Initiator: db.AddressToString(Address(seed)),
		Nonce:     uint64(seed),
		Input:     []byte{0xde, 0xad, seed},
		Data:      fmt.Sprintf(`{"calldata":"0x%02x"}`, seed),
	}))
	require.NoError(t, dao.MarkTxsAsExecutedInSubBlock(subBlockNumber, []*db.TxExecutionResult{{
		Hash:          hash,
		Status:        db.Executed,
		GasUsed:       21000,
		ExecutionInfo: `{"gas_used":21000}`,
	}}))
	return hash
}

// StorageWritesAt lists (hashed key, value) of the writes stored for one sub-block, in
// sequence order.
func StorageWritesAt(t testing.TB, ledgerDB *gorm.DB, subBlockNumber uint64) [][2]string {
	writes, err := db.NewLedgerSvcDB(ledgerDB).GetStorageWrites(subBlockNumber, subBlockNumber)
	require.NoError(t, err)
	res := make([][2]string, 0, len(writes))
	for _, w := range writes {
		res = append(res, [2]string{w.HashedKey, w.Value})
	}
	return res
}

// Pairs is the expected form of StorageWritesAt for the given logs.
func Pairs(logs ...types.StorageLog) [][2]string {
	res := make([][2]string, 0, len(logs))
	for _, l := range logs {
		res = append(res, [2]string{db.HashToString(l.Key.HashedKey()), db.HashToString(l.Value)})
	}
	return res
}

func Count(t testing.TB, ledgerDB *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, ledgerDB.Model(model).Count(&n).Error)
	return n
}
