package db

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bnb-chain/ledger-pruner/types"
)

type LedgerDao interface {
	BatchDB
	SubBlockDB
	EventDB
	StorageWriteDB
	TransactionDB
	PruningLogDB
	DB() *gorm.DB
}

type LedgerSvcDB struct {
	db *gorm.DB
}

func NewLedgerSvcDB(db *gorm.DB) LedgerDao {
	return &LedgerSvcDB{
		db,
	}
}

func (d *LedgerSvcDB) DB() *gorm.DB {
	return d.db
}

func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	if MysqlErrCode(err) == ErrDuplicateEntryCode || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type BatchDB interface {
	SaveBatch(batch *Batch) error
	GetBatch(number uint32) (*Batch, error)
	GetLatestBatch() (*Batch, error)
	UpdateBatchHash(number uint32, hash string) error
}

func (d *LedgerSvcDB) SaveBatch(batch *Batch) error {
	if batch.CreatedTime == 0 {
		batch.CreatedTime = time.Now().Unix()
	}
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		err := dbTx.Create(batch).Error
		if IsDuplicateEntry(err) {
			return nil
		}
		return err
	})
}

// GetBatch returns nil when the batch does not exist.
func (d *LedgerSvcDB) GetBatch(number uint32) (*Batch, error) {
	batch := Batch{}
	err := d.db.Model(Batch{}).Where("number = ?", number).Take(&batch).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

func (d *LedgerSvcDB) GetLatestBatch() (*Batch, error) {
	batch := Batch{}
	err := d.db.Model(Batch{}).Order("number desc").Take(&batch).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

func (d *LedgerSvcDB) UpdateBatchHash(number uint32, hash string) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		return dbTx.Model(Batch{}).Where("number = ?", number).Updates(
			Batch{Hash: hash}).Error
	})
}

type SubBlockDB interface {
	SaveSubBlock(subBlock *SubBlock) error
	MarkSubBlocksAsExecutedInBatch(batchNumber uint32) error
	GetSubBlock(number uint64) (*SubBlock, error)
	GetLastSubBlockUpToBatch(batchNumber uint32) (*SubBlock, error)
}

func (d *LedgerSvcDB) SaveSubBlock(subBlock *SubBlock) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		return dbTx.Create(subBlock).Error
	})
}

// MarkSubBlocksAsExecutedInBatch attaches every sub-block not yet owned by a batch to the
// given batch.
func (d *LedgerSvcDB) MarkSubBlocksAsExecutedInBatch(batchNumber uint32) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		return dbTx.Model(SubBlock{}).Where("batch_number IS NULL").
			Update("batch_number", batchNumber).Error
	})
}

func (d *LedgerSvcDB) GetSubBlock(number uint64) (*SubBlock, error) {
	subBlock := SubBlock{}
	err := d.db.Model(SubBlock{}).Where("number = ?", number).Take(&subBlock).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subBlock, nil
}

// GetLastSubBlockUpToBatch returns the highest sub-block owned by a batch at or below
// batchNumber, nil when there is none.
func (d *LedgerSvcDB) GetLastSubBlockUpToBatch(batchNumber uint32) (*SubBlock, error) {
	subBlock := SubBlock{}
	err := d.db.Model(SubBlock{}).Where("batch_number <= ?", batchNumber).Order("number desc").Take(&subBlock).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subBlock, nil
}

type EventDB interface {
	SaveEvents(subBlockNumber uint64, events []*Event) error
	SaveCrossDomainLogs(subBlockNumber uint64, logs []*CrossDomainLog) error
	GetEvents(subBlockNumber uint64) ([]*Event, error)
	GetCrossDomainLogs(subBlockNumber uint64) ([]*CrossDomainLog, error)
}

func (d *LedgerSvcDB) SaveEvents(subBlockNumber uint64, events []*Event) error {
	if len(events) == 0 {
		return nil
	}
	for _, e := range events {
		e.SubBlockNumber = subBlockNumber
	}
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		return dbTx.Create(events).Error
	})
}

func (d *LedgerSvcDB) SaveCrossDomainLogs(subBlockNumber uint64, logs []*CrossDomainLog) error {
	if len(logs) == 0 {
		return nil
	}
	for _, l := range logs {
		l.SubBlockNumber = subBlockNumber
	}
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		return dbTx.Create(logs).Error
	})
}

func (d *LedgerSvcDB) GetEvents(subBlockNumber uint64) ([]*Event, error) {
	events := make([]*Event, 0)
	if err := d.db.Where("sub_block_number = ?", subBlockNumber).
		Order("event_index_in_block asc").Find(&events).Error; err != nil {
		return events, err
	}
	return events, nil
}

func (d *LedgerSvcDB) GetCrossDomainLogs(subBlockNumber uint64) ([]*CrossDomainLog, error) {
	logs := make([]*CrossDomainLog, 0)
	if err := d.db.Where("sub_block_number = ?", subBlockNumber).
		Order("log_index_in_block asc").Find(&logs).Error; err != nil {
		return logs, err
	}
	return logs, nil
}

type StorageWriteDB interface {
	InsertStorageLogs(subBlockNumber uint64, txHash string, logs []types.StorageLog) error
	GetLatestStorageWrite(hashedKey string) (*StorageWrite, error)
	GetStorageWriteAt(hashedKey string, subBlockNumber uint64) (*StorageWrite, error)
	GetStorageWrites(fromSubBlock, toSubBlock uint64) ([]*StorageWrite, error)
}

// InsertStorageLogs appends writes to a sub-block. Sequence numbers continue after the ones
// already stored for the sub-block, so the last write of a key in the slice wins.
func (d *LedgerSvcDB) InsertStorageLogs(subBlockNumber uint64, txHash string, logs []types.StorageLog) error {
	if len(logs) == 0 {
		return nil
	}
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		var next struct{ Seq *int }
		err := dbTx.Model(StorageWrite{}).Select("MAX(seq_in_block) AS seq").
			Where("sub_block_number = ?", subBlockNumber).Scan(&next).Error
		if err != nil {
			return err
		}
		seq := 0
		if next.Seq != nil {
			seq = *next.Seq + 1
		}
		writes := make([]*StorageWrite, 0, len(logs))
		for i, l := range logs {
			writes = append(writes, &StorageWrite{
				HashedKey:      HashToString(l.Key.HashedKey()),
				SubBlockNumber: subBlockNumber,
				SeqInBlock:     seq + i,
				Address:        AddressToString(l.Key.Address),
				Key:            HashToString(l.Key.Key),
				Value:          HashToString(l.Value),
				TxHash:         txHash,
			})
		}
		return dbTx.Create(writes).Error
	})
}

// GetLatestStorageWrite returns the row holding the current value of the key.
func (d *LedgerSvcDB) GetLatestStorageWrite(hashedKey string) (*StorageWrite, error) {
	write := StorageWrite{}
	err := d.db.Model(StorageWrite{}).Where("hashed_key = ?", hashedKey).
		Order("sub_block_number desc").Order("seq_in_block desc").Take(&write).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &write, nil
}

// GetStorageWriteAt returns the row holding the value of the key as of the end of the
// given sub-block.
func (d *LedgerSvcDB) GetStorageWriteAt(hashedKey string, subBlockNumber uint64) (*StorageWrite, error) {
	write := StorageWrite{}
	err := d.db.Model(StorageWrite{}).Where("hashed_key = ? AND sub_block_number <= ?", hashedKey, subBlockNumber).
		Order("sub_block_number desc").Order("seq_in_block desc").Take(&write).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &write, nil
}

func (d *LedgerSvcDB) GetStorageWrites(fromSubBlock, toSubBlock uint64) ([]*StorageWrite, error) {
	writes := make([]*StorageWrite, 0)
	if err := d.db.Where("sub_block_number >= ? AND sub_block_number <= ?", fromSubBlock, toSubBlock).
		Order("sub_block_number asc").Order("seq_in_block asc").Find(&writes).Error; err != nil {
		return writes, err
	}
	return writes, nil
}

type TransactionDB interface {
	InsertTransaction(tx *LedgerTx) error
	MarkTxsAsExecutedInSubBlock(subBlockNumber uint64, results []*TxExecutionResult) error
	GetTransactions(hashes []string) ([]*LedgerTx, error)
	GetTransactionDetails(hash string) (*LedgerTx, error)
	GetTransactionReceipts(hashes []string) ([]*TxReceipt, error)
	GetSubBlockTransactions(subBlockNumber uint64) ([]*LedgerTx, error)
}

func (d *LedgerSvcDB) InsertTransaction(tx *LedgerTx) error {
	if tx.ReceivedTime == 0 {
		tx.ReceivedTime = time.Now().Unix()
	}
	if tx.Data == "" {
		tx.Data = emptyJson
	}
	if tx.ExecutionInfo == "" {
		tx.ExecutionInfo = emptyJson
	}
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		err := dbTx.Create(tx).Error
		if IsDuplicateEntry(err) {
			return nil
		}
		return err
	})
}

func (d *LedgerSvcDB) MarkTxsAsExecutedInSubBlock(subBlockNumber uint64, results []*TxExecutionResult) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		for i, r := range results {
			index := i
			execInfo := r.ExecutionInfo
			if execInfo == "" {
				execInfo = emptyJson
			}
			err := dbTx.Model(LedgerTx{}).Where("hash = ?", r.Hash).Updates(map[string]interface{}{
				"sub_block_number": subBlockNumber,
				"index_in_block":   index,
				"status":           r.Status,
				"gas_used":         r.GasUsed,
				"execution_info":   execInfo,
				"error":            r.Error,
			}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// includedFull limits a query to transactions that are part of a sub-block and still carry
// their payload. Scrubbed rows behave as missing for lookups by hash.
func includedFull(db *gorm.DB) *gorm.DB {
	return db.Where("sub_block_number IS NOT NULL AND scrubbed = ?", false)
}

func (d *LedgerSvcDB) GetTransactions(hashes []string) ([]*LedgerTx, error) {
	txs := make([]*LedgerTx, 0)
	if len(hashes) == 0 {
		return txs, nil
	}
	if err := d.db.Scopes(includedFull).Where("hash IN ?", hashes).
		Order("sub_block_number asc").Order("index_in_block asc").Find(&txs).Error; err != nil {
		return txs, err
	}
	return txs, nil
}

// GetTransactionDetails returns nil when the transaction is unknown, not yet included or
// scrubbed.
func (d *LedgerSvcDB) GetTransactionDetails(hash string) (*LedgerTx, error) {
	tx := LedgerTx{}
	err := d.db.Scopes(includedFull).Where("hash = ?", hash).Take(&tx).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

func (d *LedgerSvcDB) GetTransactionReceipts(hashes []string) ([]*TxReceipt, error) {
	txs, err := d.GetTransactions(hashes)
	if err != nil {
		return nil, err
	}
	receipts := make([]*TxReceipt, 0, len(txs))
	for _, tx := range txs {
		receipt := &TxReceipt{
			TxHash:         tx.Hash,
			SubBlockNumber: *tx.SubBlockNumber,
			Status:         tx.Status,
			GasUsed:        tx.GasUsed,
		}
		if tx.IndexInBlock != nil {
			receipt.IndexInBlock = *tx.IndexInBlock
		}
		if err = d.db.Where("tx_hash = ?", tx.Hash).Order("event_index_in_block asc").
			Find(&receipt.Events).Error; err != nil {
			return nil, err
		}
		if err = d.db.Where("tx_hash = ?", tx.Hash).Order("log_index_in_block asc").
			Find(&receipt.CrossDomainLogs).Error; err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

// GetSubBlockTransactions lists every transaction included in the sub-block, scrubbed ones
// included, for block-level aggregates.
func (d *LedgerSvcDB) GetSubBlockTransactions(subBlockNumber uint64) ([]*LedgerTx, error) {
	txs := make([]*LedgerTx, 0)
	if err := d.db.Where("sub_block_number = ?", subBlockNumber).
		Order("index_in_block asc").Find(&txs).Error; err != nil {
		return txs, err
	}
	return txs, nil
}

type PruningLogDB interface {
	GetPruningInfo() (*types.PruningInfo, error)
	GetLatestPruningLog(pruneType PruneType) (*PruningLog, error)
}

func (d *LedgerSvcDB) GetPruningInfo() (*types.PruningInfo, error) {
	return QueryPruningInfo(d.db)
}

func (d *LedgerSvcDB) GetLatestPruningLog(pruneType PruneType) (*PruningLog, error) {
	return QueryLatestPruningLog(d.db, pruneType)
}

// QueryLatestPruningLog reads the latest row of the given type through db, which may be
// an open transaction. It returns nil when no row exists.
func QueryLatestPruningLog(db *gorm.DB, pruneType PruneType) (*PruningLog, error) {
	row := PruningLog{}
	err := db.Model(PruningLog{}).Where("type = ?", pruneType).Order("id desc").Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// QueryPruningInfo builds the current boundaries from the latest soft and hard rows. Both
// rows are read by one statement so the result is a single snapshot even outside a
// transaction.
func QueryPruningInfo(db *gorm.DB) (*types.PruningInfo, error) {
	latest := db.Session(&gorm.Session{NewDB: true}).Model(PruningLog{}).
		Select("MAX(id)").Group("type")
	rows := make([]*PruningLog, 0, 2)
	if err := db.Model(PruningLog{}).Where("id IN (?)", latest).Find(&rows).Error; err != nil {
		return nil, err
	}
	info := &types.PruningInfo{}
	for _, row := range rows {
		batch, subBlock := types.BatchNumber(row.PrunedBatch), types.SubBlockNumber(row.PrunedSubBlock)
		switch row.Type {
		case SoftPrune:
			info.LastSoftPrunedBatch, info.LastSoftPrunedSubBlock = &batch, &subBlock
		case HardPrune:
			info.LastHardPrunedBatch, info.LastHardPrunedSubBlock = &batch, &subBlock
		}
	}
	return info, nil
}

func InsertPruningLog(db *gorm.DB, row *PruningLog) error {
	if row.CreatedTime == 0 {
		row.CreatedTime = time.Now().Unix()
	}
	return db.Create(row).Error
}

func AutoMigrateDB(db *gorm.DB) {
	var err error
	if err = db.AutoMigrate(&Batch{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&SubBlock{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&Event{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&CrossDomainLog{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&StorageWrite{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&LedgerTx{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&PruningLog{}); err != nil {
		panic(err)
	}
}
