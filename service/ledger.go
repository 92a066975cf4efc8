package service

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bnb-chain/ledger-pruner/cache"
	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/models"
	"github.com/bnb-chain/ledger-pruner/types"
)

// Ledger is the read side used by the API layer. Reads at or below the hard pruned boundary
// fail with PrunedErr without touching the tables; data between the hard and the soft
// boundary is returned flagged as deprecated.
type Ledger interface {
	GetPruningInfo() (*types.PruningInfo, error)
	GetBatch(number types.BatchNumber) (*models.Batch, error)
	GetSubBlock(number types.SubBlockNumber) (*models.SubBlock, error)
	GetTransactionDetails(hash common.Hash) (*models.TransactionDetails, error)
	GetTransactionReceipts(hashes []common.Hash) ([]*models.Receipt, error)
	GetStorageValue(hashedKey common.Hash, at *types.SubBlockNumber) (*models.StorageValue, error)
}

type LedgerService struct {
	ledgerDB     db.LedgerDao
	batchHeaders cache.Cache
}

func NewLedgerService(ledgerDB db.LedgerDao, batchHeaders cache.Cache) Ledger {
	return &LedgerService{
		ledgerDB:     ledgerDB,
		batchHeaders: batchHeaders,
	}
}

func hexHash(s string) string {
	return db.StringToHash(s).Hex()
}

func hexAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

func (s *LedgerService) GetPruningInfo() (*types.PruningInfo, error) {
	info, err := s.ledgerDB.GetPruningInfo()
	if err != nil {
		return nil, InternalErr.Enrich(err.Error())
	}
	return info, nil
}

func (s *LedgerService) GetBatch(number types.BatchNumber) (*models.Batch, error) {
	info, err := s.GetPruningInfo()
	if err != nil {
		return nil, err
	}
	if info.IsBatchHardPruned(number) {
		return nil, PrunedErr.Enrich(fmt.Sprintf("batch %d", number))
	}
	key := strconv.FormatUint(uint64(number), 10)
	batch, err := s.getBatchHeader(key, number)
	if err != nil {
		return nil, err
	}
	res := &models.Batch{
		Number:              batch.Number,
		Timestamp:           batch.Timestamp,
		L1TxCount:           int64(batch.L1TxCount),
		L2TxCount:           int64(batch.L2TxCount),
		CrossDomainLogCount: int64(batch.CrossDomainLogCount),
		Deprecated:          info.IsBatchSoftPruned(number),
	}
	if batch.Hash != "" {
		res.Hash = hexHash(batch.Hash)
	}
	return res, nil
}

func (s *LedgerService) getBatchHeader(key string, number types.BatchNumber) (*db.Batch, error) {
	if cached, found := s.batchHeaders.Get(key); found {
		return cached.(*db.Batch), nil
	}
	batch, err := s.ledgerDB.GetBatch(uint32(number))
	if err != nil {
		return nil, InternalErr.Enrich(err.Error())
	}
	if batch == nil {
		return nil, NotFoundErr.Enrich(fmt.Sprintf("batch %d", number))
	}
	// the hash is attached after sealing, headers without it may still change
	if batch.Hash != "" {
		s.batchHeaders.Set(key, batch)
	}
	return batch, nil
}

func (s *LedgerService) GetSubBlock(number types.SubBlockNumber) (*models.SubBlock, error) {
	info, err := s.GetPruningInfo()
	if err != nil {
		return nil, err
	}
	if info.IsHardPruned(number) {
		return nil, PrunedErr.Enrich(fmt.Sprintf("sub-block %d", number))
	}
	subBlock, err := s.ledgerDB.GetSubBlock(uint64(number))
	if err != nil {
		return nil, InternalErr.Enrich(err.Error())
	}
	if subBlock == nil {
		return nil, NotFoundErr.Enrich(fmt.Sprintf("sub-block %d", number))
	}
	// scrubbed transactions still count for the block
	txs, err := s.ledgerDB.GetSubBlockTransactions(uint64(number))
	if err != nil {
		return nil, InternalErr.Enrich(err.Error())
	}
	return &models.SubBlock{
		Number:      subBlock.Number,
		BatchNumber: subBlock.BatchNumber,
		Hash:        hexHash(subBlock.Hash),
		Timestamp:   subBlock.Timestamp,
		TxCount:     int64(len(txs)),
		Deprecated:  info.IsSoftPruned(number),
	}, nil
}

func (s *LedgerService) GetTransactionDetails(hash common.Hash) (*models.TransactionDetails, error) {
	info, err := s.GetPruningInfo()
	if err != nil {
		return nil, err
	}
	tx, err := s.ledgerDB.GetTransactionDetails(db.HashToString(hash))
	if err != nil {
		return nil, InternalErr.Enrich(err.Error())
	}
	if tx == nil {
		return nil, NotFoundErr.Enrich(fmt.Sprintf("transaction %s", hash.Hex()))
	}
	subBlock := types.SubBlockNumber(*tx.SubBlockNumber)
	if info.IsHardPruned(subBlock) {
		return nil, PrunedErr.Enrich(fmt.Sprintf("transaction %s", hash.Hex()))
	}
	payload, ok := tx.Payload()
	if !ok {
		return nil, NotFoundErr.Enrich(fmt.Sprintf("transaction %s", hash.Hex()))
	}
	details := &models.TransactionDetails{
		Hash:           hash.Hex(),
		SubBlockNumber: *tx.SubBlockNumber,
		Initiator:      hexAddress(tx.Initiator),
		Nonce:          tx.Nonce,
		Status:         int64(tx.Status),
		GasUsed:        tx.GasUsed,
		Input:          hexutil.Encode(payload.Input),
		Data:           payload.Data,
		Error:          payload.Error,
		Deprecated:     info.IsSoftPruned(subBlock),
	}
	if tx.IndexInBlock != nil {
		details.IndexInBlock = int64(*tx.IndexInBlock)
	}
	return details, nil
}

// GetTransactionReceipts returns the receipts that still exist; unknown, scrubbed and
// pruned transactions are left out.
func (s *LedgerService) GetTransactionReceipts(hashes []common.Hash) ([]*models.Receipt, error) {
	info, err := s.GetPruningInfo()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(hashes))
	for _, h := range hashes {
		keys = append(keys, db.HashToString(h))
	}
	receipts, err := s.ledgerDB.GetTransactionReceipts(keys)
	if err != nil {
		return nil, InternalErr.Enrich(err.Error())
	}
	res := make([]*models.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if info.IsHardPruned(types.SubBlockNumber(r.SubBlockNumber)) {
			continue
		}
		res = append(res, toReceipt(r))
	}
	return res, nil
}

func toReceipt(r *db.TxReceipt) *models.Receipt {
	receipt := &models.Receipt{
		TxHash:          hexHash(r.TxHash),
		SubBlockNumber:  r.SubBlockNumber,
		IndexInBlock:    int64(r.IndexInBlock),
		Status:          int64(r.Status),
		GasUsed:         r.GasUsed,
		Events:          make([]*models.Event, 0, len(r.Events)),
		CrossDomainLogs: make([]*models.CrossDomainLog, 0, len(r.CrossDomainLogs)),
	}
	for _, e := range r.Events {
		topics := make([]string, 0, 4)
		for _, topic := range []string{e.Topic1, e.Topic2, e.Topic3, e.Topic4} {
			if topic != "" {
				topics = append(topics, hexHash(topic))
			}
		}
		receipt.Events = append(receipt.Events, &models.Event{
			TxIndexInBlock:    int64(e.TxIndexInBlock),
			EventIndexInBlock: int64(e.EventIndexInBlock),
			Address:           hexAddress(e.Address),
			Topics:            topics,
			Value:             hexutil.Encode(e.Value),
		})
	}
	for _, l := range r.CrossDomainLogs {
		receipt.CrossDomainLogs = append(receipt.CrossDomainLogs, &models.CrossDomainLog{
			TxIndexInBlock:  int64(l.TxIndexInBlock),
			LogIndexInBlock: int64(l.LogIndexInBlock),
			ShardID:         int64(l.ShardId),
			IsService:       l.IsService,
			Sender:          hexAddress(l.Sender),
			Key:             hexHash(l.Key),
			Value:           hexHash(l.Value),
		})
	}
	return receipt
}

// GetStorageValue returns the value of a key, the current one when at is nil. Values as of
// the hard pruned sub-block can still be read since compaction keeps them; anything older
// is gone.
func (s *LedgerService) GetStorageValue(hashedKey common.Hash, at *types.SubBlockNumber) (*models.StorageValue, error) {
	var (
		write *db.StorageWrite
		info  *types.PruningInfo
		err   error
	)
	if at == nil {
		write, err = s.ledgerDB.GetLatestStorageWrite(db.HashToString(hashedKey))
	} else {
		if info, err = s.GetPruningInfo(); err != nil {
			return nil, err
		}
		if info.LastHardPrunedSubBlock != nil && *at < *info.LastHardPrunedSubBlock {
			return nil, PrunedErr.Enrich(fmt.Sprintf("storage at sub-block %d", *at))
		}
		write, err = s.ledgerDB.GetStorageWriteAt(db.HashToString(hashedKey), uint64(*at))
	}
	if err != nil {
		return nil, InternalErr.Enrich(err.Error())
	}
	if write == nil {
		return nil, NotFoundErr.Enrich(fmt.Sprintf("storage key %s", hashedKey.Hex()))
	}
	return &models.StorageValue{
		HashedKey:      hashedKey.Hex(),
		Value:          hexHash(write.Value),
		SubBlockNumber: write.SubBlockNumber,
	}, nil
}
