package db

type TxStatus int

const (
	Pending  TxStatus = 0
	Executed TxStatus = 1
	Reverted TxStatus = 2
)

const emptyJson = "{}"

// LedgerTx is a transaction row. The identity columns (hash, inclusion) survive pruning,
// the payload columns are cleared and Scrubbed is set once the owning sub-block is pruned.
type LedgerTx struct {
	Id             int64
	Hash           string   `gorm:"NOT NULL;uniqueIndex:idx_ledger_tx_hash;size:64"`
	SubBlockNumber *uint64  `gorm:"index:idx_ledger_tx_sub_block"`
	IndexInBlock   *int
	Initiator      string   `gorm:"NOT NULL;size:40"`
	Nonce          uint64
	Status         TxStatus `gorm:"NOT NULL"`
	GasUsed        uint64
	Scrubbed       bool     `gorm:"NOT NULL;default:false"`
	ReceivedTime   int64    `gorm:"NOT NULL"`

	Input         []byte
	Data          string `gorm:"NOT NULL;type:text"`
	ExecutionInfo string `gorm:"NOT NULL;type:text"`
	Error         *string
}

func (*LedgerTx) TableName() string {
	return "ledger_tx"
}

// TxPayload is the heavyweight part of a transaction.
type TxPayload struct {
	Input         []byte
	Data          string
	ExecutionInfo string
	Error         *string
}

// Payload returns the payload of a full transaction; ok is false once it was scrubbed.
func (t *LedgerTx) Payload() (payload *TxPayload, ok bool) {
	if t.Scrubbed {
		return nil, false
	}
	return &TxPayload{
		Input:         t.Input,
		Data:          t.Data,
		ExecutionInfo: t.ExecutionInfo,
		Error:         t.Error,
	}, true
}

// TxExecutionResult is what the execution engine reports for a transaction included in a
// sub-block.
type TxExecutionResult struct {
	Hash          string
	Status        TxStatus
	GasUsed       uint64
	ExecutionInfo string
	Error         *string
}

type TxReceipt struct {
	TxHash          string
	SubBlockNumber  uint64
	IndexInBlock    int
	Status          TxStatus
	GasUsed         uint64
	Events          []*Event
	CrossDomainLogs []*CrossDomainLog
}
