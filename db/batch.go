package db

// Batch is the header of a sealed batch.
type Batch struct {
	Id                  int64
	Number              uint32 `gorm:"NOT NULL;uniqueIndex:idx_batch_number"`
	Hash                string `gorm:"size:64"` // attached once the commitment is known
	Timestamp           uint64 `gorm:"NOT NULL"`
	L1TxCount           int
	L2TxCount           int
	CrossDomainLogCount int
	CreatedTime         int64 `gorm:"NOT NULL;comment:created_time"`
}

func (*Batch) TableName() string {
	return "batch"
}

// SubBlock is the header of a sub-block. BatchNumber stays nil until the owning batch
// is sealed.
type SubBlock struct {
	Id          int64
	Number      uint64  `gorm:"NOT NULL;uniqueIndex:idx_sub_block_number"`
	BatchNumber *uint32 `gorm:"index:idx_sub_block_batch_number"`
	Hash        string  `gorm:"NOT NULL;size:64"`
	Timestamp   uint64  `gorm:"NOT NULL"`
	TxCount     int
}

func (*SubBlock) TableName() string {
	return "sub_block"
}
