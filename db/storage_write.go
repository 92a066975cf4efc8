package db

// StorageWrite records the value of one hashed key at one point of the ledger. Among the
// rows present for a key, the one with the greatest (sub_block_number, seq_in_block) is
// the current value.
type StorageWrite struct {
	Id             int64
	HashedKey      string `gorm:"NOT NULL;size:64;index:idx_storage_write_key_position,priority:1"`
	SubBlockNumber uint64 `gorm:"NOT NULL;index:idx_storage_write_key_position,priority:2;uniqueIndex:idx_storage_write_position,priority:1"`
	SeqInBlock     int    `gorm:"NOT NULL;index:idx_storage_write_key_position,priority:3;uniqueIndex:idx_storage_write_position,priority:2"`
	Address        string `gorm:"NOT NULL;size:40"`
	Key            string `gorm:"NOT NULL;size:64"`
	Value          string `gorm:"NOT NULL;size:64"`
	TxHash         string `gorm:"size:64"`
}

func (*StorageWrite) TableName() string {
	return "storage_write"
}
