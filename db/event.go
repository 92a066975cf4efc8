package db

type Event struct {
	Id                int64
	SubBlockNumber    uint64 `gorm:"NOT NULL;index:idx_event_sub_block"`
	TxHash            string `gorm:"NOT NULL;size:64;index:idx_event_tx_hash"`
	TxIndexInBlock    int    `gorm:"NOT NULL"`
	EventIndexInBlock int    `gorm:"NOT NULL"`
	Address           string `gorm:"NOT NULL;size:40"`
	Topic1            string `gorm:"size:64"`
	Topic2            string `gorm:"size:64"`
	Topic3            string `gorm:"size:64"`
	Topic4            string `gorm:"size:64"`
	Value             []byte
}

func (*Event) TableName() string {
	return "event"
}

// CrossDomainLog is a message emitted from the rollup to the settlement layer.
type CrossDomainLog struct {
	Id              int64
	SubBlockNumber  uint64 `gorm:"NOT NULL;index:idx_cross_domain_log_sub_block"`
	TxHash          string `gorm:"NOT NULL;size:64;index:idx_cross_domain_log_tx_hash"`
	TxIndexInBlock  int    `gorm:"NOT NULL"`
	LogIndexInBlock int    `gorm:"NOT NULL"`
	ShardId         int
	IsService       bool
	Sender          string `gorm:"NOT NULL;size:40"`
	Key             string `gorm:"NOT NULL;size:64"`
	Value           string `gorm:"NOT NULL;size:64"`
}

func (*CrossDomainLog) TableName() string {
	return "cross_domain_log"
}
