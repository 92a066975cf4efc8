package db

type PruneType string

const (
	SoftPrune PruneType = "soft"
	HardPrune PruneType = "hard"
)

// PruningLog is one accepted move of a pruning boundary. The latest row of each type is the
// current boundary of that type.
type PruningLog struct {
	Id             int64
	RunId          string    `gorm:"NOT NULL;size:26"`
	PrunedBatch    uint32    `gorm:"NOT NULL"`
	PrunedSubBlock uint64    `gorm:"NOT NULL"`
	Type           PruneType `gorm:"NOT NULL;size:8;index:idx_pruning_log_type"`
	CreatedTime    int64     `gorm:"NOT NULL;comment:created_time"`
}

func (*PruningLog) TableName() string {
	return "pruning_log"
}
