package pruning

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bnb-chain/ledger-pruner/db"
)

// scrubber clears the payload of transactions included in a sub-block range. Hash and
// inclusion columns stay.
type scrubber struct{}

func (scrubber) clear(tx *gorm.DB, from, to uint64) (int64, error) {
	res := tx.Model(&db.LedgerTx{}).
		Where("sub_block_number >= ? AND sub_block_number <= ?", from, to).
		Where("scrubbed = ?", false).
		Updates(map[string]interface{}{
			"input":          nil,
			"data":           "{}",
			"execution_info": "{}",
			"error":          nil,
			"scrubbed":       true,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("clear transaction fields: %w: %w", ErrStorageFailure, res.Error)
	}
	return res.RowsAffected, nil
}
