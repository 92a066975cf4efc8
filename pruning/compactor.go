package pruning

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bnb-chain/ledger-pruner/db"
)

// A write at or below the bound is superseded when the same key has another write at or
// below the bound with a greater (sub_block_number, seq_in_block). Survivors of earlier
// rounds take part again. The inner derived table lets MySQL delete from the table the
// subquery reads.
const deleteSupersededWritesSQL = `DELETE FROM storage_write WHERE id IN (
	SELECT id FROM (
		SELECT w.id FROM storage_write w
		WHERE w.sub_block_number <= ?
		AND EXISTS (
			SELECT 1 FROM storage_write n
			WHERE n.hashed_key = w.hashed_key
			AND n.sub_block_number <= ?
			AND (n.sub_block_number > w.sub_block_number
				OR (n.sub_block_number = w.sub_block_number AND n.seq_in_block > w.seq_in_block))
		)
	) superseded
)`

type writeCount struct {
	RowCount int64
	KeyCount int64
}

// compactor keeps, for every key written at or below the bound, only the latest write at
// or below the bound. Writes above the bound are never touched.
type compactor struct{}

func (compactor) countWrites(tx *gorm.DB, bound uint64) (writeCount, error) {
	var c writeCount
	err := tx.Model(&db.StorageWrite{}).
		Select("COUNT(*) AS row_count, COUNT(DISTINCT hashed_key) AS key_count").
		Where("sub_block_number <= ?", bound).
		Scan(&c).Error
	return c, err
}

func (cp compactor) compact(tx *gorm.DB, bound uint64) (int64, error) {
	before, err := cp.countWrites(tx, bound)
	if err != nil {
		return 0, fmt.Errorf("count storage writes: %w: %w", ErrStorageFailure, err)
	}
	res := tx.Exec(deleteSupersededWritesSQL, bound, bound)
	if res.Error != nil {
		return 0, fmt.Errorf("delete superseded storage writes: %w: %w", ErrStorageFailure, res.Error)
	}
	after, err := cp.countWrites(tx, bound)
	if err != nil {
		return 0, fmt.Errorf("count storage writes: %w: %w", ErrStorageFailure, err)
	}
	if after.KeyCount != before.KeyCount || after.RowCount != after.KeyCount || before.RowCount-after.RowCount != res.RowsAffected {
		return 0, fmt.Errorf("%w: storage writes at or below sub-block %d: keys %d -> %d, rows %d -> %d, deleted %d",
			ErrConsistencyViolation, bound, before.KeyCount, after.KeyCount, before.RowCount, after.RowCount, res.RowsAffected)
	}
	return res.RowsAffected, nil
}
