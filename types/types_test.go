package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPruningInfoBoundaries(t *testing.T) {
	info := &PruningInfo{}
	assert.False(t, info.IsSoftPruned(0))
	assert.False(t, info.IsBatchHardPruned(0))
	assert.Equal(t, "soft=(batch=none, sub_block=none) hard=(batch=none, sub_block=none)", info.String())

	softBatch, softSubBlock := BatchNumber(3), SubBlockNumber(7)
	hardBatch, hardSubBlock := BatchNumber(1), SubBlockNumber(3)
	info = &PruningInfo{
		LastSoftPrunedBatch:    &softBatch,
		LastSoftPrunedSubBlock: &softSubBlock,
		LastHardPrunedBatch:    &hardBatch,
		LastHardPrunedSubBlock: &hardSubBlock,
	}
	assert.True(t, info.IsSoftPruned(7))
	assert.False(t, info.IsSoftPruned(8))
	assert.True(t, info.IsHardPruned(3))
	assert.False(t, info.IsHardPruned(4))
	assert.True(t, info.IsBatchSoftPruned(3))
	assert.False(t, info.IsBatchHardPruned(2))
	assert.Equal(t, "soft=(batch=3, sub_block=7) hard=(batch=1, sub_block=3)", info.String())
}
