package util

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestStringToHash(t *testing.T) {
	want := common.HexToHash("0x01")
	h, ok := StringToHash(want.Hex())
	require.True(t, ok)
	require.Equal(t, want, h)

	h, ok = StringToHash(want.Hex()[2:])
	require.True(t, ok)
	require.Equal(t, want, h)

	_, ok = StringToHash("0x1234")
	require.False(t, ok)
	_, ok = StringToHash("zz")
	require.False(t, ok)
}
