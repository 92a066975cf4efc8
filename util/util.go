package util

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// StringToHash decodes a 32 byte hex string, with or without the 0x prefix.
func StringToHash(hexStr string) (common.Hash, bool) {
	if !strings.HasPrefix(hexStr, "0x") {
		hexStr = "0x" + hexStr
	}
	bz, err := hexutil.Decode(hexStr)
	if err != nil || len(bz) != common.HashLength {
		return common.Hash{}, false
	}
	return common.BytesToHash(bz), true
}
