package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// StorageKey identifies one storage slot of one account.
type StorageKey struct {
	Address common.Address
	Key     common.Hash
}

func NewStorageKey(address common.Address, key common.Hash) StorageKey {
	return StorageKey{Address: address, Key: key}
}

// HashedKey is the 256-bit identifier used to group the writes of a slot.
func (k StorageKey) HashedKey() common.Hash {
	return crypto.Keccak256Hash(k.Address.Bytes(), k.Key.Bytes())
}

// StorageLog is a single write produced by the execution engine.
type StorageLog struct {
	Key   StorageKey
	Value common.Hash
}

func NewWriteLog(key StorageKey, value common.Hash) StorageLog {
	return StorageLog{Key: key, Value: value}
}
