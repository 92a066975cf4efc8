package db

import (
	"encoding/hex"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-sql-driver/mysql"
)

var (
	ErrDuplicateEntryCode = 1062
)

func MysqlErrCode(err error) int {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return 0
	}
	return int(mysqlErr.Number)
}

// HashToString is the column encoding of 256-bit values, hex without the 0x prefix.
func HashToString(h common.Hash) string {
	return hex.EncodeToString(h.Bytes())
}

func AddressToString(a common.Address) string {
	return hex.EncodeToString(a.Bytes())
}

func StringToHash(s string) common.Hash {
	return common.HexToHash(s)
}
