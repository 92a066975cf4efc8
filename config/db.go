package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bnb-chain/ledger-pruner/db"
)

// InitDBWithConfig opens the ledger database described by cfg. The password argument
// overrides the one in cfg when not empty.
func InitDBWithConfig(cfg *DBConfig, password string, migrate bool) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.Dialect {
	case DBDialectMysql:
		if password == "" {
			var err error
			if password, err = GetDBPass(cfg); err != nil {
				panic(err)
			}
		}
		dialector = mysql.Open(fmt.Sprintf("%s:%s@%s", cfg.Username, password, cfg.Url))
	case DBDialectSqlite3:
		dialector = sqlite.Open(cfg.Url)
	default:
		panic(fmt.Sprintf("unexpected DB dialect %s", cfg.Dialect))
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,   // Slow SQL threshold
			LogLevel:                  logger.Silent, // Log level
			IgnoreRecordNotFoundError: true,          // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,
		},
	)
	ledgerDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		panic(fmt.Sprintf("open db error, err=%s", err.Error()))
	}
	sqlDB, err := ledgerDB.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	if migrate {
		db.AutoMigrateDB(ledgerDB)
	}
	return ledgerDB
}
