package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bnb-chain/ledger-pruner/cache"
)

type Config struct {
	LogConfig     LogConfig     `json:"log_config"`
	DBConfig      DBConfig      `json:"db_config"`
	PrunerConfig  PrunerConfig  `json:"pruner_config"`
	ServerConfig  ServerConfig  `json:"server_config"`
	MetricsConfig MetricsConfig `json:"metrics_config"`
	CacheConfig   CacheConfig   `json:"cache_config"`
}

func (cfg *Config) Validate() {
	cfg.LogConfig.Validate()
	cfg.DBConfig.Validate()
	cfg.PrunerConfig.Validate()
}

type PrunerConfig struct {
	Enable                bool   `json:"enable"`
	RetainedBatches       uint32 `json:"retained_batches"`          // RetainedBatches is the number of most recent batches that are never pruned
	BatchesPerIteration   uint32 `json:"batches_per_iteration"`     // BatchesPerIteration caps how far one soft prune moves the boundary
	RemovalDelaySeconds   int64  `json:"removal_delay_seconds"`     // RemovalDelaySeconds is the grace window between soft and hard prune of the same bound
	IntervalSeconds       int64  `json:"interval_seconds"`          // IntervalSeconds is the pruner loop tick
	ClearTransactionsOnly bool   `json:"clear_transactions_only"`   // ClearTransactionsOnly scrubs transaction payloads without hard pruning
}

func (cfg *PrunerConfig) Validate() {
	if !cfg.Enable {
		return
	}
	if cfg.RetainedBatches == 0 {
		panic("retained_batches should be larger than 0 if pruner is enabled")
	}
	if cfg.RemovalDelaySeconds < 0 {
		panic("removal_delay_seconds should not be negative")
	}
}

func (cfg *PrunerConfig) GetBatchesPerIteration() uint32 {
	if cfg.BatchesPerIteration != 0 {
		return cfg.BatchesPerIteration
	}
	return DefaultBatchesPerIteration
}

func (cfg *PrunerConfig) GetInterval() time.Duration {
	if cfg.IntervalSeconds > 0 {
		return time.Duration(cfg.IntervalSeconds) * time.Second
	}
	return DefaultPrunerInterval
}

func (cfg *PrunerConfig) GetRemovalDelay() time.Duration {
	return time.Duration(cfg.RemovalDelaySeconds) * time.Second
}

type ServerConfig struct {
	Enable  bool   `json:"enable"`
	Address string `json:"address"`
}

func (cfg *ServerConfig) GetAddress() string {
	if cfg.Address != "" {
		return cfg.Address
	}
	return DefaultServerAddress
}

type MetricsConfig struct {
	Enable      bool   `json:"enable"`
	HttpAddress string `json:"http_address"`
}

type CacheConfig struct {
	CacheType string `json:"cache_type"`
	CacheSize uint64 `json:"cache_size"`
}

func (c *CacheConfig) GetCacheSize() uint64 {
	if c.CacheSize != 0 {
		return c.CacheSize
	}
	return cache.DefaultCacheSize
}

type DBConfig struct {
	Dialect       string `json:"dialect"`
	KeyType       string `json:"key_type"`
	AWSRegion     string `json:"aws_region"`
	AWSSecretName string `json:"aws_secret_name"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Url           string `json:"url"`
	MaxIdleConns  int    `json:"max_idle_conns"`
	MaxOpenConns  int    `json:"max_open_conns"`
}

func (cfg *DBConfig) Validate() {
	if cfg.Dialect != DBDialectMysql && cfg.Dialect != DBDialectSqlite3 {
		panic(fmt.Sprintf("only %s and %s supported", DBDialectMysql, DBDialectSqlite3))
	}
	if cfg.Dialect == DBDialectMysql && (cfg.Username == "" || cfg.Url == "") {
		panic("db config is not correct, missing username and/or url")
	}
	if cfg.KeyType == KeyTypeAWSPrivateKey && (cfg.AWSRegion == "" || cfg.AWSSecretName == "") {
		panic("aws_region and aws_secret_name are required when key_type is aws_private_key")
	}
	if cfg.MaxIdleConns == 0 || cfg.MaxOpenConns == 0 {
		panic("db connections is not correct")
	}
}

type LogConfig struct {
	Level                        string `json:"level"`
	Filename                     string `json:"filename"`
	MaxFileSizeInMB              int    `json:"max_file_size_in_mb"`
	MaxBackupsOfLogFiles         int    `json:"max_backups_of_log_files"`
	MaxAgeToRetainLogFilesInDays int    `json:"max_age_to_retain_log_files_in_days"`
	UseConsoleLogger             bool   `json:"use_console_logger"`
	UseFileLogger                bool   `json:"use_file_logger"`
	Compress                     bool   `json:"compress"`
}

func (cfg *LogConfig) Validate() {
	if cfg.UseFileLogger {
		if cfg.Filename == "" {
			panic("filename should not be empty if use file logger")
		}
		if cfg.MaxFileSizeInMB <= 0 {
			panic("max_file_size_in_mb should be larger than 0 if use file logger")
		}
		if cfg.MaxBackupsOfLogFiles <= 0 {
			panic("max_backups_off_log_files should be larger than 0 if use file logger")
		}
	}
}

func ParseConfigFromJson(content string) *Config {
	var config Config
	if err := json.Unmarshal([]byte(content), &config); err != nil {
		panic(err)
	}
	return &config
}

func ParseConfigFromFile(filePath string) *Config {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	return ParseConfigFromJson(string(bz))
}
