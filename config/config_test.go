package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/ledger-pruner/cache"
)

func TestParseExampleConfig(t *testing.T) {
	cfg := ParseConfigFromFile("config.example.json")
	require.NotPanics(t, cfg.Validate)
	assert.Equal(t, DBDialectMysql, cfg.DBConfig.Dialect)
	assert.EqualValues(t, 1000, cfg.PrunerConfig.RetainedBatches)
	assert.Equal(t, 10*time.Minute, cfg.PrunerConfig.GetRemovalDelay())
	assert.Equal(t, 30*time.Second, cfg.PrunerConfig.GetInterval())
}

func TestDefaults(t *testing.T) {
	var cfg Config
	assert.EqualValues(t, DefaultBatchesPerIteration, cfg.PrunerConfig.GetBatchesPerIteration())
	assert.Equal(t, DefaultPrunerInterval, cfg.PrunerConfig.GetInterval())
	assert.Equal(t, DefaultServerAddress, cfg.ServerConfig.GetAddress())
	assert.EqualValues(t, cache.DefaultCacheSize, cfg.CacheConfig.GetCacheSize())
}

func TestValidatePanics(t *testing.T) {
	pruner := PrunerConfig{Enable: true}
	assert.Panics(t, pruner.Validate)
	pruner = PrunerConfig{Enable: true, RetainedBatches: 1, RemovalDelaySeconds: -1}
	assert.Panics(t, pruner.Validate)
	pruner = PrunerConfig{Enable: false}
	assert.NotPanics(t, pruner.Validate)

	dbCfg := DBConfig{Dialect: "postgres"}
	assert.Panics(t, dbCfg.Validate)
	dbCfg = DBConfig{Dialect: DBDialectSqlite3, MaxIdleConns: 1, MaxOpenConns: 1, KeyType: KeyTypeAWSPrivateKey}
	assert.Panics(t, dbCfg.Validate)
	dbCfg.AWSRegion, dbCfg.AWSSecretName = "us-east-1", "ledger"
	assert.NotPanics(t, dbCfg.Validate)
}
