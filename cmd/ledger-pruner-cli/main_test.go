package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/ledger-pruner/config"
	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/testutil"
	"github.com/bnb-chain/ledger-pruner/types"
)

// writeConfig seeds a sqlite ledger with the given number of batches and returns the path of
// a config file pointing at it.
func writeConfig(t *testing.T, batches uint32) (string, db.LedgerDao) {
	dir := t.TempDir()
	cfg := config.Config{
		LogConfig: config.LogConfig{Level: "INFO"},
		DBConfig: config.DBConfig{
			Dialect:      config.DBDialectSqlite3,
			Url:          filepath.Join(dir, "ledger.db"),
			MaxIdleConns: 1,
			MaxOpenConns: 1,
		},
	}
	bz, err := json.Marshal(&cfg)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, bz, 0o600))

	dao := db.NewLedgerSvcDB(config.InitDBWithConfig(&cfg.DBConfig, "", true))
	testutil.InsertRealisticBatches(t, dao, batches)
	return path, dao
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseBound(t *testing.T) {
	batch, subBlock, err := parseBound([]string{"4", "9"})
	require.NoError(t, err)
	assert.EqualValues(t, 4, batch)
	assert.EqualValues(t, 9, subBlock)

	_, _, err = parseBound([]string{"x", "9"})
	assert.ErrorContains(t, err, "invalid batch")
	_, _, err = parseBound([]string{"4294967296", "9"})
	assert.ErrorContains(t, err, "invalid batch")
	_, _, err = parseBound([]string{"4", "-1"})
	assert.ErrorContains(t, err, "invalid sub-block")

	from, to, err := parseRange([]string{"1", "2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, from)
	assert.EqualValues(t, 2, to)
	_, _, err = parseRange([]string{"1", "y"})
	assert.ErrorContains(t, err, "invalid sub-block")
}

func TestCommandErrors(t *testing.T) {
	t.Setenv(config.ConfigFilePath, "")
	path, _ := writeConfig(t, 4)

	_, err := run(t, "info")
	assert.ErrorIs(t, err, errMissingConfigPath)

	_, err = run(t, "soft", "1", "--config-path", path)
	assert.Error(t, err)

	_, err = run(t, "soft", "x", "3", "--config-path", path)
	assert.ErrorContains(t, err, "invalid batch")

	_, err = run(t, "clear-txs", "3", "1", "--config-path", path)
	assert.ErrorIs(t, err, pruning.ErrInvalidBound)

	// nothing is soft pruned yet
	_, err = run(t, "hard", "1", "3", "--config-path", path)
	assert.ErrorIs(t, err, pruning.ErrInvalidBound)
}

func TestPruningCommands(t *testing.T) {
	path, dao := writeConfig(t, 6)
	t.Setenv(config.ConfigFilePath, path)
	testutil.InsertExecutedTx(t, dao, 0x42, 2)

	out, err := run(t, "soft", "2", "5")
	require.NoError(t, err)
	var info types.PruningInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.NotNil(t, info.LastSoftPrunedBatch)
	assert.EqualValues(t, 2, *info.LastSoftPrunedBatch)
	assert.EqualValues(t, 5, *info.LastSoftPrunedSubBlock)
	assert.Nil(t, info.LastHardPrunedBatch)

	out, err = run(t, "hard", "2", "5")
	require.NoError(t, err)
	var stats types.PruningStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.EqualValues(t, 3, stats.DeletedBatches)
	assert.EqualValues(t, 6, stats.DeletedSubBlocks)
	assert.EqualValues(t, 1, stats.ClearedTransactions)

	out, err = run(t, "info")
	require.NoError(t, err)
	info = types.PruningInfo{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.NotNil(t, info.LastHardPrunedSubBlock)
	assert.EqualValues(t, 5, *info.LastHardPrunedSubBlock)

	out, err = run(t, "clear-txs", "0", "11")
	require.NoError(t, err)
	assert.Equal(t, "cleared 0 transactions\n", out)
}
