package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnb-chain/ledger-pruner/config"
	"github.com/bnb-chain/ledger-pruner/logging"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/types"
)

var errMissingConfigPath = errors.New("config path is required, use --config-path or " + config.ConfigFilePath)

type options struct {
	configPath string
	dbPass     string
}

func (o *options) newEngine() (*pruning.Pruning, error) {
	configPath := o.configPath
	if configPath == "" {
		configPath = os.Getenv(config.ConfigFilePath)
	}
	if configPath == "" {
		return nil, errMissingConfigPath
	}
	cfg := config.ParseConfigFromFile(configPath)
	cfg.DBConfig.Validate()
	logging.InitLogger(&cfg.LogConfig)
	dbPass := o.dbPass
	if dbPass == "" {
		dbPass = os.Getenv(config.ConfigDBPass)
	}
	return pruning.NewPruning(config.InitDBWithConfig(&cfg.DBConfig, dbPass, false)), nil
}

func dump(w io.Writer, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}

func parseBound(args []string) (types.BatchNumber, types.SubBlockNumber, error) {
	batch, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid batch %q: %w", args[0], err)
	}
	subBlock, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sub-block %q: %w", args[1], err)
	}
	return types.BatchNumber(batch), types.SubBlockNumber(subBlock), nil
}

func parseRange(args []string) (types.SubBlockNumber, types.SubBlockNumber, error) {
	from, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sub-block %q: %w", args[0], err)
	}
	to, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sub-block %q: %w", args[1], err)
	}
	return types.SubBlockNumber(from), types.SubBlockNumber(to), nil
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the current pruning boundaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.newEngine()
			if err != nil {
				return err
			}
			info, err := engine.GetPruningInfo(cmd.Context())
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), info)
		},
	}
}

func newSoftCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "soft <batch> <sub-block>",
		Short: "Move the soft pruning boundary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, subBlock, err := parseBound(args)
			if err != nil {
				return err
			}
			engine, err := opts.newEngine()
			if err != nil {
				return err
			}
			if err = engine.SoftPruneBatchesRange(cmd.Context(), batch, subBlock); err != nil {
				return err
			}
			info, err := engine.GetPruningInfo(cmd.Context())
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), info)
		},
	}
}

func newHardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hard <batch> <sub-block>",
		Short: "Remove the data up to the given boundary, which must be soft pruned already",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, subBlock, err := parseBound(args)
			if err != nil {
				return err
			}
			engine, err := opts.newEngine()
			if err != nil {
				return err
			}
			stats, err := engine.HardPruneBatchesRange(cmd.Context(), batch, subBlock)
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), stats)
		},
	}
}

func newClearTxsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-txs <from-sub-block> <to-sub-block>",
		Short: "Clear the payload of transactions included in the given sub-block range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseRange(args)
			if err != nil {
				return err
			}
			engine, err := opts.newEngine()
			if err != nil {
				return err
			}
			affected, err := engine.ClearTransactionFields(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "cleared %d transactions\n", affected)
			return err
		},
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "ledger-pruner-cli",
		Short:         "Run pruning operations against the ledger database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, config.FlagConfigPath, "", "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.dbPass, config.FlagConfigDbPass, "", "ledger db password")
	rootCmd.AddCommand(newInfoCmd(opts), newSoftCmd(opts), newHardCmd(opts), newClearTxsCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
