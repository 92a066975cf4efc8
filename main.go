package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnb-chain/ledger-pruner/cache"
	"github.com/bnb-chain/ledger-pruner/config"
	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/logging"
	"github.com/bnb-chain/ledger-pruner/metrics"
	"github.com/bnb-chain/ledger-pruner/pruner"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/restapi"
	"github.com/bnb-chain/ledger-pruner/service"
)

func initFlags() {
	flag.String(config.FlagConfigPath, "", "config file path")
	flag.String(config.FlagConfigType, "", "config type, local or aws")
	flag.String(config.FlagConfigAwsRegion, "", "aws region")
	flag.String(config.FlagConfigAwsSecretKey, "", "aws secret key")
	flag.String(config.FlagConfigDbPass, "", "ledger db password")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		panic(err)
	}
}

func printUsage() {
	fmt.Print("usage: ./ledger-pruner --config-type local --config-path configFile\n")
	fmt.Print("usage: ./ledger-pruner --config-type aws --aws-region awsRegin --aws-secret-key awsSecretKey\n")
}

func loadConfig() *config.Config {
	configType := viper.GetString(config.FlagConfigType)
	if configType == "" {
		configType = os.Getenv(config.ConfigType)
	}
	if configType == "" {
		configType = config.LocalConfig
	}
	switch configType {
	case config.AWSConfig:
		awsSecretKey := viper.GetString(config.FlagConfigAwsSecretKey)
		awsRegion := viper.GetString(config.FlagConfigAwsRegion)
		if awsSecretKey == "" || awsRegion == "" {
			return nil
		}
		configContent, err := config.GetSecret(awsSecretKey, awsRegion)
		if err != nil {
			fmt.Printf("get aws config error, err=%s", err.Error())
			return nil
		}
		return config.ParseConfigFromJson(configContent)
	case config.LocalConfig:
		configFilePath := viper.GetString(config.FlagConfigPath)
		if configFilePath == "" {
			configFilePath = os.Getenv(config.ConfigFilePath)
		}
		if configFilePath == "" {
			return nil
		}
		return config.ParseConfigFromFile(configFilePath)
	default:
		return nil
	}
}

func main() {
	initFlags()
	cfg := loadConfig()
	if cfg == nil {
		printUsage()
		return
	}
	cfg.Validate()
	logging.InitLogger(&cfg.LogConfig)

	password := viper.GetString(config.FlagConfigDbPass)
	if password == "" {
		password = os.Getenv(config.ConfigDBPass)
	}
	ledgerDB := config.InitDBWithConfig(&cfg.DBConfig, password, true)
	dao := db.NewLedgerSvcDB(ledgerDB)
	engine := pruning.NewPruning(ledgerDB)

	if cfg.MetricsConfig.Enable {
		metrics.NewMetrics(cfg.MetricsConfig.HttpAddress).Start()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var server *restapi.Server
	if cfg.ServerConfig.Enable {
		headers, err := cache.NewCache(cfg.CacheConfig.CacheType, cfg.CacheConfig.GetCacheSize())
		if err != nil {
			panic(err)
		}
		server, err = restapi.NewServer(cfg.ServerConfig.GetAddress(), engine, service.NewLedgerService(dao, headers))
		if err != nil {
			panic(err)
		}
		server.Start()
	}
	if cfg.PrunerConfig.Enable {
		pruner.NewPruner(engine, dao, &cfg.PrunerConfig).StartLoop(ctx)
	}

	<-ctx.Done()
	if server != nil {
		if err := server.Stop(); err != nil {
			logging.Logger.Errorf("failed to stop admin server, err=%s", err.Error())
		}
	}
}
