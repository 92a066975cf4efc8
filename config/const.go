package config

import "time"

const (
	FlagConfigPath         = "config-path"
	FlagConfigType         = "config-type"
	FlagConfigAwsRegion    = "aws-region"
	FlagConfigAwsSecretKey = "aws-secret-key"
	FlagConfigDbPass       = "db-pass"

	DBDialectMysql   = "mysql"
	DBDialectSqlite3 = "sqlite3"

	LocalConfig = "local"
	AWSConfig   = "aws"

	KeyTypeLocalPrivateKey = "local_private_key"
	KeyTypeAWSPrivateKey   = "aws_private_key"

	ConfigType     = "CONFIG_TYPE"
	ConfigFilePath = "CONFIG_FILE_PATH"
	ConfigDBPass   = "DB_PASSWORD"

	DefaultBatchesPerIteration = 10
	DefaultPrunerInterval      = 30 * time.Second
	DefaultServerAddress       = "0.0.0.0:8080"
)
