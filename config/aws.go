package config

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

func GetSecret(secretName, region string) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return "", err
	}
	svc := secretsmanager.New(sess)
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}
	result, err := svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}
	if result.SecretString != nil {
		return *result.SecretString, nil
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(result.SecretBinary)))
	n, err := base64.StdEncoding.Decode(decoded, result.SecretBinary)
	if err != nil {
		return "", err
	}
	return string(decoded[:n]), nil
}

// GetDBPass resolves the database password, reading it from AWS Secrets Manager when
// the key type says so.
func GetDBPass(cfg *DBConfig) (string, error) {
	if cfg.KeyType != KeyTypeAWSPrivateKey {
		return cfg.Password, nil
	}
	result, err := GetSecret(cfg.AWSSecretName, cfg.AWSRegion)
	if err != nil {
		return "", err
	}
	type DBPass struct {
		DbPass string `json:"db_pass"`
	}
	var dbPassword DBPass
	if err = json.Unmarshal([]byte(result), &dbPassword); err != nil {
		return "", err
	}
	if dbPassword.DbPass == "" {
		return "", errors.New("db_pass is missing in aws secret")
	}
	return dbPassword.DbPass, nil
}
