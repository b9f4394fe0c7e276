package config

import (
	"fmt"
	"os"
)

type DynamoConfig struct {
	TableName  string
	TtlMinutes int
}

func GetDynamoConfig() (*DynamoConfig, error) {
	tableName := os.Getenv("DYNAMO_TABLE_NAME")
	if tableName == "" {
		return nil, fmt.Errorf("DYNAMO_TABLE_NAME must be set")
	}
	ttl, err := getEnvInt("CACHE_TTL_MINUTES", 24*60)
	if err != nil {
		return nil, err
	}

	return &DynamoConfig{
		TableName:  tableName,
		TtlMinutes: ttl,
	}, nil
}
