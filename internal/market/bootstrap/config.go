package bootstrap

import "github.com/TranushReddy/crop-market/internal/pkg/database"

type MarketConfig struct {
	DbSettings database.PostgresSettings
	RedisAddr  string
	HttpPort   string
}
