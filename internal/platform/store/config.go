package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG    PGConfig
	CH    CHConfig
	Redis RedisConfig
}

// PGConfig configures postgres connectivity and the statement log
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	LogSQL    bool
	SlowQuery time.Duration

	// zero picks the pg package defaults
	ConnectAttempts int
	PingTimeout     time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string

	// reported to the server as client info
	ClientName string
	ClientTag  string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled   bool
	URL       string
	KeyPrefix string
}
