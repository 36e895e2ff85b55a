package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Session   SessionConfig   `mapstructure:"session"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// SessionConfig holds bidding session defaults applied when a session is
// opened from an ongoing auction lot
type SessionConfig struct {
	DurationSeconds int64    `mapstructure:"duration_seconds"`
	ReferenceHigh   int64    `mapstructure:"reference_high"`
	TopBidderCount  int      `mapstructure:"top_bidder_count"`
	SeedBidders     []string `mapstructure:"seed_bidders"`
}

// SimulatorConfig holds the synthetic bidder script
type SimulatorConfig struct {
	Enabled      bool           `mapstructure:"enabled"`
	DelaySeconds int64          `mapstructure:"delay_seconds"`
	Bids         []SimulatedBid `mapstructure:"bids"`
}

// SimulatedBid is one scripted bid injected by the simulator
type SimulatedBid struct {
	Bidder string `mapstructure:"bidder"`
	Amount int64  `mapstructure:"amount"`
}

// WalletConfig holds the fixed wallet ceilings per portal role
type WalletConfig struct {
	IndustryBalance int64 `mapstructure:"industry_balance"`
	ConsumerBalance int64 `mapstructure:"consumer_balance"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file and environment variables.
// An empty path runs on defaults alone.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("AGRIMARKET")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults configures default values for all configuration options.
// Session numbers mirror the demo lot: 59:02 on the clock, base comparison
// against last year's 217200 high, industry wallet of 250000.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)

	v.SetDefault("session.duration_seconds", 3542)
	v.SetDefault("session.reference_high", 217200)
	v.SetDefault("session.top_bidder_count", 3)
	v.SetDefault("session.seed_bidders", []string{"Arnav", "Disha", "Krrish"})

	v.SetDefault("simulator.enabled", true)
	v.SetDefault("simulator.delay_seconds", 3)
	v.SetDefault("simulator.bids", []map[string]any{
		{"bidder": "Arnav", "amount": 200500},
		{"bidder": "Disha", "amount": 201000},
	})

	v.SetDefault("wallet.industry_balance", 250000)
	v.SetDefault("wallet.consumer_balance", 5000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port number")
	}
	if c.Session.DurationSeconds < 1 {
		return fmt.Errorf("session.duration_seconds must be at least 1")
	}
	if c.Session.ReferenceHigh < 1 {
		return fmt.Errorf("session.reference_high must be positive")
	}
	if c.Session.TopBidderCount < 1 {
		return fmt.Errorf("session.top_bidder_count must be at least 1")
	}
	if c.Wallet.IndustryBalance < 1 || c.Wallet.ConsumerBalance < 1 {
		return fmt.Errorf("wallet balances must be positive")
	}
	if c.Simulator.DelaySeconds < 0 {
		return fmt.Errorf("simulator.delay_seconds must not be negative")
	}
	for i, bid := range c.Simulator.Bids {
		if bid.Bidder == "" || bid.Amount <= 0 {
			return fmt.Errorf("simulator.bids[%d] needs a bidder and a positive amount", i)
		}
	}
	return nil
}
