// Package config loads teller settings from ~/.teller/config.yaml. The file
// is optional; every field has a default matching the stock US-dollar
// machine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/majorcontext/teller/internal/account"
)

// DefaultInitialBalance is the balance a session starts with when none is configured.
const DefaultInitialBalance = "547.31"

// Config holds teller settings.
type Config struct {
	// InitialBalanceText is kept as text so it is parsed exactly.
	InitialBalanceText string         `yaml:"initial_balance"`
	Currency           CurrencyConfig `yaml:"currency"`
	Debug              DebugConfig    `yaml:"debug"`
}

// CurrencyConfig controls how balances are displayed.
type CurrencyConfig struct {
	Symbol           string `yaml:"symbol"`
	DecimalSeparator string `yaml:"decimal_separator"`
	GroupSeparator   string `yaml:"group_separator"`
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	RetentionDays int `yaml:"retention_days"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		InitialBalanceText: DefaultInitialBalance,
		Currency: CurrencyConfig{
			Symbol:           account.DefaultLocale.Symbol,
			DecimalSeparator: account.DefaultLocale.DecimalSep,
			GroupSeparator:   account.DefaultLocale.GroupSep,
		},
		Debug: DebugConfig{
			RetentionDays: 14,
		},
	}
}

// Dir returns the path to ~/.teller.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".teller")
	}
	return filepath.Join(homeDir, ".teller")
}

// DebugDir returns the directory for daily debug logs.
func DebugDir() string {
	return filepath.Join(Dir(), "debug")
}

// Load reads ~/.teller/config.yaml over the defaults. A missing file is not
// an error. A malformed file or invalid value returns the defaults together
// with the error so the caller can warn and continue.
func Load() (*Config, error) {
	return LoadFile(filepath.Join(Dir(), "config.yaml"))
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return loaded, nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if _, err := c.InitialBalance(); err != nil {
		return err
	}
	if c.Currency.DecimalSeparator == "" {
		return errors.New("currency.decimal_separator must not be empty")
	}
	if c.Currency.DecimalSeparator == c.Currency.GroupSeparator {
		return errors.New("currency.decimal_separator and currency.group_separator must differ")
	}
	if c.Debug.RetentionDays < 0 {
		return fmt.Errorf("debug.retention_days must not be negative, got %d", c.Debug.RetentionDays)
	}
	return nil
}

// InitialBalance parses the configured starting balance.
func (c *Config) InitialBalance() (decimal.Decimal, error) {
	b, err := decimal.NewFromString(c.InitialBalanceText)
	if err != nil {
		return decimal.Zero, fmt.Errorf("initial_balance %q is not a decimal number", c.InitialBalanceText)
	}
	if b.IsNegative() {
		return decimal.Zero, fmt.Errorf("initial_balance %s must not be negative", b)
	}
	return b, nil
}

// Locale returns the display locale for balances.
func (c *Config) Locale() account.Locale {
	return account.Locale{
		Symbol:     c.Currency.Symbol,
		DecimalSep: c.Currency.DecimalSeparator,
		GroupSep:   c.Currency.GroupSeparator,
	}
}
