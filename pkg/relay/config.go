package relay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the relay server runtime configuration, read from RELAY_*
// environment variables and an optional relay.yaml in the working
// directory. DataDir empty means the registry lives in memory only.
type Config struct {
	ListenAddr     string `mapstructure:"listen_addr"`
	DataDir        string `mapstructure:"data_dir"`
	TokenName      string `mapstructure:"token_name"`
	TokenSymbol    string `mapstructure:"token_symbol"`
	TokenDecimals  uint8  `mapstructure:"token_decimals"`
	OwnerAddress   string `mapstructure:"owner_address"`
	CustodyAddress string `mapstructure:"custody_address"`
}

// LoadConfig reads the relay configuration.
func LoadConfig() (Config, error) {
	loader := viper.New()
	loader.SetEnvPrefix("relay")
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	loader.SetDefault("listen_addr", ":3000")
	loader.SetDefault("data_dir", "")
	loader.SetDefault("token_name", "AssetToken")
	loader.SetDefault("token_symbol", "AST")
	loader.SetDefault("token_decimals", 18)
	// Registered without values so AutomaticEnv can populate them.
	loader.SetDefault("owner_address", "")
	loader.SetDefault("custody_address", "")

	loader.SetConfigName("relay")
	loader.SetConfigType("yaml")
	loader.AddConfigPath(".")
	if err := loader.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read relay config: %w", err)
		}
	}

	var config Config
	if err := loader.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse relay config: %w", err)
	}

	if strings.TrimSpace(config.OwnerAddress) == "" {
		return Config{}, fmt.Errorf("relay config: owner_address is required")
	}
	if strings.TrimSpace(config.CustodyAddress) == "" {
		return Config{}, fmt.Errorf("relay config: custody_address is required")
	}

	return config, nil
}
