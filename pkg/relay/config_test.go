package relay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("RELAY_OWNER_ADDRESS", "0x00000000000000000000000000000000000000a1")
	t.Setenv("RELAY_CUSTODY_ADDRESS", "0x00000000000000000000000000000000000000ce")
	t.Setenv("RELAY_LISTEN_ADDR", ":8081")
	t.Setenv("RELAY_TOKEN_SYMBOL", "RWA")

	config, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":8081", config.ListenAddr)
	require.Equal(t, "0x00000000000000000000000000000000000000a1", config.OwnerAddress)
	require.Equal(t, "0x00000000000000000000000000000000000000ce", config.CustodyAddress)
	require.Equal(t, "RWA", config.TokenSymbol)
	require.Equal(t, "AssetToken", config.TokenName)
	require.Equal(t, uint8(18), config.TokenDecimals)
	require.Empty(t, config.DataDir)
}

func TestLoadConfigRequiresAddresses(t *testing.T) {
	t.Setenv("RELAY_OWNER_ADDRESS", "")
	t.Setenv("RELAY_CUSTODY_ADDRESS", "")

	_, err := LoadConfig()
	require.Error(t, err)
}
