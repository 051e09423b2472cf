package store

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/asset-custody-go/pkg/custody"
	"github.com/custodia-labs/asset-custody-go/pkg/token"
)

func TestSaveAndLoadAssets(t *testing.T) {
	assetStore, err := Open(t.TempDir())
	require.NoError(t, err)
	defer assetStore.Close()

	require.NoError(t, assetStore.SaveAsset(custody.Asset{
		ID:             1,
		MetadataURI:    "ipfs://QmFirst",
		IssuedSupply:   big.NewInt(1000),
		RedeemedAmount: big.NewInt(0),
	}))
	require.NoError(t, assetStore.SaveAsset(custody.Asset{
		ID:             2,
		MetadataURI:    "ipfs://QmSecond",
		IssuedSupply:   big.NewInt(250),
		RedeemedAmount: big.NewInt(50),
	}))

	assets, err := assetStore.LoadAssets()
	require.NoError(t, err)
	require.Len(t, assets, 2)

	require.Equal(t, uint64(1), assets[0].ID)
	require.Equal(t, "ipfs://QmFirst", assets[0].MetadataURI)
	require.Zero(t, assets[0].RedeemedAmount.Sign())

	require.Equal(t, uint64(2), assets[1].ID)
	require.Equal(t, "250", assets[1].IssuedSupply.String())
	require.Equal(t, "50", assets[1].RedeemedAmount.String())
}

func TestSaveAssetOverwritesRecord(t *testing.T) {
	assetStore, err := OpenInMemory()
	require.NoError(t, err)
	defer assetStore.Close()

	asset := custody.Asset{
		ID:             1,
		MetadataURI:    "ipfs://QmAsset",
		IssuedSupply:   big.NewInt(1000),
		RedeemedAmount: big.NewInt(0),
	}
	require.NoError(t, assetStore.SaveAsset(asset))

	asset.RedeemedAmount = big.NewInt(400)
	require.NoError(t, assetStore.SaveAsset(asset))

	assets, err := assetStore.LoadAssets()
	require.NoError(t, err)
	require.Len(t, assets, 1)
	require.Equal(t, "400", assets[0].RedeemedAmount.String())
}

func TestLedgerRebuiltFromStoreSeesSameRegistry(t *testing.T) {
	directory := t.TempDir()

	deployer := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	custodyAccount := common.HexToAddress("0x00000000000000000000000000000000000000ce")

	newLedger := func(assetStore custody.Store) (*token.Token, *custody.Ledger) {
		assetToken := token.New(token.Config{Name: "AssetToken", Symbol: "AST", Owner: deployer})
		require.NoError(t, assetToken.TransferOwnership(deployer, custodyAccount))

		ledger, ledgerErr := custody.NewLedger(custody.Config{
			Token:   assetToken,
			Owner:   deployer,
			Account: custodyAccount,
			Store:   assetStore,
		})
		require.NoError(t, ledgerErr)
		return assetToken, ledger
	}

	assetStore, err := Open(directory)
	require.NoError(t, err)

	_, ledger := newLedger(assetStore)
	firstID, err := ledger.RegisterAsset(deployer, "ipfs://QmFirst", big.NewInt(1000))
	require.NoError(t, err)
	require.NoError(t, ledger.Redeem(deployer, firstID, big.NewInt(100)))
	require.NoError(t, assetStore.Close())

	reopened, err := Open(directory)
	require.NoError(t, err)
	defer reopened.Close()

	_, rebuilt := newLedger(reopened)

	asset, exists := rebuilt.Asset(firstID)
	require.True(t, exists)
	require.Equal(t, "ipfs://QmFirst", asset.MetadataURI)
	require.Equal(t, "1000", asset.IssuedSupply.String())
	require.Equal(t, "100", asset.RedeemedAmount.String())

	// The next registration continues the id sequence instead of reusing 1.
	secondID, err := rebuilt.RegisterAsset(deployer, "ipfs://QmSecond", big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, firstID+1, secondID)
}
