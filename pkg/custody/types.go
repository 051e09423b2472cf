package custody

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Asset is one registered real-world asset class. MetadataURI and
// IssuedSupply are fixed at registration; RedeemedAmount only grows, through
// successful redemptions.
type Asset struct {
	ID             uint64
	MetadataURI    string
	IssuedSupply   *big.Int
	RedeemedAmount *big.Int
}

// Outstanding returns IssuedSupply - RedeemedAmount, the amount still in
// circulation and not yet redeemed.
func (asset Asset) Outstanding() *big.Int {
	return new(big.Int).Sub(asset.IssuedSupply, asset.RedeemedAmount)
}

func (asset Asset) clone() Asset {
	return Asset{
		ID:             asset.ID,
		MetadataURI:    asset.MetadataURI,
		IssuedSupply:   new(big.Int).Set(asset.IssuedSupply),
		RedeemedAmount: new(big.Int).Set(asset.RedeemedAmount),
	}
}

// Token is the fungible token capability set the ledger consumes. It is
// satisfied by *token.Token; the ledger must be the token's owner before
// RegisterAsset and Redeem can succeed.
type Token interface {
	Mint(caller common.Address, to common.Address, amount *big.Int) error
	Burn(caller common.Address, amount *big.Int) error
	Transfer(caller common.Address, to common.Address, amount *big.Int) error
	BalanceOf(account common.Address) *big.Int
	Decimals() uint8
}

// Store persists asset records. SaveAsset must be atomic: either the full
// record is durable or nothing changed. A nil Store keeps the registry in
// memory only.
type Store interface {
	SaveAsset(asset Asset) error
	LoadAssets() ([]Asset, error)
}

type Config struct {
	Token   Token
	Owner   common.Address
	Account common.Address
	Store   Store
}

// State is a point-in-time deep copy of the ledger registry.
type State struct {
	Assets         []Asset
	NextAssetID    uint64
	CustodyBalance *big.Int
}
