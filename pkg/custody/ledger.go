package custody

import (
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Ledger owns the mint/burn authority over one fungible token instance and
// maintains the asset registry. All mutating entry points serialize on the
// ledger mutex and commit either fully or not at all.
type Ledger struct {
	token   Token
	account common.Address
	store   Store

	mutex       sync.Mutex
	owner       common.Address
	nextAssetID uint64
	assets      map[uint64]*Asset
}

// NewLedger constructs a ledger over the given token. When Config.Store is
// non-nil the registry is rebuilt from it and every later registration and
// redemption is persisted through it.
func NewLedger(config Config) (*Ledger, error) {
	if config.Token == nil {
		return nil, NewInvalidInputError("token", "is required")
	}
	if config.Owner == (common.Address{}) {
		return nil, NewInvalidInputError("owner", "must not be the zero address")
	}
	if config.Account == (common.Address{}) {
		return nil, NewInvalidInputError("account", "must not be the zero address")
	}

	ledger := &Ledger{
		token:       config.Token,
		account:     config.Account,
		store:       config.Store,
		owner:       config.Owner,
		nextAssetID: 1,
		assets:      map[uint64]*Asset{},
	}

	if config.Store != nil {
		persisted, err := config.Store.LoadAssets()
		if err != nil {
			return nil, err
		}
		for _, asset := range persisted {
			restored := asset.clone()
			ledger.assets[restored.ID] = &restored
			if restored.ID >= ledger.nextAssetID {
				ledger.nextAssetID = restored.ID + 1
			}
		}
	}

	return ledger, nil
}

// Owner returns the privileged principal.
func (ledger *Ledger) Owner() common.Address {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()
	return ledger.owner
}

// Account returns the ledger's own custody account address.
func (ledger *Ledger) Account() common.Address {
	return ledger.account
}

// CustodyBalance returns the token balance held in custody.
func (ledger *Ledger) CustodyBalance() *big.Int {
	return ledger.token.BalanceOf(ledger.account)
}

// Asset returns a copy of the registered asset record.
func (ledger *Ledger) Asset(assetID uint64) (Asset, bool) {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	asset, exists := ledger.assets[assetID]
	if !exists {
		return Asset{}, false
	}
	return asset.clone(), true
}

// Snapshot returns a deep copy of the registry ordered by asset id, together
// with the custody balance at the time of the call.
func (ledger *Ledger) Snapshot() State {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	assets := make([]Asset, 0, len(ledger.assets))
	for _, asset := range ledger.assets {
		assets = append(assets, asset.clone())
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })

	return State{
		Assets:         assets,
		NextAssetID:    ledger.nextAssetID,
		CustodyBalance: ledger.token.BalanceOf(ledger.account),
	}
}

// RegisterAsset mints supply into custody and records a new asset class.
// Only the ledger owner may register. A supply of zero produces a legal
// no-op asset. Returns the newly assigned asset id; ids start at 1 and are
// never reused.
func (ledger *Ledger) RegisterAsset(caller common.Address, metadataURI string, supply *big.Int) (uint64, error) {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	if caller != ledger.owner {
		return 0, NewUnauthorizedError(caller)
	}
	trimmedURI := strings.TrimSpace(metadataURI)
	if trimmedURI == "" {
		return 0, NewInvalidInputError("metadataURI", "must not be empty")
	}
	if supply == nil || supply.Sign() < 0 {
		return 0, NewInvalidInputError("supply", "must be a non-negative amount")
	}

	asset := Asset{
		ID:             ledger.nextAssetID,
		MetadataURI:    trimmedURI,
		IssuedSupply:   new(big.Int).Set(supply),
		RedeemedAmount: big.NewInt(0),
	}

	if err := ledger.token.Mint(ledger.account, ledger.account, asset.IssuedSupply); err != nil {
		return 0, err
	}

	if ledger.store != nil {
		if err := ledger.store.SaveAsset(asset.clone()); err != nil {
			// Undo the mint so a failed commit is invisible.
			if asset.IssuedSupply.Sign() > 0 {
				_ = ledger.token.Burn(ledger.account, asset.IssuedSupply)
			}
			return 0, err
		}
	}

	ledger.assets[asset.ID] = &asset
	ledger.nextAssetID++
	return asset.ID, nil
}

// Distribute transfers amount from custody to the recipient. Only the
// ledger owner may distribute. The draw is against the aggregate custody
// balance, not a specific asset's sub-balance.
func (ledger *Ledger) Distribute(caller common.Address, amount *big.Int, to common.Address) error {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	if caller != ledger.owner {
		return NewUnauthorizedError(caller)
	}
	if amount == nil || amount.Sign() <= 0 {
		return NewInvalidInputError("amount", "must be a positive amount")
	}
	if to == (common.Address{}) {
		return NewInvalidInputError("to", "must not be the zero address")
	}

	available := ledger.token.BalanceOf(ledger.account)
	if available.Cmp(amount) < 0 {
		return NewInsufficientCustodyBalanceError(amount.String(), available.String())
	}

	return ledger.token.Transfer(ledger.account, to, amount)
}

// Redeem burns amount from custody and increments the asset's redeemed
// amount. The tokens must already have been transferred back into custody
// by the redeemer. Any account may redeem; the caller is not required to be
// the asset's original recipient or the owner.
func (ledger *Ledger) Redeem(caller common.Address, assetID uint64, amount *big.Int) error {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	asset, exists := ledger.assets[assetID]
	if !exists {
		return NewUnknownAssetError(assetID)
	}
	if amount == nil || amount.Sign() <= 0 {
		return NewInvalidInputError("amount", "must be a positive amount")
	}

	available := ledger.token.BalanceOf(ledger.account)
	if available.Cmp(amount) < 0 {
		return NewInsufficientCustodyBalanceError(amount.String(), available.String())
	}

	remaining := asset.Outstanding()
	if remaining.Cmp(amount) < 0 {
		return NewRedemptionExceedsIssuanceError(assetID, amount.String(), remaining.String())
	}

	if err := ledger.token.Burn(ledger.account, amount); err != nil {
		return err
	}

	updated := asset.clone()
	updated.RedeemedAmount.Add(updated.RedeemedAmount, amount)

	if ledger.store != nil {
		if err := ledger.store.SaveAsset(updated.clone()); err != nil {
			// Undo the burn so a failed commit is invisible.
			_ = ledger.token.Mint(ledger.account, ledger.account, amount)
			return err
		}
	}

	asset.RedeemedAmount = updated.RedeemedAmount
	return nil
}

// TransferOwnership reassigns the ledger's single ownership slot. Only the
// current owner may call it; reassigning to the current owner is legal.
func (ledger *Ledger) TransferOwnership(caller common.Address, newOwner common.Address) error {
	ledger.mutex.Lock()
	defer ledger.mutex.Unlock()

	if caller != ledger.owner {
		return NewUnauthorizedError(caller)
	}
	if newOwner == (common.Address{}) {
		return NewInvalidInputError("newOwner", "must not be the zero address")
	}

	ledger.owner = newOwner
	return nil
}
