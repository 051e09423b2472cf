// The Asset Custody SDK for Go implements a fungible-token custody scheme
// for real-world assets: a privileged custody ledger mints token supply
// against registered assets, distributes portions of that supply to
// recipients, and burns tokens back out of circulation on redemption.
//
// # Packages
//
//   - pkg/token: the fungible token engine the ledger controls (mint, burn,
//     transfer, balanceOf, decimals, transferOwnership)
//   - pkg/custody: the asset custody ledger with its registry, access
//     control, and conservation invariants
//   - pkg/store: Badger-backed persistence for the asset registry
//   - pkg/relay: the HTTP relay endpoint and a typed client for it
//
// # Quick start
//
// Register an asset and distribute part of its supply:
//
//	assetToken := token.New(token.Config{Name: "AssetToken", Symbol: "AST", Owner: deployer})
//	_ = assetToken.TransferOwnership(deployer, custodyAccount)
//
//	ledger, _ := custody.NewLedger(custody.Config{
//		Token:   assetToken,
//		Owner:   deployer,
//		Account: custodyAccount,
//	})
//
//	assetID, _ := ledger.RegisterAsset(deployer, "ipfs://Qm...", supply)
//	_ = ledger.Distribute(deployer, amount, buyer)
//
// Runnable programs covering the full flow live under examples/.
//
// # Installation
//
//	go get github.com/custodia-labs/asset-custody-go@latest
package asset_custody_go
