// Package custody implements the asset custody ledger: it registers
// real-world asset classes, mints token supply against them into its own
// custody account, distributes portions of that supply to recipients, and
// burns tokens back out of circulation on redemption.
//
// The ledger holds exclusive mint/burn authority over one fungible token
// instance and enforces the conservation invariants of the scheme: an
// asset's redeemed amount never exceeds its issued supply, and as long as
// the token is only ever moved through the ledger's own entry points the
// custody balance equals the sum of outstanding supply across all assets.
//
// Every operation executes as a single atomic unit under the ledger mutex:
// a failed precondition leaves ledger, token, and store state exactly as it
// was. Operations are O(1) in the number of registered assets.
//
// # Usage
//
// Construct a ledger over a token whose ownership has been handed to the
// ledger's custody account:
//
//	ledger, err := custody.NewLedger(custody.Config{
//		Token:   assetToken,
//		Owner:   deployer,
//		Account: custodyAccount,
//	})
//
//	assetID, err := ledger.RegisterAsset(deployer, "ipfs://Qm...", supply)
//	err = ledger.Distribute(deployer, amount, buyer)
//	err = ledger.Redeem(buyer, assetID, amount)
package custody
