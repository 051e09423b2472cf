// Package token implements the fungible asset token the custody ledger
// controls. It is an ERC-20-shaped engine with a single ownership slot:
// minting is restricted to the owner, burning operates on the caller's own
// balance, and ownership can be handed over once at deployment so the
// custody ledger gains exclusive mint/burn authority.
//
// Amounts are *big.Int values in the token's smallest unit. All mutating
// operations are atomic: a failed precondition leaves balances, supply, and
// ownership untouched.
//
// # Usage
//
// Create a token and hand authority to the custody ledger:
//
//	assetToken := token.New(token.Config{
//		Name:    "AssetToken",
//		Symbol:  "AST",
//		Owner:   deployer,
//	})
//
//	err := assetToken.TransferOwnership(deployer, ledgerAccount)
package token
