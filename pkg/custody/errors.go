package custody

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type CustodyError struct {
	Message string
}

func (errorValue CustodyError) Error() string {
	return errorValue.Message
}

type UnauthorizedError struct {
	CustodyError
	Caller common.Address
}

func NewUnauthorizedError(caller common.Address) error {
	return UnauthorizedError{
		CustodyError: CustodyError{Message: fmt.Sprintf("caller %s is not the ledger owner", caller.Hex())},
		Caller:       caller,
	}
}

type UnknownAssetError struct {
	CustodyError
	AssetID uint64
}

func NewUnknownAssetError(assetID uint64) error {
	return UnknownAssetError{
		CustodyError: CustodyError{Message: fmt.Sprintf("asset %d is not registered", assetID)},
		AssetID:      assetID,
	}
}

type InsufficientCustodyBalanceError struct {
	CustodyError
	Requested string
	Available string
}

func NewInsufficientCustodyBalanceError(requested string, available string) error {
	return InsufficientCustodyBalanceError{
		CustodyError: CustodyError{Message: fmt.Sprintf("custody holds %s, cannot cover %s", available, requested)},
		Requested:    requested,
		Available:    available,
	}
}

type RedemptionExceedsIssuanceError struct {
	CustodyError
	AssetID   uint64
	Requested string
	Remaining string
}

func NewRedemptionExceedsIssuanceError(assetID uint64, requested string, remaining string) error {
	return RedemptionExceedsIssuanceError{
		CustodyError: CustodyError{Message: fmt.Sprintf("redeeming %s from asset %d exceeds its remaining issuance %s", requested, assetID, remaining)},
		AssetID:      assetID,
		Requested:    requested,
		Remaining:    remaining,
	}
}

type InvalidInputError struct {
	CustodyError
	Field string
}

func NewInvalidInputError(field string, reason string) error {
	return InvalidInputError{
		CustodyError: CustodyError{Message: fmt.Sprintf("invalid %s: %s", field, reason)},
		Field:        field,
	}
}
