package token

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type TokenError struct {
	Message string
}

func (errorValue TokenError) Error() string {
	return errorValue.Message
}

type UnauthorizedError struct {
	TokenError
	Caller common.Address
}

func NewUnauthorizedError(caller common.Address) error {
	return UnauthorizedError{
		TokenError: TokenError{Message: fmt.Sprintf("caller %s is not the token owner", caller.Hex())},
		Caller:     caller,
	}
}

type InsufficientBalanceError struct {
	TokenError
	Account   common.Address
	Requested string
	Available string
}

func NewInsufficientBalanceError(account common.Address, requested string, available string) error {
	return InsufficientBalanceError{
		TokenError: TokenError{Message: fmt.Sprintf("account %s holds %s, cannot spend %s", account.Hex(), available, requested)},
		Account:    account,
		Requested:  requested,
		Available:  available,
	}
}

type InvalidAmountError struct {
	TokenError
	Amount string
}

func NewInvalidAmountError(amount string) error {
	return InvalidAmountError{
		TokenError: TokenError{Message: fmt.Sprintf("invalid token amount: %s", amount)},
		Amount:     amount,
	}
}

type InvalidRecipientError struct {
	TokenError
}

func NewInvalidRecipientError() error {
	return InvalidRecipientError{
		TokenError: TokenError{Message: "recipient must be a non-zero address"},
	}
}
