package custody

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	amountRegex  = regexp.MustCompile(`^\d+$`)
	decimalRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// ParseAmount parses a base-unit amount from its decimal string form.
func ParseAmount(value string) (*big.Int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !amountRegex.MatchString(trimmed) {
		return nil, NewInvalidInputError("amount", "must be a non-negative integer string")
	}

	parsed, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, NewInvalidInputError("amount", "must be a non-negative integer string")
	}
	return parsed, nil
}

// ParseUnits converts a human-readable quantity such as "100" or "1.5" into
// base units scaled by decimals.
func ParseUnits(value string, decimals uint8) (*big.Int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !decimalRegex.MatchString(trimmed) {
		return nil, NewInvalidInputError("amount", "must be a non-negative decimal string")
	}

	wholePart := trimmed
	fractionPart := ""
	if dot := strings.IndexByte(trimmed, '.'); dot >= 0 {
		wholePart = trimmed[:dot]
		fractionPart = trimmed[dot+1:]
	}
	if len(fractionPart) > int(decimals) {
		return nil, NewInvalidInputError("amount", "has more fractional digits than the token supports")
	}
	fractionPart += strings.Repeat("0", int(decimals)-len(fractionPart))

	combined, ok := new(big.Int).SetString(wholePart+fractionPart, 10)
	if !ok {
		return nil, NewInvalidInputError("amount", "must be a non-negative decimal string")
	}
	return combined, nil
}

// FormatUnits renders a base-unit amount as a human-readable quantity scaled
// down by decimals, trimming trailing fractional zeros.
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, fraction := new(big.Int).QuoRem(new(big.Int).Set(amount), scale, new(big.Int))

	fractionDigits := strings.TrimRight(
		strings.Repeat("0", int(decimals)-len(fraction.String()))+fraction.String(),
		"0",
	)
	if fraction.Sign() == 0 || fractionDigits == "" {
		return whole.String()
	}
	return whole.String() + "." + fractionDigits
}

// ParseAddress parses and validates a hex account address; the zero address
// is rejected.
func ParseAddress(value string) (common.Address, error) {
	trimmed := strings.TrimSpace(value)
	if !common.IsHexAddress(trimmed) {
		return common.Address{}, NewInvalidInputError("address", "must be a hex account address")
	}

	address := common.HexToAddress(trimmed)
	if address == (common.Address{}) {
		return common.Address{}, NewInvalidInputError("address", "must not be the zero address")
	}
	return address, nil
}
