package relay

import (
	"encoding/json"
	"strings"
)

// FlexibleAmount accepts a base-unit amount from either a JSON string or a
// JSON number, matching what wallet tooling sends.
type FlexibleAmount string

func (amount *FlexibleAmount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var stringValue string
		if err := json.Unmarshal(data, &stringValue); err != nil {
			return err
		}
		*amount = FlexibleAmount(strings.TrimSpace(stringValue))
		return nil
	}
	*amount = FlexibleAmount(trimmed)
	return nil
}

// TransferRequest is the POST /api/transfer body. AssetID is accepted for
// compatibility with callers that track assets, but distribution draws from
// the aggregate custody balance and does not use it.
type TransferRequest struct {
	To      string         `json:"to"`
	Amount  FlexibleAmount `json:"amount"`
	AssetID *uint64        `json:"assetId,omitempty"`
}

type TransferResponse struct {
	Success bool   `json:"success"`
	TxHash  string `json:"txHash"`
	To      string `json:"to"`
	Amount  string `json:"amount"`
}

type BalanceResponse struct {
	Account  string `json:"account"`
	Balance  string `json:"balance"`
	Decimals uint8  `json:"decimals"`
}

type DecimalsResponse struct {
	Decimals uint8 `json:"decimals"`
}

type AssetResponse struct {
	ID             uint64 `json:"id"`
	MetadataURI    string `json:"metadataUri"`
	IssuedSupply   string `json:"issuedSupply"`
	RedeemedAmount string `json:"redeemedAmount"`
	Outstanding    string `json:"outstanding"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
