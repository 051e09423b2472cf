package relay

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/custodia-labs/asset-custody-go/pkg/custody"
)

type ServerConfig struct {
	Ledger   *custody.Ledger
	Token    custody.Token
	Operator common.Address
	Logger   *logrus.Logger
}

// Server relays transfer requests into the custody ledger and serves the
// read-only query surface. It executes Distribute as the configured
// operator, the privileged deployment principal.
type Server struct {
	ledger   *custody.Ledger
	token    custody.Token
	operator common.Address
	logger   *logrus.Logger
	router   *mux.Router

	nonce atomic.Uint64
}

// NewServer wires the relay routes over the given ledger.
func NewServer(config ServerConfig) (*Server, error) {
	if config.Ledger == nil {
		return nil, custody.NewInvalidInputError("ledger", "is required")
	}
	if config.Token == nil {
		return nil, custody.NewInvalidInputError("token", "is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
	}

	server := &Server{
		ledger:   config.Ledger,
		token:    config.Token,
		operator: config.Operator,
		logger:   logger,
		router:   mux.NewRouter(),
	}

	server.router.HandleFunc("/api/transfer", server.handleTransfer).Methods(http.MethodPost)
	server.router.HandleFunc("/api/balance/{account}", server.handleBalance).Methods(http.MethodGet)
	server.router.HandleFunc("/api/decimals", server.handleDecimals).Methods(http.MethodGet)
	server.router.HandleFunc("/api/assets/{id}", server.handleAsset).Methods(http.MethodGet)

	return server, nil
}

// Handler returns the relay's HTTP handler.
func (server *Server) Handler() http.Handler {
	return server.router
}

func (server *Server) handleTransfer(writer http.ResponseWriter, request *http.Request) {
	var transferRequest TransferRequest
	if err := json.NewDecoder(request.Body).Decode(&transferRequest); err != nil {
		writeJSON(writer, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if transferRequest.To == "" || transferRequest.Amount == "" {
		writeJSON(writer, http.StatusBadRequest, ErrorResponse{Error: `missing "to" or "amount"`})
		return
	}

	recipient, err := custody.ParseAddress(transferRequest.To)
	if err != nil {
		writeError(writer, err)
		return
	}
	amount, err := custody.ParseAmount(string(transferRequest.Amount))
	if err != nil {
		writeError(writer, err)
		return
	}

	server.logger.WithFields(logrus.Fields{
		"to":     recipient.Hex(),
		"amount": amount.String(),
	}).Info("initiating transfer")

	if err := server.ledger.Distribute(server.operator, amount, recipient); err != nil {
		server.logger.WithError(err).Warn("transfer failed")
		writeError(writer, err)
		return
	}

	transferHash := server.nextTransferHash(recipient, amount.Bytes())
	server.logger.WithField("txHash", transferHash.Hex()).Info("transfer complete")

	writeJSON(writer, http.StatusOK, TransferResponse{
		Success: true,
		TxHash:  transferHash.Hex(),
		To:      recipient.Hex(),
		Amount:  amount.String(),
	})
}

func (server *Server) handleBalance(writer http.ResponseWriter, request *http.Request) {
	account, err := custody.ParseAddress(mux.Vars(request)["account"])
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, BalanceResponse{
		Account:  account.Hex(),
		Balance:  server.token.BalanceOf(account).String(),
		Decimals: server.token.Decimals(),
	})
}

func (server *Server) handleDecimals(writer http.ResponseWriter, request *http.Request) {
	writeJSON(writer, http.StatusOK, DecimalsResponse{Decimals: server.token.Decimals()})
}

func (server *Server) handleAsset(writer http.ResponseWriter, request *http.Request) {
	assetID, err := strconv.ParseUint(mux.Vars(request)["id"], 10, 64)
	if err != nil {
		writeJSON(writer, http.StatusBadRequest, ErrorResponse{Error: "asset id must be a positive integer"})
		return
	}

	asset, exists := server.ledger.Asset(assetID)
	if !exists {
		writeError(writer, custody.NewUnknownAssetError(assetID))
		return
	}

	writeJSON(writer, http.StatusOK, AssetResponse{
		ID:             asset.ID,
		MetadataURI:    asset.MetadataURI,
		IssuedSupply:   asset.IssuedSupply.String(),
		RedeemedAmount: asset.RedeemedAmount.String(),
		Outstanding:    asset.Outstanding().String(),
	})
}

// nextTransferHash derives a synthetic receipt hash for a relayed transfer.
// The in-process execution environment has no chain transaction to point at,
// so the hash commits to the recipient, amount, and a per-server sequence.
func (server *Server) nextTransferHash(recipient common.Address, amount []byte) common.Hash {
	sequence := make([]byte, 8)
	binary.BigEndian.PutUint64(sequence, server.nonce.Add(1))
	return crypto.Keccak256Hash(recipient.Bytes(), amount, sequence)
}

func writeError(writer http.ResponseWriter, err error) {
	writeJSON(writer, statusForError(err), ErrorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	var unauthorized custody.UnauthorizedError
	if errors.As(err, &unauthorized) {
		return http.StatusForbidden
	}
	var unknownAsset custody.UnknownAssetError
	if errors.As(err, &unknownAsset) {
		return http.StatusNotFound
	}
	var insufficient custody.InsufficientCustodyBalanceError
	if errors.As(err, &insufficient) {
		return http.StatusConflict
	}
	var exceedsIssuance custody.RedemptionExceedsIssuanceError
	if errors.As(err, &exceedsIssuance) {
		return http.StatusConflict
	}
	var invalidInput custody.InvalidInputError
	if errors.As(err, &invalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}
