// Package store persists the custody ledger's asset registry in a Badger
// key-value database. Each asset record is written in a single Badger
// transaction, which gives the ledger the all-or-nothing commit it needs: a
// record is either fully durable or absent.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/custodia-labs/asset-custody-go/pkg/custody"
)

const assetKeyPrefix = "asset/"

type BadgerStore struct {
	database *badger.DB
}

type assetRecord struct {
	ID             uint64 `json:"id"`
	MetadataURI    string `json:"metadataUri"`
	IssuedSupply   string `json:"issuedSupply"`
	RedeemedAmount string `json:"redeemedAmount"`
}

// Open opens (or creates) a store at the given directory.
func Open(directory string) (*BadgerStore, error) {
	options := badger.DefaultOptions(directory).WithLogger(nil)
	database, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset store at %s: %w", directory, err)
	}
	return &BadgerStore{database: database}, nil
}

// OpenInMemory opens a store that lives only for the lifetime of the
// process. Useful in tests and for running the relay without a data dir.
func OpenInMemory() (*BadgerStore, error) {
	options := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	database, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory asset store: %w", err)
	}
	return &BadgerStore{database: database}, nil
}

// Close releases the underlying database.
func (store *BadgerStore) Close() error {
	return store.database.Close()
}

// SaveAsset writes the asset record in one transaction.
func (store *BadgerStore) SaveAsset(asset custody.Asset) error {
	record := assetRecord{
		ID:             asset.ID,
		MetadataURI:    asset.MetadataURI,
		IssuedSupply:   asset.IssuedSupply.String(),
		RedeemedAmount: asset.RedeemedAmount.String(),
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode asset %d: %w", asset.ID, err)
	}

	err = store.database.Update(func(transaction *badger.Txn) error {
		return transaction.Set(assetKey(asset.ID), encoded)
	})
	if err != nil {
		return fmt.Errorf("failed to persist asset %d: %w", asset.ID, err)
	}
	return nil
}

// LoadAssets reads every persisted asset record.
func (store *BadgerStore) LoadAssets() ([]custody.Asset, error) {
	assets := make([]custody.Asset, 0)

	err := store.database.View(func(transaction *badger.Txn) error {
		iteratorOptions := badger.DefaultIteratorOptions
		iteratorOptions.Prefix = []byte(assetKeyPrefix)

		iterator := transaction.NewIterator(iteratorOptions)
		defer iterator.Close()

		for iterator.Rewind(); iterator.Valid(); iterator.Next() {
			err := iterator.Item().Value(func(value []byte) error {
				asset, decodeErr := decodeAsset(value)
				if decodeErr != nil {
					return decodeErr
				}
				assets = append(assets, asset)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	return assets, nil
}

func decodeAsset(value []byte) (custody.Asset, error) {
	var record assetRecord
	if err := json.Unmarshal(value, &record); err != nil {
		return custody.Asset{}, fmt.Errorf("failed to decode asset record: %w", err)
	}

	issuedSupply, ok := new(big.Int).SetString(record.IssuedSupply, 10)
	if !ok {
		return custody.Asset{}, fmt.Errorf("corrupt issued supply for asset %d: %s", record.ID, record.IssuedSupply)
	}
	redeemedAmount, ok := new(big.Int).SetString(record.RedeemedAmount, 10)
	if !ok {
		return custody.Asset{}, fmt.Errorf("corrupt redeemed amount for asset %d: %s", record.ID, record.RedeemedAmount)
	}

	return custody.Asset{
		ID:             record.ID,
		MetadataURI:    record.MetadataURI,
		IssuedSupply:   issuedSupply,
		RedeemedAmount: redeemedAmount,
	}, nil
}

func assetKey(assetID uint64) []byte {
	key := make([]byte, len(assetKeyPrefix)+8)
	copy(key, assetKeyPrefix)
	binary.BigEndian.PutUint64(key[len(assetKeyPrefix):], assetID)
	return key
}
