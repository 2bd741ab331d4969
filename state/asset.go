// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state manages persistent state for the bridge: the registry of
// supported assets, the ledger of in-flight transfer requests, and the
// monotonic transfer id counter.
package state

import (
	"errors"
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
)

var (
	ErrInvalidAssetDefinition = errors.New("invalid asset definition")
	ErrAssetAlreadyExists     = errors.New("asset already registered")
	ErrAssetNotFound          = errors.New("asset not found")

	assetPrefix = []byte("asset")
)

// AssetID identifies a bridged asset. It is an opaque byte string chosen by
// the registrant, e.g. "BTC".
type AssetID string

// AssetMetadata describes an asset supported by the bridge.
type AssetMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	OriginChain string `json:"originChain"`
}

// AssetRecord is a registered asset together with its id.
type AssetRecord struct {
	ID AssetID `json:"id"`
	AssetMetadata
}

// AssetRegistry is the persistent table of assets supported by the bridge.
// Records are immutable once registered and are never deleted.
type AssetRegistry struct {
	db database.Database
}

func NewAssetRegistry(db database.Database) *AssetRegistry {
	return &AssetRegistry{
		db: prefixdb.New(assetPrefix, db),
	}
}

// Register inserts a new asset record. Registration is intentionally not
// idempotent: metadata is an immutable contract, so a second registration of
// the same id fails with [ErrAssetAlreadyExists].
func (r *AssetRegistry) Register(id AssetID, metadata AssetMetadata) error {
	if len(id) == 0 || len(metadata.Name) == 0 || len(metadata.Symbol) == 0 {
		return fmt.Errorf("%w: id, name, and symbol must be non-empty", ErrInvalidAssetDefinition)
	}

	has, err := r.db.Has([]byte(id))
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %q", ErrAssetAlreadyExists, id)
	}

	bytes, err := Codec.Marshal(CodecVersion, &metadata)
	if err != nil {
		return err
	}
	return r.db.Put([]byte(id), bytes)
}

// Lookup returns the record registered under [id], or [ErrAssetNotFound].
func (r *AssetRegistry) Lookup(id AssetID) (*AssetRecord, error) {
	bytes, err := r.db.Get([]byte(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, id)
		}
		return nil, err
	}

	record := &AssetRecord{ID: id}
	if _, err := Codec.Unmarshal(bytes, &record.AssetMetadata); err != nil {
		return nil, err
	}
	return record, nil
}

// Has reports whether [id] is registered.
func (r *AssetRegistry) Has(id AssetID) (bool, error) {
	return r.db.Has([]byte(id))
}

// Assets returns every registered asset, ordered by id.
func (r *AssetRegistry) Assets() ([]*AssetRecord, error) {
	iter := r.db.NewIterator()
	defer iter.Release()

	var records []*AssetRecord
	for iter.Next() {
		record := &AssetRecord{ID: AssetID(iter.Key())}
		if _, err := Codec.Unmarshal(iter.Value(), &record.AssetMetadata); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, iter.Error()
}
