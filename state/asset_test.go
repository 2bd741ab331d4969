// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/database/memdb"
)

func TestAssetRegistryRegisterAndLookup(t *testing.T) {
	require := require.New(t)

	registry := NewAssetRegistry(memdb.New())

	metadata := AssetMetadata{
		Name:        "Bitcoin",
		Symbol:      "BTC",
		Decimals:    8,
		OriginChain: "BTC",
	}
	require.NoError(registry.Register("BTC", metadata))

	record, err := registry.Lookup("BTC")
	require.NoError(err)
	require.Equal(AssetID("BTC"), record.ID)
	require.Equal(metadata, record.AssetMetadata)

	has, err := registry.Has("BTC")
	require.NoError(err)
	require.True(has)
}

func TestAssetRegistryRejectsEmptyFields(t *testing.T) {
	registry := NewAssetRegistry(memdb.New())

	tests := []struct {
		name     string
		id       AssetID
		metadata AssetMetadata
	}{
		{
			name:     "empty id",
			id:       "",
			metadata: AssetMetadata{Name: "Bitcoin", Symbol: "BTC"},
		},
		{
			name:     "empty name",
			id:       "BTC",
			metadata: AssetMetadata{Symbol: "BTC"},
		},
		{
			name:     "empty symbol",
			id:       "BTC",
			metadata: AssetMetadata{Name: "Bitcoin"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := registry.Register(test.id, test.metadata)
			require.ErrorIs(t, err, ErrInvalidAssetDefinition)
		})
	}
}

func TestAssetRegistryNoOverwrite(t *testing.T) {
	require := require.New(t)

	registry := NewAssetRegistry(memdb.New())

	original := AssetMetadata{Name: "Bitcoin", Symbol: "BTC", Decimals: 8, OriginChain: "BTC"}
	require.NoError(registry.Register("BTC", original))

	err := registry.Register("BTC", AssetMetadata{Name: "Bitcoin Cash", Symbol: "BCH"})
	require.ErrorIs(err, ErrAssetAlreadyExists)

	// The original record is untouched.
	record, err := registry.Lookup("BTC")
	require.NoError(err)
	require.Equal(original, record.AssetMetadata)
}

func TestAssetRegistryLookupMissing(t *testing.T) {
	require := require.New(t)

	registry := NewAssetRegistry(memdb.New())

	_, err := registry.Lookup("DOGE")
	require.ErrorIs(err, ErrAssetNotFound)

	has, err := registry.Has("DOGE")
	require.NoError(err)
	require.False(has)
}

func TestAssetRegistryAssets(t *testing.T) {
	require := require.New(t)

	registry := NewAssetRegistry(memdb.New())

	require.NoError(registry.Register("ETH", AssetMetadata{Name: "Ethereum", Symbol: "ETH", Decimals: 18, OriginChain: "ETH"}))
	require.NoError(registry.Register("BTC", AssetMetadata{Name: "Bitcoin", Symbol: "BTC", Decimals: 8, OriginChain: "BTC"}))

	records, err := registry.Assets()
	require.NoError(err)
	require.Len(records, 2)

	// Iteration is key-ordered.
	require.Equal(AssetID("BTC"), records[0].ID)
	require.Equal(AssetID("ETH"), records[1].ID)
}
