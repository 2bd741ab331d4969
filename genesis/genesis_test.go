// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/bridge/state"
)

func TestDefaultGenesis(t *testing.T) {
	require := require.New(t)

	g := Default()
	require.Len(g.Assets, 16)

	seen := make(map[state.AssetID]struct{}, len(g.Assets))
	for _, asset := range g.Assets {
		require.NotEmpty(asset.ID)
		require.NotEmpty(asset.Metadata.Name)
		require.NotEmpty(asset.Metadata.Symbol)
		require.NotEmpty(asset.Metadata.OriginChain)

		_, ok := seen[asset.ID]
		require.False(ok, "duplicate asset %s", asset.ID)
		seen[asset.ID] = struct{}{}
	}

	require.Equal(state.AssetID("BTC"), g.Assets[0].ID)
	require.Equal(uint8(8), g.Assets[0].Metadata.Decimals)
	require.Equal("Polkadot", g.Assets[3].Metadata.OriginChain)
}

func TestGenesisRoundTrip(t *testing.T) {
	require := require.New(t)

	g := Default()
	bytes, err := g.Bytes()
	require.NoError(err)

	parsed, err := Parse(bytes)
	require.NoError(err)
	require.Equal(g, parsed)
}

func TestParseGarbage(t *testing.T) {
	require := require.New(t)

	_, err := Parse([]byte{0xff, 0x00, 0xff})
	require.Error(err)
}
