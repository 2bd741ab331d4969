// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package genesis defines the asset set the bridge is born with.
package genesis

import (
	"errors"
	"math"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"

	"github.com/luxfi/bridge/state"
)

const CodecVersion = 0

var Codec codec.Manager

func init() {
	Codec = codec.NewManager(math.MaxInt)
	lc := linearcodec.NewDefault()

	err := errors.Join(
		lc.RegisterType(&Genesis{}),
		Codec.RegisterCodec(CodecVersion, lc),
	)
	if err != nil {
		panic(err)
	}
}

// Asset is a single genesis asset registration.
type Asset struct {
	ID       state.AssetID       `json:"id"`
	Metadata state.AssetMetadata `json:"metadata"`
}

// Genesis lists the assets registered before the bridge serves traffic.
type Genesis struct {
	Assets []Asset `json:"assets"`
}

// Parse decodes genesis bytes produced by [Genesis.Bytes].
func Parse(bytes []byte) (*Genesis, error) {
	g := &Genesis{}
	_, err := Codec.Unmarshal(bytes, g)
	return g, err
}

// Bytes encodes the genesis document.
func (g *Genesis) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, g)
}

// Default returns the stock asset set the bridge launches with.
func Default() *Genesis {
	return &Genesis{
		Assets: []Asset{
			{ID: "BTC", Metadata: state.AssetMetadata{Name: "Bitcoin", Symbol: "BTC", Decimals: 8, OriginChain: "BTC"}},
			{ID: "ETH", Metadata: state.AssetMetadata{Name: "Ethereum", Symbol: "ETH", Decimals: 18, OriginChain: "ETH"}},
			{ID: "BNB", Metadata: state.AssetMetadata{Name: "Binance Coin", Symbol: "BNB", Decimals: 18, OriginChain: "BNB"}},
			{ID: "DOT", Metadata: state.AssetMetadata{Name: "Polkadot", Symbol: "DOT", Decimals: 10, OriginChain: "Polkadot"}},
			{ID: "XRP", Metadata: state.AssetMetadata{Name: "XRP", Symbol: "XRP", Decimals: 6, OriginChain: "XRP"}},
			{ID: "DOGE", Metadata: state.AssetMetadata{Name: "Dogecoin", Symbol: "DOGE", Decimals: 8, OriginChain: "DOGE"}},
			{ID: "SOL", Metadata: state.AssetMetadata{Name: "Solana", Symbol: "SOL", Decimals: 9, OriginChain: "SOL"}},
			{ID: "LINK", Metadata: state.AssetMetadata{Name: "Chainlink", Symbol: "LINK", Decimals: 18, OriginChain: "ETH"}},
			{ID: "SUI", Metadata: state.AssetMetadata{Name: "Sui", Symbol: "SUI", Decimals: 9, OriginChain: "SUI"}},
			{ID: "AVAX", Metadata: state.AssetMetadata{Name: "Avalanche", Symbol: "AVAX", Decimals: 18, OriginChain: "AVAX"}},
			{ID: "USDT", Metadata: state.AssetMetadata{Name: "Tether USD", Symbol: "USDT", Decimals: 6, OriginChain: "ERC20"}},
			{ID: "USDC", Metadata: state.AssetMetadata{Name: "USD Coin", Symbol: "USDC", Decimals: 6, OriginChain: "ERC20"}},
			{ID: "ADA", Metadata: state.AssetMetadata{Name: "Cardano", Symbol: "ADA", Decimals: 6, OriginChain: "Cardano"}},
			{ID: "TRX", Metadata: state.AssetMetadata{Name: "Tron", Symbol: "TRX", Decimals: 6, OriginChain: "TRX"}},
			{ID: "XLM", Metadata: state.AssetMetadata{Name: "Stellar", Symbol: "XLM", Decimals: 7, OriginChain: "XLM"}},
			{ID: "TON", Metadata: state.AssetMetadata{Name: "Toncoin", Symbol: "TON", Decimals: 9, OriginChain: "TON"}},
		},
	}
}
