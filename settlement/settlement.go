// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package settlement defines the capability the bridge engine invokes to
// move value on the local ledger, and a database-backed implementation of
// it. The engine never assumes anything about how minting and burning are
// carried out; it only sees this interface.
package settlement

import (
	"errors"

	"github.com/holiman/uint256"
	"github.com/luxfi/ids"

	"github.com/luxfi/bridge/state"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance to burn")
	ErrBalanceOverflow     = errors.New("balance overflow")
)

// Settler mints and burns bridged representations on the local ledger.
//
// Mint credits [amount] of [asset] to [to]; Burn debits [amount] of [asset]
// from [from]. Both are expected to either fully apply or fail without
// effect.
type Settler interface {
	Mint(asset state.AssetID, to ids.ShortID, amount *uint256.Int) error
	Burn(asset state.AssetID, from ids.ShortID, amount *uint256.Int) error
}
