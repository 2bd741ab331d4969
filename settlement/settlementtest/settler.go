// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package settlementtest provides a recording settlement double for engine
// tests.
package settlementtest

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/ids"

	"github.com/luxfi/bridge/settlement"
	"github.com/luxfi/bridge/state"
)

var _ settlement.Settler = (*Settler)(nil)

// Call records a single mint or burn dispatched by the engine.
type Call struct {
	Op      string // "mint" or "burn"
	Asset   state.AssetID
	Account ids.ShortID
	Amount  *uint256.Int
}

// Settler records every settlement call. If Err is set, all calls fail with
// it and nothing is recorded as settled.
type Settler struct {
	Err   error
	Calls []Call
}

func (s *Settler) Mint(asset state.AssetID, to ids.ShortID, amount *uint256.Int) error {
	if s.Err != nil {
		return s.Err
	}
	s.Calls = append(s.Calls, Call{Op: "mint", Asset: asset, Account: to, Amount: amount.Clone()})
	return nil
}

func (s *Settler) Burn(asset state.AssetID, from ids.ShortID, amount *uint256.Int) error {
	if s.Err != nil {
		return s.Err
	}
	s.Calls = append(s.Calls, Call{Op: "burn", Asset: asset, Account: from, Amount: amount.Clone()})
	return nil
}
