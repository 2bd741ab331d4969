// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/ids"

	"github.com/luxfi/bridge/state"
)

// Event is a domain event emitted by the engine after an operation fully
// succeeds. Failed operations emit nothing.
type Event interface {
	isEvent()
}

// EventSink receives engine events. The engine invokes it synchronously
// after the state change has been committed.
type EventSink func(Event)

type AssetRegistered struct {
	Asset state.AssetID
}

type TransferInitiated struct {
	ID          state.TransferID
	From        ids.ShortID
	Asset       state.AssetID
	Amount      *uint256.Int
	Destination ids.ShortID
	ToLedger    bool
}

type TransferConfirmed struct {
	ID        state.TransferID
	Validator ids.ShortID
}

type TransferFinalized struct {
	ID state.TransferID
}

func (AssetRegistered) isEvent()   {}
func (TransferInitiated) isEvent() {}
func (TransferConfirmed) isEvent() {}
func (TransferFinalized) isEvent() {}
