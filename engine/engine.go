// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package engine implements the bridge transfer state machine: asset
// registration, transfer initiation, quorum-gated validator confirmation,
// and atomic finalization against an injected settlement port.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/bridge/genesis"
	"github.com/luxfi/bridge/metrics"
	"github.com/luxfi/bridge/settlement"
	"github.com/luxfi/bridge/state"
	"github.com/luxfi/bridge/validators"
)

var (
	ErrAlreadyConfirmed          = errors.New("validator already confirmed this transfer")
	ErrInsufficientConfirmations = errors.New("insufficient confirmations to finalize transfer")
	ErrUnauthorizedValidator     = errors.New("caller is not a bridge validator")
	ErrSettlementFailed          = errors.New("settlement failed")

	errMissingDB         = errors.New("database must be provided")
	errMissingSettler    = errors.New("settler must be provided")
	errMissingValidators = errors.New("validator set must be provided")
	errZeroQuorum        = errors.New("quorum must be at least 1")
)

// Config carries the engine's injected collaborators. DB, Settler, and
// Validators are required; Quorum must be at least 1.
type Config struct {
	Log        log.Logger
	DB         database.Database
	Settler    settlement.Settler
	Validators validators.Set
	// Quorum is the number of distinct validator confirmations required
	// before a transfer may be finalized.
	Quorum  uint32
	Sink    EventSink
	Metrics metrics.Metrics
}

// Engine orchestrates the four bridge operations. All state mutation goes
// through a versioned view of the database: an operation either commits
// fully or aborts, so a failed call leaves state exactly as it was.
//
// A transfer is Pending while present in the ledger and Finalized once
// removed; finalization is destructive and terminal.
type Engine struct {
	log        log.Logger
	db         *versiondb.Database
	assets     *state.AssetRegistry
	transfers  *state.TransferLedger
	settler    settlement.Settler
	validators validators.Set
	quorum     uint32
	sink       EventSink
	metrics    metrics.Metrics

	// Serializes all operations. Confirmations from distinct validators
	// commute, so serialization order never changes the outcome.
	mu sync.RWMutex
}

func New(config Config) (*Engine, error) {
	switch {
	case config.DB == nil:
		return nil, errMissingDB
	case config.Settler == nil:
		return nil, errMissingSettler
	case config.Validators == nil:
		return nil, errMissingValidators
	case config.Quorum == 0:
		return nil, errZeroQuorum
	}

	if config.Log == nil {
		config.Log = log.NewNoOpLogger()
	}
	if config.Metrics == nil {
		config.Metrics = metrics.Noop
	}
	if config.Sink == nil {
		config.Sink = func(Event) {}
	}

	db := versiondb.New(config.DB)
	assets := state.NewAssetRegistry(db)
	return &Engine{
		log:        config.Log,
		db:         db,
		assets:     assets,
		transfers:  state.NewTransferLedger(db, assets),
		settler:    config.Settler,
		validators: config.Validators,
		quorum:     config.Quorum,
		sink:       config.Sink,
		metrics:    config.Metrics,
	}, nil
}

// Bootstrap registers the genesis asset set. A duplicate asset in the
// genesis document fails the whole bootstrap.
func (e *Engine) Bootstrap(g *genesis.Genesis) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, asset := range g.Assets {
		if err := e.assets.Register(asset.ID, asset.Metadata); err != nil {
			e.db.Abort()
			return fmt.Errorf("failed to bootstrap asset %q: %w", asset.ID, err)
		}
	}
	if err := e.commit(); err != nil {
		return err
	}

	e.log.Info("bootstrapped genesis assets",
		log.Int("numAssets", len(g.Assets)),
	)
	return nil
}

// RegisterAsset registers [id] with the bridge. Metadata is immutable: a
// second registration of the same id fails with
// [state.ErrAssetAlreadyExists].
func (e *Engine) RegisterAsset(caller ids.ShortID, id state.AssetID, metadata state.AssetMetadata) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.assets.Register(id, metadata); err != nil {
		e.db.Abort()
		return err
	}
	if err := e.commit(); err != nil {
		return err
	}

	e.metrics.IncAssetsRegistered()
	e.log.Info("asset registered",
		log.String("asset", string(id)),
		log.String("symbol", metadata.Symbol),
		log.Stringer("caller", caller),
	)
	e.sink(AssetRegistered{Asset: id})
	return nil
}

// InitiateTransfer creates a Pending transfer request and returns its id.
// [toLedger] selects the settlement direction at finalization: true mints to
// [destination], false burns from [caller].
func (e *Engine) InitiateTransfer(
	caller ids.ShortID,
	asset state.AssetID,
	amount *uint256.Int,
	destination ids.ShortID,
	toLedger bool,
) (state.TransferID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id, err := e.transfers.Create(caller, asset, amount, destination, toLedger)
	if err != nil {
		e.db.Abort()
		return 0, err
	}
	if err := e.commit(); err != nil {
		return 0, err
	}

	e.metrics.IncTransfersInitiated()
	e.log.Info("transfer initiated",
		log.Uint64("transferID", uint64(id)),
		log.String("asset", string(asset)),
		log.String("amount", amount.Dec()),
		log.Stringer("from", caller),
		log.Stringer("destination", destination),
		log.Bool("toLedger", toLedger),
	)
	e.sink(TransferInitiated{
		ID:          id,
		From:        caller,
		Asset:       asset,
		Amount:      amount.Clone(),
		Destination: destination,
		ToLedger:    toLedger,
	})
	return id, nil
}

// ConfirmTransfer records [validator]'s confirmation of the Pending transfer
// [id]. Each validator may confirm a given transfer at most once.
func (e *Engine) ConfirmTransfer(validator ids.ShortID, id state.TransferID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.validators.IsValidator(validator) {
		return fmt.Errorf("%w: %s", ErrUnauthorizedValidator, validator)
	}

	request, err := e.transfers.Get(id)
	if err != nil {
		return err
	}
	if request.ConfirmedBy(validator) {
		return fmt.Errorf("%w: %s", ErrAlreadyConfirmed, validator)
	}

	request.Confirmations = append(request.Confirmations, validator)
	if err := e.transfers.Put(request); err != nil {
		e.db.Abort()
		return err
	}
	if err := e.commit(); err != nil {
		return err
	}

	e.metrics.IncTransfersConfirmed()
	e.log.Info("transfer confirmed",
		log.Uint64("transferID", uint64(id)),
		log.Stringer("validator", validator),
		log.Int("numConfirmations", len(request.Confirmations)),
		log.Uint32("quorum", e.quorum),
	)
	e.sink(TransferConfirmed{ID: id, Validator: validator})
	return nil
}

// FinalizeTransfer removes the Pending transfer [id] and settles it, minting
// to the destination for inbound transfers and burning from the initiator
// for outbound ones. The removal and the settlement call are a single
// transactional unit: a settlement failure leaves the transfer Pending. A
// successful finalize is terminal, so a repeat call fails with
// [state.ErrTransferNotFound] and settlement happens at most once.
func (e *Engine) FinalizeTransfer(caller ids.ShortID, id state.TransferID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	request, err := e.transfers.Get(id)
	if err != nil {
		return err
	}
	if uint32(len(request.Confirmations)) < e.quorum {
		return fmt.Errorf("%w: have %d, need %d",
			ErrInsufficientConfirmations, len(request.Confirmations), e.quorum)
	}

	if _, err := e.transfers.Remove(id); err != nil {
		e.db.Abort()
		return err
	}

	if request.ToLedger {
		err = e.settler.Mint(request.Asset, request.Destination, request.Amount)
	} else {
		err = e.settler.Burn(request.Asset, request.From, request.Amount)
	}
	if err != nil {
		e.db.Abort()
		e.metrics.IncSettlementFailures()
		e.log.Warn("settlement failed, transfer remains pending",
			log.Uint64("transferID", uint64(id)),
			log.String("asset", string(request.Asset)),
			log.Err(err),
		)
		return fmt.Errorf("%w: %w", ErrSettlementFailed, err)
	}
	if err := e.commit(); err != nil {
		return err
	}

	e.metrics.IncTransfersFinalized()
	e.log.Info("transfer finalized",
		log.Uint64("transferID", uint64(id)),
		log.String("asset", string(request.Asset)),
		log.String("amount", request.Amount.Dec()),
		log.Stringer("caller", caller),
		log.Bool("toLedger", request.ToLedger),
	)
	e.sink(TransferFinalized{ID: id})
	return nil
}

// Quorum returns the configured confirmation threshold.
func (e *Engine) Quorum() uint32 {
	return e.quorum
}

// Asset returns the registered record for [id].
func (e *Engine) Asset(id state.AssetID) (*state.AssetRecord, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.assets.Lookup(id)
}

// Assets returns every registered asset.
func (e *Engine) Assets() ([]*state.AssetRecord, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.assets.Assets()
}

// Transfer returns the Pending transfer [id].
func (e *Engine) Transfer(id state.TransferID) (*state.TransferRequest, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transfers.Get(id)
}

// PendingTransfers returns all Pending transfers in id order.
func (e *Engine) PendingTransfers() ([]*state.TransferRequest, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transfers.Pending()
}

// NextTransferID returns the id the next initiated transfer will receive.
func (e *Engine) NextTransferID() (state.TransferID, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transfers.NextID()
}

func (e *Engine) commit() error {
	if err := e.db.Commit(); err != nil {
		e.db.Abort()
		return err
	}
	return nil
}
