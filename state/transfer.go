// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/ids"
)

// MaxAmountBits bounds transfer amounts to the 128-bit range used by the
// bridged representations.
const MaxAmountBits = 128

var (
	ErrInvalidAmount     = errors.New("invalid transfer amount")
	ErrAssetNotSupported = errors.New("asset not supported by the bridge")
	ErrTransferNotFound  = errors.New("transfer not found")

	transferPrefix = []byte("transfer")
	counterPrefix  = []byte("counter")

	nextTransferIDKey = []byte("next_transfer_id")
)

// TransferID uniquely identifies a transfer request. Ids are assigned from a
// strictly increasing counter and are never reused, so the ledger forms a
// monotonic log even though finalized records are deleted.
type TransferID uint64

// TransferRequest is a pending cross-chain transfer. A request is Pending
// while it is present in the ledger; finalization removes it.
type TransferRequest struct {
	ID          TransferID   `json:"id"`
	From        ids.ShortID  `json:"from"`
	Asset       AssetID      `json:"asset"`
	Amount      *uint256.Int `json:"amount"`
	Destination ids.ShortID  `json:"destination"`
	// Confirmations holds the distinct validators that confirmed this
	// transfer. Membership is what matters; order is irrelevant.
	Confirmations []ids.ShortID `json:"confirmations"`
	// ToLedger is true for inbound transfers (lock on the source chain, mint
	// here) and false for outbound transfers (burn here, unlock on the
	// source chain).
	ToLedger bool `json:"toLedger"`
}

// ConfirmedBy reports whether [validator] has already confirmed this
// transfer.
func (t *TransferRequest) ConfirmedBy(validator ids.ShortID) bool {
	return slices.Contains(t.Confirmations, validator)
}

// transferRecord is the wire form of a TransferRequest. The id is the
// database key and the amount is stored big-endian.
type transferRecord struct {
	From          ids.ShortID   `json:"from"`
	Asset         string        `json:"asset"`
	Amount        []byte        `json:"amount"`
	Destination   ids.ShortID   `json:"destination"`
	Confirmations []ids.ShortID `json:"confirmations"`
	ToLedger      bool          `json:"toLedger"`
}

// TransferLedger owns all transfer request records. Only the bridge engine
// mutates it.
type TransferLedger struct {
	transfersDB database.Database
	counterDB   database.Database
	assets      *AssetRegistry
}

func NewTransferLedger(db database.Database, assets *AssetRegistry) *TransferLedger {
	return &TransferLedger{
		transfersDB: prefixdb.New(transferPrefix, db),
		counterDB:   prefixdb.New(counterPrefix, db),
		assets:      assets,
	}
}

// NextID returns the id the next created transfer will be assigned.
func (l *TransferLedger) NextID() (TransferID, error) {
	bytes, err := l.counterDB.Get(nextTransferIDKey)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return TransferID(binary.BigEndian.Uint64(bytes)), nil
}

// Create validates the request, allocates the next transfer id, and inserts
// a Pending record with an empty confirmation set. No id is consumed when
// validation fails.
func (l *TransferLedger) Create(
	from ids.ShortID,
	asset AssetID,
	amount *uint256.Int,
	destination ids.ShortID,
	toLedger bool,
) (TransferID, error) {
	if amount == nil || amount.IsZero() {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if amount.BitLen() > MaxAmountBits {
		return 0, fmt.Errorf("%w: amount exceeds %d bits", ErrInvalidAmount, MaxAmountBits)
	}

	supported, err := l.assets.Has(asset)
	if err != nil {
		return 0, err
	}
	if !supported {
		return 0, fmt.Errorf("%w: %q", ErrAssetNotSupported, asset)
	}

	id, err := l.NextID()
	if err != nil {
		return 0, err
	}

	counterBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(counterBytes, uint64(id)+1)
	if err := l.counterDB.Put(nextTransferIDKey, counterBytes); err != nil {
		return 0, err
	}

	request := &TransferRequest{
		ID:          id,
		From:        from,
		Asset:       asset,
		Amount:      amount,
		Destination: destination,
		ToLedger:    toLedger,
	}
	return id, l.Put(request)
}

// Get returns the Pending request with [id], or [ErrTransferNotFound] if it
// was never created or has already been finalized.
func (l *TransferLedger) Get(id TransferID) (*TransferRequest, error) {
	bytes, err := l.transfersDB.Get(transferKey(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrTransferNotFound, id)
		}
		return nil, err
	}
	return parseTransfer(id, bytes)
}

// Put writes [request] back to the ledger.
func (l *TransferLedger) Put(request *TransferRequest) error {
	record := &transferRecord{
		From:          request.From,
		Asset:         string(request.Asset),
		Amount:        request.Amount.Bytes(),
		Destination:   request.Destination,
		Confirmations: request.Confirmations,
		ToLedger:      request.ToLedger,
	}
	bytes, err := Codec.Marshal(CodecVersion, record)
	if err != nil {
		return err
	}
	return l.transfersDB.Put(transferKey(request.ID), bytes)
}

// Remove deletes and returns the request with [id]. Used only by finalize.
func (l *TransferLedger) Remove(id TransferID) (*TransferRequest, error) {
	request, err := l.Get(id)
	if err != nil {
		return nil, err
	}
	return request, l.transfersDB.Delete(transferKey(id))
}

// Pending returns all in-flight requests in id order.
func (l *TransferLedger) Pending() ([]*TransferRequest, error) {
	iter := l.transfersDB.NewIterator()
	defer iter.Release()

	var requests []*TransferRequest
	for iter.Next() {
		id := TransferID(binary.BigEndian.Uint64(iter.Key()))
		request, err := parseTransfer(id, iter.Value())
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, iter.Error()
}

func transferKey(id TransferID) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

func parseTransfer(id TransferID, bytes []byte) (*TransferRequest, error) {
	record := &transferRecord{}
	if _, err := Codec.Unmarshal(bytes, record); err != nil {
		return nil, err
	}
	return &TransferRequest{
		ID:            id,
		From:          record.From,
		Asset:         AssetID(record.Asset),
		Amount:        new(uint256.Int).SetBytes(record.Amount),
		Destination:   record.Destination,
		Confirmations: record.Confirmations,
		ToLedger:      record.ToLedger,
	}, nil
}
