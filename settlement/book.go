// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package settlement

import (
	"errors"

	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/ids"

	"github.com/luxfi/bridge/state"
)

var (
	_ Settler = (*Book)(nil)

	balancePrefix = []byte("balance")
)

// Book is a database-backed balance book implementing [Settler]. Balances
// are kept per asset per account as big-endian uint256 values.
type Book struct {
	db database.Database
}

func NewBook(db database.Database) *Book {
	return &Book{
		db: prefixdb.New(balancePrefix, db),
	}
}

func (b *Book) Mint(asset state.AssetID, to ids.ShortID, amount *uint256.Int) error {
	accountDB := b.accountDB(asset, to)
	balance, err := getBalance(accountDB)
	if err != nil {
		return err
	}

	updated, overflow := new(uint256.Int).AddOverflow(balance, amount)
	if overflow {
		return ErrBalanceOverflow
	}
	return accountDB.Put(balanceKey, updated.Bytes())
}

func (b *Book) Burn(asset state.AssetID, from ids.ShortID, amount *uint256.Int) error {
	accountDB := b.accountDB(asset, from)
	balance, err := getBalance(accountDB)
	if err != nil {
		return err
	}

	if balance.Lt(amount) {
		return ErrInsufficientBalance
	}
	updated := new(uint256.Int).Sub(balance, amount)
	if updated.IsZero() {
		return accountDB.Delete(balanceKey)
	}
	return accountDB.Put(balanceKey, updated.Bytes())
}

// Balance returns the bridged balance of [account] for [asset]. Absent
// entries read as zero.
func (b *Book) Balance(asset state.AssetID, account ids.ShortID) (*uint256.Int, error) {
	return getBalance(b.accountDB(asset, account))
}

var balanceKey = []byte("v")

func (b *Book) accountDB(asset state.AssetID, account ids.ShortID) database.Database {
	assetDB := prefixdb.New([]byte(asset), b.db)
	return prefixdb.New(account[:], assetDB)
}

func getBalance(db database.Database) (*uint256.Int, error) {
	bytes, err := db.Get(balanceKey)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return new(uint256.Int), nil
		}
		return nil, err
	}
	return new(uint256.Int).SetBytes(bytes), nil
}
