// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the bridge daemon configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/luxfi/ids"

	"github.com/luxfi/bridge/validators"
)

var (
	errZeroQuorum   = errors.New("quorum must be at least 1")
	errNoValidators = errors.New("at least one validator must be configured")
)

type Config struct {
	// HTTPAddr is the listen address of the JSON-RPC server.
	HTTPAddr string `json:"httpAddr"`

	// Quorum is the number of distinct validator confirmations required to
	// finalize a transfer. Fixed for the lifetime of the process;
	// governance-driven changes require a restart.
	Quorum uint32 `json:"quorum"`

	// Validators are the addresses allowed to confirm transfers.
	Validators []string `json:"validators"`
}

func Default() Config {
	return Config{
		HTTPAddr: ":9650",
		Quorum:   2,
	}
}

func (c *Config) Validate() error {
	if c.Quorum == 0 {
		return errZeroQuorum
	}
	if len(c.Validators) == 0 {
		return errNoValidators
	}
	_, err := c.ValidatorSet()
	return err
}

// ValidatorSet parses the configured validator addresses into a static
// authorization set.
func (c *Config) ValidatorSet() (*validators.StaticSet, error) {
	members := make([]ids.ShortID, len(c.Validators))
	for i, addr := range c.Validators {
		member, err := ids.ShortFromString(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid validator address %q: %w", addr, err)
		}
		members[i] = member
	}
	return validators.NewStaticSet(members...), nil
}
