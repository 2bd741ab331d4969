// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/pflag"

	"github.com/luxfi/bridge/config"
)

const (
	HTTPAddrKey  = "http-addr"
	QuorumKey    = "quorum"
	ValidatorKey = "validator"
	NoGenesisKey = "no-genesis-assets"
)

func AddFlags(flags *pflag.FlagSet) {
	defaults := config.Default()
	flags.String(HTTPAddrKey, defaults.HTTPAddr, "Listen address of the JSON-RPC server")
	flags.Uint32(QuorumKey, defaults.Quorum, "Distinct validator confirmations required to finalize a transfer")
	flags.StringSlice(ValidatorKey, nil, "Validator address allowed to confirm transfers (repeatable)")
	flags.Bool(NoGenesisKey, false, "Skip registering the stock genesis asset set")
}

func ParseFlags(flags *pflag.FlagSet, args []string) (config.Config, bool, error) {
	c := config.Default()
	if err := flags.Parse(args); err != nil {
		return c, false, err
	}

	var err error
	if c.HTTPAddr, err = flags.GetString(HTTPAddrKey); err != nil {
		return c, false, err
	}
	if c.Quorum, err = flags.GetUint32(QuorumKey); err != nil {
		return c, false, err
	}
	if c.Validators, err = flags.GetStringSlice(ValidatorKey); err != nil {
		return c, false, err
	}
	noGenesis, err := flags.GetBool(NoGenesisKey)
	if err != nil {
		return c, false, err
	}
	return c, noGenesis, c.Validate()
}
