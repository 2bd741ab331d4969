// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// bridged runs the cross-chain bridge transfer engine behind a JSON-RPC
// server. State lives in memory; the process is a reference host for the
// engine, not a durable deployment.
package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"github.com/spf13/cobra"

	"github.com/luxfi/bridge/api"
	"github.com/luxfi/bridge/engine"
	"github.com/luxfi/bridge/genesis"
	"github.com/luxfi/bridge/metrics"
	"github.com/luxfi/bridge/settlement"
)

func main() {
	command := &cobra.Command{
		Use:   "bridged",
		Short: "Runs the cross-chain bridge transfer engine",
		RunE:  runFunc,
	}
	AddFlags(command.Flags())

	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFunc(c *cobra.Command, args []string) error {
	cfg, noGenesis, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	logger := log.NewLogger("bridged")

	validatorSet, err := cfg.ValidatorSet()
	if err != nil {
		return err
	}

	registry := metric.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		return err
	}

	db := memdb.New()
	book := settlement.NewBook(db)

	eng, err := engine.New(engine.Config{
		Log:        logger,
		DB:         db,
		Settler:    book,
		Validators: validatorSet,
		Quorum:     cfg.Quorum,
		Metrics:    m,
	})
	if err != nil {
		return err
	}

	if !noGenesis {
		if err := eng.Bootstrap(genesis.Default()); err != nil {
			return err
		}
	}

	handler, err := api.NewService(logger, eng, m)
	if err != nil {
		return err
	}

	router := mux.NewRouter()
	router.Handle("/ext/bridge", handler)
	router.HandleFunc("/ext/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"healthy": true}`))
	})

	logger.Info("serving bridge API",
		log.String("addr", cfg.HTTPAddr),
		log.Int("quorum", int(cfg.Quorum)),
		log.Int("numValidators", validatorSet.Len()),
	)
	return http.ListenAndServe(cfg.HTTPAddr, router)
}
