// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"errors"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/luxfi/metric"
)

var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = noop{}
)

type Metrics interface {
	metric.APIInterceptor

	IncAssetsRegistered()
	IncTransfersInitiated()
	IncTransfersConfirmed()
	IncTransfersFinalized()
	IncSettlementFailures()
}

type metricsImpl struct {
	numAssetsRegistered,
	numTransfersInitiated,
	numTransfersConfirmed,
	numTransfersFinalized,
	numSettlementFailures metric.Counter

	metric.APIInterceptor
}

func (m *metricsImpl) IncAssetsRegistered() {
	m.numAssetsRegistered.Inc()
}

func (m *metricsImpl) IncTransfersInitiated() {
	m.numTransfersInitiated.Inc()
}

func (m *metricsImpl) IncTransfersConfirmed() {
	m.numTransfersConfirmed.Inc()
}

func (m *metricsImpl) IncTransfersFinalized() {
	m.numTransfersFinalized.Inc()
}

func (m *metricsImpl) IncSettlementFailures() {
	m.numSettlementFailures.Inc()
}

func New(registerer metric.Registerer) (Metrics, error) {
	registry, ok := registerer.(metric.Registry)
	if !ok {
		return nil, errors.New("registerer must implement metric.Registry")
	}

	m := &metricsImpl{}
	m.numAssetsRegistered = metric.NewCounter(metric.CounterOpts{
		Name: "assets_registered",
		Help: "Number of assets registered with the bridge",
	})
	m.numTransfersInitiated = metric.NewCounter(metric.CounterOpts{
		Name: "transfers_initiated",
		Help: "Number of transfer requests created",
	})
	m.numTransfersConfirmed = metric.NewCounter(metric.CounterOpts{
		Name: "transfers_confirmed",
		Help: "Number of validator confirmations accepted",
	})
	m.numTransfersFinalized = metric.NewCounter(metric.CounterOpts{
		Name: "transfers_finalized",
		Help: "Number of transfers finalized and settled",
	})
	m.numSettlementFailures = metric.NewCounter(metric.CounterOpts{
		Name: "settlement_failures",
		Help: "Number of finalizations aborted by a settlement failure",
	})

	apiRequestMetric, err := metric.NewAPIInterceptor(registry)
	if err != nil {
		return nil, err
	}
	m.APIInterceptor = apiRequestMetric
	return m, nil
}

// Noop discards all metrics. Used when no registry is supplied.
var Noop Metrics = noop{}

type noop struct{}

func (noop) IncAssetsRegistered()   {}
func (noop) IncTransfersInitiated() {}
func (noop) IncTransfersConfirmed() {}
func (noop) IncTransfersFinalized() {}
func (noop) IncSettlementFailures() {}

func (noop) InterceptRequest(i *rpc.RequestInfo) *http.Request {
	return i.Request
}

func (noop) AfterRequest(*rpc.RequestInfo) {}
