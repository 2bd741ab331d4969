// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api exposes the bridge operations over JSON-RPC. The transport
// does not authenticate callers; the host in front of it does, so every
// mutating method names the acting address explicitly.
package api

import (
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/holiman/uint256"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/utils/json"

	"github.com/luxfi/bridge/engine"
	"github.com/luxfi/bridge/metrics"
	"github.com/luxfi/bridge/state"
)

// Service is the bridge JSON-RPC service.
type Service struct {
	log    log.Logger
	engine *engine.Engine
}

// NewService returns an http.Handler serving the bridge API under the
// "bridge" namespace.
func NewService(logger log.Logger, eng *engine.Engine, m metrics.Metrics) (http.Handler, error) {
	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	server.RegisterInterceptFunc(m.InterceptRequest)
	server.RegisterAfterFunc(m.AfterRequest)
	return server, server.RegisterService(
		&Service{
			log:    logger,
			engine: eng,
		},
		"bridge",
	)
}

type EmptyReply struct{}

type RegisterAssetArgs struct {
	From        string `json:"from"`
	AssetID     string `json:"assetID"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	OriginChain string `json:"originChain"`
}

func (s *Service) RegisterAsset(_ *http.Request, args *RegisterAssetArgs, _ *EmptyReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "registerAsset"),
	)

	caller, err := ids.ShortFromString(args.From)
	if err != nil {
		return err
	}
	return s.engine.RegisterAsset(caller, state.AssetID(args.AssetID), state.AssetMetadata{
		Name:        args.Name,
		Symbol:      args.Symbol,
		Decimals:    args.Decimals,
		OriginChain: args.OriginChain,
	})
}

type InitiateTransferArgs struct {
	From        string `json:"from"`
	AssetID     string `json:"assetID"`
	Amount      string `json:"amount"`
	Destination string `json:"destination"`
	ToLedger    bool   `json:"toLedger"`
}

type InitiateTransferReply struct {
	TransferID json.Uint64 `json:"transferID"`
}

func (s *Service) InitiateTransfer(_ *http.Request, args *InitiateTransferArgs, reply *InitiateTransferReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "initiateTransfer"),
	)

	caller, err := ids.ShortFromString(args.From)
	if err != nil {
		return err
	}
	destination, err := ids.ShortFromString(args.Destination)
	if err != nil {
		return err
	}
	amount, err := uint256.FromDecimal(args.Amount)
	if err != nil {
		return err
	}

	id, err := s.engine.InitiateTransfer(caller, state.AssetID(args.AssetID), amount, destination, args.ToLedger)
	if err != nil {
		return err
	}
	reply.TransferID = json.Uint64(id)
	return nil
}

type ConfirmTransferArgs struct {
	Validator  string      `json:"validator"`
	TransferID json.Uint64 `json:"transferID"`
}

func (s *Service) ConfirmTransfer(_ *http.Request, args *ConfirmTransferArgs, _ *EmptyReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "confirmTransfer"),
	)

	validator, err := ids.ShortFromString(args.Validator)
	if err != nil {
		return err
	}
	return s.engine.ConfirmTransfer(validator, state.TransferID(args.TransferID))
}

type FinalizeTransferArgs struct {
	From       string      `json:"from"`
	TransferID json.Uint64 `json:"transferID"`
}

func (s *Service) FinalizeTransfer(_ *http.Request, args *FinalizeTransferArgs, _ *EmptyReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "finalizeTransfer"),
	)

	caller, err := ids.ShortFromString(args.From)
	if err != nil {
		return err
	}
	return s.engine.FinalizeTransfer(caller, state.TransferID(args.TransferID))
}

type GetTransferArgs struct {
	TransferID json.Uint64 `json:"transferID"`
}

type TransferReply struct {
	TransferID    json.Uint64 `json:"transferID"`
	From          string      `json:"from"`
	AssetID       string      `json:"assetID"`
	Amount        string      `json:"amount"`
	Destination   string      `json:"destination"`
	Confirmations []string    `json:"confirmations"`
	ToLedger      bool        `json:"toLedger"`
}

func (s *Service) GetTransfer(_ *http.Request, args *GetTransferArgs, reply *TransferReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "getTransfer"),
	)

	request, err := s.engine.Transfer(state.TransferID(args.TransferID))
	if err != nil {
		return err
	}
	*reply = transferReply(request)
	return nil
}

type ListTransfersReply struct {
	Transfers []TransferReply `json:"transfers"`
}

func (s *Service) ListTransfers(_ *http.Request, _ *struct{}, reply *ListTransfersReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "listTransfers"),
	)

	pending, err := s.engine.PendingTransfers()
	if err != nil {
		return err
	}
	reply.Transfers = make([]TransferReply, len(pending))
	for i, request := range pending {
		reply.Transfers[i] = transferReply(request)
	}
	return nil
}

type GetAssetArgs struct {
	AssetID string `json:"assetID"`
}

type AssetReply struct {
	AssetID     string `json:"assetID"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	OriginChain string `json:"originChain"`
}

func (s *Service) GetAsset(_ *http.Request, args *GetAssetArgs, reply *AssetReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "getAsset"),
	)

	record, err := s.engine.Asset(state.AssetID(args.AssetID))
	if err != nil {
		return err
	}
	*reply = assetReply(record)
	return nil
}

type ListAssetsReply struct {
	Assets []AssetReply `json:"assets"`
}

func (s *Service) ListAssets(_ *http.Request, _ *struct{}, reply *ListAssetsReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "listAssets"),
	)

	records, err := s.engine.Assets()
	if err != nil {
		return err
	}
	reply.Assets = make([]AssetReply, len(records))
	for i, record := range records {
		reply.Assets[i] = assetReply(record)
	}
	return nil
}

type NextTransferIDReply struct {
	TransferID json.Uint64 `json:"transferID"`
}

func (s *Service) NextTransferID(_ *http.Request, _ *struct{}, reply *NextTransferIDReply) error {
	s.log.Debug("API called",
		log.String("service", "bridge"),
		log.String("method", "nextTransferID"),
	)

	id, err := s.engine.NextTransferID()
	if err != nil {
		return err
	}
	reply.TransferID = json.Uint64(id)
	return nil
}

func transferReply(request *state.TransferRequest) TransferReply {
	confirmations := make([]string, len(request.Confirmations))
	for i, validator := range request.Confirmations {
		confirmations[i] = validator.String()
	}
	return TransferReply{
		TransferID:    json.Uint64(request.ID),
		From:          request.From.String(),
		AssetID:       string(request.Asset),
		Amount:        request.Amount.Dec(),
		Destination:   request.Destination.String(),
		Confirmations: confirmations,
		ToLedger:      request.ToLedger,
	}
}

func assetReply(record *state.AssetRecord) AssetReply {
	return AssetReply{
		AssetID:     string(record.ID),
		Name:        record.Name,
		Symbol:      record.Symbol,
		Decimals:    record.Decimals,
		OriginChain: record.OriginChain,
	}
}
