package handlers

import (
	"github.com/go-openapi/runtime/middleware"

	"github.com/bnb-chain/ledger-pruner/models"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/restapi/operations/admin"
	"github.com/bnb-chain/ledger-pruner/types"
)

func toPruningInfo(info *types.PruningInfo) *models.PruningInfo {
	res := &models.PruningInfo{
		LastSoftPrunedSubBlock: (*uint64)(info.LastSoftPrunedSubBlock),
		LastHardPrunedSubBlock: (*uint64)(info.LastHardPrunedSubBlock),
	}
	if info.LastSoftPrunedBatch != nil {
		n := uint32(*info.LastSoftPrunedBatch)
		res.LastSoftPrunedBatch = &n
	}
	if info.LastHardPrunedBatch != nil {
		n := uint32(*info.LastHardPrunedBatch)
		res.LastHardPrunedBatch = &n
	}
	return res
}

func toPruningStats(stats *types.PruningStats) *models.PruningStats {
	return &models.PruningStats{
		DeletedBatches:         stats.DeletedBatches,
		DeletedSubBlocks:       stats.DeletedSubBlocks,
		DeletedEvents:          stats.DeletedEvents,
		DeletedCrossDomainLogs: stats.DeletedCrossDomainLogs,
		DeletedStorageWrites:   stats.DeletedStorageWrites,
		ClearedTransactions:    stats.ClearedTransactions,
	}
}

func pruningInfoResponse(engine pruning.Engine, params admin.GetPruningInfoParams) *models.PruningInfoResponse {
	info, err := engine.GetPruningInfo(params.HTTPRequest.Context())
	code, message := Error(err)
	payload := &models.PruningInfoResponse{
		Code:    code,
		Message: message,
	}
	if err == nil {
		payload.Data = toPruningInfo(info)
	}
	return payload
}

func HandleGetPruningInfo(engine pruning.Engine) func(params admin.GetPruningInfoParams) middleware.Responder {
	return func(params admin.GetPruningInfoParams) middleware.Responder {
		payload := pruningInfoResponse(engine, params)
		if payload.Code != 0 {
			return admin.NewGetPruningInfoDefault(int(payload.Code)).WithPayload(payload)
		}
		return admin.NewGetPruningInfoOK().WithPayload(payload)
	}
}

// HandleSoftPrune moves the soft boundary and answers with the boundaries after the move.
func HandleSoftPrune(engine pruning.Engine) func(params admin.SoftPruneParams) middleware.Responder {
	return func(params admin.SoftPruneParams) middleware.Responder {
		ctx := params.HTTPRequest.Context()
		err := engine.SoftPruneBatchesRange(ctx, types.BatchNumber(*params.Body.Batch), types.SubBlockNumber(*params.Body.SubBlock))
		if err != nil {
			code, message := Error(err)
			return admin.NewSoftPruneDefault(int(code)).WithPayload(&models.PruningInfoResponse{Code: code, Message: message})
		}
		payload := pruningInfoResponse(engine, admin.GetPruningInfoParams{HTTPRequest: params.HTTPRequest})
		if payload.Code != 0 {
			return admin.NewSoftPruneDefault(int(payload.Code)).WithPayload(payload)
		}
		return admin.NewSoftPruneOK().WithPayload(payload)
	}
}

func HandleHardPrune(engine pruning.Engine) func(params admin.HardPruneParams) middleware.Responder {
	return func(params admin.HardPruneParams) middleware.Responder {
		stats, err := engine.HardPruneBatchesRange(params.HTTPRequest.Context(),
			types.BatchNumber(*params.Body.Batch), types.SubBlockNumber(*params.Body.SubBlock))
		code, message := Error(err)
		payload := &models.PruningStatsResponse{
			Code:    code,
			Message: message,
		}
		if err != nil {
			return admin.NewHardPruneDefault(int(code)).WithPayload(payload)
		}
		payload.Data = toPruningStats(stats)
		return admin.NewHardPruneOK().WithPayload(payload)
	}
}

func HandleClearTransactions(engine pruning.Engine) func(params admin.ClearTransactionsParams) middleware.Responder {
	return func(params admin.ClearTransactionsParams) middleware.Responder {
		affected, err := engine.ClearTransactionFields(params.HTTPRequest.Context(),
			types.SubBlockNumber(*params.Body.From), types.SubBlockNumber(*params.Body.To))
		code, message := Error(err)
		payload := &models.ClearTransactionsResponse{
			Code:    code,
			Message: message,
		}
		if err != nil {
			return admin.NewClearTransactionsDefault(int(code)).WithPayload(payload)
		}
		payload.Data = &models.ClearTransactionsResult{Affected: affected}
		return admin.NewClearTransactionsOK().WithPayload(payload)
	}
}
