package handlers

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-openapi/runtime/middleware"

	"github.com/bnb-chain/ledger-pruner/models"
	"github.com/bnb-chain/ledger-pruner/restapi/operations/ledger"
	"github.com/bnb-chain/ledger-pruner/service"
	"github.com/bnb-chain/ledger-pruner/types"
	"github.com/bnb-chain/ledger-pruner/util"
)

func parseHash(s string) (common.Hash, error) {
	h, ok := util.StringToHash(s)
	if !ok {
		return common.Hash{}, service.BadRequestErr.Enrich("invalid hash " + s)
	}
	return h, nil
}

func HandleGetBatch(svc service.Ledger) func(params ledger.GetBatchParams) middleware.Responder {
	return func(params ledger.GetBatchParams) middleware.Responder {
		batch, err := svc.GetBatch(types.BatchNumber(params.Number))
		code, message := Error(err)
		payload := &models.BatchResponse{
			Code:    code,
			Message: message,
			Data:    batch,
		}
		if err != nil {
			return ledger.NewGetBatchDefault(int(code)).WithPayload(payload)
		}
		return ledger.NewGetBatchOK().WithPayload(payload)
	}
}

func HandleGetSubBlock(svc service.Ledger) func(params ledger.GetSubBlockParams) middleware.Responder {
	return func(params ledger.GetSubBlockParams) middleware.Responder {
		subBlock, err := svc.GetSubBlock(types.SubBlockNumber(params.Number))
		code, message := Error(err)
		payload := &models.SubBlockResponse{
			Code:    code,
			Message: message,
			Data:    subBlock,
		}
		if err != nil {
			return ledger.NewGetSubBlockDefault(int(code)).WithPayload(payload)
		}
		return ledger.NewGetSubBlockOK().WithPayload(payload)
	}
}

func HandleGetTransaction(svc service.Ledger) func(params ledger.GetTransactionParams) middleware.Responder {
	return func(params ledger.GetTransactionParams) middleware.Responder {
		var details *models.TransactionDetails
		hash, err := parseHash(params.Hash)
		if err == nil {
			details, err = svc.GetTransactionDetails(hash)
		}
		code, message := Error(err)
		payload := &models.TransactionResponse{
			Code:    code,
			Message: message,
			Data:    details,
		}
		if err != nil {
			return ledger.NewGetTransactionDefault(int(code)).WithPayload(payload)
		}
		return ledger.NewGetTransactionOK().WithPayload(payload)
	}
}

func HandleGetTransactionReceipt(svc service.Ledger) func(params ledger.GetTransactionReceiptParams) middleware.Responder {
	return func(params ledger.GetTransactionReceiptParams) middleware.Responder {
		var receipt *models.Receipt
		hash, err := parseHash(params.Hash)
		if err == nil {
			var receipts []*models.Receipt
			if receipts, err = svc.GetTransactionReceipts([]common.Hash{hash}); err == nil {
				if len(receipts) == 0 {
					err = service.NotFoundErr.Enrich("receipt " + hash.Hex())
				} else {
					receipt = receipts[0]
				}
			}
		}
		code, message := Error(err)
		payload := &models.ReceiptResponse{
			Code:    code,
			Message: message,
			Data:    receipt,
		}
		if err != nil {
			return ledger.NewGetTransactionReceiptDefault(int(code)).WithPayload(payload)
		}
		return ledger.NewGetTransactionReceiptOK().WithPayload(payload)
	}
}

// HandleGetStorageValue serves the current value of a key, or the value as of the
// sub-block given by the "at" query parameter.
func HandleGetStorageValue(svc service.Ledger) func(params ledger.GetStorageValueParams) middleware.Responder {
	return func(params ledger.GetStorageValueParams) middleware.Responder {
		var value *models.StorageValue
		hashedKey, err := parseHash(params.HashedKey)
		if err == nil {
			value, err = svc.GetStorageValue(hashedKey, (*types.SubBlockNumber)(params.At))
		}
		code, message := Error(err)
		payload := &models.StorageValueResponse{
			Code:    code,
			Message: message,
			Data:    value,
		}
		if err != nil {
			return ledger.NewGetStorageValueDefault(int(code)).WithPayload(payload)
		}
		return ledger.NewGetStorageValueOK().WithPayload(payload)
	}
}
