// This file is safe to edit. Once it exists it will not be overwritten

package restapi

import (
	"net/http"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"

	"github.com/bnb-chain/ledger-pruner/logging"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/restapi/handlers"
	"github.com/bnb-chain/ledger-pruner/restapi/operations"
	"github.com/bnb-chain/ledger-pruner/restapi/operations/admin"
	"github.com/bnb-chain/ledger-pruner/restapi/operations/ledger"
	"github.com/bnb-chain/ledger-pruner/service"
)

//go:generate swagger generate server --target .. --name LedgerPruner --spec ../swagger.yaml --principal interface{} --exclude-main

func configureAPI(api *operations.LedgerPrunerAPI, engine pruning.Engine, ledgerSvc service.Ledger) http.Handler {
	// configure the api here
	api.ServeError = errors.ServeError

	api.Logger = logging.Logger.Infof

	api.JSONConsumer = runtime.JSONConsumer()

	api.JSONProducer = runtime.JSONProducer()

	api.AdminGetPruningInfoHandler = admin.GetPruningInfoHandlerFunc(handlers.HandleGetPruningInfo(engine))
	api.AdminSoftPruneHandler = admin.SoftPruneHandlerFunc(handlers.HandleSoftPrune(engine))
	api.AdminHardPruneHandler = admin.HardPruneHandlerFunc(handlers.HandleHardPrune(engine))
	api.AdminClearTransactionsHandler = admin.ClearTransactionsHandlerFunc(handlers.HandleClearTransactions(engine))

	api.LedgerGetBatchHandler = ledger.GetBatchHandlerFunc(handlers.HandleGetBatch(ledgerSvc))
	api.LedgerGetSubBlockHandler = ledger.GetSubBlockHandlerFunc(handlers.HandleGetSubBlock(ledgerSvc))
	api.LedgerGetTransactionHandler = ledger.GetTransactionHandlerFunc(handlers.HandleGetTransaction(ledgerSvc))
	api.LedgerGetTransactionReceiptHandler = ledger.GetTransactionReceiptHandlerFunc(handlers.HandleGetTransactionReceipt(ledgerSvc))
	api.LedgerGetStorageValueHandler = ledger.GetStorageValueHandlerFunc(handlers.HandleGetStorageValue(ledgerSvc))

	api.ServerShutdown = func() {}

	return setupGlobalMiddleware(api.Serve(setupMiddlewares))
}

// The middleware configuration is for the handler executors. These do not apply to the swagger.json document.
// The middleware executes after routing but before authentication, binding and validation.
func setupMiddlewares(handler http.Handler) http.Handler {
	return handler
}

// The middleware configuration happens before anything, this middleware also applies to serving the swagger.json document.
// So this is a good place to plug in a panic handling middleware, logging and metrics.
func setupGlobalMiddleware(handler http.Handler) http.Handler {
	return handlers.Logged(handler)
}
