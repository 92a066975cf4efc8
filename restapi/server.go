package restapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-openapi/loads"

	"github.com/bnb-chain/ledger-pruner/logging"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/restapi/operations"
	"github.com/bnb-chain/ledger-pruner/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	api        *operations.LedgerPrunerAPI
	httpServer *http.Server
}

// NewHandler serves the admin API described by the embedded swagger document: the pruning
// operations and the ledger reads.
func NewHandler(engine pruning.Engine, ledger service.Ledger) (*operations.LedgerPrunerAPI, http.Handler, error) {
	swaggerSpec, err := loads.Embedded(SwaggerJSON, FlatSwaggerJSON)
	if err != nil {
		return nil, nil, err
	}
	api := operations.NewLedgerPrunerAPI(swaggerSpec)
	handler := configureAPI(api, engine, ledger)
	if err = api.Validate(); err != nil {
		return nil, nil, err
	}
	return api, handler, nil
}

func NewServer(address string, engine pruning.Engine, ledger service.Ledger) (*Server, error) {
	api, handler, err := NewHandler(engine, ledger)
	if err != nil {
		return nil, err
	}
	return &Server{
		api: api,
		httpServer: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func (s *Server) Start() {
	go func() {
		logging.Logger.Infof("admin server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
			panic(err)
		}
	}()
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)
	s.api.ServerShutdown()
	return err
}
