package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/ledger-pruner/cache"
	"github.com/bnb-chain/ledger-pruner/db"
	"github.com/bnb-chain/ledger-pruner/models"
	"github.com/bnb-chain/ledger-pruner/pruning"
	"github.com/bnb-chain/ledger-pruner/service"
	"github.com/bnb-chain/ledger-pruner/testutil"
	"github.com/bnb-chain/ledger-pruner/types"
)

type envelope struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	router http.Handler
	dao    db.LedgerDao
}

func newTestServer(t *testing.T) *testServer {
	ledgerDB := testutil.NewTestDB(t)
	dao := db.NewLedgerSvcDB(ledgerDB)
	headers, err := cache.NewLocalCache(16)
	require.NoError(t, err)
	_, router, err := NewHandler(pruning.NewPruning(ledgerDB), service.NewLedgerService(dao, headers))
	require.NoError(t, err)
	return &testServer{t: t, router: router, dao: dao}
}

func (s *testServer) do(method, path string, body interface{}) (int, envelope) {
	var req *http.Request
	if body != nil {
		bz, err := json.Marshal(body)
		require.NoError(s.t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(bz))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var resp envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func TestPruningRoutes(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertRealisticBatches(t, s.dao, 10)

	status, resp := s.do(http.MethodGet, "/pruning/info", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, resp.Code)
	assert.JSONEq(t, `{}`, string(resp.Data))

	status, resp = s.do(http.MethodPost, "/pruning/soft", map[string]uint64{"batch": 5, "sub_block": 11})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"last_soft_pruned_batch":5,"last_soft_pruned_sub_block":11}`, string(resp.Data))

	status, resp = s.do(http.MethodPost, "/pruning/hard", map[string]uint64{"batch": 5, "sub_block": 11})
	require.Equal(t, http.StatusOK, status)
	var stats models.PruningStats
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.EqualValues(t, 6, stats.DeletedBatches)
	assert.EqualValues(t, 12, stats.DeletedSubBlocks)

	status, resp = s.do(http.MethodGet, "/pruning/info", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"last_soft_pruned_batch":5,"last_soft_pruned_sub_block":11,"last_hard_pruned_batch":5,"last_hard_pruned_sub_block":11}`, string(resp.Data))

	// hard prune ahead of the soft boundary
	status, resp = s.do(http.MethodPost, "/pruning/hard", map[string]uint64{"batch": 6, "sub_block": 13})
	assert.Equal(t, http.StatusConflict, status)
	assert.EqualValues(t, service.InvalidBoundErr.Code, resp.Code)
	assert.Empty(t, resp.Data)
}

func TestPruneRequestValidation(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertRealisticBatches(t, s.dao, 4)

	status, resp := s.do(http.MethodPost, "/pruning/soft", map[string]uint64{"batch": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, resp.Message, "sub_block")

	status, resp = s.do(http.MethodPost, "/pruning/hard", map[string]uint64{"sub_block": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, resp.Message, "batch")

	status, resp = s.do(http.MethodPost, "/pruning/clear_transactions", map[string]uint64{"from": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, resp.Message, "to")

	status, _ = s.do(http.MethodPost, "/pruning/soft", map[string]string{"batch": "x", "sub_block": "1"})
	assert.Equal(t, http.StatusBadRequest, status)

	// nothing moved
	status, resp = s.do(http.MethodGet, "/pruning/info", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, string(resp.Data))
}

func TestClearTransactionsRoute(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertRealisticBatches(t, s.dao, 2)
	hash := testutil.InsertExecutedTx(t, s.dao, 1, 2)

	status, resp := s.do(http.MethodPost, "/pruning/clear_transactions", map[string]uint64{"from": 0, "to": 3})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"affected":1}`, string(resp.Data))

	// already scrubbed rows are skipped
	status, resp = s.do(http.MethodPost, "/pruning/clear_transactions", map[string]uint64{"from": 0, "to": 3})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"affected":0}`, string(resp.Data))

	status, _ = s.do(http.MethodPost, "/pruning/clear_transactions", map[string]uint64{"from": 3, "to": 0})
	assert.Equal(t, http.StatusConflict, status)

	// scrubbed transactions are no longer served
	status, resp = s.do(http.MethodGet, "/transactions/"+hash, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.EqualValues(t, service.NotFoundErr.Code, resp.Code)
}

func TestLedgerRoutes(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertRealisticBatches(t, s.dao, 4)

	status, resp := s.do(http.MethodGet, "/batches/2", nil)
	require.Equal(t, http.StatusOK, status)
	var batch models.Batch
	require.NoError(t, json.Unmarshal(resp.Data, &batch))
	assert.EqualValues(t, 2, batch.Number)
	assert.False(t, batch.Deprecated)
	assert.Equal(t, testutil.Hash(2).Hex(), batch.Hash)

	status, _ = s.do(http.MethodGet, "/batches/99", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodGet, "/batches/x", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = s.do(http.MethodGet, "/transactions/0xzz", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	s.do(http.MethodPost, "/pruning/soft", map[string]uint64{"batch": 1, "sub_block": 3})
	s.do(http.MethodPost, "/pruning/hard", map[string]uint64{"batch": 1, "sub_block": 3})

	status, resp = s.do(http.MethodGet, "/sub_blocks/3", nil)
	assert.Equal(t, http.StatusGone, status)
	assert.EqualValues(t, service.PrunedErr.Code, resp.Code)

	status, resp = s.do(http.MethodGet, "/sub_blocks/4", nil)
	require.Equal(t, http.StatusOK, status)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &fields))
	assert.ElementsMatch(t, []string{"number", "batch_number", "hash", "timestamp", "tx_count", "deprecated"}, keys(fields))
}

func TestReceiptRoute(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertRealisticBatches(t, s.dao, 2)
	hash := testutil.InsertExecutedTx(t, s.dao, 7, 1)

	status, resp := s.do(http.MethodGet, "/transactions/"+hash+"/receipt", nil)
	require.Equal(t, http.StatusOK, status)
	var receipt models.Receipt
	require.NoError(t, json.Unmarshal(resp.Data, &receipt))
	assert.EqualValues(t, 1, receipt.SubBlockNumber)
	assert.EqualValues(t, db.Executed, receipt.Status)
	assert.Empty(t, receipt.Events)

	status, _ = s.do(http.MethodGet, "/transactions/"+testutil.Hash(99).Hex()+"/receipt", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStorageRoute(t *testing.T) {
	s := newTestServer(t)
	testutil.InsertRealisticBatches(t, s.dao, 3)
	key := testutil.StorageLog(1, 0).Key
	require.NoError(t, s.dao.InsertStorageLogs(1, "", []types.StorageLog{testutil.StorageLog(1, 1)}))
	require.NoError(t, s.dao.InsertStorageLogs(4, "", []types.StorageLog{testutil.StorageLog(1, 2)}))

	status, resp := s.do(http.MethodGet, "/storage/"+key.HashedKey().Hex(), nil)
	require.Equal(t, http.StatusOK, status)
	var value models.StorageValue
	require.NoError(t, json.Unmarshal(resp.Data, &value))
	assert.EqualValues(t, 4, value.SubBlockNumber)
	assert.Equal(t, key.HashedKey().Hex(), value.HashedKey)

	status, resp = s.do(http.MethodGet, "/storage/"+key.HashedKey().Hex()+"?at=3", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &value))
	assert.EqualValues(t, 1, value.SubBlockNumber)

	status, _ = s.do(http.MethodGet, "/storage/"+key.HashedKey().Hex()+"?at=x", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func keys(m map[string]interface{}) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	return res
}
