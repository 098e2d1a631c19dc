package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saferoads/incidentd/interfaces"
	"github.com/saferoads/incidentd/ledger"
)

var (
	relayAddr    = common.HexToAddress("0x8888888888888888888888888888888888888888")
	testReporter = common.HexToAddress("0x9999999999999999999999999999999999999999")
)

type fakeSubmitter struct {
	record *interfaces.LedgerRecord
	err    error
	gotCID string
}

func (f *fakeSubmitter) Submit(ctx context.Context, contentID string, session *interfaces.WalletSession, from common.Address) (*interfaces.LedgerRecord, error) {
	f.gotCID = contentID
	return f.record, f.err
}

type fakeReadModel struct {
	incident *interfaces.Incident
	summary  *ledger.RewardSummary
	err      error
}

func (f *fakeReadModel) Incident(ctx context.Context, id *big.Int) (*interfaces.Incident, error) {
	return f.incident, f.err
}

func (f *fakeReadModel) Rewards(ctx context.Context, reporter common.Address) (*ledger.RewardSummary, error) {
	return f.summary, f.err
}

func newTestServer(t *testing.T, submitter *fakeSubmitter, reader *fakeReadModel) http.Handler {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	handler := NewHandler(submitter, reader, relayAddr, log)
	srv, err := New(&HTTPServerConfig{
		ListenAddr: "127.0.0.1:0",
		Log:        log,
	}, handler)
	require.NoError(t, err)
	return srv.getRouter()
}

func TestReportIncident(t *testing.T) {
	submitter := &fakeSubmitter{record: &interfaces.LedgerRecord{
		ID:          big.NewInt(7),
		TxHash:      common.HexToHash("0xabc"),
		BlockNumber: 1234,
	}}
	router := newTestServer(t, submitter, &fakeReadModel{})

	body := bytes.NewBufferString(`{"pdfCID":"bafy123"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reportIncident", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp reportIncidentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "7", resp.IncidentID)
	assert.Equal(t, uint64(1234), resp.BlockNumber)
	assert.Equal(t, "bafy123", submitter.gotCID)
}

func TestReportIncidentRequiresCID(t *testing.T) {
	submitter := &fakeSubmitter{}
	router := newTestServer(t, submitter, &fakeReadModel{})

	for _, body := range []string{`{}`, `{"pdfCID":""}`, `not json`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reportIncident", bytes.NewBufferString(body)))
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)

		var resp reportIncidentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "pdfCID is required", resp.Error)
	}
	assert.Empty(t, submitter.gotCID)
}

func TestReportIncidentSubmitFailure(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("insufficient funds")}
	router := newTestServer(t, submitter, &fakeReadModel{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reportIncident", bytes.NewBufferString(`{"pdfCID":"bafy123"}`)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp reportIncidentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "insufficient funds")
}

func TestHealth(t *testing.T) {
	router := newTestServer(t, &fakeSubmitter{}, &fakeReadModel{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, relayAddr.Hex(), resp.RelayAddress)
}

func TestGetIncident(t *testing.T) {
	reader := &fakeReadModel{incident: &interfaces.Incident{
		ID:          big.NewInt(3),
		Description: "https://w3s.link/ipfs/bafy123",
		Reporter:    testReporter,
		Timestamp:   time.Unix(1700000000, 0).UTC(),
		Verified:    true,
	}}
	router := newTestServer(t, &fakeSubmitter{}, reader)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/incident/3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp incidentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "3", resp.ID)
	assert.True(t, resp.Verified)
	assert.Equal(t, testReporter.Hex(), resp.Reporter)
}

func TestGetIncidentInvalidID(t *testing.T) {
	router := newTestServer(t, &fakeSubmitter{}, &fakeReadModel{})

	for _, id := range []string{"abc", "-1", "0"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/incident/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
	}
}

func TestRewards(t *testing.T) {
	reader := &fakeReadModel{summary: &ledger.RewardSummary{
		Reported: 3, Verified: 2, Claimed: 1, Pending: big.NewInt(1e15),
	}}
	router := newTestServer(t, &fakeSubmitter{}, reader)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rewards/"+testReporter.Hex(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp rewardsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Reported)
	assert.Equal(t, "1000000000000000", resp.PendingWei)
}

func TestRewardsInvalidAddress(t *testing.T) {
	router := newTestServer(t, &fakeSubmitter{}, &fakeReadModel{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rewards/nothex", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReadinessLifecycle(t *testing.T) {
	router := newTestServer(t, &fakeSubmitter{}, &fakeReadModel{})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	assert.Equal(t, http.StatusOK, get("/livez").Code)
	assert.Equal(t, http.StatusOK, get("/readyz").Code)

	assert.Equal(t, http.StatusOK, get("/drain").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get("/readyz").Code)

	assert.Equal(t, http.StatusOK, get("/undrain").Code)
	assert.Equal(t, http.StatusOK, get("/readyz").Code)
}
