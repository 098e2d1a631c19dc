package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"github.com/saferoads/incidentd/interfaces"
	"github.com/saferoads/incidentd/ledger"
)

// ledgerWriter submits content ids on behalf of clients. Satisfied by
// ledger.Submitter with a keyed signer.
type ledgerWriter interface {
	Submit(ctx context.Context, contentID string, session *interfaces.WalletSession, from common.Address) (*interfaces.LedgerRecord, error)
}

// ledgerReadModel serves incident lookups. Satisfied by ledger.Reader.
type ledgerReadModel interface {
	Incident(ctx context.Context, id *big.Int) (*interfaces.Incident, error)
	Rewards(ctx context.Context, reporter common.Address) (*ledger.RewardSummary, error)
}

// Handler implements the relay API. The relay holds its own funded key and
// submits reports for clients that cannot pay gas themselves.
type Handler struct {
	log       *slog.Logger
	submitter ledgerWriter
	reader    ledgerReadModel
	relayAddr common.Address
}

func NewHandler(submitter ledgerWriter, reader ledgerReadModel, relayAddr common.Address, log *slog.Logger) *Handler {
	return &Handler{
		log:       log,
		submitter: submitter,
		reader:    reader,
		relayAddr: relayAddr,
	}
}

type reportIncidentRequest struct {
	PDFCID string `json:"pdfCID"`
}

type reportIncidentResponse struct {
	Success     bool   `json:"success"`
	TxHash      string `json:"txHash,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	IncidentID  string `json:"incidentId,omitempty"`
	Error       string `json:"error,omitempty"`
}

// HandleReportIncident submits a previously uploaded report to the incident
// contract using the relay's key.
func (h *Handler) HandleReportIncident(w http.ResponseWriter, r *http.Request) {
	var req reportIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PDFCID == "" {
		h.log.Debug("Rejecting report request without pdfCID")
		writeJSON(w, http.StatusBadRequest, reportIncidentResponse{Success: false, Error: "pdfCID is required"})
		return
	}

	h.log.Info("Relaying incident report", slog.String("cid", req.PDFCID))

	record, err := h.submitter.Submit(r.Context(), req.PDFCID, nil, h.relayAddr)
	if err != nil {
		h.log.Error("Relayed submission failed", slog.String("cid", req.PDFCID), slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, reportIncidentResponse{Success: false, Error: err.Error()})
		return
	}

	resp := reportIncidentResponse{
		Success:     true,
		TxHash:      record.TxHash.Hex(),
		BlockNumber: record.BlockNumber,
	}
	if record.ID != nil {
		resp.IncidentID = record.ID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	RelayAddress string `json:"relayAddress"`
}

// HandleHealth reports relay liveness and the submitting account.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "OK",
		Message:      "Relay is running",
		RelayAddress: h.relayAddr.Hex(),
	})
}

type incidentResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Reporter    string `json:"reporter"`
	Timestamp   string `json:"timestamp"`
	Verified    bool   `json:"verified"`
}

// HandleGetIncident serves a single incident by id.
func (h *Handler) HandleGetIncident(w http.ResponseWriter, r *http.Request) {
	id, ok := new(big.Int).SetString(chi.URLParam(r, "id"), 10)
	if !ok || id.Sign() <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid incident id"})
		return
	}

	incident, err := h.reader.Incident(r.Context(), id)
	if err != nil {
		h.log.Error("Incident lookup failed", slog.String("id", id.String()), slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "incident lookup failed"})
		return
	}

	writeJSON(w, http.StatusOK, incidentResponse{
		ID:          incident.ID.String(),
		Description: incident.Description,
		Reporter:    incident.Reporter.Hex(),
		Timestamp:   incident.Timestamp.Format(time.RFC3339),
		Verified:    incident.Verified,
	})
}

type rewardsResponse struct {
	Reported   int    `json:"reported"`
	Verified   int    `json:"verified"`
	Claimed    int    `json:"claimed"`
	PendingWei string `json:"pendingWei"`
}

// HandleRewards serves a reporter's reward summary.
func (h *Handler) HandleRewards(w http.ResponseWriter, r *http.Request) {
	addr := chi.URLParam(r, "address")
	if !common.IsHexAddress(addr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid address"})
		return
	}

	summary, err := h.reader.Rewards(r.Context(), common.HexToAddress(addr))
	if err != nil {
		h.log.Error("Rewards lookup failed", slog.String("address", addr), slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "rewards lookup failed"})
		return
	}

	writeJSON(w, http.StatusOK, rewardsResponse{
		Reported:   summary.Reported,
		Verified:   summary.Verified,
		Claimed:    summary.Claimed,
		PendingWei: summary.Pending.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
