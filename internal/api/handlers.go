package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"bankmock/internal/ledger"
	"bankmock/internal/syncjob"
	"bankmock/internal/token"
)

// Handler owns the dependencies every endpoint consults. Each endpoint
// follows the same shape: authenticate if required, validate input, consult
// the ledger or sync controller, respond.
type Handler struct {
	store  *ledger.Store
	tokens *token.Service
	sync   *syncjob.Controller
	logger *zap.Logger
}

func NewHandler(store *ledger.Store, tokens *token.Service, sync *syncjob.Controller, logger *zap.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, sync: sync, logger: logger}
}

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Login issues a token for any non-empty id/password pair. The password is
// never checked against anything; missing credentials surface as 401, the
// same as an auth failure.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.ID == "" || req.Password == "" {
		writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	tok, err := h.tokens.Issue(req.ID)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		writeError(w, r, http.StatusGatewayTimeout, msgInternal)
		return
	}
	render.JSON(w, r, map[string]string{"token": tok})
}

// Me returns the full user record, balances included.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.store.User())
}

// StartSync schedules the background account sync and returns immediately.
func (h *Handler) StartSync(w http.ResponseWriter, r *http.Request) {
	h.sync.Start()
	w.WriteHeader(http.StatusOK)
}

// SyncProgress reports whether the most recently started sync has finished.
func (h *Handler) SyncProgress(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]bool{"hasFinished": h.sync.Finished()})
}

// GetAccount is the public lookup. Malformed ids are rejected before any
// lookup. A known id returns the account's public view; an unknown but
// UUID-shaped id returns a freshly fabricated view carrying that id, which
// is never persisted.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	if !ledger.ValidAccountNumber(accountID) {
		writeError(w, r, http.StatusNotFound, msgAccountNotFound)
		return
	}

	if acc, ok := h.store.FindAccount(accountID); ok {
		render.JSON(w, r, ledger.AccountView{
			Owner:         acc.Owner,
			Name:          acc.Name,
			Bank:          acc.Bank,
			AccountNumber: acc.AccountNumber,
		})
		return
	}
	render.JSON(w, r, ledger.SyntheticView(accountID))
}

type remitRequest struct {
	Amount int64  `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
	Msg    string `json:"msg"`
}

// Remit moves amount between two account numbers. A zero or missing amount
// counts as a missing field, mirroring the front-end contract. Both ends
// must be UUID-shaped; whether they resolve to known accounts is decided by
// the ledger.
func (h *Handler) Remit(w http.ResponseWriter, r *http.Request) {
	var req remitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if req.Amount == 0 || req.From == "" || req.To == "" {
		writeError(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if !ledger.ValidAccountNumber(req.From) || !ledger.ValidAccountNumber(req.To) {
		writeError(w, r, http.StatusNotFound, msgAccountNotFound)
		return
	}

	accounts, err := h.store.ApplyTransfer(req.From, req.To, req.Amount)
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientBalance) {
			writeError(w, r, http.StatusForbidden, msgInsufficientBalance)
			return
		}
		h.logger.Error("transfer failed", zap.Error(err))
		writeError(w, r, http.StatusGatewayTimeout, msgInternal)
		return
	}
	h.logger.Info("remit applied",
		zap.String("identity", Identity(r.Context())),
		zap.Int64("amount", req.Amount),
	)
	render.JSON(w, r, accounts)
}

// Health is a liveness probe for the dev server hosting the mock.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
