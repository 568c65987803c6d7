package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/HimTar/golang-transactions/internal/model"
	"github.com/HimTar/golang-transactions/internal/txid"
)

const maxBodyBytes = 1 << 20

// Service is the ledger as seen by the HTTP layer.
type Service interface {
	Put(id int64, tx model.Transaction) error
	Get(id int64) (model.Transaction, error)
	Sum(id int64) (float64, error)
	FindByType(typ string) []int64
	All() []model.Entry
	Len() int
}

// Handler translates HTTP requests into ledger calls.
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// GET handlers

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := txid.Decode(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	tx, err := h.svc.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newTransactionResponse(tx))
}

func (h *Handler) GetTransactionsByType(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.svc.FindByType(pathParam(r, "type")))
}

func (h *Handler) GetTransactionSum(w http.ResponseWriter, r *http.Request) {
	id, err := txid.Decode(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	sum, err := h.svc.Sum(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, SumResponse{Sum: sum})
}

func (h *Handler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.All()
	items := make([]TransactionListItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, TransactionListItem{
			ID:       e.ID,
			Amount:   e.Transaction.Amount,
			Type:     e.Transaction.Type,
			ParentID: e.Transaction.ParentID,
		})
	}
	writeJSON(w, r, http.StatusOK, items)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: "healthy", Transactions: h.svc.Len()})
}

// PUT handlers

func (h *Handler) PutTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := txid.Decode(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, r, &badRequestError{msg: "invalid JSON body"})
		return
	}
	if req.Amount == nil || req.Type == nil {
		writeError(w, r, &badRequestError{msg: "amount and type are required"})
		return
	}

	if err := h.svc.Put(id, req.toModel()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, StatusResponse{Status: "ok"})
}

// Fallbacks

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: "not found"})
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
}

// pathParam returns a URL parameter in decoded form. chi matches against the
// raw path when the request carried escapes such as %2F, leaving them in.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
