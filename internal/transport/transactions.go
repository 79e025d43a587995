package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tstnetwork/tstnode/internal/apierr"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.transactions.List(r.Context(), limit, offset, true)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count":        len(rows),
		"total":        total,
		"transactions": rows,
	})
}

func (h *Handler) latestTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.transactions.List(r.Context(), limit, offset, false)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count":        len(rows),
		"total":        total,
		"transactions": rows,
	})
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	// The route regex admits digit strings past the uint64 range.
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, apierr.InvalidParameter("id"))
		return
	}
	row, err := h.transactions.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"transaction": row})
}

func (h *Handler) pushTransaction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Privatekey string  `json:"privatekey"`
		To         string  `json:"to"`
		Amount     uint64  `json:"amount"`
		Metadata   *string `json:"metadata"`
	}
	decodeBody(r, &body)
	privatekey := formValue(r, body.Privatekey, "privatekey")
	to := formValue(r, body.To, "to")
	amount := formUint(r, body.Amount, "amount")
	metadata := body.Metadata
	if metadata == nil {
		if v := r.FormValue("metadata"); v != "" {
			metadata = &v
		}
	}

	row, err := h.transactions.Push(r.Context(), requestMeta(r), privatekey, to, amount, metadata)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"transaction": row})
}
