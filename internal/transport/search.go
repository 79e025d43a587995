package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tstnetwork/tstnode/internal/service/search"
)

func (h *Handler) searchQuery(w http.ResponseWriter, r *http.Request) {
	result, err := h.search.Query(r.Context(), r.FormValue("q"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
		*search.Result
	}{true, result})
}

func (h *Handler) searchExtended(w http.ResponseWriter, r *http.Request) {
	result, err := h.search.Extended(r.Context(), r.FormValue("q"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
		*search.ExtendedResult
	}{true, result})
}

func (h *Handler) searchTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.search.ExtendedTransactions(r.Context(), r.FormValue("q"), mux.Vars(r)["type"], limit, offset)
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
