package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.addresses.List(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count":     len(rows),
		"total":     total,
		"addresses": rows,
	})
}

func (h *Handler) richAddresses(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.addresses.Rich(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count":     len(rows),
		"total":     total,
		"addresses": rows,
	})
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	fetchNames := queryBool(r, "fetchNames")
	row, names, err := h.addresses.Get(r.Context(), mux.Vars(r)["address"], fetchNames)
	if err != nil {
		h.writeError(w, err)
		return
	}
	fields := map[string]interface{}{"address": row}
	if fetchNames {
		fields["names"] = names
	}
	writeOK(w, fields)
}

func (h *Handler) addressTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.transactions.ByAddress(r.Context(), mux.Vars(r)["address"], limit, offset)
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

func (h *Handler) addressNames(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.names.ByOwner(r.Context(), mux.Vars(r)["address"], limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count": len(rows),
		"total": total,
		"names": rows,
	})
}
