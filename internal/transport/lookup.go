package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) lookupAddresses(w http.ResponseWriter, r *http.Request) {
	addresses := splitList(mux.Vars(r)["addresses"])
	rows, err := h.addresses.Lookup(r.Context(), addresses)
	if err != nil {
		h.writeError(w, err)
		return
	}
	found := make(map[string]interface{}, len(rows))
	for i := range rows {
		found[rows[i].Address] = &rows[i]
	}
	writeOK(w, map[string]interface{}{
		"found":     len(rows),
		"notFound":  len(addresses) - len(rows),
		"addresses": found,
	})
}

func (h *Handler) lookupBlocks(w http.ResponseWriter, r *http.Request) {
	addresses := splitList(mux.Vars(r)["addresses"])
	orderBy, descending := orderParams(r)
	limit, offset := pagination(r)

	rows, total, err := h.blocks.Lookup(r.Context(), addresses, orderBy, descending, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count":  len(rows),
		"total":  total,
		"blocks": rows,
	})
}

func (h *Handler) lookupTransactions(w http.ResponseWriter, r *http.Request) {
	addresses := splitList(mux.Vars(r)["addresses"])
	orderBy, descending := orderParams(r)
	limit, offset := pagination(r)

	rows, total, err := h.transactions.Lookup(r.Context(), addresses, queryBool(r, "includeMined"), orderBy, descending, limit, offset)
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

func (h *Handler) lookupNames(w http.ResponseWriter, r *http.Request) {
	owners := splitList(mux.Vars(r)["addresses"])
	orderBy, descending := orderParams(r)
	limit, offset := pagination(r)

	rows, total, err := h.names.Lookup(r.Context(), owners, orderBy, descending, limit, offset)
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
