package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tstnetwork/tstnode/internal/apierr"
)

func (h *Handler) listBlocks(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.blocks.List(r.Context(), limit, offset, queryBool(r, "asc"))
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

func (h *Handler) getBlock(w http.ResponseWriter, r *http.Request) {
	// The route regex admits digit strings past the uint64 range.
	height, err := strconv.ParseUint(mux.Vars(r)["height"], 10, 64)
	if err != nil {
		h.writeError(w, apierr.InvalidParameter("height"))
		return
	}
	row, err := h.blocks.Get(r.Context(), height)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"block": row})
}

func (h *Handler) lastBlock(w http.ResponseWriter, r *http.Request) {
	row, err := h.blocks.Last(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"block": row})
}

func (h *Handler) lowestBlock(w http.ResponseWriter, r *http.Request) {
	row, err := h.blocks.Lowest(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"block": row})
}

func (h *Handler) baseValue(w http.ResponseWriter, r *http.Request) {
	value, err := h.blocks.NextBaseValue(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"base_value": value})
}

func (h *Handler) submitBlock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Address string `json:"address"`
		Nonce   string `json:"nonce"`
	}
	decodeBody(r, &body)
	address := formValue(r, body.Address, "address")
	nonce := formValue(r, body.Nonce, "nonce")

	row, work, err := h.blocks.Submit(r.Context(), requestMeta(r), address, []byte(nonce))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"block":   row,
		"address": row.Address,
		"work":    work,
	})
}
