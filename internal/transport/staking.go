package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) listStakes(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.staking.List(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count":  len(rows),
		"total":  total,
		"stakes": rows,
	})
}

func (h *Handler) getStake(w http.ResponseWriter, r *http.Request) {
	row, err := h.staking.Get(r.Context(), mux.Vars(r)["address"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"stake": row})
}

func (h *Handler) depositStake(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Privatekey string `json:"privatekey"`
		Amount     uint64 `json:"amount"`
	}
	decodeBody(r, &body)
	privatekey := formValue(r, body.Privatekey, "privatekey")
	amount := formUint(r, body.Amount, "amount")

	row, err := h.staking.Deposit(r.Context(), requestMeta(r), privatekey, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"stake": row})
}

func (h *Handler) withdrawStake(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Privatekey string `json:"privatekey"`
		Amount     uint64 `json:"amount"`
	}
	decodeBody(r, &body)
	privatekey := formValue(r, body.Privatekey, "privatekey")
	amount := formUint(r, body.Amount, "amount")

	row, err := h.staking.Withdraw(r.Context(), requestMeta(r), privatekey, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"stake": row})
}

func (h *Handler) currentValidator(w http.ResponseWriter, r *http.Request) {
	validator, err := h.staking.Validator(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"validator": validator})
}

func (h *Handler) stakePenalties(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.staking.Penalties(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{
		"count":     len(rows),
		"total":     total,
		"penalties": rows,
	})
}
