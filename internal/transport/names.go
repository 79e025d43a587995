package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) listNames(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.names.List(r.Context(), limit, offset)
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

func (h *Handler) newestNames(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	rows, total, err := h.names.Newest(r.Context(), limit, offset)
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

func (h *Handler) getName(w http.ResponseWriter, r *http.Request) {
	row, err := h.names.Get(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"name": row})
}

func (h *Handler) nameCost(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, map[string]interface{}{"name_cost": h.names.Cost()})
}

func (h *Handler) nameBonus(w http.ResponseWriter, r *http.Request) {
	bonus, err := h.names.Bonus(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"name_bonus": bonus})
}

func (h *Handler) checkName(w http.ResponseWriter, r *http.Request) {
	available, err := h.names.Check(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"available": available})
}

func (h *Handler) registerName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Privatekey string `json:"privatekey"`
	}
	decodeBody(r, &body)
	privatekey := formValue(r, body.Privatekey, "privatekey")

	row, err := h.names.Register(r.Context(), requestMeta(r), privatekey, mux.Vars(r)["name"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"name": row})
}

func (h *Handler) transferName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Privatekey string `json:"privatekey"`
		Address    string `json:"address"`
	}
	decodeBody(r, &body)
	privatekey := formValue(r, body.Privatekey, "privatekey")
	to := formValue(r, body.Address, "address")

	row, err := h.names.Transfer(r.Context(), requestMeta(r), privatekey, mux.Vars(r)["name"], to)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"name": row})
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Privatekey string `json:"privatekey"`
		A          string `json:"a"`
	}
	decodeBody(r, &body)
	privatekey := formValue(r, body.Privatekey, "privatekey")
	record := formValue(r, body.A, "a")

	row, err := h.names.UpdateARecord(r.Context(), requestMeta(r), privatekey, mux.Vars(r)["name"], record)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"name": row})
}
