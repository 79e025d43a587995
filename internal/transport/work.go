package transport

import (
	"net/http"

	"github.com/tstnetwork/tstnode/internal/service/work"
)

func (h *Handler) currentWork(w http.ResponseWriter, r *http.Request) {
	current, err := h.work.Current(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeOK(w, map[string]interface{}{"work": current})
}

func (h *Handler) workDay(w http.ResponseWriter, r *http.Request) {
	samples, err := h.work.Day(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if samples == nil {
		samples = []uint64{}
	}
	writeOK(w, map[string]interface{}{"work": samples})
}

func (h *Handler) workDetailed(w http.ResponseWriter, r *http.Request) {
	detail, err := h.work.Detailed(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
		*work.Detail
	}{true, detail})
}
