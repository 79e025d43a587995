package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/model"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// pagination reads limit and offset, clamping limit to [1, maxLimit].
func pagination(r *http.Request) (limit, offset int) {
	limit = defaultLimit
	if raw := r.FormValue("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if raw := r.FormValue("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

// orderParams reads the lookup sort parameters. The column whitelist lives
// in the engines; order is descending only on an explicit DESC.
func orderParams(r *http.Request) (orderBy string, descending bool) {
	orderBy = r.FormValue("orderBy")
	descending = strings.EqualFold(r.FormValue("order"), "DESC")
	return orderBy, descending
}

func queryBool(r *http.Request, name string) bool {
	v := r.FormValue(name)
	return v == "true" || v == "1"
}

// splitList splits a comma-separated path segment into its entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// decodeBody best-effort decodes a JSON request body. Form-encoded bodies
// are left untouched so the form fallbacks can still read them.
func decodeBody(r *http.Request, dst interface{}) {
	if r.Body == nil || !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(dst)
}

func formValue(r *http.Request, body, name string) string {
	if body != "" {
		return body
	}
	return r.FormValue(name)
}

func formUint(r *http.Request, body uint64, name string) uint64 {
	if body != 0 {
		return body
	}
	n, _ := strconv.ParseUint(r.FormValue(name), 10, 64)
	return n
}

// requestMeta extracts the client identity the engines record.
func requestMeta(r *http.Request) model.RequestMeta {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	agent := r.Header.Get("User-Agent")
	if lib := r.Header.Get("Library-Agent"); lib != "" {
		agent = lib
	}
	return model.RequestMeta{
		IP:        ip,
		UserAgent: agent,
		Origin:    r.Header.Get("Origin"),
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeOK wraps the fields into the ok envelope.
func writeOK(w http.ResponseWriter, fields map[string]interface{}) {
	body := map[string]interface{}{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	apiErr := apierr.From(err)
	if apiErr.Kind == apierr.KindServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	body := map[string]interface{}{
		"ok":    false,
		"error": apiErr.Kind,
	}
	if apiErr.Parameter != "" {
		body["parameter"] = apiErr.Parameter
	}
	writeJSON(w, apiErr.Status(), body)
}
