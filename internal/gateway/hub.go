package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/bus"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/internal/service/motd"
)

// Hub owns every live session and implements bus.Publisher for the engines.
type Hub struct {
	tokens       *TokenStore
	addresses    AddressService
	blocks       BlockService
	transactions TransactionService
	staking      StakeService
	work         WorkService
	motd         MOTDService
	publicURL    string
	logger       *zap.Logger
	metrics      Metrics
	upgrader     websocket.Upgrader

	mu       sync.RWMutex
	sessions map[*Session]struct{}
}

// New builds the gateway.
func New(
	addresses AddressService,
	blocks BlockService,
	transactions TransactionService,
	staking StakeService,
	work WorkService,
	motd MOTDService,
	publicURL string,
	logger *zap.Logger,
	metrics Metrics,
) *Hub {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Hub{
		tokens:       NewTokenStore(),
		addresses:    addresses,
		blocks:       blocks,
		transactions: transactions,
		staking:      staking,
		work:         work,
		motd:         motd,
		publicURL:    publicURL,
		logger:       logger,
		metrics:      metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The token handshake is the access control; origins are open
			// like the rest of the API.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		sessions: make(map[*Session]struct{}),
	}
}

// SessionCount returns the number of live sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Publish implements bus.Publisher. Marshalling happens once per event;
// delivery to each session is non-blocking.
func (h *Hub) Publish(event bus.Event) {
	payload, err := marshalEvent(event)
	if err != nil {
		h.logger.Error("marshal event", zap.Error(err), zap.String("event", string(event.Type)))
		return
	}
	h.metrics.EventBroadcast(string(event.Type))

	h.mu.RLock()
	targets := make([]*Session, 0, len(h.sessions))
	for session := range h.sessions {
		if h.wants(session, event) {
			targets = append(targets, session)
		}
	}
	h.mu.RUnlock()

	for _, session := range targets {
		if !session.trySend(payload) {
			h.metrics.EventDropped()
		}
	}
}

func (h *Hub) wants(session *Session, event bus.Event) bool {
	switch event.Type {
	case bus.EventBlock:
		return session.subscribedTo(bus.CategoryBlocks)
	case bus.EventTransaction:
		return session.wantsTransaction(event.Transaction)
	case bus.EventName:
		return session.subscribedTo(bus.CategoryNames)
	case bus.EventStake:
		return session.subscribedTo(bus.CategoryStake)
	case bus.EventValidator:
		return session.subscribedTo(bus.CategoryValidator)
	default:
		return false
	}
}

// StartHandler handles POST /ws/start: optional privatekey authentication,
// then a single-use connection URL.
func (h *Hub) StartHandler(w http.ResponseWriter, r *http.Request) {
	meta := requestMeta(r)

	var body struct {
		Privatekey string `json:"privatekey"`
	}
	if r.Body != nil && strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		// An empty or absent privatekey means a guest session. Form bodies
		// stay unread so FormValue can parse them below.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	if body.Privatekey == "" {
		body.Privatekey = r.FormValue("privatekey")
	}

	address := ""
	if body.Privatekey != "" {
		row, err := h.addresses.Authenticate(r.Context(), meta, body.Privatekey, model.AuthLogAuth)
		if err != nil {
			writeError(w, err)
			return
		}
		address = row.Address
	}

	token, err := h.tokens.Issue(address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"url":      h.publicURL + "/ws/gateway/" + token,
		"expires":  int(TokenTTL.Seconds()),
		"is_guest": address == "",
	})
}

// ConnectHandler handles GET /ws/gateway/{token}: claims the token and
// upgrades the connection.
func (h *Hub) ConnectHandler(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	address, ok := h.tokens.Claim(token)
	if !ok {
		writeError(w, apierr.InvalidToken())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	session := newSession(h, conn, address, requestMeta(r))
	h.register(session)
	h.metrics.SessionOpened()
	defer func() {
		h.unregister(session)
		h.metrics.SessionClosed()
	}()

	h.sendHello(r.Context(), session)
	session.run(r.Context())
}

func (h *Hub) register(session *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[session] = struct{}{}
}

func (h *Hub) unregister(session *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, session)
}

func (h *Hub) sendHello(ctx context.Context, session *Session) {
	info, err := h.motd.Get(ctx)
	if err != nil {
		h.logger.Error("motd for hello", zap.Error(err))
		return
	}
	payload, err := json.Marshal(struct {
		OK   bool   `json:"ok"`
		Type string `json:"type"`
		*motd.Info
	}{OK: true, Type: "hello", Info: info})
	if err != nil {
		h.logger.Error("marshal hello", zap.Error(err))
		return
	}
	session.trySend(payload)
}

func marshalKeepalive(now time.Time) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        "keepalive",
		"server_time": now.Format(time.RFC3339),
	})
}

func marshalEvent(event bus.Event) ([]byte, error) {
	wire := map[string]interface{}{
		"type":  "event",
		"event": string(event.Type),
	}
	switch event.Type {
	case bus.EventBlock:
		wire["block"] = event.Block
		wire["new_work"] = event.NewWork
	case bus.EventTransaction:
		wire["transaction"] = event.Transaction
	case bus.EventName:
		wire["name"] = event.Name
	case bus.EventStake:
		wire["stake"] = event.Stake
	case bus.EventValidator:
		wire["validator"] = event.Validator
	}
	return json.Marshal(wire)
}

// requestMeta extracts the client identity the engines record.
func requestMeta(r *http.Request) model.RequestMeta {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	return model.RequestMeta{
		IP:        ip,
		UserAgent: r.Header.Get("User-Agent"),
		Origin:    r.Header.Get("Origin"),
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	apiErr := apierr.From(err)
	body := map[string]interface{}{
		"ok":    false,
		"error": string(apiErr.Kind),
	}
	if apiErr.Parameter != "" {
		body["parameter"] = apiErr.Parameter
	}
	writeJSON(w, apiErr.Status(), body)
}
