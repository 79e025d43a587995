package gateway

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/bus"
	"github.com/tstnetwork/tstnode/internal/model"
)

const (
	// sendQueueSize bounds the per-session outbound queue. A session that
	// falls this far behind is dropped rather than blocking the broadcaster.
	sendQueueSize = 256

	keepaliveInterval = 10 * time.Second
	writeTimeout      = 10 * time.Second
	maxMessageBytes   = 16 * 1024
)

// Session is one WebSocket connection. All writes go through the send queue
// and a single writer goroutine.
type Session struct {
	hub    *Hub
	conn   *websocket.Conn
	meta   model.RequestMeta
	logger *zap.Logger

	mu      sync.Mutex
	address string
	subs    map[bus.Category]struct{}

	send chan []byte
	stop chan struct{}
	once sync.Once
}

func newSession(hub *Hub, conn *websocket.Conn, address string, meta model.RequestMeta) *Session {
	return &Session{
		hub:     hub,
		conn:    conn,
		meta:    meta,
		logger:  hub.logger.With(zap.String("remote", meta.IP)),
		address: address,
		subs: map[bus.Category]struct{}{
			bus.CategoryOwnTransactions: {},
			bus.CategoryBlocks:          {},
		},
		send: make(chan []byte, sendQueueSize),
		stop: make(chan struct{}),
	}
}

// run services the connection until it closes. It blocks the caller; the
// writer runs on its own goroutine.
func (s *Session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writer(ctx)
	}()

	s.conn.SetReadLimit(maxMessageBytes)
	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			break
		}
		s.hub.handleMessage(ctx, s, raw)
	}

	s.close()
	cancel()
	wg.Wait()
}

func (s *Session) writer(ctx context.Context) {
	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case payload := <-s.send:
			if err := s.write(payload); err != nil {
				s.close()
				return
			}
		case <-keepalive.C:
			payload, err := marshalKeepalive(time.Now().UTC())
			if err != nil {
				continue
			}
			if err := s.write(payload); err != nil {
				s.close()
				return
			}
		}
	}
}

func (s *Session) write(payload []byte) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

// trySend queues a payload without blocking. A full queue closes the
// session.
func (s *Session) trySend(payload []byte) bool {
	select {
	case s.send <- payload:
		return true
	default:
		s.logger.Warn("session send queue full, dropping session")
		s.close()
		return false
	}
}

func (s *Session) close() {
	s.once.Do(func() {
		close(s.stop)
		_ = s.conn.Close()
	})
}

// Address returns the authenticated address, empty for guests.
func (s *Session) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

func (s *Session) setAddress(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = address
}

func (s *Session) subscribe(category bus.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[category] = struct{}{}
}

func (s *Session) unsubscribe(category bus.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, category)
}

func (s *Session) subscribedTo(category bus.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.subs[category]
	return ok
}

// subscriptions returns the session's levels in a stable order.
func (s *Session) subscriptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	levels := make([]string, 0, len(s.subs))
	for category := range s.subs {
		levels = append(levels, string(category))
	}
	sort.Strings(levels)
	return levels
}

// wantsTransaction applies the per-session transaction filter: the
// transactions level delivers everything, ownTransactions only entries the
// session's address participates in.
func (s *Session) wantsTransaction(tx *model.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[bus.CategoryTransactions]; ok {
		return true
	}
	if _, ok := s.subs[bus.CategoryOwnTransactions]; ok && s.address != "" {
		return tx.Involves(s.address)
	}
	return false
}
