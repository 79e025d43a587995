package addresses

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/model"
)

const (
	// authDedupWindow suppresses repeat log entries for the same
	// (ip, address, type) triple.
	authDedupWindow = 30 * time.Minute

	authLogFlushSize     = 64
	authLogFlushInterval = 5 * time.Second
	authLogFlushRPS      = 4
)

// authDedup remembers recently logged (ip, address, type) triples so a miner
// hammering submit_block produces one log entry per window, not thousands.
type authDedup struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time
}

func newAuthDedup(window time.Duration) *authDedup {
	return &authDedup{window: window, seen: make(map[string]time.Time)}
}

// shouldLog reports whether the triple has not been logged within the
// window, recording it when so. Stale entries are swept opportunistically.
func (d *authDedup) shouldLog(ip, address string, logType model.AuthLogType, now time.Time) bool {
	key := ip + "\x00" + address + "\x00" + string(logType)

	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.seen[key]; ok && now.Sub(last) < d.window {
		return false
	}

	if len(d.seen) > 4096 {
		for k, t := range d.seen {
			if now.Sub(t) >= d.window {
				delete(d.seen, k)
			}
		}
	}

	d.seen[key] = now
	return true
}

// logAttempt queues an auth log entry unless an identical one was logged
// recently. The queue never blocks the caller; overflow drops the entry.
func (s *Service) logAttempt(meta model.RequestMeta, address string, logType model.AuthLogType) {
	now := s.now()
	if !s.dedup.shouldLog(meta.IP, address, logType, now) {
		return
	}

	entry := model.AuthLogEntry{
		IP:        meta.IP,
		Address:   address,
		Time:      now,
		Type:      logType,
		UserAgent: meta.UserAgent,
		Origin:    meta.Origin,
	}
	if !s.authLog.TryAdd(entry) {
		s.logger.Warn("auth log entry dropped",
			zap.String("address", address),
			zap.String("type", string(logType)))
	}
}

// LogMining records a mining submission against the auth log. It exists so
// the block engine can log without taking the full auth path.
func (s *Service) LogMining(meta model.RequestMeta, address string) {
	s.logAttempt(meta, address, model.AuthLogMining)
}
