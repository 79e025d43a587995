package model

import "time"

// AuthLogType distinguishes wallet authentications from mining submissions.
type AuthLogType string

const (
	AuthLogAuth   AuthLogType = "auth"
	AuthLogMining AuthLogType = "mining"
)

// AuthLogEntry records an authentication or mining attempt against an
// address. Entries are pruned after thirty days.
type AuthLogEntry struct {
	tableName struct{} `pg:"auth_log"`

	ID        uint64      `pg:"id,pk"`
	IP        string      `pg:"ip,use_zero"`
	Address   string      `pg:"address,use_zero"`
	Time      time.Time   `pg:"time"`
	Type      AuthLogType `pg:"type,use_zero"`
	UserAgent string      `pg:"useragent"`
	Origin    string      `pg:"origin"`
}

// RequestMeta carries the client details stamped onto rows created on behalf
// of an external request.
type RequestMeta struct {
	IP        string
	UserAgent string
	Origin    string
}
