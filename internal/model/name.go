package model

import "time"

// Name is a registered human-readable name. Unpaid starts at the purchase
// cost and decays by one per produced block; while it is positive the name
// contributes one unit to every block reward.
type Name struct {
	tableName struct{} `pg:"names"`

	Name          string    `pg:"name,pk" json:"name"`
	Owner         string    `pg:"owner,use_zero" json:"owner"`
	OriginalOwner string    `pg:"original_owner,use_zero" json:"original_owner"`
	Registered    time.Time `pg:"registered" json:"registered"`
	Updated       time.Time `pg:"updated" json:"updated"`
	ARecord       *string   `pg:"a" json:"a"`
	Unpaid        uint32    `pg:"unpaid,use_zero" json:"unpaid"`
}
