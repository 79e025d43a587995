// Package model defines the persisted entities of the ledger node.
package model

import "time"

// Stake is the wire view of an address's staking position.
type Stake struct {
	Owner  string `json:"owner"`
	Stake  uint64 `json:"stake"`
	Active bool   `json:"active"`
}

// Address is a ledger account row. Balances only ever change through the
// transaction and block engines; the stake fields only through the staking
// engine.
type Address struct {
	tableName struct{} `pg:"addresses"`

	Address        string    `pg:"address,pk" json:"address"`
	Balance        uint64    `pg:"balance,use_zero" json:"balance"`
	TotalIn        uint64    `pg:"totalin,use_zero" json:"totalin"`
	TotalOut       uint64    `pg:"totalout,use_zero" json:"totalout"`
	Stake          uint64    `pg:"stake,use_zero" json:"stake"`
	Penalty        uint64    `pg:"penalty,use_zero" json:"penalty"`
	StakeActive    bool      `pg:"stake_active,use_zero" json:"stake_active"`
	Locked         bool      `pg:"locked,use_zero" json:"-"`
	PrivatekeyHash *string   `pg:"privatekey_hash" json:"-"`
	FirstSeen      time.Time `pg:"firstseen" json:"firstseen"`
}

// StakeView projects the row onto its staking wire form.
func (a *Address) StakeView() Stake {
	return Stake{Owner: a.Address, Stake: a.Stake, Active: a.StakeActive}
}
