package model

import (
	"encoding/json"
	"time"
)

// Pseudo-recipients used by the engines instead of real addresses.
const (
	PseudoStaking = "staking"
	PseudoName    = "name"
	PseudoARecord = "a"
)

// TransactionType classifies a transaction row for API responses and event
// routing.
type TransactionType string

const (
	TxMined        TransactionType = "mined"
	TxStaking      TransactionType = "staking"
	TxNamePurchase TransactionType = "name_purchase"
	TxNameARecord  TransactionType = "name_a_record"
	TxNameTransfer TransactionType = "name_transfer"
	TxTransfer     TransactionType = "transfer"
)

// Transaction is an append-only ledger movement. Mined rows carry a null
// From; the op column is exposed as metadata on the wire.
type Transaction struct {
	tableName struct{} `pg:"transactions"`

	ID           uint64    `pg:"id,pk" json:"id"`
	From         *string   `pg:"from" json:"from"`
	To           string    `pg:"to,use_zero" json:"to"`
	Value        uint64    `pg:"value,use_zero" json:"value"`
	Time         time.Time `pg:"time" json:"time"`
	Name         *string   `pg:"name" json:"name"`
	Metadata     *string   `pg:"op" json:"metadata"`
	SentMetaname *string   `pg:"sent_metaname" json:"sent_metaname"`
	SentName     *string   `pg:"sent_name" json:"sent_name"`
	UserAgent    string    `pg:"useragent" json:"-"`
	Origin       string    `pg:"origin" json:"-"`
}

// Type derives the transaction classification from the row itself.
func (t *Transaction) Type() TransactionType {
	switch {
	case t.From == nil:
		return TxMined
	case *t.From == PseudoStaking || t.To == PseudoStaking:
		return TxStaking
	case t.Name != nil && t.To == PseudoName:
		return TxNamePurchase
	case t.Name != nil && t.To == PseudoARecord:
		return TxNameARecord
	case t.Name != nil:
		return TxNameTransfer
	default:
		return TxTransfer
	}
}

// MarshalJSON augments the wire form with the derived type field.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type transaction Transaction
	return json.Marshal(struct {
		transaction
		Type TransactionType `json:"type"`
	}{transaction(t), t.Type()})
}

// Involves reports whether the address appears on either side of the row,
// which drives ownTransactions event filtering.
func (t *Transaction) Involves(address string) bool {
	if address == "" {
		return false
	}
	if t.From != nil && *t.From == address {
		return true
	}
	return t.To == address
}
