package model

import (
	"encoding/json"
	"time"
)

// ShortHashLength is the number of leading hash characters chained into the
// next block's proof and exposed as short_hash.
const ShortHashLength = 12

// Block is a chain block row. ID doubles as the block height; legacy rows may
// carry a null hash.
type Block struct {
	tableName struct{} `pg:"blocks"`

	ID         uint64    `pg:"id,pk" json:"height"`
	Hash       *string   `pg:"hash" json:"hash"`
	Address    string    `pg:"address,use_zero" json:"address"`
	Nonce      []byte    `pg:"nonce,use_zero" json:"-"`
	Time       time.Time `pg:"time" json:"time"`
	Difficulty uint64    `pg:"difficulty,use_zero" json:"difficulty"`
	Value      uint32    `pg:"value,use_zero" json:"value"`
	UserAgent  string    `pg:"useragent" json:"-"`
	Origin     string    `pg:"origin" json:"-"`
}

// ShortHash returns the first ShortHashLength characters of the block hash,
// or an empty string for legacy hashless rows.
func (b *Block) ShortHash() string {
	if b.Hash == nil || len(*b.Hash) < ShortHashLength {
		return ""
	}
	return (*b.Hash)[:ShortHashLength]
}

// MarshalJSON augments the wire form with the derived short_hash field.
func (b Block) MarshalJSON() ([]byte, error) {
	type block Block
	var short *string
	if s := b.ShortHash(); s != "" {
		short = &s
	}
	return json.Marshal(struct {
		block
		ShortHash *string `json:"short_hash"`
	}{block(b), short})
}
