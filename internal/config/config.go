// Package config carries the read-only chain constants threaded through the
// engines. Runtime toggles (mining/staking enablement, debug flags) live in
// the fast state store instead, so everything here is fixed for the lifetime
// of the process.
package config

import "time"

// Constants holds the consensus and protocol constants of the network.
type Constants struct {
	// WalletVersion is advertised to clients via the MOTD endpoint.
	WalletVersion int

	// NonceMaxSize bounds the accepted block nonce length in bytes.
	NonceMaxSize int

	// NameCost is the purchase price of a name; it also seeds the name's
	// unpaid counter.
	NameCost uint64

	// MinWork and MaxWork clamp the retargeted work value.
	MinWork uint64
	MaxWork uint64

	// WorkFactor damps each retarget step.
	WorkFactor float64

	// SecondsPerBlock is the target block interval and the staking epoch
	// length.
	SecondsPerBlock int

	// ValidatorPenalty caps the stake deducted from a validator that missed
	// its epoch.
	ValidatorPenalty uint64

	// AddressPrefix is the single-character prefix of v2 addresses.
	AddressPrefix string

	// NameSuffix is the name TLD, without the leading dot.
	NameSuffix string

	// WorkRingSize caps the work-over-time ring in the fast state store.
	WorkRingSize int
}

// Defaults returns the production constants of the network.
func Defaults() Constants {
	return Constants{
		WalletVersion:    16,
		NonceMaxSize:     24,
		NameCost:         500,
		MinWork:          100,
		MaxWork:          100000,
		WorkFactor:       0.025,
		SecondsPerBlock:  60,
		ValidatorPenalty: 500,
		AddressPrefix:    "t",
		NameSuffix:       "tst",
		WorkRingSize:     1440,
	}
}

// BlockInterval returns SecondsPerBlock as a duration.
func (c Constants) BlockInterval() time.Duration {
	return time.Duration(c.SecondsPerBlock) * time.Second
}
