package blocks

import (
	"math"
	"strconv"
	"strings"

	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/crypto"
	"github.com/tstnetwork/tstnode/internal/model"
)

// genesisShortHash stands in for the short hash of legacy rows without one.
var genesisShortHash = strings.Repeat("0", model.ShortHashLength)

// rewardHalvingHeight is the height at which the base block value drops
// from 25 to 1.
const rewardHalvingHeight = 325

// BaseValue returns the base reward of the block after height lastID.
func BaseValue(lastID uint64) uint32 {
	if lastID < rewardHalvingHeight {
		return 25
	}
	return 1
}

// Solution is an evaluated proof of work: the full submission hash and the
// big-endian integer of its first 48 bits.
type Solution struct {
	Hash    string
	Leading uint64
}

// EvaluateSolution hashes a submission against the tip's short hash.
func EvaluateSolution(address, shortHash string, nonce []byte) Solution {
	hash := crypto.HexDigest([]byte(address), []byte(shortHash), nonce)

	leading, err := strconv.ParseUint(hash[:model.ShortHashLength], 16, 64)
	if err != nil {
		// The input is 12 hex digits of a digest; this cannot happen.
		panic("blocks: non-hex digest prefix: " + hash)
	}
	return Solution{Hash: hash, Leading: leading}
}

// MeetsWork reports whether the solution satisfies the work target.
func (s Solution) MeetsWork(work uint64) bool {
	return s.Leading <= work
}

// Retarget computes the next work target after a block that took elapsed
// seconds: the target scales linearly with the overshoot, damped by the
// work factor and clamped to the configured range. A block arriving exactly
// on schedule leaves the work unchanged.
func Retarget(work uint64, elapsed float64, c config.Constants) uint64 {
	target := elapsed * float64(work) / float64(c.SecondsPerBlock)
	next := math.Round(float64(work) + (target-float64(work))*c.WorkFactor)

	if next < float64(c.MinWork) {
		return c.MinWork
	}
	if next > float64(c.MaxWork) {
		return c.MaxWork
	}
	return uint64(next)
}

// shortHashOf returns the chaining prefix of a block, substituting zeros
// for legacy rows without a hash.
func shortHashOf(b *model.Block) string {
	if s := b.ShortHash(); s != "" {
		return s
	}
	return genesisShortHash
}
