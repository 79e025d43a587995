package crypto

import "strconv"

// hexToBase36 folds a byte into the [0-9a-z] alphabet. The bucketing (seven
// byte values per character, 'e' for the 252..255 tail) is part of the wire
// format and must not change.
func hexToBase36(input int) byte {
	for i := 6; i <= 251; i += 7 {
		if input <= i {
			if i <= 69 {
				return byte('0' + (i-6)/7)
			}
			return byte('a' + (i-76)/7)
		}
	}
	return 'e'
}

// MakeV2Address derives the 10-character v2 address for a private key. The
// derivation is a pure function of the key and the prefix: two rounds of
// chained double-SHA256 seed nine two-hex-digit slots, which a third chain
// then consumes in hash-directed order.
func MakeV2Address(privatekey, prefix string) string {
	chars := make([]string, 9)
	chain := prefix
	hash := doubleHexDigest(privatekey)

	for i := 0; i <= 8; i++ {
		chars[i] = hash[0:2]
		hash = doubleHexDigest(hash)
	}

	for i := 0; i <= 8; {
		index := mustParseHexByte(hash[2*i:2+2*i]) % 9
		if chars[index] == "" {
			hash = HexDigestString(hash)
		} else {
			chain += string(hexToBase36(mustParseHexByte(chars[index])))
			chars[index] = ""
			i++
		}
	}

	return chain
}

func mustParseHexByte(s string) int {
	v, err := strconv.ParseInt(s, 16, 16)
	if err != nil {
		// The inputs are substrings of hex digests; this cannot happen.
		panic("crypto: non-hex digest substring: " + s)
	}
	return int(v)
}
