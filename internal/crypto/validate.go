package crypto

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

const (
	// MaxMetadataLength bounds transaction metadata.
	MaxMetadataLength = 255
	// MaxARecordLength bounds name A records.
	MaxARecordLength = 255
)

var (
	legacyAddressRe = regexp.MustCompile(`^[a-f0-9]{10}$`)
	nameRe          = regexp.MustCompile(`^[a-z0-9]{1,64}$`)
	nameFetchRe     = regexp.MustCompile(`^(?:xn--)?[a-z0-9]{1,64}$`)
	metadataRe      = regexp.MustCompile(`^[\x20-\x7f\n]+$`)
	aRecordRe       = regexp.MustCompile(`^[^\s.?#].[^\s]*$`)

	v2AddressRes sync.Map // prefix -> *regexp.Regexp
)

func v2AddressRe(prefix string) *regexp.Regexp {
	if re, ok := v2AddressRes.Load(prefix); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(fmt.Sprintf(`^%s[a-z0-9]{9}$`, regexp.QuoteMeta(prefix)))
	v2AddressRes.Store(prefix, re)
	return re
}

// IsV2Address reports whether addr is a prefix-form v2 address.
func IsV2Address(prefix, addr string) bool {
	return v2AddressRe(prefix).MatchString(addr)
}

// IsValidAddress accepts v2 addresses and 10-character legacy hex addresses.
func IsValidAddress(prefix, addr string) bool {
	return IsV2Address(prefix, addr) || legacyAddressRe.MatchString(addr)
}

// IsValidName validates a name for registration.
func IsValidName(name string) bool {
	return nameRe.MatchString(name)
}

// IsValidNameForFetch additionally accepts punycoded lookups.
func IsValidNameForFetch(name string) bool {
	return nameFetchRe.MatchString(name)
}

// IsValidMetadata validates transaction metadata: printable ASCII plus
// newlines, at most MaxMetadataLength characters.
func IsValidMetadata(metadata string) bool {
	return len(metadata) <= MaxMetadataLength && metadataRe.MatchString(metadata)
}

// IsValidARecord validates a name A record.
func IsValidARecord(a string) bool {
	return len(a) <= MaxARecordLength && aRecordRe.MatchString(a)
}

// StripNameSuffix removes a trailing ".<suffix>" from a query value.
func StripNameSuffix(value, suffix string) string {
	return strings.TrimSuffix(value, "."+suffix)
}

var metanameRes sync.Map // suffix -> *regexp.Regexp

func nameTargetRe(suffix string) *regexp.Regexp {
	if re, ok := metanameRes.Load(suffix); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(fmt.Sprintf(`^(?:([a-z0-9-_]{1,32})@)?([a-z0-9]{1,64})\.%s$`, regexp.QuoteMeta(suffix)))
	metanameRes.Store(suffix, re)
	return re
}

// ParseNameTarget splits a "[metaname@]name.<suffix>" payment target. ok is
// false when target is not in name form at all.
func ParseNameTarget(target, suffix string) (metaname, name string, ok bool) {
	m := nameTargetRe(suffix).FindStringSubmatch(strings.ToLower(target))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
