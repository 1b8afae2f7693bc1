package hashid

import (
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// CacheKey is the canonical identifier of a (type, effective config) pair.
//
// It is a blake2b-128 fingerprint of a deterministic serialization whose
// fields are sorted by name, so two equivalent configurations supplied
// with overrides in different order always collide to the same key.  The
// fingerprint is one-way: the salt cannot be recovered from it, which
// makes the key safe to log and to return from
// [Factory.PreloadConfiguration].
type CacheKey string

// cacheKey computes the canonical key for typ and an effective cfg.
func cacheKey(typ HasherType, cfg Config) CacheKey {
	fields := map[string]string{
		"alphabet":   cfg.Alphabet,
		"min_length": strconv.Itoa(cfg.MinLength),
		"salt":       cfg.Salt,
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(string(typ))
	for _, name := range names {
		b.WriteByte('|')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(fields[name])
	}

	sum := blake2b.Sum256([]byte(b.String()))
	return CacheKey(hex.EncodeToString(sum[:16]))
}
