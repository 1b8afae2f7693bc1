// Package hashid provides reversible integer-to-string obfuscation for
// numeric identifiers, modelled after the PGS HashId bundle's hasher
// factory and registry.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface: an encode/decode pair
// over integers and strings.  Three strategies ship with this package —
// [DefaultHasher], [SecureHasher], and [CustomHasher] — all backed by the
// Hashids transform (github.com/speps/go-hashids).  Which strategy a caller
// gets is decided by the closed [HasherType] set; there is no dynamic
// class lookup, so an unknown type name is always an error, never a code
// path.
//
// The [Factory] is the single construction point.  It validates
// configuration, merges per-call overrides onto type and factory defaults,
// generates secure salts on demand, and keeps a bounded LRU cache of
// strategy instances keyed by the canonical form of their effective
// configuration.  Cache behaviour is observable through [Statistics].
//
// The [Registry] is a thin named-configuration layer on top of the
// Factory.  Register configurations once at startup, then resolve a named
// [Converter] wherever identifiers cross a trust boundary.  Each name is
// materialized lazily, exactly once, until it is re-registered.
//
// # Quick start
//
//	f, err := hashid.NewFactory("my-salt", 8, hashid.DefaultAlphabet, 32)
//	if err != nil { log.Fatal(err) }
//
//	h, _ := f.Create("default", nil)
//	s := h.Encode(1234)       // e.g. "kRZMw1vA"
//	v := h.Decode(s)          // int64(1234)
//
// # Security posture
//
// Decode is routinely called on attacker-controlled input.  It never
// returns an error: a string the codec cannot decode is passed through
// unchanged, so callers observe identical behaviour for forged and foreign
// input (no oracle).  Salts are never logged and never derivable from
// cache keys; see [GenerateSecureSalt] for the entropy contract.
package hashid
