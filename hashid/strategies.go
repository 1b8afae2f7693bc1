package hashid

import (
	"fmt"
	"strconv"
	"time"
)

// ──────────────────────────────────────────────────────────────────────────────
// Shared encode/decode behaviour
// ──────────────────────────────────────────────────────────────────────────────

// numericValue normalises the inputs Encode treats as encodable: Go
// integer types and strings of decimal digits.  Negative values are not
// representable in the Hashids transform and fall through to passthrough.
func numericValue(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		if v >= 0 {
			return int64(v), true
		}
	case int8:
		if v >= 0 {
			return int64(v), true
		}
	case int16:
		if v >= 0 {
			return int64(v), true
		}
	case int32:
		if v >= 0 {
			return int64(v), true
		}
	case int64:
		if v >= 0 {
			return v, true
		}
	case uint:
		if uint64(v) <= maxEncodable {
			return int64(v), true
		}
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v <= maxEncodable {
			return int64(v), true
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			return n, true
		}
	}
	return 0, false
}

const maxEncodable = uint64(1<<63 - 1)

// stringify renders a passthrough value.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// strategy carries the behaviour shared by all three hasher types.  Encode
// and Decode never fail: out-of-domain input is passed through unchanged
// so the strategies expose no error oracle.
type strategy struct {
	typ   HasherType
	codec *codec
}

func (s *strategy) Type() HasherType { return s.typ }

func (s *strategy) Encode(value any) string {
	n, ok := numericValue(value)
	if !ok {
		return stringify(value)
	}
	out, err := s.codec.encode([]int64{n})
	if err != nil {
		return stringify(value)
	}
	return out
}

func (s *strategy) Decode(hash string) any {
	values, err := s.codec.decode(hash)
	if err != nil || len(values) == 0 {
		return hash
	}
	return values[0]
}

// ──────────────────────────────────────────────────────────────────────────────
// DefaultHasher
// ──────────────────────────────────────────────────────────────────────────────

// DefaultHasher is the baseline strategy: a direct Hashids transform with
// the effective configuration, no extra hardening.
//
// DefaultHasher is immutable after construction and safe for concurrent use.
type DefaultHasher struct {
	strategy
	cfg Config
}

// NewDefaultHasher constructs a DefaultHasher for cfg.
// The config is validated before the codec is built.
func NewDefaultHasher(cfg Config) (*DefaultHasher, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}
	return &DefaultHasher{strategy: strategy{typ: TypeDefault, codec: c}, cfg: cfg}, nil
}

// Config returns the effective configuration, with the salt blanked out so
// callers can inspect parameters without handling secret material.
func (h *DefaultHasher) Config() Config {
	cfg := h.cfg
	cfg.Salt = ""
	return cfg
}

// ──────────────────────────────────────────────────────────────────────────────
// SecureHasher
// ──────────────────────────────────────────────────────────────────────────────

// SecureHasher hardens the baseline strategy for identifiers whose
// sequence must stay unobservable: it defaults to a 16-character minimum
// length and the symbol-extended [SecureAlphabet], and mixes the current
// Unix timestamp into every encode so the same value never maps to the
// same hash twice.  Decode discards the timestamp component and returns
// only the identifier.
//
// A SecureHasher built with an empty salt gets a fresh random salt from the
// factory (see [Factory.Create]); the salt is generated per call, never
// reused, and never derivable from factory state.
//
// SecureHasher is immutable after construction and safe for concurrent use.
type SecureHasher struct {
	strategy
	now func() time.Time
}

// NewSecureHasher constructs a SecureHasher for cfg.
// The config is validated before the codec is built.
func NewSecureHasher(cfg Config) (*SecureHasher, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}
	return &SecureHasher{strategy: strategy{typ: TypeSecure, codec: c}, now: time.Now}, nil
}

// Encode obfuscates value together with the current timestamp.  Non-numeric
// input passes through unchanged, as with every strategy.
func (h *SecureHasher) Encode(value any) string {
	n, ok := numericValue(value)
	if !ok {
		return stringify(value)
	}
	out, err := h.codec.encode([]int64{n, h.now().Unix()})
	if err != nil {
		return stringify(value)
	}
	return out
}

// Decode reverses hash and returns the identifier component only; the
// mixed-in timestamp is discarded.  Undecodable input passes through.
func (h *SecureHasher) Decode(hash string) any {
	values, err := h.codec.decode(hash)
	if err != nil || len(values) == 0 {
		return hash
	}
	return values[0]
}

// ──────────────────────────────────────────────────────────────────────────────
// CustomHasher
// ──────────────────────────────────────────────────────────────────────────────

// CustomHasher behaves exactly like [DefaultHasher] with its own default
// parameter set (minimum length [CustomMinLength]).  It exists as a
// distinct type so ad-hoc caller-parameterized hashers never collide with
// default-strategy cache entries.
//
// CustomHasher is immutable after construction and safe for concurrent use.
type CustomHasher struct {
	strategy
}

// NewCustomHasher constructs a CustomHasher for cfg.
// The config is validated before the codec is built.
func NewCustomHasher(cfg Config) (*CustomHasher, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}
	return &CustomHasher{strategy: strategy{typ: TypeCustom, codec: c}}, nil
}

// newHasher dispatches construction over the closed type set.  The switch
// is exhaustive; ParseHasherType has already rejected everything else.
func newHasher(typ HasherType, cfg Config) (Hasher, error) {
	switch typ {
	case TypeSecure:
		return NewSecureHasher(cfg)
	case TypeCustom:
		return NewCustomHasher(cfg)
	default:
		return NewDefaultHasher(cfg)
	}
}
