package hashid

import "fmt"

// HasherType identifies an encoding strategy.
// Using a named string type prevents accidental confusion with plain strings.
type HasherType string

const (
	// TypeDefault selects the default strategy: factory-level parameters,
	// no extra hardening.
	TypeDefault HasherType = "default"
	// TypeSecure selects the hardened strategy: longer minimum length,
	// richer alphabet, per-call salt generation when none is configured,
	// and a timestamp mixed into every encode.
	TypeSecure HasherType = "secure"
	// TypeCustom selects the caller-parameterized strategy.  It behaves
	// like TypeDefault with its own default parameter set and is intended
	// to be used with per-call overrides.
	TypeCustom HasherType = "custom"
)

// hasherTypes is the closed set of valid strategies, in stable order.
var hasherTypes = []HasherType{TypeDefault, TypeSecure, TypeCustom}

// ParseHasherType validates name against the closed type set.
//
// Every string outside the set fails with [ErrUnknownHasherType] — a typo,
// a path, shell metacharacters, and a format-string payload are all
// rejected by the same branch with the same message, which enumerates the
// valid set.  Type selection is never a dynamic lookup.
func ParseHasherType(name string) (HasherType, error) {
	switch HasherType(name) {
	case TypeDefault:
		return TypeDefault, nil
	case TypeSecure:
		return TypeSecure, nil
	case TypeCustom:
		return TypeCustom, nil
	default:
		return "", fmt.Errorf("%w: %q is not one of %v", ErrUnknownHasherType, name, hasherTypes)
	}
}

// HasherTypes returns the closed set of supported type names in stable
// order.  The returned slice is a copy.
func HasherTypes() []string {
	out := make([]string, len(hasherTypes))
	for i, t := range hasherTypes {
		out[i] = string(t)
	}
	return out
}

// Hasher is the core interface satisfied by all encoding strategies.
//
// All implementations are immutable after construction and safe for
// concurrent use by multiple goroutines.
//
// Neither method returns an error.  Out-of-domain input — a non-numeric
// encode value, a hash the codec cannot reverse — is passed through
// unchanged rather than raised, because decode sits on an
// attacker-facing boundary and must behave identically for valid and
// forged input.
type Hasher interface {
	// Encode obfuscates a non-negative integer value and returns the
	// resulting hash string.  Accepted inputs are Go integer types and
	// strings of decimal digits; anything else (including negative
	// values, which the Hashids transform cannot represent) is returned
	// unchanged as its string form.
	Encode(value any) string

	// Decode reverses a previously encoded hash and returns the original
	// value as an int64.  When hash was not produced by this
	// configuration, the input string is returned unchanged.
	Decode(hash string) any

	// Type returns the strategy that produced this hasher.
	Type() HasherType
}

// Converter is a stateless encode/decode pair that does not participate in
// the factory's instance-identity cache.  It exposes the same surface as
// [Hasher]; the distinction is purely in how instances are obtained — see
// [Factory.CreateConverter] and [Registry.GetConverter].
type Converter = Hasher
