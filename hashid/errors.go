package hashid

import "errors"

// Sentinel errors returned by factory and registry operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := f.Create("md5", nil)
//	if errors.Is(err, hashid.ErrUnknownHasherType) {
//	    // type name is outside the closed set
//	}
var (
	// ErrInvalidConfig is returned when a hasher configuration violates an
	// invariant: a negative minimum length, an alphabet with fewer than 16
	// unique characters, a non-positive cache size, or a malformed override
	// map.  Validation always happens at construction, registration, or
	// per-call merge time — never at encode/decode time.
	ErrInvalidConfig = errors.New("hashid: invalid hasher configuration")

	// ErrUnknownHasherType is returned when a requested type name is not in
	// the closed [HasherType] set.  All unknown strings are rejected
	// identically, whatever they contain.
	ErrUnknownHasherType = errors.New("hashid: unknown hasher type")

	// ErrHasherNotFound is returned by [Registry.GetConverter] when no
	// configuration has been registered under the requested name.
	ErrHasherNotFound = errors.New("hashid: no hasher registered under name")

	// ErrNilFactory is returned by [NewRegistry] when the supplied
	// [Factory] is nil.
	ErrNilFactory = errors.New("hashid: factory must not be nil")

	// ErrEmptyHasherName is returned by [Registry.RegisterHasher] when the
	// supplied name is an empty string.
	ErrEmptyHasherName = errors.New("hashid: hasher name must not be empty")
)
