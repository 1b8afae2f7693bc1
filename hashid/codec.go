package hashid

import (
	"fmt"
	"strings"

	hashids "github.com/speps/go-hashids/v2"
)

// codec wraps the external Hashids transform behind the narrow surface the
// strategies need.  It is pure and deterministic for a given configuration
// and safe for concurrent use.
type codec struct {
	h *hashids.HashID
}

// newCodec builds a Hashids transform for cfg.  The config must already be
// validated; remaining construction failures (the library rejects
// duplicate characters and spaces in alphabets) surface as
// [ErrInvalidConfig].
func newCodec(cfg Config) (*codec, error) {
	data := hashids.NewData()
	data.Salt = cfg.Salt
	data.MinLength = cfg.MinLength
	// The library refuses alphabets with repeated characters outright.
	// Validation only requires 16 unique ones, so collapse duplicates
	// first (first occurrence wins, order preserved).
	data.Alphabet = dedupeAlphabet(cfg.Alphabet)

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &codec{h: h}, nil
}

// encode transforms a sequence of non-negative integers into a hash.
func (c *codec) encode(values []int64) (string, error) {
	return c.h.EncodeInt64(values)
}

// decode reverses a hash into the sequence it was encoded from.
func (c *codec) decode(hash string) ([]int64, error) {
	return c.h.DecodeInt64WithError(hash)
}

// dedupeAlphabet removes repeated runes, keeping first occurrences.
func dedupeAlphabet(alphabet string) string {
	var b strings.Builder
	b.Grow(len(alphabet))
	seen := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	return b.String()
}
