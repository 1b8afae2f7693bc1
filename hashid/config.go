package hashid

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	hashids "github.com/speps/go-hashids/v2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Defaults
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultAlphabet is the Hashids reference alphabet (62 alphanumeric
	// characters), used by the default and custom strategies.
	DefaultAlphabet = hashids.DefaultAlphabet

	// SecureAlphabet extends the reference alphabet with URL-safe symbols.
	// The larger character set shortens output for a given entropy and is
	// the secure strategy's default.
	SecureAlphabet = DefaultAlphabet + "!@#$%^&*_-+="

	// MinUniqueAlphabetChars is the smallest number of distinct characters
	// an alphabet may contain.  Duplicates in the raw string do not count.
	MinUniqueAlphabetChars = 16

	// SecureMinLength is the secure strategy's default minimum hash length.
	SecureMinLength = 16

	// CustomMinLength is the custom strategy's default minimum hash length.
	CustomMinLength = 8
)

// Override map keys accepted by [Factory.Create] and friends.  Any other
// key in an override map is rejected with [ErrInvalidConfig].
const (
	OverrideSalt      = "salt"
	OverrideMinLength = "min_length"
	OverrideAlphabet  = "alphabet"
)

// ──────────────────────────────────────────────────────────────────────────────
// Config
// ──────────────────────────────────────────────────────────────────────────────

// Config describes one codec instantiation.
//
// A Config is valid when MinLength is non-negative and Alphabet contains
// at least [MinUniqueAlphabetChars] distinct characters.  The Salt is
// treated as secret material: it is never logged by this package and never
// recoverable from a cache key.
type Config struct {
	// Salt parameterizes the Hashids transform.  May be empty (the
	// transform then runs unsalted; the secure strategy instead generates
	// a fresh salt per call, see [Factory.Create]).
	Salt string `mapstructure:"salt"`

	// MinLength pads encoded output up to the given length.
	// Must be >= 0.
	MinLength int `mapstructure:"min_length" validate:"min=0"`

	// Alphabet is the character set used for encoded output.
	// Must contain at least 16 unique characters.
	Alphabet string `mapstructure:"alphabet" validate:"alphabet"`
}

// DefaultConfig returns the built-in fallback configuration: no salt, no
// minimum length, the Hashids reference alphabet.
func DefaultConfig() Config {
	return Config{Alphabet: DefaultAlphabet}
}

// withDefaults fills zero-valued fields that have a package-wide default.
// Only the alphabet has one; an empty salt and a zero minimum length are
// legitimate settings.
func (c Config) withDefaults() Config {
	if c.Alphabet == "" {
		c.Alphabet = DefaultAlphabet
	}
	return c
}

// uniqueChars counts distinct runes in s.
func uniqueChars(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// validate is the shared struct validator.  The custom "alphabet" rule
// enforces the unique-character floor; raw string length is irrelevant.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag or nil func.
	_ = v.RegisterValidation("alphabet", func(fl validator.FieldLevel) bool {
		return uniqueChars(fl.Field().String()) >= MinUniqueAlphabetChars
	})
	return v
}

// Validate checks the configuration invariants and returns an error
// wrapping [ErrInvalidConfig] on the first violation.  The salt is never
// included in the error message.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].StructField() {
		case "MinLength":
			return fmt.Errorf("%w: min_length must be >= 0, got %d", ErrInvalidConfig, c.MinLength)
		case "Alphabet":
			return fmt.Errorf("%w: alphabet must contain at least %d unique characters, got %d",
				ErrInvalidConfig, MinUniqueAlphabetChars, uniqueChars(c.Alphabet))
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// typeConfig layers typ's defaults over the factory-level base.  Fields a
// type defines a default for shadow the factory default; per-call
// overrides are applied on top of the result by mergeOverrides.
func typeConfig(typ HasherType, base Config) Config {
	switch typ {
	case TypeSecure:
		base.MinLength = SecureMinLength
		base.Alphabet = SecureAlphabet
	case TypeCustom:
		base.MinLength = CustomMinLength
	}
	return base
}

// mergeOverrides applies an override map onto base, field by field.
// Unknown keys and wrongly typed values fail with [ErrInvalidConfig]; a
// nil or empty map is a no-op.
func mergeOverrides(base Config, overrides map[string]any) (Config, error) {
	for key, raw := range overrides {
		switch key {
		case OverrideSalt:
			s, ok := raw.(string)
			if !ok {
				return Config{}, fmt.Errorf("%w: override %q must be a string, got %T", ErrInvalidConfig, key, raw)
			}
			base.Salt = s
		case OverrideMinLength:
			n, ok := toInt(raw)
			if !ok {
				return Config{}, fmt.Errorf("%w: override %q must be an integer, got %T", ErrInvalidConfig, key, raw)
			}
			base.MinLength = n
		case OverrideAlphabet:
			s, ok := raw.(string)
			if !ok {
				return Config{}, fmt.Errorf("%w: override %q must be a string, got %T", ErrInvalidConfig, key, raw)
			}
			base.Alphabet = s
		default:
			return Config{}, fmt.Errorf("%w: unknown override key %q", ErrInvalidConfig, key)
		}
	}
	return base, nil
}

// toInt normalises the integer types an override value may arrive as.
// JSON decoding yields float64; only integral floats are accepted.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
