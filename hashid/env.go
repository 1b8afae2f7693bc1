package hashid

import (
	"fmt"
	"os"
	"regexp"
)

// EnvResolver resolves deferred environment-variable references in salt
// fields.  The [Registry] consults it when a registered salt has the form
// %env(VAR)% — at first materialization, never at registration time.
type EnvResolver interface {
	// LookupEnv returns the value of the named variable and whether it is set.
	LookupEnv(name string) (string, bool)
}

// OSEnvResolver resolves against the process environment.  It is the
// [Registry]'s default resolver.
type OSEnvResolver struct{}

func (OSEnvResolver) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

// envRefPattern matches a whole-value %env(VAR)% reference.
var envRefPattern = regexp.MustCompile(`^%env\(([A-Za-z_][A-Za-z0-9_]*)\)%$`)

// envRef reports whether salt is a deferred reference and extracts the
// variable name.
func envRef(salt string) (string, bool) {
	m := envRefPattern.FindStringSubmatch(salt)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// resolveSalt replaces a %env(VAR)% salt with the variable's value.  A
// plain salt is returned as-is.  An unset variable is a configuration
// mistake and fails loudly; the error names the variable, never a salt
// value.
func resolveSalt(salt string, resolver EnvResolver) (string, error) {
	name, ok := envRef(salt)
	if !ok {
		return salt, nil
	}
	value, ok := resolver.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: salt references unset environment variable %s", ErrInvalidConfig, name)
	}
	return value, nil
}
