// Package config loads named hasher configurations from a file and feeds
// them into a [hashid.Registry].
//
// The expected document shape (YAML shown; JSON and TOML work the same
// way through viper):
//
//	hashers:
//	  default:
//	    salt: "not-so-secret"
//	    min_length: 10
//	  secure-api:
//	    salt: "%env(SECURE_API_SALT)%"
//	    min_length: 16
//
// Salt values may use the %env(VAR)% form; the registry resolves them
// lazily at first use, so the referenced variables only need to exist by
// then.  [LoadDotenv] is provided for processes that keep that material in
// a .env file.
package config

import (
	"fmt"
	"strings"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/spf13/viper"

	"github.com/uniacid/go-hashid-utils/hashid"
)

// envPrefix scopes the environment overrides viper layers on top of the
// file: HASHID_HASHERS_DEFAULT_SALT overrides hashers.default.salt.
const envPrefix = "HASHID"

// document is the root shape of a configuration file.
type document struct {
	Hashers map[string]hashid.Config `mapstructure:"hashers"`
}

// Load reads the configuration file at path and returns its named hasher
// configurations.  The format is inferred from the file extension.
// Entries are not validated here; registration is the validation point.
func Load(path string) (map[string]hashid.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return doc.Hashers, nil
}

// LoadInto loads the file at path and registers every entry into reg as
// one batch.  Registration is all-or-nothing: one invalid entry leaves the
// registry exactly as it was.
func LoadInto(path string, reg *hashid.Registry) error {
	hashers, err := Load(path)
	if err != nil {
		return err
	}
	if err := reg.RegisterHashers(hashers); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// LoadDotenv loads a .env file into the process environment so that
// %env(VAR)% salt references can resolve.  Call it before the first
// [hashid.Registry.GetConverter] on an env-salted name.
func LoadDotenv(path string) error {
	if err := env.Load(path); err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}
	return nil
}
