package hashid

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// DefaultHasherName is the registry's built-in entry.  It resolves to the
// package default configuration even when nothing was ever registered
// under it, and can be overwritten like any other name.
const DefaultHasherName = "default"

// registryEntry tracks one named configuration through its lifecycle:
// registered (converter nil) → materialized (converter set).
// Re-registration replaces the entry, discarding the materialized
// converter.
type registryEntry struct {
	cfg       Config
	converter Converter
}

// Registry maps stable logical names to hasher configurations and lazily
// materializes one [Converter] per name through a [Factory].
//
// Configurations are validated at registration time; %env(VAR)% salt
// references are resolved at first use instead, so a registry can be
// populated before its secret material is available.
//
// # Thread safety
//
// A Registry is safe for concurrent use.  One mutex guards the name map
// and the lazy materialization path, so concurrent first requests for the
// same name build exactly one converter.
type Registry struct {
	mu      sync.Mutex
	factory *Factory
	entries map[string]*registryEntry
	env     EnvResolver
	log     *zap.Logger
}

// RegistryOption customises a [Registry] at construction time.
type RegistryOption func(*Registry)

// WithEnvResolver replaces the resolver used for %env(VAR)% salt
// references.  The default resolves against the process environment.
func WithEnvResolver(resolver EnvResolver) RegistryOption {
	return func(r *Registry) {
		if resolver != nil {
			r.env = resolver
		}
	}
}

// WithRegistryLogger attaches a structured logger.  Registrations and
// materializations are logged at Debug; salts never are.
func WithRegistryLogger(log *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty Registry on top of factory.
func NewRegistry(factory *Factory, opts ...RegistryOption) (*Registry, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	r := &Registry{
		factory: factory,
		entries: make(map[string]*registryEntry),
		env:     OSEnvResolver{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RegisterHasher validates cfg and stores it under name, overwriting any
// prior registration and discarding that name's materialized converter.
//
// A %env(VAR)% salt is accepted as-is here; the variable is read when the
// name is first materialized by [Registry.GetConverter].
func (r *Registry) RegisterHasher(name string, cfg Config) error {
	if name == "" {
		return ErrEmptyHasherName
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &registryEntry{cfg: cfg}
	r.log.Debug("hasher registered", zap.String("name", name))
	return nil
}

// RegisterHashers registers a batch of named configurations atomically:
// when any entry is invalid, nothing from the batch is committed, so a
// partially configured registry can never result from one bad entry.
func (r *Registry) RegisterHashers(configs map[string]Config) error {
	validated := make(map[string]Config, len(configs))
	for name, cfg := range configs {
		if name == "" {
			return ErrEmptyHasherName
		}
		cfg = cfg.withDefaults()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("register %q: %w", name, err)
		}
		validated[name] = cfg
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for name, cfg := range validated {
		r.entries[name] = &registryEntry{cfg: cfg}
	}
	r.log.Debug("hashers registered", zap.Int("count", len(validated)))
	return nil
}

// GetConverter returns the converter for name, building it through the
// factory on first use and memoizing it until the name is re-registered.
// Unknown names fail with [ErrHasherNotFound] naming the missing key;
// [DefaultHasherName] is always resolvable.
func (r *Registry) GetConverter(name string) (Converter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[name]
	if !ok {
		if name != DefaultHasherName {
			return nil, fmt.Errorf("%w: %q", ErrHasherNotFound, name)
		}
		// Built-in fallback, registered on first touch.
		entry = &registryEntry{cfg: DefaultConfig()}
		r.entries[name] = entry
	}
	if entry.converter != nil {
		return entry.converter, nil
	}

	salt, err := resolveSalt(entry.cfg.Salt, r.env)
	if err != nil {
		return nil, fmt.Errorf("materialize %q: %w", name, err)
	}
	typ := TypeCustom
	if name == DefaultHasherName {
		typ = TypeDefault
	}
	conv, err := r.factory.CreateConverter(string(typ), map[string]any{
		OverrideSalt:      salt,
		OverrideMinLength: entry.cfg.MinLength,
		OverrideAlphabet:  entry.cfg.Alphabet,
	})
	if err != nil {
		return nil, fmt.Errorf("materialize %q: %w", name, err)
	}
	entry.converter = conv
	r.log.Debug("hasher materialized", zap.String("name", name), zap.String("type", string(typ)))
	return conv, nil
}

// HasHasher reports whether name resolves to a configuration.  The
// built-in [DefaultHasherName] always does.
func (r *Registry) HasHasher(name string) bool {
	if name == DefaultHasherName {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[name]
	return ok
}

// HasherNames returns all resolvable names in sorted order, including the
// built-in [DefaultHasherName].
func (r *Registry) HasherNames() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.entries)+1)
	for name := range r.entries {
		names = append(names, name)
	}
	if _, ok := r.entries[DefaultHasherName]; !ok {
		names = append(names, DefaultHasherName)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}
