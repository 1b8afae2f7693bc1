package hashid

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Factory constructs, validates, and caches hasher instances.
//
// It is the single point where type resolution, configuration merging,
// validation, secure-salt generation, and instance caching happen.  The
// instance cache is bounded and evicts least-recently-used entries; its
// behaviour is observable through [Factory.CacheStatistics].
//
// # Thread safety
//
// A Factory is safe for concurrent use by multiple goroutines.  One mutex
// guards the cache and its counters; instance construction for a cache
// miss happens under that mutex, so at most one instance is ever built per
// distinct cache key — concurrent first accesses collapse to a single
// winner and the losers reuse its instance.
type Factory struct {
	mu       sync.Mutex
	defaults Config
	cache    *lruCache
	counters cacheCounters
	log      *zap.Logger
}

// FactoryOption customises a [Factory] at construction time.
type FactoryOption func(*Factory)

// WithLogger attaches a structured logger.  The factory logs cache events
// at Debug; it never logs salt material, only canonical key fingerprints.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) FactoryOption {
	return func(f *Factory) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFactory creates a Factory with the given default parameters.
//
// The defaults are validated immediately: a negative minLength, an
// alphabet with fewer than 16 unique characters, or a non-positive
// maxCacheSize fail with [ErrInvalidConfig].  An empty alphabet falls back
// to [DefaultAlphabet]; an empty salt is allowed.
func NewFactory(salt string, minLength int, alphabet string, maxCacheSize int, opts ...FactoryOption) (*Factory, error) {
	defaults := Config{Salt: salt, MinLength: minLength, Alphabet: alphabet}.withDefaults()
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	if maxCacheSize <= 0 {
		return nil, fmt.Errorf("%w: max cache size must be positive, got %d", ErrInvalidConfig, maxCacheSize)
	}

	f := &Factory{
		defaults: defaults,
		cache:    newLRUCache(maxCacheSize),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// effectiveConfig runs the shared validation pipeline: closed-set type
// check, default merge (overrides over type defaults over factory
// defaults), re-validation, and secure-salt generation.
func (f *Factory) effectiveConfig(typName string, overrides map[string]any) (HasherType, Config, error) {
	typ, err := ParseHasherType(typName)
	if err != nil {
		return "", Config{}, err
	}
	cfg, err := mergeOverrides(typeConfig(typ, f.defaults), overrides)
	if err != nil {
		return "", Config{}, err
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return "", Config{}, err
	}
	// A secure hasher must never run unsalted.  The salt is fresh on every
	// call, so repeated secure creates without a salt produce distinct
	// instances under distinct cache keys.
	if typ == TypeSecure && cfg.Salt == "" {
		salt, err := GenerateSecureSalt()
		if err != nil {
			return "", Config{}, err
		}
		cfg.Salt = salt
	}
	return typ, cfg, nil
}

// Create returns a hasher for the given type name and overrides, drawn
// from the instance cache when an equivalent configuration has been seen
// before.
//
// Unknown type names fail with [ErrUnknownHasherType]; invalid effective
// configurations fail with [ErrInvalidConfig] even when the factory
// defaults are valid.  Every call records exactly one cache hit or miss.
func (f *Factory) Create(typName string, overrides map[string]any) (Hasher, error) {
	h, _, err := f.create(typName, overrides)
	return h, err
}

// PreloadConfiguration validates and caches a configuration exactly as
// [Factory.Create] would, returning the canonical cache key instead of the
// instance.  Use it to pre-warm the cache at startup.
func (f *Factory) PreloadConfiguration(typName string, overrides map[string]any) (CacheKey, error) {
	_, key, err := f.create(typName, overrides)
	return key, err
}

func (f *Factory) create(typName string, overrides map[string]any) (Hasher, CacheKey, error) {
	typ, cfg, err := f.effectiveConfig(typName, overrides)
	if err != nil {
		return nil, "", err
	}
	key := cacheKey(typ, cfg)

	f.mu.Lock()
	defer f.mu.Unlock()

	if h, ok := f.cache.get(key); ok {
		f.counters.hits++
		f.log.Debug("hasher cache hit",
			zap.String("type", string(typ)), zap.String("key", string(key)))
		return h, key, nil
	}

	f.counters.misses++
	h, err := newHasher(typ, cfg)
	if err != nil {
		return nil, "", err
	}
	if f.cache.put(key, h) {
		f.counters.evictions++
		f.log.Debug("hasher cache eviction",
			zap.String("type", string(typ)), zap.Int("size", f.cache.len()))
	}
	f.log.Debug("hasher created",
		zap.String("type", string(typ)), zap.String("key", string(key)),
		zap.Int("size", f.cache.len()))
	return h, key, nil
}

// CreateConverter runs the same validation and merge pipeline as
// [Factory.Create] but always constructs a fresh codec-backed converter,
// bypassing the instance cache and its statistics.  Use it when instance
// identity must not be shared.
func (f *Factory) CreateConverter(typName string, overrides map[string]any) (Converter, error) {
	typ, cfg, err := f.effectiveConfig(typName, overrides)
	if err != nil {
		return nil, err
	}
	return newHasher(typ, cfg)
}

// AvailableTypes returns the closed set of supported type names in stable
// order.
func (f *Factory) AvailableTypes() []string {
	return HasherTypes()
}

// CacheStatistics returns a snapshot of the cache counters with derived
// rates computed at read time.
func (f *Factory) CacheStatistics() Statistics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counters.snapshot(f.cache.len(), f.cache.maxSize)
}

// ClearInstanceCache empties the instance cache.  Statistics counters are
// left untouched; use [Factory.ResetCacheStatistics] for those.
func (f *Factory) ClearInstanceCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache.clear()
	f.log.Debug("hasher cache cleared")
}

// ResetCacheStatistics zeroes the hit, miss, and eviction counters without
// touching the cache contents.
func (f *Factory) ResetCacheStatistics() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = cacheCounters{}
}
