package hashid

// Statistics is a point-in-time snapshot of the factory's instance-cache
// counters.  Counters start at zero when the factory is constructed, are
// mutated only by [Factory.Create] and [Factory.PreloadConfiguration],
// and are resettable independently of the cache contents.  Derived fields
// are computed when the snapshot is taken, not pre-aggregated.
type Statistics struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`

	CurrentSize int `json:"current_size"`
	MaxSize     int `json:"max_size"`

	// HitRate is Hits/(Hits+Misses), zero when no create call has been made.
	HitRate float64 `json:"hit_rate"`
	// Usage is CurrentSize/MaxSize.
	Usage float64 `json:"usage"`
}

// cacheCounters are the raw counters the factory mutates under its lock.
// Synchronisation lives at the factory level, so the struct itself stays
// free of atomics.
type cacheCounters struct {
	hits      uint64
	misses    uint64
	evictions uint64
}

// snapshot derives a Statistics record from the counters and the current
// cache occupancy.
func (c cacheCounters) snapshot(currentSize, maxSize int) Statistics {
	s := Statistics{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		CurrentSize: currentSize,
		MaxSize:     maxSize,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	if maxSize > 0 {
		s.Usage = float64(currentSize) / float64(maxSize)
	}
	return s
}
