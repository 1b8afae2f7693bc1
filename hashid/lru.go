package hashid

import "container/list"

// lruCache is a bounded least-recently-used cache of hasher instances.
// It is not safe for concurrent use on its own; the owning [Factory]
// serialises access under its mutex.
type lruCache struct {
	maxSize int
	order   *list.List // front = most recently used
	entries map[CacheKey]*list.Element
}

type lruEntry struct {
	key    CacheKey
	hasher Hasher
}

func newLRUCache(maxSize int) *lruCache {
	return &lruCache{
		maxSize: maxSize,
		order:   list.New(),
		entries: make(map[CacheKey]*list.Element, maxSize),
	}
}

// get returns the hasher stored under key and marks it most recently used.
func (c *lruCache) get(key CacheKey) (Hasher, bool) {
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).hasher, true
}

// put inserts a hasher under key and reports whether an entry had to be
// evicted to stay within maxSize.  Inserting an existing key replaces the
// value and counts as a touch, not an eviction.
func (c *lruCache) put(key CacheKey, h Hasher) (evicted bool) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*lruEntry).hasher = h
		c.order.MoveToFront(el)
		return false
	}
	if c.order.Len() >= c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*lruEntry).key)
			evicted = true
		}
	}
	c.entries[key] = c.order.PushFront(&lruEntry{key: key, hasher: h})
	return evicted
}

func (c *lruCache) len() int { return c.order.Len() }

func (c *lruCache) clear() {
	c.order.Init()
	clear(c.entries)
}
