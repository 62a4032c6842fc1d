package categorizer

import (
	"sync"
	"time"
)

// paymentCatalogCache keeps the last loaded payment catalog for a TTL. The
// cached scorer is replaced wholesale on refresh, never mutated.
type paymentCatalogCache struct {
	mu     sync.RWMutex
	scorer *Scorer
	expiry time.Time
	ttl    time.Duration
	now    func() time.Time
}

func newPaymentCatalogCache(ttl time.Duration) *paymentCatalogCache {
	return &paymentCatalogCache{ttl: ttl, now: time.Now}
}

// get returns the cached scorer if it has not expired.
func (c *paymentCatalogCache) get() (*Scorer, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.scorer == nil || c.now().After(c.expiry) {
		return nil, false
	}
	return c.scorer, true
}

// set stores scorer until now+ttl.
func (c *paymentCatalogCache) set(scorer *Scorer) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scorer = scorer
	c.expiry = c.now().Add(c.ttl)
}
