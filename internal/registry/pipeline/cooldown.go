package pipeline

import (
	"sync"
	"time"
)

// DefaultCooldown is how long a rate-limited provider sits out of a run.
const DefaultCooldown = 30 * time.Second

// Cooldowns tracks per-provider rate-limit state for one run. Each bulk run
// owns its own instance so concurrent runs stay isolated; the mutex is the
// only synchronization workers share.
type Cooldowns struct {
	mu       sync.Mutex
	duration time.Duration
	until    map[string]time.Time
}

// NewCooldowns builds an empty tracker. d <= 0 selects DefaultCooldown.
func NewCooldowns(d time.Duration) *Cooldowns {
	if d <= 0 {
		d = DefaultCooldown
	}
	return &Cooldowns{duration: d, until: make(map[string]time.Time)}
}

// Trip marks a provider as rate limited from now.
func (c *Cooldowns) Trip(provider string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.until[provider] = time.Now().Add(c.duration)
}

// Active reports whether a provider is still cooling down.
func (c *Cooldowns) Active(provider string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	deadline, ok := c.until[provider]
	if !ok {
		return false
	}
	if time.Now().After(deadline) {
		delete(c.until, provider)
		return false
	}
	return true
}
