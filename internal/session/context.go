package session

import "sync"

// Context is a per-conversation key/value store. It doubles as a
// read-through cache and as the channel carrying workflow state between
// sequential operations. A Context is never shared across customers or
// sessions; implementations must still be safe for pipelined concurrent
// calls against the same session.
type Context interface {
	Get(key string) (any, bool)
	Put(key string, value any)
	Remove(key string)
	Clear()
}

type memoryContext struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewContext returns an in-memory Context.
func NewContext() Context {
	return &memoryContext{values: make(map[string]any)}
}

func (c *memoryContext) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.values[key]
	return value, ok
}

func (c *memoryContext) Put(key string, value any) {
	c.mu.Lock()
	c.values[key] = value
	c.mu.Unlock()
}

func (c *memoryContext) Remove(key string) {
	c.mu.Lock()
	delete(c.values, key)
	c.mu.Unlock()
}

func (c *memoryContext) Clear() {
	c.mu.Lock()
	c.values = make(map[string]any)
	c.mu.Unlock()
}
