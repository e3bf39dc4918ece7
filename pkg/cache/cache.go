package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry struct {
	key        string
	value      []byte
	expiration time.Time
}

// LRUCache is a size-bounded cache whose entries also expire after ttl.
type LRUCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return newLRUCache(capacity, ttl, time.Now)
}

func newLRUCache(capacity int, ttl time.Duration, now func() time.Time) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		now:      now,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		return nil, false
	}
	ent := ele.Value.(*entry)
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)

	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiration = expiration
		return
	}

	c.items[key] = c.ll.PushFront(&entry{key: key, value: value, expiration: expiration})

	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry).key)
}

// Start launches the janitor that drops expired entries until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
