package memory

import (
	"log"
	"sync"
)

// Cache — внутрипроцессный k/v кеш поверх карты под RWMutex.
// Без TTL и вытеснения: отсутствие значения означает «пересчитать из БД».
type Cache struct {
	logger *log.Logger

	mu sync.RWMutex
	m  map[string]any
}

func New(logger *log.Logger) *Cache {
	return &Cache{logger: logger, m: make(map[string]any)}
}

func (c *Cache) Put(key string, val any) {
	c.mu.Lock()
	c.m[key] = val
	c.mu.Unlock()
	c.logger.Printf("PUT %q", key)
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	v, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		c.logger.Printf("GET %q: hit", key)
	} else {
		c.logger.Printf("GET %q: miss", key)
	}
	return v, ok
}

// Remove удаляет ключи; отсутствующий ключ — не ошибка.
func (c *Cache) Remove(keys ...string) {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.m, k)
	}
	c.mu.Unlock()
	c.logger.Printf("DEL %v", keys)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.m = make(map[string]any)
	c.mu.Unlock()
	c.logger.Println("CLEAR")
}

// Len — количество живых записей (для тестов и readiness-метрик).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
