package service

import "sync/atomic"

// Counter — сквозной счетчик запросов. Инкрементируется каждой публичной
// операцией сервисов и гейтом доступности.
type Counter struct {
	n atomic.Int64
}

func NewCounter() *Counter { return &Counter{} }

// Increment атомарно добавляет 1 и возвращает новое значение.
func (c *Counter) Increment() int64 { return c.n.Add(1) }

func (c *Counter) Count() int64 { return c.n.Load() }

func (c *Counter) Reset() { c.n.Store(0) }
