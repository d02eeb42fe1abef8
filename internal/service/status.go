package service

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
)

// Сообщения статуса отдаются клиенту как есть.
const (
	MsgAvailable   = "Сервис работает в штатном режиме"
	MsgUnavailable = "Сервис временно недоступен"
	MsgRetryLater  = "Сервис временно недоступен. Пожалуйста, попробуйте позже."
)

// Status — процессный флаг доступности сервиса. Создается один раз в билдере
// и инжектится всюду, где нужен гейт; по умолчанию сервис доступен.
type Status struct {
	available atomic.Bool
	counter   *Counter
}

func NewStatus(counter *Counter) *Status {
	s := &Status{counter: counter}
	s.available.Store(true)
	return s
}

// IsServerAvailable — гейтовая проверка: сама считается запросом.
func (s *Status) IsServerAvailable() bool {
	s.counter.Increment()
	return s.available.Load()
}

func (s *Status) SetAvailable(v bool) { s.available.Store(v) }

// UpdateAndGetStatus интерпретирует "available"/"unavailable" без учета
// регистра; любое другое значение (в т.ч. пустое) флаг не меняет.
// Всегда возвращает снимок текущего состояния.
func (s *Status) UpdateAndGetStatus(status string) domain.StatusInfo {
	s.counter.Increment()

	switch strings.ToLower(status) {
	case "available":
		s.available.Store(true)
	case "unavailable":
		s.available.Store(false)
	}

	info := domain.StatusInfo{
		TotalRequests: strconv.FormatInt(s.counter.Count(), 10),
	}
	if s.available.Load() {
		info.Status = "available"
		info.Message = MsgAvailable
	} else {
		info.Status = "unavailable"
		info.Message = MsgUnavailable
	}
	return info
}
