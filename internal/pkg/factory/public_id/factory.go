package public_id

import (
	"sync/atomic"
	"time"
)

// Factory выдает публичные идентификаторы пользователей из текущего времени в микросекундах.
// Значения строго возрастают внутри процесса, даже если часы отдают одинаковое время.
type Factory struct {
	last atomic.Int64
	now  func() time.Time
}

func New() *Factory {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Factory {
	return &Factory{now: now}
}

func (f *Factory) Next() int64 {
	candidate := f.now().UnixMicro()
	for {
		prev := f.last.Load()
		next := max(candidate, prev+1)
		if f.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}
