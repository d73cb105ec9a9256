// Package bounded provides the fixed-capacity collections used by the
// generator. Capacity is decided once, before generation starts; adding past
// it fails with a *CapacityError instead of growing.
package bounded

import (
	"fmt"

	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// WarnRatio is the fill level at which a collection logs its single
// advisory warning.
const WarnRatio = 0.75

var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityError names the collection that overflowed and the call site
// that tried to add to it.
type CapacityError struct {
	Collection string
	Site       string
	Capacity   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %s size limitation reached (%d): %s", ErrCapacityExceeded, e.Collection, e.Capacity, e.Site)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// List is an ordered collection that never holds more than Cap items.
type List[T any] struct {
	name   string
	items  []T
	max    int
	warned bool
	logger *logger.ZapLogger
}

// New allocates a list able to hold capacity items. logger may be nil, in which
// case the capacity warning is dropped.
func New[T any](name string, capacity int, logger *logger.ZapLogger) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{
		name:   name,
		items:  make([]T, 0, capacity),
		max:    capacity,
		logger: logger,
	}
}

// Add appends item. site identifies the caller in errors and warnings.
func (l *List[T]) Add(item T, site string) error {
	if len(l.items) == l.max {
		return &CapacityError{Collection: l.name, Site: site, Capacity: l.max}
	}
	if !l.warned && float64(len(l.items))/float64(l.max) > WarnRatio {
		l.warned = true
		if l.logger != nil {
			l.logger.Warn("[b] Collection above 75% capacity",
				zap.String("collection", l.name),
				zap.String("site", site),
				zap.Int("len", len(l.items)),
				zap.Int("cap", l.max))
		}
	}
	l.items = append(l.items, item)
	return nil
}

// Pop removes and returns the last item.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	item := l.items[len(l.items)-1]
	l.items = l.items[:len(l.items)-1]
	return item, true
}

// Items exposes the backing slice. Callers may mutate elements in place but
// must not append to it.
func (l *List[T]) Items() []T { return l.items }

func (l *List[T]) Len() int     { return len(l.items) }
func (l *List[T]) Cap() int     { return l.max }
func (l *List[T]) Name() string { return l.name }
func (l *List[T]) Warned() bool { return l.warned }

// Reset empties the list but keeps its capacity and warning state.
func (l *List[T]) Reset() {
	l.items = l.items[:0]
}
