package events

import (
	"reflect"
	"regexp"
	"sync"
)

// Handler receives the payload of a single emitted event. The payload may be
// nil for signal-only events.
type Handler func(data any)

// AllHandler receives every emission on the bus, used for cross-cutting
// concerns such as diagnostics.
type AllHandler func(ev Event)

// Event pairs an event name with its payload for catch-all listeners.
type Event struct {
	Name string
	Data any
}

type subscription struct {
	name    string
	pattern *regexp.Regexp
	fn      Handler
	ptr     uintptr
}

type allSubscription struct {
	fn  AllHandler
	ptr uintptr
}

// Bus is a synchronous in-process publish/subscribe dispatcher. Emit invokes
// matching handlers in registration order on the calling goroutine and is
// re-entrant: a handler may itself emit. Subscriptions added or removed while
// a dispatch runs only take effect for later emissions. A panicking handler
// is not recovered here; propagation is the emitter's problem.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
	all  []allSubscription
}

// New creates an empty bus. It is meant to be constructed once, owned by the
// top-level coordinator and passed by reference, never held as a global.
func New() *Bus {
	return &Bus{}
}

func handlerPtr(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// On registers fn for every future emission of the named event.
func (b *Bus) On(name string, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{name: name, fn: fn, ptr: handlerPtr(fn)})
}

// OnRegexp registers fn for every event whose name matches pattern, so one
// registration can receive a whole family of event types.
func (b *Bus) OnRegexp(pattern *regexp.Regexp, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{pattern: pattern, fn: fn, ptr: handlerPtr(fn)})
}

// Off removes the first subscription matching the name/handler pair. Removing
// a pair that was never registered is a no-op, not an error.
//
// Handler identity is the function's code pointer, so distinct closures
// created from the same function literal (for example in a loop) share one
// identity: Off then removes the earliest such registration, not necessarily
// the closure passed. Callers needing exact removal must register distinct
// named functions or methods.
func (b *Bus) Off(name string, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ptr := handlerPtr(fn)
	for i, s := range b.subs {
		if s.pattern == nil && s.name == name && s.ptr == ptr {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// OffRegexp removes the exact pattern/handler pair registered via OnRegexp.
func (b *Bus) OffRegexp(pattern *regexp.Regexp, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ptr := handlerPtr(fn)
	for i, s := range b.subs {
		if s.pattern == pattern && s.ptr == ptr {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// OnAll registers a catch-all listener that receives every emission after the
// per-event handlers have run.
func (b *Bus) OnAll(fn AllHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, allSubscription{fn: fn, ptr: handlerPtr(fn)})
}

// OffAll removes a previously registered catch-all listener.
func (b *Bus) OffAll(fn AllHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ptr := handlerPtr(fn)
	for i, s := range b.all {
		if s.ptr == ptr {
			b.all = append(b.all[:i:i], b.all[i+1:]...)
			return
		}
	}
}

// Emit synchronously invokes every handler whose subscription matches name,
// in registration order, then every catch-all listener. The matching set is
// snapshotted up front, so handlers may safely mutate subscriptions.
func (b *Bus) Emit(name string, data any) {
	b.mu.RLock()
	matched := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if s.pattern != nil {
			if s.pattern.MatchString(name) {
				matched = append(matched, s.fn)
			}
		} else if s.name == name {
			matched = append(matched, s.fn)
		}
	}
	catchAll := make([]AllHandler, len(b.all))
	for i, s := range b.all {
		catchAll[i] = s.fn
	}
	b.mu.RUnlock()

	for _, fn := range matched {
		fn(data)
	}
	for _, fn := range catchAll {
		fn(Event{Name: name, Data: data})
	}
}

// Trigger returns a callback that emits the named event when invoked,
// merging context over the callback's payload. It lets a collaborator fire
// pre-bound events without holding a bus reference.
func (b *Bus) Trigger(name string, context map[string]any) func(data map[string]any) {
	return func(data map[string]any) {
		merged := make(map[string]any, len(data)+len(context))
		for k, v := range data {
			merged[k] = v
		}
		for k, v := range context {
			merged[k] = v
		}
		b.Emit(name, merged)
	}
}
