package device

import (
	"sync"
	"time"
)

// settleDelay is how long a viewport event is allowed to settle before the
// host dimensions are re-read. Hosts finish their own reflow within this
// window, so reads taken earlier would observe stale values.
const settleDelay = 100 * time.Millisecond

// EventSource delivers orientation-change and resize notifications from the
// host. Events carry no payload: dimensions are always re-read from the host
// after the settle delay, so stale event data cannot leak into the result.
type EventSource interface {
	OrientationChanges() <-chan struct{}
	Resizes() <-chan struct{}
}

// ChannelEventSource is a basic EventSource over two caller-fed channels.
type ChannelEventSource struct {
	Orientation chan struct{}
	Resize      chan struct{}
}

// NewChannelEventSource creates an event source with buffered channels so
// emitters never block.
func NewChannelEventSource() *ChannelEventSource {
	return &ChannelEventSource{
		Orientation: make(chan struct{}, 8),
		Resize:      make(chan struct{}, 8),
	}
}

func (s *ChannelEventSource) OrientationChanges() <-chan struct{} { return s.Orientation }
func (s *ChannelEventSource) Resizes() <-chan struct{}            { return s.Resize }

// SubscribeOrientationChanges listens on both event sources and, after each
// event settles, invokes fn with a freshly computed Orientation. Multiple
// rapid events schedule multiple callbacks; that is harmless because the
// computation is idempotent and cheap.
//
// The returned unsubscribe function deregisters both listeners and stops all
// pending callbacks. Calling it more than once is a no-op. Each call to
// SubscribeOrientationChanges owns one listener goroutine; the caller must
// invoke unsubscribe on teardown or the goroutine leaks.
func SubscribeOrientationChanges(src EventSource, host Host, fn func(Orientation)) (unsubscribe func()) {
	done := make(chan struct{})

	fire := func() {
		time.AfterFunc(settleDelay, func() {
			select {
			case <-done:
				return
			default:
			}
			fn(currentOrientation(host))
		})
	}

	go func() {
		orientation := src.OrientationChanges()
		resize := src.Resizes()
		for {
			select {
			case <-done:
				return
			case _, ok := <-orientation:
				if !ok {
					orientation = nil
					continue
				}
				fire()
			case _, ok := <-resize:
				if !ok {
					resize = nil
					continue
				}
				fire()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
		})
	}
}
