package trace

import (
	"io"
	"slices"
	"sync"
	"time"
)

// RingTracer keeps the last events of a run in memory and dumps them on
// exit, so `--trace-mode ring` costs nothing until a batch goes wrong.
type RingTracer struct {
	mu     sync.RWMutex
	buf    []Event
	next   int    // слот для следующего события
	seen   uint64 // сколько событий принято всего
	level  Level
	origin time.Time
}

// NewRingTracer falls back to the default size when size is not positive.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = defaultRingSize
	}
	return &RingTracer{buf: make([]Event, size), level: level, origin: time.Now()}
}

// keeps reports whether ev belongs in the buffer. At LevelError the phase
// events are kept too, otherwise a dump after a failure has no context.
func (t *RingTracer) keeps(ev *Event) bool {
	if ev.Kind == KindHeartbeat || t.level.ShouldEmit(ev.Scope) {
		return true
	}
	return t.level == LevelError && ev.Scope <= ScopePhase
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.keeps(ev) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf[t.next] = *ev
	t.buf[t.next].Seq = NextSeq()
	t.next = (t.next + 1) % len(t.buf)
	t.seen++
}

// Snapshot returns the stored events oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.seen < uint64(len(t.buf)) {
		return slices.Clone(t.buf[:t.next])
	}
	return slices.Concat(t.buf[t.next:], t.buf[:t.next])
}

// Overwritten returns how many events fell out of the buffer.
func (t *RingTracer) Overwritten() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.seen - min(t.seen, uint64(len(t.buf)))
}

// Dump writes the stored events to w, oldest first.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	events := t.Snapshot()
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format, t.origin)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
