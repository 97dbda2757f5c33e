package trace

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Progress counts the files of a batch. Heartbeats print it, so a stuck
// run shows which share of the tree it got through. A nil *Progress
// ignores updates.
type Progress struct {
	planned atomic.Int64
	done    atomic.Int64
	failed  atomic.Int64
}

// Plan announces n more files.
func (p *Progress) Plan(n int) {
	if p != nil {
		p.planned.Add(int64(n))
	}
}

// Finish records one processed file.
func (p *Progress) Finish(failed bool) {
	if p == nil {
		return
	}
	p.done.Add(1)
	if failed {
		p.failed.Add(1)
	}
}

func (p *Progress) String() string {
	if p == nil {
		return ""
	}
	s := fmt.Sprintf("files %d/%d", p.done.Load(), p.planned.Load())
	if n := p.failed.Load(); n > 0 {
		s += fmt.Sprintf(", %d with errors", n)
	}
	return s
}

type progressKey struct{}

// WithProgress attaches p to ctx for the batch driver.
func WithProgress(ctx context.Context, p *Progress) context.Context {
	return context.WithValue(ctx, progressKey{}, p)
}

// ProgressFrom returns the Progress attached to ctx, or nil.
func ProgressFrom(ctx context.Context) *Progress {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(progressKey{}).(*Progress)
	return p
}

// Heartbeat emits a KindHeartbeat event every interval until stopped.
// When heartbeats keep coming and the file counter does not move, a file
// is stuck in the rewrite.
type Heartbeat struct {
	tracer   Tracer
	progress *Progress
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// StartHeartbeat returns nil when tracing is off or every is not positive.
// p may be nil.
func StartHeartbeat(t Tracer, every time.Duration, p *Progress) *Heartbeat {
	if t == nil || !t.Enabled() || every <= 0 {
		return nil
	}
	h := &Heartbeat{tracer: t, progress: p, stop: make(chan struct{}), done: make(chan struct{})}
	go h.loop(every)
	return h
}

func (h *Heartbeat) loop(every time.Duration) {
	defer close(h.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case now := <-ticker.C:
			h.tracer.Emit(h.beat(now, n))
		case <-h.stop:
			return
		}
	}
}

func (h *Heartbeat) beat(now time.Time, n int) *Event {
	detail := fmt.Sprintf("#%d", n)
	if h.progress != nil {
		detail += " " + h.progress.String()
	}
	return &Event{Time: now, Kind: KindHeartbeat, Scope: ScopeDriver, Name: "heartbeat", Detail: detail}
}

// Stop ends the goroutine and waits for it. Safe on nil and repeated calls.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
