package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevelShouldEmit(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePhase, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeItem, false},
		{LevelDebug, ScopeItem, true},
	}
	for _, c := range cases {
		if got := c.level.ShouldEmit(c.scope); got != c.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", c.level, c.scope, got, c.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != s {
			t.Errorf("round trip %q -> %q", s, l.String())
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestStreamTracerSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, root := BeginCtx(ctx, ScopeDriver, "expand")
	_, parse := BeginCtx(ctx, ScopePhase, "parse")
	parse.WithExtra("items", "3").End("")
	_, file := BeginCtx(ctx, ScopeFile, "file:lib.rs") // below LevelPhase
	file.End("")
	root.End("ok")

	out := buf.String()
	for _, want := range []string{"→ expand", "  → parse", "← parse", "{items=3}", "← expand", "(ok)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "file:lib.rs") {
		t.Errorf("file span leaked at phase level:\n%s", out)
	}
	if parse.ID() == 0 || file.ID() != 0 {
		t.Errorf("unexpected span ids parse=%d file=%d", parse.ID(), file.ID())
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeItem, "item", "fn `f`", 7)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "item" || got["detail"] != "fn `f`" {
		t.Errorf("unexpected event %v", got)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for i := 0; i < 5; i++ {
		Point(r, ScopeItem, "p", string(rune('a'+i)), 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d, want 3", len(snap))
	}
	if snap[0].Detail != "c" || snap[2].Detail != "e" {
		t.Errorf("order = %s %s %s", snap[0].Detail, snap[1].Detail, snap[2].Detail)
	}
}

func TestNewOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	if s := Begin(tr, ScopeDriver, "x", 0); s.End("") != 0 {
		t.Error("disabled span should report zero duration")
	}
}

func TestHeartbeatStop(t *testing.T) {
	r := NewRingTracer(16, LevelPhase)
	progress := &Progress{}
	progress.Plan(3)
	progress.Finish(false)
	progress.Finish(true)
	h := StartHeartbeat(r, time.Millisecond, progress)
	time.Sleep(10 * time.Millisecond)
	h.Stop()
	h.Stop()
	var nilBeat *Heartbeat
	nilBeat.Stop()
	events := r.Snapshot()
	if len(events) == 0 {
		t.Fatal("no heartbeat recorded")
	}
	if want := "#1 files 2/3, 1 with errors"; events[0].Detail != want {
		t.Errorf("first heartbeat detail = %q, want %q", events[0].Detail, want)
	}
	if StartHeartbeat(Nop, time.Millisecond, nil) != nil {
		t.Error("heartbeat must not start for a disabled tracer")
	}
}

func TestProgressNilAndContext(t *testing.T) {
	var p *Progress
	p.Plan(2)
	p.Finish(true)
	if p.String() != "" {
		t.Errorf("nil progress renders %q", p.String())
	}
	if ProgressFrom(context.Background()) != nil {
		t.Error("expected no progress on a bare context")
	}
	q := &Progress{}
	if ProgressFrom(WithProgress(context.Background(), q)) != q {
		t.Error("progress lost in context")
	}
}

func TestRingOverwrites(t *testing.T) {
	r := NewRingTracer(2, LevelPhase)
	for _, name := range []string{"a", "b", "c"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopePhase, Name: name})
	}
	events := r.Snapshot()
	if len(events) != 2 || events[0].Name != "b" || events[1].Name != "c" {
		t.Fatalf("unexpected ring contents: %+v", events)
	}
	if r.Overwritten() != 1 {
		t.Errorf("Overwritten() = %d, want 1", r.Overwritten())
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]StorageMode{"": ModeStream, "stream": ModeStream, "Ring": ModeRing, "both": ModeBoth}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestNewCreatesTraceDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target", "c0nst", "run.jsonl")
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, OutputPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Begin(tr, ScopePhase, "rewrite", 0).End("")
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("trace file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "{") {
		t.Errorf(".jsonl output should be NDJSON, got %q", data)
	}
}
