package bisector

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/sdglinf/dbg"
	"github.com/osuushi/sdglinf/geom"
	"go.uber.org/zap"
)

type Op string

const (
	OpLine    Op = "line"
	OpRay     Op = "ray"
	OpSegment Op = "segment"
)

// TraceEvent describes one finished construction.
type TraceEvent struct {
	Op      Op
	Regime  Regime
	Sites   []Site
	Anchors []geom.Point
	Result  Polychain
}

type Tracer interface {
	Trace(ev TraceEvent)
}

type TracerFunc func(ev TraceEvent)

func (f TracerFunc) Trace(ev TraceEvent) {
	f(ev)
}

type tracerKey struct{}

// WithTracer returns a context whose constructions report to t.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	return context.WithValue(ctx, tracerKey{}, t)
}

// TracerFrom returns the tracer carried by ctx, or nil.
func TracerFrom(ctx context.Context) Tracer {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(tracerKey{}).(Tracer)
	return t
}

func emit(ctx context.Context, ev TraceEvent) {
	if t := TracerFrom(ctx); t != nil {
		t.Trace(ev)
	}
}

// TextTracer writes one line per event. Each query is tagged with a readable
// name derived from its sites, so repeated queries over the same sites are
// easy to spot in a long trace.
type TextTracer struct {
	mu  sync.Mutex
	out io.Writer
	au  aurora.Aurora
}

func NewTextTracer(out io.Writer, colors bool) *TextTracer {
	return &TextTracer{out: out, au: aurora.NewAurora(colors)}
}

func (t *TextTracer) Trace(ev TraceEvent) {
	sites := make([]string, len(ev.Sites))
	for i, s := range ev.Sites {
		sites[i] = s.String()
	}
	name := dbg.Name(strings.Join(sites, " "))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", t.au.Bold(name).String(), t.au.Cyan(ev.Op).String(), t.au.Yellow(ev.Regime).String())
	for i, s := range sites {
		fmt.Fprintf(&b, " %c=%s", 'p'+rune(i), s)
	}
	for i, v := range ev.Anchors {
		fmt.Fprintf(&b, " v%d=%v", i+1, v)
	}
	fmt.Fprintf(&b, " -> %s\n", t.au.Green(ev.Result).String())

	t.mu.Lock()
	defer t.mu.Unlock()
	io.WriteString(t.out, b.String())
}

// LogTracer reports each event as one structured log entry at debug level.
type LogTracer struct {
	Logger *zap.Logger
}

func (t LogTracer) Trace(ev TraceEvent) {
	if ce := t.Logger.Check(zap.DebugLevel, "bisector"); ce != nil {
		sites := make([]string, len(ev.Sites))
		for i, s := range ev.Sites {
			sites[i] = s.String()
		}
		anchors := make([]string, len(ev.Anchors))
		for i, v := range ev.Anchors {
			anchors[i] = v.String()
		}
		ce.Write(
			zap.String("op", string(ev.Op)),
			zap.String("regime", string(ev.Regime)),
			zap.Strings("sites", sites),
			zap.Strings("anchors", anchors),
			zap.Stringer("result", ev.Result),
		)
	}
}
