package slogobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/searchagent/providers/observability"
)

func newTestObserver() (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(logger), &buf
}

func TestNew_NilLoggerFallsBack(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil observer")
	}
}

func TestSpanLifecycle(t *testing.T) {
	observer, buf := newTestObserver()

	ctx, span := observer.StartSpan(context.Background(), "search.run",
		observability.String("search.query", "go"),
	)

	if observability.SpanFromContext(ctx) != span {
		t.Error("StartSpan did not attach the span to the context")
	}

	span.AddEvent("extract.output.recovered")
	span.SetStatus(observability.StatusOK, "")
	span.End()

	out := buf.String()
	for _, want := range []string{"search.run", "span.start", "extract.output.recovered", "span.end"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSpanRecordError(t *testing.T) {
	observer, buf := newTestObserver()

	_, span := observer.StartSpan(context.Background(), "runner.invoke")
	span.RecordError(errors.New("boom"))
	span.End()

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("recorded error not logged:\n%s", buf.String())
	}
}

func TestCounterAccumulates(t *testing.T) {
	observer, buf := newTestObserver()
	ctx := context.Background()

	counter := observer.Counter("searchagent.search.count")
	counter.Add(ctx, 1)
	counter.Add(ctx, 2)

	out := buf.String()
	if !strings.Contains(out, "value=3") {
		t.Errorf("counter did not accumulate to 3:\n%s", out)
	}

	// Same name must return the same underlying counter
	if observer.Counter("searchagent.search.count") != counter {
		t.Error("Counter() returned a new instance for an existing name")
	}
}

func TestHistogramRecords(t *testing.T) {
	observer, buf := newTestObserver()

	observer.Histogram("searchagent.search.duration").Record(context.Background(), 12.5)

	if !strings.Contains(buf.String(), "12.5") {
		t.Errorf("histogram value not logged:\n%s", buf.String())
	}
}

func TestLoggerLevels(t *testing.T) {
	observer, buf := newTestObserver()
	ctx := context.Background()

	observer.Debug(ctx, "debug msg")
	observer.Info(ctx, "info msg")
	observer.Warn(ctx, "warn msg")
	observer.Error(ctx, "error msg")

	out := buf.String()
	for _, want := range []string{"debug msg", "info msg", "warn msg", "error msg"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}
