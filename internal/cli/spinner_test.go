package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsToWriter(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Resolving yay...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Resolving yay...") {
		t.Errorf("spinner output %q does not contain the message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should clear its line on stop, got %q", out)
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Resolving yay...")
	s.Start()
	s.SetMessage("Resolving yay... 4 found in 2 rounds")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "4 found in 2 rounds") {
		t.Errorf("spinner output %q does not show the updated message", out)
	}
	clear := "\r" + strings.Repeat(" ", len("Resolving yay... 4 found in 2 rounds")+2) + "\r"
	if !strings.HasSuffix(out, clear) {
		t.Error("spinner should blank the full width of the longest message")
	}
}

func TestSpinnerStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	s := newSpinner(ctx, &buf, "Resolving yay...")
	s.Start()

	select {
	case <-s.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner kept running after the context ended")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Resolving yay...")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestOrderQuietOutputHasNoSpinner(t *testing.T) {
	isolate(t)
	srv := aurServer(t, testPackages)

	_, stderr, err := run(t, "order", "--plain", "--endpoint", srv.URL+"/rpc/", "app")
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if strings.Contains(stderr, "Resolving app") {
		t.Errorf("--plain should not draw a spinner, stderr: %q", stderr)
	}
}
