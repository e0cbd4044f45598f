package rendering

import (
	"fmt"
	"testing"
)

func TestLayoutEmptyLog(t *testing.T) {
	lines := Layout(Viewport{Width: 100, Height: 100}, nil)
	if len(lines) != 0 {
		t.Fatalf("expected no lines for empty log, got %d", len(lines))
	}
}

func TestLayoutBottomAnchored(t *testing.T) {
	viewport := Viewport{Width: 100, Height: 100}
	lines := Layout(viewport, []string{"newest", "older"})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	want := Box{Left: 4, Top: 80, Right: 96, Bottom: 96}
	if lines[0].Box != want {
		t.Errorf("newest box: expected %+v, got %+v", want, lines[0].Box)
	}
	if lines[0].Text != "newest" {
		t.Errorf("expected newest entry first, got %q", lines[0].Text)
	}
	if lines[1].Box.Bottom != lines[0].Box.Top {
		t.Errorf("lines must stack without gaps: %+v above %+v", lines[1].Box, lines[0].Box)
	}
}

func TestLayoutTruncatesOverflow(t *testing.T) {
	viewport := Viewport{Width: 100, Height: 100}
	entries := make([]string, 20)
	for i := range entries {
		entries[i] = fmt.Sprintf("msg%d", i)
	}

	lines := Layout(viewport, entries)
	// height 100, margin 4, line height 16: tops 80, 64, 48, 32, 16, 0.
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines for height 100, got %d", len(lines))
	}
	for i, line := range lines {
		if line.Box.Top < 0 {
			t.Errorf("line %d has negative top %d", i, line.Box.Top)
		}
	}
}

func TestLayoutIsPure(t *testing.T) {
	viewport := Viewport{Width: 320, Height: 240}
	entries := []string{"a", "b", "c"}

	first := Layout(viewport, entries)
	second := Layout(viewport, entries)
	if len(first) != len(second) {
		t.Fatalf("layout not deterministic: %d vs %d lines", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLayoutTinyViewport(t *testing.T) {
	// Not even one line fits: height smaller than margin plus line height.
	lines := Layout(Viewport{Width: 100, Height: 16}, []string{"a"})
	if len(lines) != 0 {
		t.Fatalf("expected no lines in a 16-unit viewport, got %d", len(lines))
	}
}
