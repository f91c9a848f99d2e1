package main

import (
	"strings"
	"testing"

	panels "github.com/grindlemire/go-panels"
)

func TestDraw(t *testing.T) {
	host, err := panels.NewHost(buildDemo())
	if err != nil {
		t.Fatalf("NewHost() error = %v", err)
	}
	host.Layout(panels.NewSize(80, 24))

	out := draw(host, 80, 24)
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("draw() produced %d lines, want 24", len(lines))
	}
	for _, want := range []string{"go-panels demo", "Settings", "Log", "layout ok", "39 measure"} {
		if !strings.Contains(out, want) {
			t.Errorf("draw() output missing %q", want)
		}
	}
	if strings.Contains(out, "00 measure") {
		t.Error("log should be scrolled to the bottom")
	}
}

func TestCanvasClip(t *testing.T) {
	c := newCanvas(4, 2)
	c.clip = panels.NewRect(1, 0, 2, 1)
	c.text(0, 0, "abcd")
	c.text(0, 1, "efgh")

	if got := c.String(); got != " bc \n    " {
		t.Errorf("String() = %q, want %q", got, " bc \n    ")
	}
}
