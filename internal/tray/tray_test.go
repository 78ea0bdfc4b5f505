package tray

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakeTitler struct {
	titles []string
}

func (f *fakeTitler) SetTitle(title string) {
	f.titles = append(f.titles, title)
}

type fakeBadge struct {
	counts []uint
	err    error
}

func (f *fakeBadge) SetBadge(count uint) error {
	f.counts = append(f.counts, count)
	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTooltip(t *testing.T) {
	cases := []struct {
		count uint
		want  string
	}{
		{0, "Unpod"},
		{1, "Unpod - 1 unread notification"},
		{2, "Unpod - 2 unread notifications"},
		{5, "Unpod - 5 unread notifications"},
	}
	for _, tc := range cases {
		if got := Tooltip(tc.count); got != tc.want {
			t.Errorf("Tooltip(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestWindowTitle(t *testing.T) {
	cases := []struct {
		count uint
		want  string
	}{
		{0, "Unpod"},
		{1, "(1) Unpod"},
		{5, "(5) Unpod"},
	}
	for _, tc := range cases {
		if got := WindowTitle(tc.count); got != tc.want {
			t.Errorf("WindowTitle(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestSetBadge_UpdatesAllSurfaces(t *testing.T) {
	titler := &fakeTitler{}
	badge := &fakeBadge{}
	c := NewController(titler, badge, Callbacks{}, discardLogger())

	c.SetBadge(3)

	if got := c.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if len(titler.titles) != 1 || titler.titles[0] != "(3) Unpod" {
		t.Errorf("window titles = %v, want [(3) Unpod]", titler.titles)
	}
	if len(badge.counts) != 1 || badge.counts[0] != 3 {
		t.Errorf("badge counts = %v, want [3]", badge.counts)
	}
}

func TestSetBadge_BadgeFailureDoesNotBlockTitle(t *testing.T) {
	titler := &fakeTitler{}
	badge := &fakeBadge{err: errors.New("no badge surface")}
	c := NewController(titler, badge, Callbacks{}, discardLogger())

	c.SetBadge(7)
	c.SetBadge(0)

	want := []string{"(7) Unpod", "Unpod"}
	if len(titler.titles) != len(want) {
		t.Fatalf("window titles = %v, want %v", titler.titles, want)
	}
	for i := range want {
		if titler.titles[i] != want[i] {
			t.Errorf("title[%d] = %q, want %q", i, titler.titles[i], want[i])
		}
	}
	if got := c.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestSetBadge_ClearRestoresDefaults(t *testing.T) {
	titler := &fakeTitler{}
	c := NewController(titler, &fakeBadge{}, Callbacks{}, discardLogger())

	c.SetBadge(4)
	c.SetBadge(0)

	last := titler.titles[len(titler.titles)-1]
	if last != "Unpod" {
		t.Errorf("title after clear = %q, want %q", last, "Unpod")
	}
}
