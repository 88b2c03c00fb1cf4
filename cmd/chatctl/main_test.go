package main

import (
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
)

func TestCursorFlag(t *testing.T) {
	c := store.Cursor{Timestamp: time.UnixMilli(1760000000123).UTC(), ID: "m-1"}
	s := formatCursor(c)
	if s != "1760000000123:m-1" {
		t.Fatalf("formatCursor = %q", s)
	}
	got, err := parseCursor(s)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Timestamp.Equal(c.Timestamp) || got.ID != c.ID {
		t.Errorf("parseCursor(%q) = %+v, want %+v", s, got, c)
	}

	for _, bad := range []string{"", "123", "123:", "abc:m-1"} {
		if _, err := parseCursor(bad); err == nil {
			t.Errorf("parseCursor(%q) succeeded, want error", bad)
		}
	}
}
