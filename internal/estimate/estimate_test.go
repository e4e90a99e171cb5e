package estimate

import (
	"strings"
	"testing"
)

func TestFromText(t *testing.T) {
	cases := []struct {
		words     int
		wantShots int
	}{
		{0, 1},
		{1, 1},
		{100, 1},
		{101, 2},
		{250, 3},
	}
	for _, c := range cases {
		text := strings.TrimSpace(strings.Repeat("palabra ", c.words))
		got := FromText(text)
		if got.Words != c.words || got.Shots != c.wantShots {
			t.Fatalf("words=%d: got %+v, want shots=%d", c.words, got, c.wantShots)
		}
		if got.Keyframes != 3*c.wantShots || got.DurationSeconds != 30*c.wantShots {
			t.Fatalf("words=%d: got %+v", c.words, got)
		}
	}
}

func TestFromText_Whitespace(t *testing.T) {
	if got := FromText("  una\n\tsinopsis   corta "); got.Words != 3 {
		t.Fatalf("unexpected %+v", got)
	}
}
