package ir

import "testing"

func TestFindLabelOffsetFirstMatch(t *testing.T) {
	ctx := newTestContext()
	ctx.AddLabel("loop", 16)
	ctx.AddLabel("loop", 32) // a duplicate name must not shadow the first.

	if off := ctx.FindLabelOffset("loop"); off != 16 {
		t.Errorf("FindLabelOffset(%q) = %d, want 16", "loop", off)
	}
}

func TestFindLabelOffsetNotFound(t *testing.T) {
	ctx := newTestContext()
	if off := ctx.FindLabelOffset("nope"); off != -1 {
		t.Errorf("FindLabelOffset(%q) = %d, want -1", "nope", off)
	}
}
