package ir

import "testing"

func TestAddBlockInsertionOrder(t *testing.T) {
	ctx := newTestContext()
	global := ctx.Blocks.Head
	if global == nil {
		t.Fatal("Blocks.Head is nil after newTestContext")
	}

	fn := ctx.GlobalFunc()
	b1 := ctx.AddBlock(global, fn, nil)
	b2 := ctx.AddBlock(b1, fn, nil)

	got := []*Block{global}
	for b := global.Next(); b != nil; b = b.Next() {
		got = append(got, b)
	}
	want := []*Block{global, b1, b2}
	if len(got) != len(want) {
		t.Fatalf("walked %d blocks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d = %p, want %p", i, got[i], want[i])
		}
	}
}

func TestAddLocalReturnsStablePointer(t *testing.T) {
	b := &Block{}
	v := b.AddLocal(Variable{Name: "a"})
	if v.Name != "a" {
		t.Fatalf("AddLocal returned pointer to %+v, want Name \"a\"", v)
	}
	if b.Locals[0] != v {
		t.Error("AddLocal's returned pointer does not alias the stored slice element")
	}

	// A second AddLocal must not invalidate the first pointer, even if it
	// forces the backing slice to grow and reallocate.
	for i := 0; i < 8; i++ {
		b.AddLocal(Variable{Name: "filler"})
	}
	if v.Name != "a" {
		t.Errorf("first AddLocal pointer went stale after further appends: %+v", v)
	}
}
