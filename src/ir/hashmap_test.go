package ir

import "testing"

func TestRoundUpPow2(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1023, 1024},
		{1024, 1024},
		{1025, 2048},
	}
	for _, c := range cases {
		if got := roundUpPow2(c.in); got != c.want {
			t.Errorf("roundUpPow2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHashmapHashIndexInRange(t *testing.T) {
	size := roundUpPow2(37)
	keys := []string{"", "a", "main", "f", "the_quick_brown_fox", "x1", "x2"}
	for _, k := range keys {
		idx := hashmapHashIndex(size, k)
		if idx < 0 || idx >= size {
			t.Errorf("hashmapHashIndex(%d, %q) = %d, out of range", size, k, idx)
		}
	}
}

// TestHashmapPutNeverReplaces pins the intentionally preserved
// "append, never replace" behaviour of Put: a second Put for the same key
// does not shadow the first, and Get always returns the earliest entry.
func TestHashmapPutNeverReplaces(t *testing.T) {
	m := NewHashmap(8)
	m.Put("f", "A")
	m.Put("f", "B")

	v, ok := m.Get("f")
	if !ok {
		t.Fatalf("Get(%q) not found", "f")
	}
	if v != "A" {
		t.Errorf("Get(%q) = %v, want %v (first Put wins)", "f", v, "A")
	}
}

func TestHashmapContains(t *testing.T) {
	m := NewHashmap(4)
	if m.Contains("x") {
		t.Errorf("Contains(%q) = true before Put", "x")
	}
	m.Put("x", 1)
	if !m.Contains("x") {
		t.Errorf("Contains(%q) = false after Put", "x")
	}
}

func TestHashmapSizeRoundedUp(t *testing.T) {
	m := NewHashmap(5)
	if len(m.buckets) != 8 {
		t.Errorf("NewHashmap(5) has %d buckets, want 8", len(m.buckets))
	}
}
