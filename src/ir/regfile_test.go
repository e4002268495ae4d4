package ir

import "testing"

func TestRegisterFileAllocFree(t *testing.T) {
	rf := NewRegisterFile()
	sym := &Symbol{Var: &Variable{Name: "x"}}

	if !rf.Alloc(0, sym) {
		t.Fatal("Alloc(0, sym) = false on fresh register file")
	}
	if rf.Alloc(0, sym) {
		t.Fatal("Alloc(0, sym) = true on already-used register")
	}
	if r := rf.Get(0); !r.Used || r.Entry != sym {
		t.Errorf("Get(0) = %+v, want Used=true Entry=%+v", r, sym)
	}

	rf.Free(0)
	if r := rf.Get(0); r.Used || r.Entry != nil {
		t.Errorf("Get(0) after Free = %+v, want Used=false Entry=nil", r)
	}
}

func TestRegisterFileOutOfRange(t *testing.T) {
	rf := NewRegisterFile()
	if rf.Get(-1) != nil {
		t.Error("Get(-1) != nil")
	}
	if rf.Get(RegCount) != nil {
		t.Error("Get(RegCount) != nil")
	}
	if rf.Alloc(RegCount, nil) {
		t.Error("Alloc(RegCount, nil) = true")
	}
}

func TestRegisterFileFreeAll(t *testing.T) {
	rf := NewRegisterFile()
	rf.Alloc(1, &Symbol{})
	rf.Alloc(2, &Symbol{})

	rf.FreeAll()
	for i := 0; i < RegCount; i++ {
		if r := rf.Get(i); r.Used {
			t.Fatalf("register %d still Used after FreeAll", i)
		}
	}
}
