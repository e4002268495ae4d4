package ir

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/kkpan11/shecc/src/util"
)

// captureDump runs fn against a fresh util.Writer wired through
// util.ListenWrite/Close to an os.Pipe, and returns everything written.
func captureDump(t *testing.T, fn func(w *util.Writer)) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %s", err)
	}

	var wg sync.WaitGroup
	util.ListenWrite(util.Options{}, w, &wg)

	writer := util.NewWriter()
	fn(&writer)
	writer.Close()

	util.Close()
	wg.Wait()
	if err := w.Close(); err != nil {
		t.Fatalf("closing write end: %s", err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading pipe: %s", err)
	}
	return string(out)
}

// TestDumpPh1IRIdentityFunction renders the Phase-1 IR for
// `int id(int x) { return x; }` and checks the textual form names the
// function, its parameter, and the return statement.
func TestDumpPh1IRIdentityFunction(t *testing.T) {
	ctx := newTestContext()

	fn := ctx.AddFunc("id")
	fn.ReturnDef.TypeName = "int"
	x := &Variable{Name: "x", TypeName: "int"}
	fn.Params = []*Variable{x}

	def := ctx.AddPh1IR(OpDefine)
	def.FuncName = "id"

	start := ctx.AddPh1IR(OpBlockStart)
	_ = start
	ret := ctx.AddPh1IR(OpReturn)
	ret.Src0 = fn.Params[0]
	ctx.AddPh1IR(OpBlockEnd)

	out := captureDump(t, func(w *util.Writer) { ctx.DumpPh1IR(w) })

	if !strings.Contains(out, "def int @id(int %x)") {
		t.Errorf("dump missing function signature line, got:\n%s", out)
	}
	if !strings.Contains(out, "ret %x") {
		t.Errorf("dump missing return statement, got:\n%s", out)
	}
	if !strings.Contains(out, "===") {
		t.Errorf("dump missing trailing separator, got:\n%s", out)
	}
}

func TestDumpPh2IRRegisterArithmetic(t *testing.T) {
	ctx := newTestContext()
	rf := NewRegisterFile()

	insn := ctx.AddPh2IR(OpAdd)
	insn.Rd = rf.Get(0)
	insn.Rs1 = rf.Get(1)
	insn.Rs2 = rf.Get(2)

	out := captureDump(t, func(w *util.Writer) { ctx.DumpPh2IR(w) })
	if !strings.Contains(out, "r0 = add r1, r2") {
		t.Errorf("dump = %q, want to contain %q", out, "r0 = add r1, r2")
	}
}
