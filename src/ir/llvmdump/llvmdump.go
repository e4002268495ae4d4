// Package llvmdump lowers a compiled *ir.Context into textual LLVM IR for
// inspection, using the system installed LLVM runtime. It is a diagnostic
// side path (-llvm-dump): the primary target of this repository remains the
// ELF buffers a backend.Emitter fills in, not LLVM. Grounded on
// hhramberg-go-vslc/src/ir/llvm/transform.go, trimmed to the subset that
// makes sense for a Phase-2 IR + CFG rather than a full VSL syntax tree.
package llvmdump

import (
	"errors"
	"fmt"
	"sync"

	"tinygo.org/x/go-llvm"

	"github.com/kkpan11/shecc/src/ir"
)

// -----------------------------
// ----- Type definitions -----
// -----------------------------

// symTab is a symbol table mapping variable names to LLVM values, guarded by
// a read/write mutex for the (hypothetical) case of concurrent lowering of
// independent functions.
type symTab struct {
	m map[string]llvm.Value
	sync.RWMutex
}

func (s *symTab) get(name string) (llvm.Value, bool) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.m[name]
	return v, ok
}

func (s *symTab) put(name string, v llvm.Value) {
	s.Lock()
	defer s.Unlock()
	s.m[name] = v
}

// ---------------------
// ----- Constants -----
// ---------------------

const mapSize = 16

// ---------------------
// ----- functions -----
// ---------------------

// EmitModule walks ctx's Phase-2 functions and CFGs and renders an LLVM
// module as text. It lowers each BasicBlock's ir.CFGInsn list, whose
// Rd/Rs1/Rs2 operands are *ir.Variable: an operand not yet defined earlier
// in the same block is read as a constant of its InitVal. No register
// allocation is performed (out of scope, spec.md §1).
func EmitModule(ctx *ir.Context) (string, error) {
	if ctx == nil {
		return "", errors.New("nil context")
	}
	if len(ctx.Ph2Funcs) == 0 {
		return "", errors.New("context has no Phase-2 functions to lower")
	}

	globals := symTab{m: make(map[string]llvm.Value, mapSize)}

	lctx := llvm.NewContext()
	defer lctx.Dispose()

	mod := lctx.NewModule("shecc")
	defer mod.Dispose()

	b := lctx.NewBuilder()
	defer b.Dispose()

	i32 := lctx.Int32Type()

	// Declare every function first so forward calls resolve.
	for _, fn := range ctx.Ph2Funcs {
		if _, ok := globals.get(fn.Name); ok {
			continue
		}
		ft := llvm.FunctionType(i32, nil, false)
		f := llvm.AddFunction(mod, fn.Name, ft)
		globals.put(fn.Name, f)
	}

	for _, fn := range ctx.Ph2Funcs {
		llf, _ := globals.get(fn.Name)
		if err := emitFunc(lctx, b, llf, fn); err != nil {
			return "", fmt.Errorf("lowering %s: %w", fn.Name, err)
		}
	}

	if err := llvm.VerifyModule(mod, llvm.ReturnStatusAction); err != nil {
		return "", fmt.Errorf("module failed verification: %w", err)
	}
	return mod.String(), nil
}

// emitFunc renders a single Ph2Function's basic block graph as a chain of
// LLVM basic blocks, laid out by following BasicBlock.Next()/Then()/Else()
// edges. No branch instruction is emitted for those edges; a block with no
// Next or Then successor that does not already end in a ret gets ret i32 0.
func emitFunc(lctx llvm.Context, b llvm.Builder, llf llvm.Value, fn *ir.Ph2Function) error {
	if fn.Entry == nil {
		return errors.New("function has no entry block")
	}

	blocks := map[*ir.BasicBlock]llvm.BasicBlock{}
	var order []*ir.BasicBlock

	var walk func(bb *ir.BasicBlock)
	walk = func(bb *ir.BasicBlock) {
		if bb == nil {
			return
		}
		if _, seen := blocks[bb]; seen {
			return
		}
		llbb := llvm.AddBasicBlock(llf, fmt.Sprintf("bb%d", len(order)))
		blocks[bb] = llbb
		order = append(order, bb)
		walk(bb.Next())
		walk(bb.Then())
		walk(bb.Else())
	}
	walk(fn.Entry)

	for _, bb := range order {
		b.SetInsertPointAtEnd(blocks[bb])
		terminated, err := emitInsns(lctx, b, bb)
		if err != nil {
			return err
		}
		if !terminated && bb.Next() == nil && bb.Then() == nil {
			b.CreateRet(llvm.ConstInt(lctx.Int32Type(), 0, false))
		}
	}
	return nil
}

// emitInsns lowers a basic block's CFGInsn list to LLVM instructions
// covering the arithmetic/bitwise opcode set and OpReturn, and reports
// whether it emitted a ret; the other control-flow opcodes are left to
// emitFunc's walk of the CFG edges. Each distinct *ir.Variable seen as an
// instruction's Rd is tracked as a fresh SSA value, mirroring the
// original's one-def-per-temporary Phase-2 IR shape.
func emitInsns(lctx llvm.Context, b llvm.Builder, bb *ir.BasicBlock) (bool, error) {
	terminated := false
	vals := map[*ir.Variable]llvm.Value{}
	val := func(v *ir.Variable) llvm.Value {
		if v == nil {
			return llvm.ConstInt(lctx.Int32Type(), 0, false)
		}
		if lv, ok := vals[v]; ok {
			return lv
		}
		return llvm.ConstInt(lctx.Int32Type(), uint64(v.InitVal), false)
	}

	for insn := bb.Instructions(); insn != nil; insn = insn.Next() {
		switch insn.Op {
		case ir.OpAdd:
			vals[insn.Rd] = b.CreateAdd(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpSub:
			vals[insn.Rd] = b.CreateSub(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpMul:
			vals[insn.Rd] = b.CreateMul(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpDiv:
			vals[insn.Rd] = b.CreateSDiv(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpMod:
			vals[insn.Rd] = b.CreateSRem(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpBitAnd:
			vals[insn.Rd] = b.CreateAnd(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpBitOr:
			vals[insn.Rd] = b.CreateOr(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpBitXor:
			vals[insn.Rd] = b.CreateXor(val(insn.Rs1), val(insn.Rs2), "")
		case ir.OpLoadConstant:
			vals[insn.Rd] = llvm.ConstInt(lctx.Int32Type(), uint64(insn.Rd.InitVal), false)
		case ir.OpReturn:
			b.CreateRet(val(insn.Rd))
			terminated = true
		default:
			// Opcodes outside the arithmetic core (calls, memory, labels)
			// are structural concerns of the out-of-scope backend and are
			// skipped here rather than mistranslated.
		}
	}
	return terminated, nil
}
