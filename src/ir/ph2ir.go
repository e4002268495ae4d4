package ir

import "github.com/kkpan11/shecc/src/util"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Ph2Insn is a Phase-2, register-oriented IR instruction (ph2_ir_t):
// operands reference physical registers and an immediate field, rather than
// the Phase-1 Variable operands (spec.md §3). It is appended to the flat
// PH2_IR arena by AddPh2IR; the structural, per-function CFG form of the
// lowered program is the BasicBlock/CFGInsn graph built alongside it (see
// cfg.go) via AddInsn.
type Ph2Insn struct {
	Op   Opcode
	Rd   *Register
	Rs1  *Register
	Rs2  *Register
	Imm  int
	Size int
}

// ---------------------
// ----- functions -----
// ---------------------

// AddPh2IR appends a zero-initialised instruction with opcode op to the
// PH2_IR arena and returns it for the caller to fill in (add_ph2_ir).
func (ctx *Context) AddPh2IR(op Opcode) *Ph2Insn {
	insn := &Ph2Insn{Op: op}
	ctx.Ph2IR = append(ctx.Ph2IR, insn)
	return insn
}

// DumpPh2IR writes a terse register-level rendering of ctx.Ph2IR to w, one
// instruction per line. Unlike DumpPh1IR, the Phase-2 stream carries no
// lexical nesting to indent: by the time lowering has run, blocks have been
// replaced by the CFG's explicit edges.
func (ctx *Context) DumpPh2IR(w *util.Writer) {
	for _, insn := range ctx.Ph2IR {
		if mn, ok := binaryMnemonic[insn.Op]; ok && insn.Rd != nil && insn.Rs1 != nil && insn.Rs2 != nil {
			w.Write("r%d = %s r%d, r%d", insn.Rd.ID, mn, insn.Rs1.ID, insn.Rs2.ID)
		} else if mn, ok := unaryMnemonic[insn.Op]; ok && insn.Rd != nil && insn.Rs1 != nil {
			w.Write("r%d = %s r%d", insn.Rd.ID, mn, insn.Rs1.ID)
		} else {
			w.Write("op%d", int(insn.Op))
		}
		w.WriteString("\n")
	}
}
