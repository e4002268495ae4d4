package ir

import (
	"fmt"

	"github.com/kkpan11/shecc/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Opcode enumerates the Phase-1 IR instruction set (opcode_t), spec.md §6.
type Opcode int

// Phase-1 opcodes, in the order dump_ph1_ir switches on them.
const (
	OpDefine Opcode = iota
	OpBlockStart
	OpBlockEnd
	OpAllocat
	OpLoadConstant
	OpLoadDataAddress
	OpAddressOf
	OpAssign
	OpLabel
	OpJump
	OpBranch
	OpPush
	OpCall
	OpIndirect
	OpFuncRet
	OpReturn
	OpRead
	OpWrite
	OpNegate
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpGt
	OpLt
	OpGeq
	OpLeq
	OpBitAnd
	OpBitOr
	OpBitNot
	OpBitXor
	OpLogAnd
	OpLogOr
	OpLogNot
	OpRshift
	OpLshift
)

// Ph1Insn is a Phase-1 IR instruction (ph1_ir_t): an opcode plus up to three
// variable operands, and opcode-specific extra fields.
type Ph1Insn struct {
	Op       Opcode
	Dest     *Variable
	Src0     *Variable
	Src1     *Variable
	FuncName string // Valid for OpDefine/OpCall.
	ParamNum int    // Valid for OpCall.
	Size     int    // Valid for OpRead/OpWrite.
	Name     string // Label/jump target name, valid for OpLabel/OpJump.
	BranchThen string // Then-label, valid for OpBranch.
	BranchElse string // Else-label, valid for OpBranch.
}

// ---------------------
// ----- functions -----
// ---------------------

// AddGlobalIR appends a zero-initialised instruction with opcode op to the
// GLOBAL_IR arena and returns it for the caller to fill in (add_global_ir).
func (ctx *Context) AddGlobalIR(op Opcode) *Ph1Insn {
	insn := &Ph1Insn{Op: op}
	ctx.GlobalIR = append(ctx.GlobalIR, insn)
	return insn
}

// AddPh1IR appends a zero-initialised instruction with opcode op to the
// PH1_IR arena and returns it for the caller to fill in (add_ph1_ir).
func (ctx *Context) AddPh1IR(op Opcode) *Ph1Insn {
	insn := &Ph1Insn{Op: op}
	ctx.Ph1IR = append(ctx.Ph1IR, insn)
	return insn
}

// DumpPh1IR writes a human-readable rendering of ctx.Ph1IR to w, tracking
// lexical nesting with an indent counter incremented at OpBlockStart and
// decremented at OpBlockEnd (dump_ph1_ir). Unrecognised opcodes print an
// empty line, matching the original's default: case that falls through to
// printf("\n") with no textual form.
func (ctx *Context) DumpPh1IR(w *util.Writer) {
	indent := 0
	for _, insn := range ctx.Ph1IR {
		switch insn.Op {
		case OpDefine:
			fn := ctx.FindFunc(insn.FuncName)
			w.Write("def %s%s @%s(%s)", fn.ReturnDef.TypeName, stars(fn.ReturnDef.IsPtr), insn.FuncName, paramList(fn))
		case OpBlockStart:
			w.Write("%s{", tabs(indent))
			indent++
		case OpBlockEnd:
			indent--
			w.Write("%s}", tabs(indent))
		case OpAllocat:
			w.Write("%sallocat %s%s %%%s%s", tabs(indent), insn.Src0.TypeName, stars(insn.Src0.IsPtr), insn.Src0.Name, arraySuffix(insn.Src0))
		case OpLoadConstant:
			w.Write("%sconst %%%s, $%d", tabs(indent), insn.Dest.Name, insn.Dest.InitVal)
		case OpLoadDataAddress:
			w.Write("%s%%%s = .data (%d)", tabs(indent), insn.Dest.Name, insn.Dest.InitVal)
		case OpAddressOf:
			w.Write("%s%%%s = &(%%%s)", tabs(indent), insn.Dest.Name, insn.Src0.Name)
		case OpAssign:
			w.Write("%s%%%s = %%%s", tabs(indent), insn.Dest.Name, insn.Src0.Name)
		case OpLabel:
			w.Write("%s", insn.Name)
		case OpBranch:
			w.Write("%sbr %%%s, %s, %s", tabs(indent), insn.Dest.Name, insn.BranchThen, insn.BranchElse)
		case OpJump:
			w.Write("%sj %s", tabs(indent), insn.Name)
		case OpPush:
			w.Write("%spush %%%s", tabs(indent), insn.Src0.Name)
		case OpCall:
			w.Write("%scall @%s, %d", tabs(indent), insn.FuncName, insn.ParamNum)
		case OpFuncRet:
			w.Write("%sretval %%%s", tabs(indent), insn.Dest.Name)
		case OpReturn:
			if insn.Src0 != nil {
				w.Write("%sret %%%s", tabs(indent), insn.Src0.Name)
			} else {
				w.Write("%sret", tabs(indent))
			}
		case OpRead:
			w.Write("%s%%%s = (%%%s), %d", tabs(indent), insn.Dest.Name, insn.Src0.Name, insn.Size)
		case OpWrite:
			if insn.Src0.IsFunc {
				w.Write("%s(%%%s) = @%s", tabs(indent), insn.Dest.Name, insn.Src0.Name)
			} else {
				w.Write("%s(%%%s) = %%%s, %d", tabs(indent), insn.Dest.Name, insn.Src0.Name, insn.Size)
			}
		case OpIndirect:
			w.Write("%sindirect call @(%%%s)", tabs(indent), insn.Src0.Name)
		case OpNegate:
			w.Write("%sneg %%%s, %%%s", tabs(indent), insn.Dest.Name, insn.Src0.Name)
		default:
			if mn, ok := binaryMnemonic[insn.Op]; ok {
				w.Write("%s%%%s = %s %%%s, %%%s", tabs(indent), insn.Dest.Name, mn, insn.Src0.Name, insn.Src1.Name)
			} else if mn, ok := unaryMnemonic[insn.Op]; ok {
				w.Write("%s%%%s = %s %%%s", tabs(indent), insn.Dest.Name, mn, insn.Src0.Name)
			}
			// Unrecognised opcodes print nothing but still terminate the line.
		}
		w.WriteString("\n")
	}
	w.WriteString("===\n")
}

// binaryMnemonic maps the arithmetic/compare/bitwise/logical two-operand
// opcodes to their textual mnemonic (spec.md §6).
var binaryMnemonic = map[Opcode]string{
	OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div", OpMod: "mod",
	OpEq: "eq", OpNeq: "neq", OpGt: "gt", OpLt: "lt", OpGeq: "geq", OpLeq: "leq",
	OpBitAnd: "and", OpBitOr: "or", OpBitXor: "xor",
	OpLogAnd: "and", OpLogOr: "or",
	OpRshift: "rshift", OpLshift: "lshift",
}

// unaryMnemonic maps the one-operand bitwise/logical opcodes to their
// textual mnemonic.
var unaryMnemonic = map[Opcode]string{
	OpBitNot: "not", OpLogNot: "not",
}

func tabs(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "\t"
	}
	return s
}

func stars(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "*"
	}
	return s
}

func arraySuffix(v *Variable) string {
	if v.ArraySize > 0 {
		return fmt.Sprintf("[%d]", v.ArraySize)
	}
	return ""
}

func paramList(fn *Function) string {
	s := ""
	for i, p := range fn.Params {
		if i != 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s%s %%%s", p.TypeName, stars(p.IsPtr), p.Name)
	}
	return s
}
