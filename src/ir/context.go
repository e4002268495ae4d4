// Package ir implements the symbol universe and two-phase intermediate
// representation of the compiler core: the global pseudo-function and its
// block tree, the Phase-1 tree IR emitted by the parser, and the Phase-2
// register-oriented IR and control-flow graph consumed by the back end.
//
// All state that the original C implementation kept as process-wide globals
// (TYPES, MACROS, ALIASES, CONSTANTS, LABEL_LUT, GLOBAL_IR, PH1_IR, PH2_IR,
// BLOCKS, FUNCS_MAP, the ELF buffers) is owned by a single Context value,
// threaded explicitly through the pipeline instead of living at package
// scope. See DESIGN.md for the grounding of every piece below.
package ir

import "github.com/kkpan11/shecc/src/util"

// ELFStart is the virtual load address ELF_START of the produced executable.
const ELFStart = 0x10000

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Context owns every arena-backed table of a single compilation. It replaces
// the global_init/global_release pair of globals.c with explicit
// construction and release.
type Context struct {
	opt util.Options

	Types     []*Type      // TYPES arena.
	Macros    []*Macro     // MACROS arena.
	Aliases   []*Alias     // ALIASES arena.
	Constants []*Constant  // CONSTANTS arena.
	Labels    []LabelEntry // LABEL_LUT arena.

	GlobalIR []*Ph1Insn // GLOBAL_IR: Phase-1 IR for global declarations.
	Ph1IR    []*Ph1Insn // PH1_IR: Phase-1 IR for function bodies.
	Ph2IR    []*Ph2Insn // PH2_IR: Phase-2, register-oriented IR.

	Blocks BlockList // BLOCKS: lexical scope tree, insertion order.

	Funcs    *Hashmap       // FUNCS_MAP: name -> *Function.
	Ph2Funcs []*Ph2Function // FUNC_LIST: Phase-2 per-function CFG owners.
	MainFunc *Ph2Function   // MAIN_BB equivalent: entry point, if declared.

	Regs RegisterFile // REGS[REG_CNT]: fixed-size physical register file.

	ELF ELFImage // The six in-memory ELF buffers of spec.md §6.

	Source    string // SOURCE: the source buffer.
	SourceIdx int    // source_idx: current scan position, used by SourceError.

	DumpIR     bool // dump_ir option.
	HardMulDiv bool // hard_mul_div option.
}

// ---------------------
// ----- functions -----
// ---------------------

// NewContext allocates every arena of a fresh compilation context, sized
// from opt (or from sane defaults if the corresponding Max* field is zero),
// and registers the global pseudo-function, mirroring global_init's final
// act of calling add_func("") with a 4-byte starting stack frame.
//
// The caller (the front-end collaborator) must subsequently call
// AddBlock(nil, globalFunc, nil) exactly once, before any other block is
// created, so that Blocks.Head becomes the global scope FindVar relies on.
func NewContext(opt util.Options) *Context {
	opt = opt.WithDefaults()

	ctx := &Context{
		opt:       opt,
		Types:     make([]*Type, 0, opt.MaxTypes),
		Macros:    make([]*Macro, 0, opt.MaxAliases),
		Aliases:   make([]*Alias, 0, opt.MaxAliases),
		Constants: make([]*Constant, 0, opt.MaxConstants),
		Labels:    make([]LabelEntry, 0, opt.MaxLabel),
		GlobalIR:  make([]*Ph1Insn, 0, opt.MaxGlobalIR),
		Ph1IR:     make([]*Ph1Insn, 0, opt.MaxIRInstr),
		Ph2IR:     make([]*Ph2Insn, 0, opt.MaxIRInstr),
		Funcs:     NewHashmap(opt.MaxFuncs),
		Source:    "",
		DumpIR:    opt.DumpIR,
		HardMulDiv: opt.HardMulDiv,
	}
	ctx.Regs = NewRegisterFile()
	ctx.ELF.CodeStart = ELFStart + ctx.ELF.HeaderLen()

	globalFunc := ctx.AddFunc("")
	globalFunc.StackSize = 4

	return ctx
}

// Close releases the context. Go's garbage collector reclaims every arena on
// its own; Close exists for API parity with global_release and as the place
// a future caller-visible resource (e.g. an open output file) would be
// released, so callers should still call it via defer.
func (ctx *Context) Close() {}

// GlobalFunc returns the distinguished empty-name pseudo-function that holds
// global declarations (spec.md §3, Function).
func (ctx *Context) GlobalFunc() *Function {
	return ctx.FindFunc("")
}
