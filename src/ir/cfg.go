package ir

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// BBConnType identifies which of a predecessor's successor slots an edge
// occupies (spec.md §3 "Predecessor edge kind").
type BBConnType int

// Edge kinds a basic block predecessor/successor pair can have.
const (
	Next BBConnType = iota // Fallthrough.
	Then                   // Taken branch of a conditional.
	Else                   // Not-taken branch of a conditional.
)

// PredEdge is one predecessor slot of a BasicBlock.
type PredEdge struct {
	BB   *BasicBlock
	Type BBConnType
}

// CFGInsn is one instruction appended to a BasicBlock's straight-line
// instruction list (insn_t): opcode plus up to three variable operands, a
// size and an optional name, doubly-linked for in-place editing by the
// back-end collaborator.
type CFGInsn struct {
	Op   Opcode
	Rd   *Variable
	Rs1  *Variable
	Rs2  *Variable
	Size int
	Str  string
	BelongTo *BasicBlock
	prev *CFGInsn
	next *CFGInsn
}

// Prev returns the instruction immediately preceding i in its BasicBlock's
// instruction list, or nil if i is first.
func (i *CFGInsn) Prev() *CFGInsn { return i.prev }

// Next returns the instruction immediately following i in its BasicBlock's
// instruction list, or nil if i is last.
func (i *CFGInsn) Next() *CFGInsn { return i.next }

// Symbol is one entry of a BasicBlock's symbol list: an argument or
// locally-declared Variable with a dense, monotonically increasing Index
// meaningful to the register allocator.
type Symbol struct {
	Var   *Variable
	Index int
	next  *Symbol
}

// BasicBlock is a straight-line IR run (basic_block_t), spec.md §3.
type BasicBlock struct {
	Scope    *Block       // Enclosing lexical block.
	BelongTo *Ph2Function // Owning function node.

	prev []PredEdge // Up to ctx's MaxBBPred predecessor edges.

	next *BasicBlock // Fallthrough successor.
	then *BasicBlock // Taken-branch successor.
	els  *BasicBlock // Not-taken-branch successor.

	insnHead *CFGInsn
	insnTail *CFGInsn

	symHead *Symbol
	symTail *Symbol
}

// Ph2Function owns a basic-block CFG: the Phase-2, per-function view the
// original kept as a second, parallel function list (fn_t/FUNC_LIST)
// alongside the Phase-1 func_t hashmap entries (see DESIGN.md, "Supplemented
// features").
type Ph2Function struct {
	Name  string
	Entry *BasicBlock
}

// ---------------------
// ----- functions -----
// ---------------------

// AddPh2Func appends a new Ph2Function named name to ctx.Ph2Funcs (add_fn),
// recording it as ctx.MainFunc if name == "main".
func (ctx *Context) AddPh2Func(name string) *Ph2Function {
	fn := &Ph2Function{Name: name}
	ctx.Ph2Funcs = append(ctx.Ph2Funcs, fn)
	if name == "main" {
		ctx.MainFunc = fn
	}
	return fn
}

// BBCreate allocates a basic block scoped under parent, owned by
// parent.Func's Phase-2 function node, with all predecessor slots empty
// (bb_create).
func (ctx *Context) BBCreate(parent *Block) *BasicBlock {
	bb := &BasicBlock{
		Scope: parent,
		prev:  make([]PredEdge, 0, ctx.opt.MaxBBPred),
	}
	if parent != nil && parent.Func != nil {
		bb.BelongTo = ctx.findPh2Func(parent.Func.Name())
	}
	return bb
}

// findPh2Func returns the Ph2Function named name, if one has been created
// via AddPh2Func.
func (ctx *Context) findPh2Func(name string) *Ph2Function {
	for _, fn := range ctx.Ph2Funcs {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// Prev returns the predecessor edges of bb.
func (bb *BasicBlock) Prev() []PredEdge { return bb.prev }

// Next returns bb's fallthrough successor, if any.
func (bb *BasicBlock) Next() *BasicBlock { return bb.next }

// Then returns bb's taken-branch successor, if any.
func (bb *BasicBlock) Then() *BasicBlock { return bb.then }

// Else returns bb's not-taken-branch successor, if any.
func (bb *BasicBlock) Else() *BasicBlock { return bb.els }

// Instructions returns the head of bb's instruction list; walk it with
// CFGInsn.Next.
func (bb *BasicBlock) Instructions() *CFGInsn { return bb.insnHead }

// Symbols returns the head of bb's symbol list; walk it with Symbol.Next.
func (bb *BasicBlock) Symbols() *Symbol { return bb.symHead }

// Next returns the symbol appended immediately after s in its BasicBlock's
// symbol list, or nil if s is last.
func (s *Symbol) Next() *Symbol { return s.next }

// BBConnect adds an edge of the given kind from pred to succ (bb_connect).
// It panics if either argument is nil, or if succ already has
// ctx.opt.MaxBBPred predecessors — these are structural invariant
// violations (spec.md §7 "Structural bugs"), not user errors, matching the
// original's abort() calls.
func (ctx *Context) BBConnect(pred, succ *BasicBlock, typ BBConnType) {
	if pred == nil {
		panic("ir: BBConnect: pred is nil")
	}
	if succ == nil {
		panic("ir: BBConnect: succ is nil")
	}
	if len(succ.prev) >= cap(succ.prev) {
		panic("ir: BBConnect: too many predecessors")
	}

	succ.prev = append(succ.prev, PredEdge{BB: pred, Type: typ})

	switch typ {
	case Next:
		pred.next = succ
	case Then:
		pred.then = succ
	case Else:
		pred.els = succ
	default:
		panic("ir: BBConnect: unknown edge type")
	}
}

// BBDisconnect removes the edge between pred and succ, restoring both sides
// to having no connection for that edge kind (bb_disconnect).
func (ctx *Context) BBDisconnect(pred, succ *BasicBlock) {
	for i, e := range succ.prev {
		if e.BB == pred {
			switch e.Type {
			case Next:
				pred.next = nil
			case Then:
				pred.then = nil
			case Else:
				pred.els = nil
			default:
				panic("ir: BBDisconnect: unknown edge type")
			}
			succ.prev = append(succ.prev[:i], succ.prev[i+1:]...)
			return
		}
	}
}

// AddSymbol idempotently appends var to bb's symbol list: a variable
// already present is silently ignored (add_symbol). Each newly appended
// symbol is assigned the next dense index, starting at 0.
func (ctx *Context) AddSymbol(bb *BasicBlock, v *Variable) {
	if bb == nil {
		return
	}
	for s := bb.symHead; s != nil; s = s.next {
		if s.Var == v {
			return
		}
	}

	sym := &Symbol{Var: v}
	if bb.symHead == nil {
		sym.Index = 0
		bb.symHead = sym
		bb.symTail = sym
	} else {
		sym.Index = bb.symTail.Index + 1
		bb.symTail.next = sym
		bb.symTail = sym
	}
}

// AddInsn tail-appends a new instruction to bb's instruction list,
// reassigning bb's scope to block (add_insn). It is a no-op if bb is nil.
func (ctx *Context) AddInsn(block *Block, bb *BasicBlock, op Opcode, rd, rs1, rs2 *Variable, sz int, str string) {
	if bb == nil {
		return
	}
	bb.Scope = block

	insn := &CFGInsn{Op: op, Rd: rd, Rs1: rs1, Rs2: rs2, Size: sz, Str: str, BelongTo: bb}

	if bb.insnHead == nil {
		bb.insnHead = insn
	} else {
		bb.insnTail.next = insn
	}
	insn.prev = bb.insnTail
	bb.insnTail = insn
}
