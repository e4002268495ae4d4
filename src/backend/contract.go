// Package backend captures the contract the target code emitter
// collaborator must satisfy. The register allocator algorithm, instruction
// selection, and ELF section writer are out of scope for this repository
// (spec.md §1): they are "referenced only by the contracts they must
// satisfy" — namely, that code generation consumes the Phase-2 IR and CFG
// of a *ir.Context (built by lowering, itself also an external concern) and
// the symbol state attached to it, and fills in ctx.ELF's six buffers
// ready for a linker-free executable to be written to disk.
package backend

import "github.com/kkpan11/shecc/src/ir"

// Emitter lowers the Phase-2 IR and CFG of ctx into the ELF buffers
// ctx.ELF. A real implementation would walk ctx.Ph2Funcs, allocate physical
// registers from ctx.Regs for each BasicBlock's symbol list, select
// instructions per ctx.HardMulDiv, and resolve label offsets via
// ctx.FindLabelOffset for forward jumps.
type Emitter interface {
	Emit(ctx *ir.Context) error
}
