// Package frontend captures the contract the lexer/parser collaborator must
// satisfy. The lexer and parser themselves are out of scope for this
// repository (spec.md §1): they are "referenced only by the contracts they
// must satisfy" — namely, that parsing populates a *ir.Context by calling
// its add_* constructors (AddType, AddFunc, AddBlock, AddPh1IR, ...),
// leaving that *ir.Context ready for lowering, or returns an error produced
// via ctx.SourceError for a syntax problem.
package frontend

import "github.com/kkpan11/shecc/src/ir"

// Parser turns source code into a populated Phase-1 IR inside ctx. A real
// implementation would tokenize src, build the symbol tables via ctx's
// add_* constructors (§4.2-§4.4), and append Phase-1 instructions in
// source order, bracketed by ir.OpBlockStart/ir.OpBlockEnd per lexical
// scope.
type Parser interface {
	Parse(ctx *ir.Context, src string) error
}
