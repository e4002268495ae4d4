package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/kkpan11/shecc/src/frontend"
	"github.com/kkpan11/shecc/src/ir"
	"github.com/kkpan11/shecc/src/ir/llvmdump"
	"github.com/kkpan11/shecc/src/util"

	"github.com/kkpan11/shecc/src/backend"
)

// parser is wired by whichever collaborator implements frontend.Parser.
// None is bundled with this repository: the lexer/parser is out of scope
// (spec.md §1). run returns a clear error when source was given but no
// parser is available to consume it.
var parser frontend.Parser

// emitter is wired by whichever collaborator implements backend.Emitter.
// None is bundled with this repository: register allocation and ELF
// section writing are out of scope (spec.md §1).
var emitter backend.Emitter

// run reads source code, builds a *ir.Context, and drives it through
// whichever stages the requested flags call for.
func run(opt util.Options) error {
	src, err := util.ReadSource(opt)
	if err != nil {
		return fmt.Errorf("could not read source code: %s", err)
	}
	if len(src) > opt.MaxSource {
		return fmt.Errorf("source exceeds MAX_SOURCE (%d bytes)", opt.MaxSource)
	}

	ctx := ir.NewContext(opt)
	defer ctx.Close()
	ctx.Source = src

	if parser == nil {
		return fmt.Errorf("no parser wired: cannot populate context from source")
	}
	if err := parser.Parse(ctx, src); err != nil {
		return fmt.Errorf("parse error: %s", err)
	}

	if opt.DumpIR {
		w := util.NewWriter()
		ctx.DumpPh1IR(&w)
		w.Close()
		return nil
	}

	if opt.LLVMDump {
		text, err := llvmdump.EmitModule(ctx)
		if err != nil {
			return fmt.Errorf("llvm lowering error: %s", err)
		}
		w := util.NewWriter()
		w.WriteString(text)
		w.Close()
		return nil
	}

	if emitter == nil {
		return fmt.Errorf("no emitter wired: cannot generate output")
	}
	if err := emitter.Emit(ctx); err != nil {
		return fmt.Errorf("code generation error: %s", err)
	}
	return nil
}

func main() {
	opt, err := util.ParseArgs()
	if err != nil {
		fmt.Printf("Command line argument error: %s\n", err)
		os.Exit(1)
	}
	opt = opt.WithDefaults()

	wg := sync.WaitGroup{}
	if len(opt.Out) > 0 {
		f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer func(f *os.File) {
			if err := f.Close(); err != nil {
				fmt.Println(err)
			}
		}(f)
		util.ListenWrite(opt, f, &wg)
	} else {
		util.ListenWrite(opt, nil, &wg)
	}
	defer util.Close()

	if err := run(opt); err != nil {
		fmt.Printf("Error: %s\n", err)
		wg.Wait()
		os.Exit(1)
	}

	wg.Wait()
}
