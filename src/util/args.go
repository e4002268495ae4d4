package util

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options holds command line configuration, populated by ParseArgs. It also
// carries the fixed arena capacities the compiler core honours (spec.md
// §6): the Max* fields default to the MAX_* constants the original
// implementation hard-codes, but are exposed here so tests can run with
// small arenas.
type Options struct {
	Src string // Path to source file. Empty means read from stdin.
	Out string // Path to output ELF executable.

	DumpIR     bool // -S: dump Phase-1 IR as text and exit.
	HardMulDiv bool // -hard-mul-div: emit hardware multiply/divide instructions.
	LLVMDump   bool // -llvm-dump: lower Phase-2 IR to textual LLVM IR and exit.

	MaxFuncs     int // MAX_FUNCS.
	MaxTypes     int // MAX_TYPES.
	MaxIRInstr   int // MAX_IR_INSTR.
	MaxGlobalIR  int // MAX_GLOBAL_IR.
	MaxLabel     int // MAX_LABEL.
	MaxSource    int // MAX_SOURCE.
	MaxAliases   int // MAX_ALIASES.
	MaxConstants int // MAX_CONSTANTS.
	MaxBBPred    int // MAX_BB_PRED.
	MaxVarLen    int // MAX_VAR_LEN.
	MaxCode      int // MAX_CODE.
	MaxData      int // MAX_DATA.
	MaxHeader    int // MAX_HEADER.
	MaxSymtab    int // MAX_SYMTAB.
	MaxStrtab    int // MAX_STRTAB.
	MaxSection   int // MAX_SECTION.
}

// ---------------------
// ----- Constants -----
// ---------------------

const appVersion = "shecc-core 1.0"

// Default arena capacities, matching the MAX_* constants of the original
// implementation (globals.c's callers size FUNCS_MAP to MAX_FUNCS, etc.).
const (
	defaultMaxFuncs     = 1024
	defaultMaxTypes     = 256
	defaultMaxIRInstr   = 65536
	defaultMaxGlobalIR  = 4096
	defaultMaxLabel     = 4096
	defaultMaxSource    = 256 * 1024
	defaultMaxAliases   = 1024
	defaultMaxConstants = 1024
	defaultMaxBBPred    = 6
	defaultMaxVarLen    = 64
	defaultMaxCode      = 1024 * 1024
	defaultMaxData      = 1024 * 1024
	defaultMaxHeader    = 0x54
	defaultMaxSymtab    = 65536
	defaultMaxStrtab    = 65536
	defaultMaxSection   = 65536
)

// ---------------------
// ----- functions -----
// ---------------------

// WithDefaults returns a copy of opt with every zero-valued Max* field
// filled in from the built-in defaults.
func (opt Options) WithDefaults() Options {
	set := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	set(&opt.MaxFuncs, defaultMaxFuncs)
	set(&opt.MaxTypes, defaultMaxTypes)
	set(&opt.MaxIRInstr, defaultMaxIRInstr)
	set(&opt.MaxGlobalIR, defaultMaxGlobalIR)
	set(&opt.MaxLabel, defaultMaxLabel)
	set(&opt.MaxSource, defaultMaxSource)
	set(&opt.MaxAliases, defaultMaxAliases)
	set(&opt.MaxConstants, defaultMaxConstants)
	set(&opt.MaxBBPred, defaultMaxBBPred)
	set(&opt.MaxVarLen, defaultMaxVarLen)
	set(&opt.MaxCode, defaultMaxCode)
	set(&opt.MaxData, defaultMaxData)
	set(&opt.MaxHeader, defaultMaxHeader)
	set(&opt.MaxSymtab, defaultMaxSymtab)
	set(&opt.MaxStrtab, defaultMaxStrtab)
	set(&opt.MaxSection, defaultMaxSection)
	return opt
}

// ParseArgs parses command line arguments, in the same hand-rolled style as
// the teacher's ParseArgs: a manual switch over os.Args, no flag package.
func ParseArgs() (Options, error) {
	opt := Options{}
	if len(os.Args) < 2 {
		return opt, nil
	}
	args := os.Args[1:]
	for i1 := 0; i1 < len(args); i1++ {
		switch args[i1] {
		case "-h", "--h", "-help", "--help":
			PrintHelp()
			os.Exit(0)
		case "-o":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			if strings.HasPrefix(args[i1+1], "-") {
				return opt, fmt.Errorf("expected path to output file, got new flag %s", args[i1+1])
			}
			opt.Out = args[i1+1]
			i1++
		case "-S":
			opt.DumpIR = true
		case "-hard-mul-div":
			opt.HardMulDiv = true
		case "-llvm-dump":
			opt.LLVMDump = true
		case "-v", "--v", "-version", "--version":
			fmt.Println(appVersion)
			os.Exit(0)
		default:
			if strings.HasPrefix(args[i1], "-") {
				return opt, fmt.Errorf("unexpected flag: %s", args[i1])
			}
			opt.Src = args[i1]
		}
	}
	return opt, nil
}

// PrintHelp prints a helpful usage message to stdout.
func PrintHelp() {
	w := tabwriter.NewWriter(os.Stdout, 6, 1, 1, 0, 0)
	_, _ = fmt.Fprintln(w, "-h, -help\tPrints this help message and exits the application.")
	_, _ = fmt.Fprintln(w, "--h, --help")
	_, _ = fmt.Fprintln(w, "-o\tPath and name of the output ELF executable.")
	_, _ = fmt.Fprintln(w, "-S\tDump the Phase-1 intermediate representation as text and exit.")
	_, _ = fmt.Fprintln(w, "-hard-mul-div\tEmit hardware multiply/divide instructions instead of software routines.")
	_, _ = fmt.Fprintln(w, "-llvm-dump\tLower the Phase-2 IR to textual LLVM IR and exit.")
	_, _ = fmt.Fprintln(w, "-v, -version\tPrints application version and exits the application.")
	_, _ = fmt.Fprintln(w, "--v, --version")
	_ = w.Flush()
}
