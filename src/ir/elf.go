package ir

// headerLen is the fixed ELF header length the original allocates
// (0x34 ELF header + 1 * 0x20 program header), spec.md §6.
const headerLen = 0x54

// ELFImage holds the six in-memory buffers the back-end collaborator
// assembles into the produced ELF executable (spec.md §6 "Output"). Bit-
// exact layout is the back end's responsibility; this Context only owns the
// buffers and the two derived offsets (elf_code_start, CodeStart here).
type ELFImage struct {
	Code    []byte // elf_code.
	Data    []byte // elf_data.
	Header  []byte // elf_header, fixed size headerLen.
	Symtab  []byte // elf_symtab.
	Strtab  []byte // elf_strtab.
	Section []byte // elf_section.

	CodeStart int // elf_code_start = ELF_START + elf_header_len.
	DataStart int // elf_data_start, set once code size is known.
}

// HeaderLen returns the fixed ELF header length (elf_header_len).
func (e *ELFImage) HeaderLen() int { return headerLen }
