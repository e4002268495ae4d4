package ir

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// BaseType enumerates the base_type discriminator of a Type.
type BaseType int

// Base types a Type can hold, matching spec.md §3.
const (
	BaseInt BaseType = iota
	BaseChar
	BaseVoid
	BaseStruct
	BaseTypedef
)

// Type represents a named C type (type_t).
//
// Fields is a slice of *Variable, not Variable, so that pointers handed out
// by FindMember (and captured by IR instructions built before every field
// is known) stay valid across later appends: growing a []Variable in place
// can reallocate the backing array and strand earlier &Fields[i] pointers
// on a stale copy, the way growing []*Variable never does.
type Type struct {
	Name       string      // type_name.
	Base       BaseType    // base_type.
	Size       int         // size in bytes. 0 on an unresolved forward declaration.
	Fields     []*Variable // fields[], only meaningful for BaseStruct.
	BaseStruct *Type       // Resolved target of a forward-declared typedef.
}

// Variable is a declared name (var_t).
type Variable struct {
	Name      string // var_name.
	TypeName  string // type_name: the Type this variable is declared with.
	IsPtr     int    // Pointer depth. 0 = not a pointer.
	IsFunc    bool   // Function pointer flag.
	ArraySize int    // 0 = scalar.
	InitVal   int    // Literal value, or byte offset into the data section.
	Liveness  int    // Last Phase-1 IR index at which the variable is live.
}

// Function is identified by name (func_t). The distinguished empty-name
// Function represents the global pseudo-function holding global
// declarations.
//
// Params is []*Variable, not []Variable, for the same pointer-stability
// reason as Type.Fields: resolver hits into Params are captured by IR
// instructions long before every parameter is known to be declared.
type Function struct {
	ReturnDef Variable    // Reuses the function name as its VarName.
	Params    []*Variable // param_defs[].
	StackSize int         // Starts at 4 (see globals.c add_func).
}

// Name returns the function's name (ReturnDef.Name).
func (f *Function) Name() string { return f.ReturnDef.Name }

// AddParam appends a new parameter to f.Params and returns a pointer to it
// stable across further appends (f.Params stores *Variable, see above).
func (f *Function) AddParam(v Variable) *Variable {
	p := &v
	f.Params = append(f.Params, p)
	return p
}

// Macro is a preprocessor macro (macro_t).
type Macro struct {
	Name      string      // name.
	ParamDefs []*Variable // param_defs[].
	Params    []int       // Source indices of argument text per call site.
	Disabled  bool        // Soft-delete flag.
}

// Alias is simple text substitution (alias_t): alias -> value.
type Alias struct {
	Alias    string
	Value    string
	Disabled bool
}

// Constant is a named integer (constant_t): alias -> value.
type Constant struct {
	Alias string
	Value int
}

// LabelEntry is one (name, byte offset) pair of the label table (§4.6).
type LabelEntry struct {
	Name   string
	Offset int
}

// ---------------------
// ----- functions -----
// ---------------------

// AddType allocates a new, empty Type in the TYPES arena and returns it for
// the caller to populate (add_type).
func (ctx *Context) AddType() *Type {
	t := &Type{}
	ctx.Types = append(ctx.Types, t)
	return t
}

// AddNamedType allocates a new Type named name (add_named_type).
func (ctx *Context) AddNamedType(name string) *Type {
	t := ctx.AddType()
	t.Name = name
	return t
}

// AddFunc returns the Function named name, creating it if it does not yet
// exist, and (re)initialises its stack frame to the 4-byte starting point
// (add_func). Because the underlying Hashmap never replaces existing
// entries (spec.md §4.1), a second AddFunc call for the same name returns
// the original Function, with StackSize reset to 4.
func (ctx *Context) AddFunc(name string) *Function {
	var fn *Function
	if v, ok := ctx.Funcs.Get(name); ok {
		fn = v.(*Function)
	} else {
		fn = &Function{}
		fn.ReturnDef.Name = name
		ctx.Funcs.Put(name, fn)
	}
	fn.StackSize = 4
	return fn
}

// AddConstant appends a new named integer constant (add_constant).
func (ctx *Context) AddConstant(alias string, value int) {
	ctx.Constants = append(ctx.Constants, &Constant{Alias: alias, Value: value})
}

// AddAlias appends a new text-substitution alias (add_alias).
func (ctx *Context) AddAlias(alias, value string) {
	ctx.Aliases = append(ctx.Aliases, &Alias{Alias: alias, Value: value})
}

// RemoveAlias soft-deletes the first enabled alias matching name, returning
// true if one was found (remove_alias).
func (ctx *Context) RemoveAlias(name string) bool {
	for _, a := range ctx.Aliases {
		if !a.Disabled && a.Alias == name {
			a.Disabled = true
			return true
		}
	}
	return false
}

// AddMacro appends a new, enabled macro named name (add_macro).
func (ctx *Context) AddMacro(name string) *Macro {
	m := &Macro{Name: name}
	ctx.Macros = append(ctx.Macros, m)
	return m
}

// RemoveMacro soft-deletes the first enabled macro matching name, returning
// true if one was found (remove_macro).
func (ctx *Context) RemoveMacro(name string) bool {
	for _, m := range ctx.Macros {
		if !m.Disabled && m.Name == name {
			m.Disabled = true
			return true
		}
	}
	return false
}

// SizeOf computes the byte size of Variable v (size_var): a pointer or
// function reference is always 4 bytes; otherwise the size is resolved via
// the variable's Type, following base_struct if the type is an unresolved
// forward declaration, then scaled by ArraySize if the variable is an array.
func (ctx *Context) SizeOf(v *Variable) (int, error) {
	var size int
	if v.IsPtr > 0 || v.IsFunc {
		size = 4
	} else {
		t := ctx.FindType(v.TypeName, 0)
		if t == nil {
			return 0, ctx.Errorf("incomplete type")
		}
		if t.Size == 0 {
			if t.BaseStruct == nil {
				return 0, ctx.Errorf("incomplete type")
			}
			size = t.BaseStruct.Size
		} else {
			size = t.Size
		}
	}
	if v.ArraySize > 0 {
		size *= v.ArraySize
	}
	return size, nil
}

// SetVarLiveout raises Variable v's liveness to end if end is greater than
// its current value. Liveness never decreases (spec.md §8 invariant 3).
func SetVarLiveout(v *Variable, end int) {
	if v.Liveness >= end {
		return
	}
	v.Liveness = end
}
