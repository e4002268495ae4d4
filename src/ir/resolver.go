package ir

// Flags accepted by FindType, matching spec.md §4.2 find_type.
const (
	FindTypeAny        = 0 // Search in all type names.
	FindTypeExcludeTag = 1 // Exclude struct-tag entries.
	FindTypeTagOnly    = 2 // Only search struct-tag entries.
)

// FindType returns the Type named name honouring flag (find_type):
//
//	FindTypeAny:        any match.
//	FindTypeExcludeTag: skip BaseStruct-tagged entries.
//	FindTypeTagOnly:    only BaseStruct-tagged entries.
//
// A matched typedef with Size == 0 is transparently resolved to its
// BaseStruct (spec.md invariant 5), so FindType never returns an
// unresolved forward declaration.
func (ctx *Context) FindType(name string, flag int) *Type {
	for _, t := range ctx.Types {
		if t.Base == BaseStruct {
			if flag == FindTypeExcludeTag {
				continue
			}
			if t.Name == name {
				return t
			}
			continue
		}
		if flag == FindTypeTagOnly {
			continue
		}
		if t.Name == name {
			if t.Base == BaseTypedef && t.Size == 0 {
				return t.BaseStruct
			}
			return t
		}
	}
	return nil
}

// FindMember returns the field named token of Type t (find_member). If t is
// an unresolved forward declaration (Size == 0) the search is redirected to
// t.BaseStruct.
func (ctx *Context) FindMember(token string, t *Type) *Variable {
	if t.Size == 0 {
		t = t.BaseStruct
	}
	for _, f := range t.Fields {
		if f.Name == token {
			return f
		}
	}
	return nil
}

// findLocalVar walks from block outward through its enclosing blocks,
// stopping before the global scope global, scanning Locals, then falls
// back to the enclosing function's parameters (find_local_var).
func findLocalVar(token string, block, global *Block) *Variable {
	fn := block.Func
	for b := block; b != nil && b != global; b = b.Parent {
		for _, v := range b.Locals {
			if v.Name == token {
				return v
			}
		}
	}
	if fn != nil {
		for _, p := range fn.Params {
			if p.Name == token {
				return p
			}
		}
	}
	return nil
}

// findGlobalVar scans the locals of the global scope, ctx.Blocks.Head
// (find_global_var). ctx.Blocks.Head is only ever the global scope because
// AddBlock's first caller must establish it as such (see AddBlock).
func (ctx *Context) findGlobalVar(token string) *Variable {
	if ctx.Blocks.Head == nil {
		return nil
	}
	b := ctx.Blocks.Head
	for _, v := range b.Locals {
		if v.Name == token {
			return v
		}
	}
	return nil
}

// FindVar resolves token starting at block: innermost block outward up to,
// but not including, the global scope ctx.Blocks.Head, then the enclosing
// function's parameters, then globals (find_var). Locals shadow parameters,
// which shadow globals.
func (ctx *Context) FindVar(token string, block *Block) *Variable {
	if v := findLocalVar(token, block, ctx.Blocks.Head); v != nil {
		return v
	}
	return ctx.findGlobalVar(token)
}

// FindFunc looks up a Function by name via the FUNCS_MAP hashmap
// (find_func).
func (ctx *Context) FindFunc(name string) *Function {
	v, ok := ctx.Funcs.Get(name)
	if !ok {
		return nil
	}
	return v.(*Function)
}

// FindConstant looks up a named integer constant by alias (find_constant).
func (ctx *Context) FindConstant(alias string) *Constant {
	for _, c := range ctx.Constants {
		if c.Alias == alias {
			return c
		}
	}
	return nil
}

// FindAlias looks up the substitution value of an enabled alias
// (find_alias). Disabled (removed) aliases are skipped.
func (ctx *Context) FindAlias(alias string) (string, bool) {
	for _, a := range ctx.Aliases {
		if !a.Disabled && a.Alias == alias {
			return a.Value, true
		}
	}
	return "", false
}

// FindMacro looks up an enabled macro by name (find_macro). Disabled
// (removed) macros are skipped.
func (ctx *Context) FindMacro(name string) *Macro {
	for _, m := range ctx.Macros {
		if !m.Disabled && m.Name == name {
			return m
		}
	}
	return nil
}

// FindMacroParamSrcIdx maps parameter name to its source index within the
// macro expansion frame parent (find_macro_param_src_idx). parent == nil is
// a fatal semantic error: macro expansion is not supported at global scope.
// Returning 0 when parent is not itself a macro frame doubles as "not a
// macro parameter" — callers that need to disambiguate must check
// parent.Macro == nil themselves, matching spec.md §4.2.
//
// Unlike globals.c, which dereferences parent->macro before checking
// parent for nil, this function checks parent == nil first (spec.md §9:
// "Reorder so the null check precedes member access").
func (ctx *Context) FindMacroParamSrcIdx(name string, parent *Block) (int, error) {
	if parent == nil {
		return 0, ctx.Errorf("the macro expansion is not supported in the global scope")
	}
	if parent.Macro == nil {
		return 0, nil
	}
	macro := parent.Macro
	for i, p := range macro.ParamDefs {
		if p.Name == name {
			return macro.Params[i], nil
		}
	}
	return 0, nil
}
