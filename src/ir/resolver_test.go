package ir

import "testing"

func TestFindVarShadowing(t *testing.T) {
	ctx := newTestContext()

	global := ctx.Blocks.Head
	global.AddLocal(Variable{Name: "x", TypeName: "int", InitVal: 1})

	fn := ctx.AddFunc("f")
	inner := ctx.AddBlock(global, fn, nil)
	inner.AddLocal(Variable{Name: "x", TypeName: "int", InitVal: 2})

	v := ctx.FindVar("x", inner)
	if v == nil {
		t.Fatal("FindVar(\"x\", inner) = nil")
	}
	if v.InitVal != 2 {
		t.Errorf("FindVar(\"x\", inner).InitVal = %d, want 2 (inner scope shadows global)", v.InitVal)
	}

	// A sibling block with no local "x" still sees the global.
	sibling := ctx.AddBlock(global, fn, nil)
	v = ctx.FindVar("x", sibling)
	if v == nil {
		t.Fatal("FindVar(\"x\", sibling) = nil")
	}
	if v.InitVal != 1 {
		t.Errorf("FindVar(\"x\", sibling).InitVal = %d, want 1 (falls back to global)", v.InitVal)
	}
}

func TestFindVarParamsBeforeGlobal(t *testing.T) {
	ctx := newTestContext()
	ctx.Blocks.Head.AddLocal(Variable{Name: "p", InitVal: 100})

	fn := ctx.AddFunc("g")
	fn.Params = []*Variable{{Name: "p", InitVal: 7}}
	blk := ctx.AddBlock(ctx.Blocks.Head, fn, nil)

	v := ctx.FindVar("p", blk)
	if v == nil || v.InitVal != 7 {
		t.Fatalf("FindVar(\"p\", blk) = %+v, want param shadowing global", v)
	}
}

func TestFindTypeResolvesForwardDeclaredTypedef(t *testing.T) {
	ctx := newTestContext()

	real := ctx.AddNamedType("struct foo")
	real.Base = BaseStruct
	real.Size = 8

	fwd := ctx.AddNamedType("foo_t")
	fwd.Base = BaseTypedef
	fwd.Size = 0
	fwd.BaseStruct = real

	got := ctx.FindType("foo_t", FindTypeAny)
	if got != real {
		t.Fatalf("FindType(%q) = %+v, want resolved BaseStruct %+v", "foo_t", got, real)
	}
}

func TestFindTypeExcludeTag(t *testing.T) {
	ctx := newTestContext()
	tag := ctx.AddNamedType("foo")
	tag.Base = BaseStruct
	tag.Size = 4

	if got := ctx.FindType("foo", FindTypeExcludeTag); got != nil {
		t.Errorf("FindType(%q, FindTypeExcludeTag) = %+v, want nil", "foo", got)
	}
	if got := ctx.FindType("foo", FindTypeTagOnly); got != tag {
		t.Errorf("FindType(%q, FindTypeTagOnly) = %+v, want %+v", "foo", got, tag)
	}
}

func TestRemoveAliasRoundTrip(t *testing.T) {
	ctx := newTestContext()
	ctx.AddAlias("PI", "3")

	if _, ok := ctx.FindAlias("PI"); !ok {
		t.Fatal("FindAlias(\"PI\") not found before removal")
	}
	if !ctx.RemoveAlias("PI") {
		t.Fatal("RemoveAlias(\"PI\") = false")
	}
	if _, ok := ctx.FindAlias("PI"); ok {
		t.Error("FindAlias(\"PI\") still found after RemoveAlias")
	}
	if ctx.RemoveAlias("PI") {
		t.Error("RemoveAlias(\"PI\") = true on already-removed alias")
	}
}

func TestRemoveMacroRoundTrip(t *testing.T) {
	ctx := newTestContext()
	ctx.AddMacro("M")

	if ctx.FindMacro("M") == nil {
		t.Fatal("FindMacro(\"M\") not found before removal")
	}
	if !ctx.RemoveMacro("M") {
		t.Fatal("RemoveMacro(\"M\") = false")
	}
	if ctx.FindMacro("M") != nil {
		t.Error("FindMacro(\"M\") still found after RemoveMacro")
	}
}

func TestFindMacroParamSrcIdxNilParentIsSemanticError(t *testing.T) {
	ctx := newTestContext()
	_, err := ctx.FindMacroParamSrcIdx("x", nil)
	if err == nil {
		t.Fatal("FindMacroParamSrcIdx(_, nil) = nil error, want error for global-scope macro expansion")
	}
}

func TestFindMacroParamSrcIdxNonMacroBlock(t *testing.T) {
	ctx := newTestContext()
	blk := ctx.AddBlock(ctx.Blocks.Head, ctx.GlobalFunc(), nil)
	idx, err := ctx.FindMacroParamSrcIdx("x", blk)
	if err != nil {
		t.Fatalf("FindMacroParamSrcIdx(_, non-macro block) = error %v, want nil", err)
	}
	if idx != 0 {
		t.Errorf("FindMacroParamSrcIdx(_, non-macro block) = %d, want 0", idx)
	}
}

func TestSizeOfPointerIsFourBytes(t *testing.T) {
	ctx := newTestContext()
	v := &Variable{TypeName: "int", IsPtr: 1}
	size, err := ctx.SizeOf(v)
	if err != nil {
		t.Fatalf("SizeOf(pointer) error: %s", err)
	}
	if size != 4 {
		t.Errorf("SizeOf(pointer) = %d, want 4", size)
	}
}

func TestSizeOfArrayScalesByArraySize(t *testing.T) {
	ctx := newTestContext()
	et := ctx.AddNamedType("int")
	et.Base = BaseInt
	et.Size = 4

	v := &Variable{TypeName: "int", ArraySize: 10}
	size, err := ctx.SizeOf(v)
	if err != nil {
		t.Fatalf("SizeOf(array) error: %s", err)
	}
	if size != 40 {
		t.Errorf("SizeOf(array of 10 int) = %d, want 40", size)
	}
}

func TestSizeOfIncompleteTypeErrors(t *testing.T) {
	ctx := newTestContext()
	_, err := ctx.SizeOf(&Variable{TypeName: "missing"})
	if err == nil {
		t.Fatal("SizeOf(unknown type) = nil error, want error")
	}
}

func TestSetVarLiveoutMonotonic(t *testing.T) {
	v := &Variable{}
	SetVarLiveout(v, 5)
	if v.Liveness != 5 {
		t.Fatalf("Liveness = %d, want 5", v.Liveness)
	}
	SetVarLiveout(v, 3)
	if v.Liveness != 5 {
		t.Errorf("Liveness decreased to %d after SetVarLiveout(3), want still 5", v.Liveness)
	}
	SetVarLiveout(v, 9)
	if v.Liveness != 9 {
		t.Errorf("Liveness = %d, want 9", v.Liveness)
	}
}
