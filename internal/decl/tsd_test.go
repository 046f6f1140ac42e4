package decl

import (
	"strings"
	"testing"

	"github.com/darren-211/assemblyscript/internal/exports"
	"github.com/darren-211/assemblyscript/internal/types"
)

func TestTSDConstGlobal(t *testing.T) {
	g := exports.NewGraph(false)
	g.Export("X", g.Add(intGlobal("X", types.KindI32, 7)))

	got := BuildTSD(g)
	want := tsdPrologue +
		"declare module ASModule {\n" +
		"  const X: i32;\n" +
		"}\n"
	if got != want {
		t.Errorf("BuildTSD() = %q, want %q", got, want)
	}
}

func TestTSDPrologueComesFirst(t *testing.T) {
	g := exports.NewGraph(false)
	got := BuildTSD(g)
	if !strings.HasPrefix(got, "type i8 = number;\n") {
		t.Errorf("output must start with the alias prologue, got:\n%s", got)
	}
	if !strings.Contains(got, "type bool = any;\ndeclare module ASModule {\n") {
		t.Errorf("module block must follow the prologue, got:\n%s", got)
	}
}

func TestTSDEnum(t *testing.T) {
	g := exports.NewGraph(false)
	red := g.Add(enumValue("RED", 0, true))
	green := g.Add(enumValue("GREEN", 1, true))
	g.Export("Color", g.Add(exports.Element{
		Name:  "Color",
		Kind:  exports.ElemEnum,
		Flags: exports.FlagCompiled,
		Members: []exports.Member{
			{Name: "RED", Elem: red},
			{Name: "GREEN", Elem: green},
		},
	}))

	got := BuildTSD(g)
	want := "  enum Color {\n" +
		"    RED = 0,\n" +
		"    GREEN = 1\n" +
		"  }\n"
	if !strings.Contains(got, want) {
		t.Errorf("missing enum block %q, got:\n%s", want, got)
	}
	if strings.Contains(got, "namespace Color") {
		t.Errorf("value-only enum must not get a trailing namespace, got:\n%s", got)
	}
}

func TestTSDEnumTrailingNamespace(t *testing.T) {
	g := exports.NewGraph(false)
	red := g.Add(enumValue("RED", 0, true))
	helper := g.Add(exports.Element{
		Name:      "parse",
		Kind:      exports.ElemFunction,
		Flags:     exports.FlagCompiled,
		Signature: exports.Signature{Return: types.KindI32},
	})
	g.Export("Color", g.Add(exports.Element{
		Name:  "Color",
		Kind:  exports.ElemEnum,
		Flags: exports.FlagCompiled,
		Members: []exports.Member{
			{Name: "RED", Elem: red},
			{Name: "parse", Elem: helper},
		},
	}))

	got := BuildTSD(g)
	want := "  namespace Color {\n" +
		"    function parse(): i32;\n" +
		"  }\n"
	if !strings.Contains(got, want) {
		t.Errorf("non-value enum members belong in a trailing namespace, got:\n%s", got)
	}
}

func TestTSDFunctionWithMembers(t *testing.T) {
	g := exports.NewGraph(false)
	def := g.Add(intGlobal("DEFAULT", types.KindI32, 42))
	g.Export("seed", g.Add(exports.Element{
		Name:      "seed",
		Kind:      exports.ElemFunction,
		Flags:     exports.FlagCompiled,
		Signature: exports.Signature{Return: types.KindI32},
		Members:   []exports.Member{{Name: "DEFAULT", Elem: def}},
	}))

	got := BuildTSD(g)
	want := "  function seed(): i32;\n" +
		"  namespace seed {\n" +
		"    const DEFAULT: i32;\n" +
		"  }\n"
	if !strings.Contains(got, want) {
		t.Errorf("missing function and member namespace %q, got:\n%s", want, got)
	}
}

func TestTSDAbstractClassExtends(t *testing.T) {
	g := exports.NewGraph(false)
	g.Export("Shape", g.Add(exports.Element{
		Name:  "Shape",
		Kind:  exports.ElemClass,
		Flags: exports.FlagCompiled | exports.FlagAbstract,
		Base:  "Entity",
	}))

	got := BuildTSD(g)
	want := "  abstract class Shape extends Entity {\n" +
		"  }\n"
	if !strings.Contains(got, want) {
		t.Errorf("missing class header %q, got:\n%s", want, got)
	}
}

func TestTSDInterface(t *testing.T) {
	g := exports.NewGraph(false)
	g.Export("Drawable", g.Add(exports.Element{
		Name:  "Drawable",
		Kind:  exports.ElemInterface,
		Flags: exports.FlagCompiled,
	}))

	got := BuildTSD(g)
	want := "  interface Drawable {\n" +
		"  }\n"
	if !strings.Contains(got, want) {
		t.Errorf("missing interface block %q, got:\n%s", want, got)
	}
}

func TestTSDEmptyNamespaceElided(t *testing.T) {
	g := exports.NewGraph(false)
	g.Export("util", g.Add(exports.Element{
		Name:  "util",
		Kind:  exports.ElemNamespace,
		Flags: exports.FlagCompiled,
	}))

	got := BuildTSD(g)
	if strings.Contains(got, "util") {
		t.Errorf("empty namespace must be elided entirely, got:\n%s", got)
	}
}

func TestTSDPointerSizedTypes(t *testing.T) {
	build := func(memory64 bool) string {
		g := exports.NewGraph(memory64)
		g.Export("ptr", g.Add(exports.Element{
			Name:  "ptr",
			Kind:  exports.ElemGlobal,
			Flags: exports.FlagCompiled,
			Type:  types.KindUSize,
		}))
		return BuildTSD(g)
	}

	if got := build(false); !strings.Contains(got, "ptr: u32;") {
		t.Errorf("32-bit usize should alias u32, got:\n%s", got)
	}
	if got := build(true); !strings.Contains(got, "ptr: U64;") {
		t.Errorf("64-bit usize should alias U64, got:\n%s", got)
	}
}

func TestTSDWideIntegers(t *testing.T) {
	g := exports.NewGraph(false)
	g.Export("big", g.Add(exports.Element{
		Name:  "big",
		Kind:  exports.ElemFunction,
		Flags: exports.FlagCompiled,
		Signature: exports.Signature{
			Params: []exports.Param{{Name: "v", Type: types.KindI64}},
			Return: types.KindU64,
		},
	}))

	got := BuildTSD(g)
	if !strings.Contains(got, "function big(v: I64): U64;") {
		t.Errorf("64-bit integers should use the wide aliases, got:\n%s", got)
	}
}

func TestTSDUnsupportedTypePanics(t *testing.T) {
	g := exports.NewGraph(false)
	g.Export("x", g.Add(exports.Element{
		Name:  "x",
		Kind:  exports.ElemGlobal,
		Flags: exports.FlagCompiled,
		Type:  types.KindInvalid,
	}))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unsupported type kind")
		}
	}()
	BuildTSD(g)
}
