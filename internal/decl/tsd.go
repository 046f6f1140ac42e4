package decl

import (
	"fmt"

	"github.com/darren-211/assemblyscript/internal/exports"
	"github.com/darren-211/assemblyscript/internal/types"
)

// tsdPrologue aliases the short primitive names so the declarations inside
// the module body can use them directly. The wide I64/U64 aliases stand in
// for 64-bit values, which have no exact numeric representation host-side.
const tsdPrologue = `type i8 = number;
type i16 = number;
type i32 = number;
type u8 = number;
type u16 = number;
type u32 = number;
type f32 = number;
type f64 = number;
type I64 = any;
type U64 = any;
type bool = any;
`

// TSDBuilder renders an export graph as a TypeScript ambient module
// description. A builder is bound to one graph and is single-use per build.
type TSDBuilder struct {
	sb     textBuf
	graph  *exports.Graph
	walker *Walker
}

// BuildTSD renders the complete TypeScript declaration text for the graph.
func BuildTSD(g *exports.Graph) string {
	b := &TSDBuilder{graph: g}
	b.walker = NewWalker(g, b)
	return b.build()
}

func (b *TSDBuilder) build() string {
	sb := &b.sb
	sb.push(tsdPrologue)
	sb.push("declare module ASModule {\n")
	sb.level++
	b.walker.Walk()
	sb.level--
	sb.push("}\n")
	return sb.join()
}

// VisitGlobal renders `[const] <name>: <type>;`, then a nested namespace when
// the global carries member exports of its own.
func (b *TSDBuilder) VisitGlobal(name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	if e.Flags.Has(exports.FlagInlined) {
		sb.push("const ")
	}
	sb.push(name)
	sb.push(": ")
	sb.push(b.typeToString(e.Type))
	sb.push(";\n")
	if len(e.Members) > 0 {
		b.emitMemberNamespace(name, e.Members)
	}
}

// VisitEnum renders a TypeScript enum. Value members carry their literal when
// inlined; members that are not values end up in a trailing namespace.
func (b *TSDBuilder) VisitEnum(name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	sb.push("enum ")
	sb.push(name)
	sb.push(" {\n")
	sb.level++
	var values, rest []exports.Member
	for _, m := range e.Members {
		v := b.graph.Get(m.Elem)
		if v == nil || v.Kind != exports.ElemEnumValue {
			rest = append(rest, m)
			continue
		}
		b.walker.MarkSeen(m.Elem)
		values = append(values, m)
	}
	for i, m := range values {
		v := b.graph.Get(m.Elem)
		sb.indent()
		sb.push(m.Name)
		if v.Flags.Has(exports.FlagInlined) {
			sb.push(" = ")
			sb.push(formatInt(v.IntValue))
		}
		if i+1 < len(values) {
			sb.push(",\n")
		} else {
			sb.push("\n")
		}
	}
	sb.level--
	sb.indent()
	sb.push("}\n")
	if len(rest) > 0 {
		b.emitMemberNamespace(name, rest)
	}
}

// VisitFunction renders the signature line, then a nested namespace for
// attached member exports.
func (b *TSDBuilder) VisitFunction(name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	sb.push("function ")
	sb.push(name)
	sb.push("(")
	for i, p := range e.Signature.Params {
		if i > 0 {
			sb.push(", ")
		}
		sb.push(p.Name)
		sb.push(": ")
		sb.push(b.typeToString(p.Type))
	}
	sb.push("): ")
	sb.push(b.typeToString(e.Signature.Return))
	sb.push(";\n")
	if len(e.Members) > 0 {
		b.emitMemberNamespace(name, e.Members)
	}
}

// VisitClass opens `[abstract] class <name>[ extends <base>]` with an empty
// body. Member emission is not part of the declaration surface.
func (b *TSDBuilder) VisitClass(name string, e *exports.Element) {
	b.emitClassLike("class", name, e)
}

func (b *TSDBuilder) VisitInterface(name string, e *exports.Element) {
	b.emitClassLike("interface", name, e)
}

func (b *TSDBuilder) emitClassLike(keyword, name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	if e.Flags.Has(exports.FlagAbstract) {
		sb.push("abstract ")
	}
	sb.push(keyword)
	sb.push(" ")
	sb.push(name)
	if e.Base != "" {
		sb.push(" extends ")
		sb.push(e.Base)
	}
	sb.push(" {\n")
	sb.indent()
	sb.push("}\n")
}

// VisitNamespace is elided entirely for empty namespaces, unlike the WebIDL
// flavor which keeps an empty interface block.
func (b *TSDBuilder) VisitNamespace(name string, e *exports.Element) {
	if len(e.Members) == 0 {
		return
	}
	b.emitMemberNamespace(name, e.Members)
}

func (b *TSDBuilder) emitMemberNamespace(name string, members []exports.Member) {
	sb := &b.sb
	sb.indent()
	sb.push("namespace ")
	sb.push(name)
	sb.push(" {\n")
	sb.level++
	for _, m := range members {
		b.walker.Visit(m.Name, m.Elem)
	}
	sb.level--
	sb.indent()
	sb.push("}\n")
}

func (b *TSDBuilder) typeToString(k types.Kind) string {
	switch k {
	case types.KindI8, types.KindI16, types.KindI32,
		types.KindU8, types.KindU16, types.KindU32,
		types.KindF32, types.KindF64:
		return k.String()
	case types.KindI64:
		return "I64"
	case types.KindU64:
		return "U64"
	case types.KindISize:
		if b.graph.Memory64 {
			return "I64"
		}
		return "i32"
	case types.KindUSize:
		if b.graph.Memory64 {
			return "U64"
		}
		return "u32"
	case types.KindBool:
		return "bool"
	case types.KindVoid:
		return "void"
	default:
		panic(fmt.Sprintf("tsd: unsupported type kind %v", k))
	}
}
