package decl

import (
	"fmt"

	"github.com/darren-211/assemblyscript/internal/exports"
	"github.com/darren-211/assemblyscript/internal/types"
)

// WebIDLBuilder renders an export graph as a WebIDL interface description.
// A builder is bound to one graph and is single-use per build.
type WebIDLBuilder struct {
	sb     textBuf
	graph  *exports.Graph
	walker *Walker
}

// BuildWebIDL renders the complete WebIDL text for the graph.
func BuildWebIDL(g *exports.Graph) string {
	b := &WebIDLBuilder{graph: g}
	b.walker = NewWalker(g, b)
	return b.build()
}

func (b *WebIDLBuilder) build() string {
	sb := &b.sb
	sb.push("interface ASModule {\n")
	sb.level++
	b.walker.Walk()
	sb.level--
	sb.push("}\n")
	return sb.join()
}

// VisitGlobal renders `[const] <type> <name>[ = <literal>];`. The literal
// appears only for inlined constants.
func (b *WebIDLBuilder) VisitGlobal(name string, e *exports.Element) {
	sb := &b.sb
	isConst := e.Flags.Has(exports.FlagInlined)
	sb.indent()
	if isConst {
		sb.push("const ")
	}
	sb.push(b.typeToString(e.Type))
	sb.push(" ")
	sb.push(name)
	if isConst {
		switch e.Const {
		case exports.ConstInteger:
			sb.push(" = ")
			sb.push(formatInt(e.IntValue))
		case exports.ConstFloat:
			sb.push(" = ")
			sb.push(formatFloat(e.FloatValue))
		}
	}
	sb.push(";\n")
}

// VisitEnum renders the enum as a nested interface. Value members become
// unsigned long fields, const when inlined, readonly otherwise; anything else
// in the member list goes back through the dispatcher.
func (b *WebIDLBuilder) VisitEnum(name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	sb.push("interface ")
	sb.push(name)
	sb.push(" {\n")
	sb.level++
	var rest []exports.Member
	for _, m := range e.Members {
		v := b.graph.Get(m.Elem)
		if v == nil || v.Kind != exports.ElemEnumValue {
			rest = append(rest, m)
			continue
		}
		b.walker.MarkSeen(m.Elem)
		isConst := v.Flags.Has(exports.FlagInlined)
		sb.indent()
		if isConst {
			sb.push("const ")
		} else {
			sb.push("readonly ")
		}
		sb.push("unsigned long ")
		sb.push(m.Name)
		if isConst {
			sb.push(" = ")
			sb.push(formatInt(v.IntValue))
		}
		sb.push(";\n")
	}
	for _, m := range rest {
		b.walker.Visit(m.Name, m.Elem)
	}
	sb.level--
	sb.indent()
	sb.push("}\n")
}

// VisitFunction renders the signature line, followed by a nested interface
// when the function doubles as a namespace for attached exports.
func (b *WebIDLBuilder) VisitFunction(name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	sb.push(b.typeToString(e.Signature.Return))
	sb.push(" ")
	sb.push(name)
	sb.push("(")
	for i, p := range e.Signature.Params {
		if i > 0 {
			sb.push(", ")
		}
		sb.push(b.typeToString(p.Type))
		sb.push(" ")
		sb.push(p.Name)
	}
	sb.push(");\n")
	if len(e.Members) > 0 {
		sb.indent()
		sb.push("interface ")
		sb.push(name)
		sb.push(" {\n")
		sb.level++
		for _, m := range e.Members {
			b.walker.Visit(m.Name, m.Elem)
		}
		sb.level--
		sb.indent()
		sb.push("}\n")
	}
}

// VisitClass renders an empty interface block. Member emission is not part of
// the declaration surface.
func (b *WebIDLBuilder) VisitClass(name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	sb.push("interface ")
	sb.push(name)
	sb.push(" {\n")
	sb.indent()
	sb.push("}\n")
}

func (b *WebIDLBuilder) VisitInterface(name string, e *exports.Element) {
	b.VisitClass(name, e)
}

// VisitNamespace renders an interface block for the namespace, kept even when
// it has no members.
func (b *WebIDLBuilder) VisitNamespace(name string, e *exports.Element) {
	sb := &b.sb
	sb.indent()
	sb.push("interface ")
	sb.push(name)
	sb.push(" {\n")
	sb.level++
	for _, m := range e.Members {
		b.walker.Visit(m.Name, m.Elem)
	}
	sb.level--
	sb.indent()
	sb.push("}\n")
}

func (b *WebIDLBuilder) typeToString(k types.Kind) string {
	switch k {
	case types.KindI8:
		return "byte"
	case types.KindI16:
		return "short"
	case types.KindI32:
		return "long"
	case types.KindI64:
		return "long long"
	case types.KindISize:
		if b.graph.Memory64 {
			return "long long"
		}
		return "long"
	case types.KindU8:
		return "octet"
	case types.KindU16:
		return "unsigned short"
	case types.KindU32:
		return "unsigned long"
	case types.KindU64:
		return "unsigned long long"
	case types.KindUSize:
		if b.graph.Memory64 {
			return "unsigned long long"
		}
		return "unsigned long"
	case types.KindBool:
		return "boolean"
	case types.KindF32:
		return "unrestricted float"
	case types.KindF64:
		return "unrestricted double"
	case types.KindVoid:
		return "void"
	default:
		panic(fmt.Sprintf("webidl: unsupported type kind %v", k))
	}
}
