package exports

import (
	"fmt"

	"github.com/darren-211/assemblyscript/internal/types"
)

// ElemID uniquely identifies an element inside a graph's arena.
type ElemID uint32

// NoElemID marks the absence of an element.
const NoElemID ElemID = 0

// ElementKind classifies the declaration an element represents.
type ElementKind uint8

const (
	ElemInvalid ElementKind = iota
	ElemGlobal
	ElemEnum
	ElemEnumValue
	ElemFunctionPrototype
	ElemFunction
	ElemClassPrototype
	ElemClass
	ElemInterface
	ElemNamespace
)

func (k ElementKind) String() string {
	switch k {
	case ElemGlobal:
		return "global"
	case ElemEnum:
		return "enum"
	case ElemEnumValue:
		return "enumvalue"
	case ElemFunctionPrototype:
		return "function-prototype"
	case ElemFunction:
		return "function"
	case ElemClassPrototype:
		return "class-prototype"
	case ElemClass:
		return "class"
	case ElemInterface:
		return "interface"
	case ElemNamespace:
		return "namespace"
	default:
		return fmt.Sprintf("ElementKind(%d)", k)
	}
}

// ElementFlags encode misc attributes for quick checks.
type ElementFlags uint16

const (
	// FlagCompiled marks an element as reachable in the compiled artifact.
	// Only compiled elements appear in emitted declarations.
	FlagCompiled ElementFlags = 1 << iota
	// FlagInlined marks an element whose value is a compile-time constant.
	FlagInlined
	// FlagAbstract marks a class that cannot be instantiated.
	FlagAbstract
)

// Has reports whether all bits of flag are set.
func (f ElementFlags) Has(flag ElementFlags) bool {
	return f&flag == flag
}

// Strings returns a slice of textual flag labels.
func (f ElementFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 3)
	if f&FlagCompiled != 0 {
		labels = append(labels, "compiled")
	}
	if f&FlagInlined != 0 {
		labels = append(labels, "inlined")
	}
	if f&FlagAbstract != 0 {
		labels = append(labels, "abstract")
	}
	return labels
}

// ConstKind tags the compile-time constant value attached to a global.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstInteger
	ConstFloat
)

// Member pairs an exported name with the element it refers to. Member lists
// keep declaration order.
type Member struct {
	Name string
	Elem ElemID
}

// Param describes one function parameter.
type Param struct {
	Name string
	Type types.Kind
}

// Signature captures a concrete function shape.
type Signature struct {
	Params []Param
	Return types.Kind
}

// Element is a compact descriptor for any exported declaration. Fields beyond
// Name, Kind and Flags are populated per kind:
//
//   - Global: Type, Const and the matching value field; Members when the
//     global doubles as a namespace.
//   - EnumValue: IntValue.
//   - Function: Signature; Members for property exports attached to it.
//   - FunctionPrototype / ClassPrototype: Instances, one per monomorphized
//     specialization (exactly one for the non-generic case).
//   - Class / Interface: Base (simple name, empty when none), StaticMembers
//     and InstanceMembers.
//   - Enum / Namespace: Members.
type Element struct {
	Name  string
	Kind  ElementKind
	Flags ElementFlags

	Type       types.Kind
	Const      ConstKind
	IntValue   int64
	FloatValue float64

	Signature Signature
	Instances []ElemID
	Base      string

	Members         []Member
	StaticMembers   []Member
	InstanceMembers []Member
}
