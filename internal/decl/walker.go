package decl

import (
	"fmt"

	"github.com/darren-211/assemblyscript/internal/exports"
)

// Visitor receives one callback per emittable element kind. Each builder
// implements it to render a single output flavor.
type Visitor interface {
	VisitGlobal(name string, e *exports.Element)
	VisitEnum(name string, e *exports.Element)
	VisitFunction(name string, e *exports.Element)
	VisitClass(name string, e *exports.Element)
	VisitInterface(name string, e *exports.Element)
	VisitNamespace(name string, e *exports.Element)
}

// Walker drives a Visitor over a graph's export surface in declaration order.
// A walker is single-use: its visited set must not be reused across
// independent builds.
type Walker struct {
	graph *exports.Graph
	seen  map[exports.ElemID]struct{}
	v     Visitor
}

// NewWalker creates a walker bound to one graph and one visitor.
func NewWalker(g *exports.Graph, v Visitor) *Walker {
	return &Walker{
		graph: g,
		seen:  make(map[exports.ElemID]struct{}),
		v:     v,
	}
}

// Walk dispatches every root export once, in declaration order.
func (w *Walker) Walk() {
	for _, m := range w.graph.Exports {
		w.Visit(m.Name, m.Elem)
	}
}

// Visit dispatches a single element. Builders re-enter here for nested
// members, so de-duplication lives at this choke point: an element reachable
// via more than one enumeration path is emitted at most once per run.
func (w *Walker) Visit(name string, id exports.ElemID) {
	if !w.mark(id) {
		return
	}
	e := w.graph.Get(id)
	if e == nil {
		panic(fmt.Sprintf("export walker: dangling element id %d for %q", id, name))
	}
	switch e.Kind {
	case exports.ElemGlobal:
		if e.Flags.Has(exports.FlagCompiled) {
			w.v.VisitGlobal(name, e)
		}
	case exports.ElemEnum:
		if e.Flags.Has(exports.FlagCompiled) {
			w.v.VisitEnum(name, e)
		}
	case exports.ElemFunctionPrototype:
		w.visitFunctionInstances(name, e)
	case exports.ElemFunction:
		if e.Flags.Has(exports.FlagCompiled) {
			w.v.VisitFunction(name, e)
		}
	case exports.ElemClassPrototype:
		w.visitClassInstances(name, e)
	case exports.ElemClass:
		if e.Flags.Has(exports.FlagCompiled) {
			w.v.VisitClass(name, e)
		}
	case exports.ElemInterface:
		if e.Flags.Has(exports.FlagCompiled) {
			w.v.VisitInterface(name, e)
		}
	case exports.ElemNamespace:
		if e.Flags.Has(exports.FlagCompiled) {
			w.v.VisitNamespace(name, e)
		}
	default:
		panic(fmt.Sprintf("export walker: unexpected element kind %v for %q", e.Kind, name))
	}
}

// MarkSeen excludes an element from later dispatch. Builders use it for
// members they render inline, such as enum values.
func (w *Walker) MarkSeen(id exports.ElemID) {
	w.seen[id] = struct{}{}
}

func (w *Walker) mark(id exports.ElemID) bool {
	if _, ok := w.seen[id]; ok {
		return false
	}
	w.seen[id] = struct{}{}
	return true
}

// Generic prototypes have no runtime shape of their own: only their compiled
// monomorphized instances appear in emitted declarations.
func (w *Walker) visitFunctionInstances(name string, proto *exports.Element) {
	for _, id := range proto.Instances {
		if !w.mark(id) {
			continue
		}
		inst := w.graph.Get(id)
		if inst == nil {
			panic(fmt.Sprintf("export walker: dangling instance id %d for %q", id, name))
		}
		if !inst.Flags.Has(exports.FlagCompiled) {
			continue
		}
		w.v.VisitFunction(name, inst)
	}
}

func (w *Walker) visitClassInstances(name string, proto *exports.Element) {
	for _, id := range proto.Instances {
		if !w.mark(id) {
			continue
		}
		inst := w.graph.Get(id)
		if inst == nil {
			panic(fmt.Sprintf("export walker: dangling instance id %d for %q", id, name))
		}
		if !inst.Flags.Has(exports.FlagCompiled) {
			continue
		}
		switch inst.Kind {
		case exports.ElemClass:
			w.v.VisitClass(name, inst)
		case exports.ElemInterface:
			w.v.VisitInterface(name, inst)
		default:
			panic(fmt.Sprintf("export walker: class prototype %q materialized a %v", name, inst.Kind))
		}
	}
}
