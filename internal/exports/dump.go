package exports

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions configures the graph summary dump.
type DumpOptions struct {
	// ShowMembers lists nested members under each export.
	ShowMembers bool
}

// Dump writes a text summary of the graph to the provided writer. Intended
// for inspecting snapshot contents, not for machine consumption.
func Dump(w io.Writer, g *Graph, opts DumpOptions) error {
	if w == nil || g == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "graph: %d elements, %d exports, memory64=%v\n", g.Len(), len(g.Exports), g.Memory64); err != nil {
		return err
	}
	for _, m := range g.Exports {
		if err := dumpMember(w, g, m, 1, opts); err != nil {
			return err
		}
	}
	return nil
}

func dumpMember(w io.Writer, g *Graph, m Member, depth int, opts DumpOptions) error {
	pad := strings.Repeat("  ", depth)
	e := g.Get(m.Elem)
	if e == nil {
		_, err := fmt.Fprintf(w, "%s%s: <dangling #%d>\n", pad, m.Name, m.Elem)
		return err
	}
	line := fmt.Sprintf("%s%s: %s", pad, m.Name, e.Kind)
	if labels := e.Flags.Strings(); labels != nil {
		line += " [" + strings.Join(labels, ",") + "]"
	}
	switch e.Kind {
	case ElemFunctionPrototype, ElemClassPrototype:
		compiled := 0
		for _, id := range e.Instances {
			if inst := g.Get(id); inst != nil && inst.Flags.Has(FlagCompiled) {
				compiled++
			}
		}
		line += fmt.Sprintf(" (%d instances, %d compiled)", len(e.Instances), compiled)
	}
	if len(e.Members) > 0 {
		line += fmt.Sprintf(" (%d members)", len(e.Members))
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if opts.ShowMembers {
		for _, child := range e.Members {
			if err := dumpMember(w, g, child, depth+1, opts); err != nil {
				return err
			}
		}
	}
	return nil
}
