package decl

import (
	"strconv"
	"strings"
)

// textBuf accumulates output fragments and tracks block indentation depth.
// Fragments are joined exactly once when a build finishes.
type textBuf struct {
	frags []string
	level int
}

func (b *textBuf) push(s string) {
	b.frags = append(b.frags, s)
}

// indent starts a line at the current depth, two spaces per open block.
func (b *textBuf) indent() {
	for i := 0; i < b.level; i++ {
		b.frags = append(b.frags, "  ")
	}
}

func (b *textBuf) join() string {
	return strings.Join(b.frags, "")
}

// formatInt renders an integer constant as signed decimal.
func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatFloat renders a float constant with the shortest decimal form that
// round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
