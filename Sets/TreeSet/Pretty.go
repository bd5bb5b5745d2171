package TreeSet

import (
	"fmt"
	"strings"
)

type side byte

const (
	isRoot side = iota
	isLeft
	isRight
)

// glyph of a node by which children it has.
func (n *node[E]) glyph() rune {
	if n.l == nil {
		if n.r == nil {
			return '─'
		}
		return '┬'
	} else if n.r == nil {
		return '┴'
	}
	return '┼'
}

// Pretty draws the shape of the tree, one node per line in in-order, with the
// root at the left margin and children indented to the right of it. Recursive.
// For example, adding 40, 20, 60, 10, 30, 50, 70 gives
//
//	    ╭── 10
//	  ╭─┼ 20
//	  │ ╰── 30
//	──┼ 40
//	  │ ╭── 50
//	  ╰─┼ 60
//	    ╰── 70
func (u *TreeSet[E]) Pretty() string {
	if u.root == nil {
		return "<empty>\n"
	}
	var b strings.Builder
	u.pretty(&b, u.root, isRoot, "")
	return b.String()
}

func (u *TreeSet[E]) pretty(b *strings.Builder, n *node[E], s side, prefix string) {
	if n.l != nil {
		if s == isRight {
			u.pretty(b, n.l, isLeft, prefix+"│ ")
		} else {
			u.pretty(b, n.l, isLeft, prefix+"  ")
		}
	}
	b.WriteString(prefix)
	switch s {
	case isRoot:
		b.WriteRune('─')
	case isLeft:
		b.WriteRune('╭')
	case isRight:
		b.WriteRune('╰')
	}
	b.WriteRune('─')
	b.WriteRune(n.glyph())
	fmt.Fprintf(b, " %v\n", n.v)
	if n.r != nil {
		if s == isLeft {
			u.pretty(b, n.r, isRight, prefix+"│ ")
		} else {
			u.pretty(b, n.r, isRight, prefix+"  ")
		}
	}
}
