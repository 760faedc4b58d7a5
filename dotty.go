package segtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their buffer index and
// label(value); label may be nil, defaulting to fmt.Sprint. Padding leaves
// are drawn dashed.
func (t *Tree[T]) ToDot(w io.Writer, label func(T) string) error {
	label = defaultLabel(label)
	var nodelist, edgelist strings.Builder
	off := t.leafOffset()
	for i := 1; i < len(t.tree); i++ {
		var styles string
		switch {
		case i < off:
			styles = nodeDotStyles(false, false)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", i, 2*i)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", i, 2*i+1)
		case i < off+t.len:
			styles = nodeDotStyles(true, false)
		default:
			styles = nodeDotStyles(true, true)
		}
		text := strings.ReplaceAll(label(t.tree[i]), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"#%d\\n%s\"%s];\n", i, i, text, styles)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("segtree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool, padding bool) string {
	if padding {
		return ",style=dashed,shape=box"
	}
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
