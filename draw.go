package segtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	td "github.com/m1gwings/treedrawer/tree"
	"golang.org/x/term"
)

// Draw outputs an ASCII drawing of the tree structure (for debugging
// purposes). label may be nil, defaulting to fmt.Sprint. Padding leaves are
// drawn as "·".
func (t *Tree[T]) Draw(w io.Writer, label func(T) string) error {
	_, err := io.WriteString(w, t.drawing(label).String())
	return err
}

func (t *Tree[T]) drawing(label func(T) string) *td.Tree {
	label = defaultLabel(label)
	off := t.leafOffset()
	text := func(i int) td.NodeString {
		if i >= off+t.len {
			return td.NodeString("·")
		}
		return td.NodeString(label(t.tree[i]))
	}
	var grow func(d *td.Tree, i int)
	grow = func(d *td.Tree, i int) {
		if i >= off {
			return
		}
		grow(d.AddChild(text(2*i)), 2*i)
		grow(d.AddChild(text(2*i+1)), 2*i+1)
	}
	root := td.NewTree(text(1))
	grow(root, 1)
	return root
}

// Palette holds the colours used by Print and PrintLevels.
type Palette struct {
	Inner, Leaf, Padding *color.Color
}

// DefaultPalette is the palette used by Print.
var DefaultPalette = Palette{
	Inner:   color.New(color.FgBlack),
	Leaf:    color.New(color.FgBlue),
	Padding: color.New(color.FgHiBlack),
}

// Print draws the tree to stdout (for debugging purposes). If stdout is a
// terminal too narrow for the drawing, the tree is listed level by level
// instead.
func (t *Tree[T]) Print(label func(T) string) error {
	return t.fprint(os.Stdout, int(os.Stdout.Fd()), label)
}

func (t *Tree[T]) fprint(w io.Writer, fd int, label func(T) string) error {
	drawing := t.drawing(label).String()
	if term.IsTerminal(fd) {
		width, _, err := term.GetSize(fd)
		if err == nil && maxLineWidth(drawing) > width {
			tracer().Debugf("segtree: drawing exceeds terminal width %d, listing levels", width)
			return t.PrintLevels(w, label, DefaultPalette)
		}
	}
	_, err := io.WriteString(w, drawing)
	return err
}

// PrintLevels lists the tree level by level, root first, one line per level.
// Every node is printed as index:label, coloured by kind.
func (t *Tree[T]) PrintLevels(w io.Writer, label func(T) string, p Palette) error {
	label = defaultLabel(label)
	off := t.leafOffset()
	for level := 1; level < len(t.tree); level *= 2 {
		if _, err := fmt.Fprintf(w, "%2d |", levelDepth(level)); err != nil {
			return err
		}
		for i := level; i < 2*level; i++ {
			c := p.Inner
			switch {
			case i >= off+t.len:
				c = p.Padding
			case i >= off:
				c = p.Leaf
			}
			if err := colorize(w, c, " %d:%s", i, label(t.tree[i])); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func colorize(w io.Writer, c *color.Color, format string, args ...any) (err error) {
	if c == nil {
		_, err = fmt.Fprintf(w, format, args...)
	} else {
		_, err = c.Fprintf(w, format, args...)
	}
	return err
}

// levelDepth returns the depth of a level starting at buffer index level.
func levelDepth(level int) int {
	d := 0
	for level > 1 {
		level /= 2
		d++
	}
	return d
}

func maxLineWidth(s string) int {
	width := 0
	for line := range strings.SplitSeq(s, "\n") {
		width = max(width, len([]rune(line)))
	}
	return width
}

func defaultLabel[T any](label func(T) string) func(T) string {
	if label == nil {
		return func(v T) string { return fmt.Sprint(v) }
	}
	return label
}
