package gen

import (
	"fmt"
	"strings"
)

// codeWriter accumulates indented source lines for one method.
type codeWriter struct {
	b     strings.Builder
	depth int
}

func (w *codeWriter) line(format string, args ...any) {
	w.b.WriteString(strings.Repeat("\t", w.depth))
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *codeWriter) lines(ls []string) {
	for _, l := range ls {
		w.b.WriteString(strings.Repeat("\t", w.depth))
		w.b.WriteString(l)
		w.b.WriteByte('\n')
	}
}

func (w *codeWriter) blank() {
	w.b.WriteByte('\n')
}

func (w *codeWriter) in() {
	w.depth++
}

func (w *codeWriter) out() {
	w.depth--
}

func (w *codeWriter) String() string {
	return w.b.String()
}
