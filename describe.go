package rxparse

import (
	"fmt"
	"strings"
)

type treePrinter struct {
	padStr []string
	output *strings.Builder
}

func newTreePrinter() *treePrinter {
	return &treePrinter{output: &strings.Builder{}}
}

func (tp *treePrinter) indent(s string) {
	tp.padStr = append(tp.padStr, s)
}

func (tp *treePrinter) unindent() {
	tp.padStr = tp.padStr[:len(tp.padStr)-1]
}

func (tp *treePrinter) padding() {
	for _, item := range tp.padStr {
		tp.write(item)
	}
}

func (tp *treePrinter) write(s string) {
	tp.output.WriteString(s)
}

func (tp *treePrinter) writel(s string) {
	tp.write(s)
	tp.output.WriteRune('\n')
}

// Describe renders the tree of combinators p is made of, one parser
// per line:
//
//	All
//	├── 'a'
//	└── Amplify
//	    └── 'b'
func Describe(p any) string {
	tp := newTreePrinter()
	tp.node(p)
	return strings.TrimSuffix(tp.output.String(), "\n")
}

func (tp *treePrinter) node(p any) {
	d, ok := p.(describer)
	if !ok {
		tp.writel(fmt.Sprintf("%T", p))
		return
	}
	label, children := d.describe()
	tp.writel(label)
	for i, child := range children {
		tp.padding()
		if i == len(children)-1 {
			tp.write("└── ")
			tp.indent("    ")
		} else {
			tp.write("├── ")
			tp.indent("│   ")
		}
		tp.node(child)
		tp.unindent()
	}
}
