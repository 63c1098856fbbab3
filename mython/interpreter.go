package mython

import (
	"io"
	"strings"
)

// Program is a parsed mython source file ready to run. Parsing and
// execution are split so a caller can parse once and run a program
// repeatedly against different output streams, the same separation of
// concerns the teacher's lexer/parser/evaluator pipeline keeps.
type Program struct {
	root Node
}

// Compile parses src and returns a runnable Program, or the lexer's error, or
// the ParseErrors holding every mistake the parser found.
func Compile(src string) (*Program, error) {
	root, err := Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return &Program{root: root}, nil
}

// Run executes the program's top-level statements against a fresh global
// Closure, writing any print output to out. The top level is itself a
// Compound, so a successful run always returns None; callers that need the
// value of a particular statement must inspect what it printed or assigned
// instead.
func (p *Program) Run(out io.Writer) (Value, error) {
	closure := NewClosure()
	ctx := NewContext(out)
	return p.root.Execute(closure, ctx)
}
