package mython

import "strings"

// Print evaluates Args in order, renders each with Render, joins them with a
// single space, writes the line to ctx.Out followed by a newline, and
// yields None. Print with no arguments writes a bare newline.
type Print struct {
	basePos
	Args []Node
}

func (p *Print) Execute(closure Closure, ctx *Context) (Value, error) {
	parts := make([]string, len(p.Args))
	for i, arg := range p.Args {
		val, err := arg.Execute(closure, ctx)
		if err != nil {
			return Value{}, err
		}
		text, err := Render(val, ctx)
		if err != nil {
			return Value{}, err
		}
		parts[i] = text
	}
	if _, err := ctx.Out.Write([]byte(strings.Join(parts, " ") + "\n")); err != nil {
		return Value{}, err
	}
	return NewNone(), nil
}

// Stringify evaluates Arg and yields its Render'd text as a String value,
// the expression form used when a print argument needs str()-style
// coercion without touching output (also the mechanism behind __str__
// composing strings built from other objects).
type Stringify struct {
	basePos
	Arg Node
}

func (s *Stringify) Execute(closure Closure, ctx *Context) (Value, error) {
	val, err := s.Arg.Execute(closure, ctx)
	if err != nil {
		return Value{}, err
	}
	text, err := Render(val, ctx)
	if err != nil {
		return Value{}, err
	}
	return NewString(text), nil
}
