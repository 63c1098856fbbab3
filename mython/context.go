package mython

import "io"

// Context is the execution environment threaded through every node's
// Execute call: an output stream for print/stringify, plus the "self name"
// hint that lets a freshly-assigned instance see itself inside its own
// __init__.
type Context struct {
	Out      io.Writer
	selfName string
}

// NewContext returns a Context that writes print output to out.
func NewContext(out io.Writer) *Context {
	return &Context{Out: out}
}
