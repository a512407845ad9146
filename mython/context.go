package mython

import "io"

// Context bundles the evaluator-side services available to Execute: an
// output stream that print writes to. The evaluator borrows the stream
// for the duration of Execute and never closes it.
type Context struct {
	out io.Writer
}

// NewContext wraps w as the output stream for a top-level run.
func NewContext(w io.Writer) *Context {
	return &Context{out: w}
}

// Output returns the writable stream print writes to.
func (c *Context) Output() io.Writer { return c.out }

// dummyOutput discards everything written to it.
type dummyOutput struct{}

func (dummyOutput) Write(p []byte) (int, error) { return len(p), nil }

// NewDummyContext returns a Context whose output is discarded, used
// while stringifying a value so nested __str__ calls cannot cause
// re-entrant output side effects.
func NewDummyContext() *Context {
	return &Context{out: dummyOutput{}}
}
