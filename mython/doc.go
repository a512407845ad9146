// Package mython implements a tree-walking interpreter for a small
// Python-flavoured language with the following constructs:
//   - Two-space indentation framing: blocks are introduced by `:` and
//     delimited by synthetic Indent/Dedent tokens rather than braces.
//   - def/class declarations with single inheritance and instance methods
//     dispatched through the parent chain.
//   - Integers, strings, booleans, None, classes, and class instances as
//     the value kinds.
//   - Arithmetic (+, -, *, /), comparison (==, !=, <, <=, >, >=) and
//     boolean (and, or, not) expressions; and/or evaluate both operands.
//   - print statements and dotted field access/assignment.
//
// Comments beginning with `#` run to the end of the line. There is no
// module system and no floating point; see SPEC_FULL.md for the full
// contract this package implements.
package mython
