package mython

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError renders a LexerError or RuntimeError together with a
// caret diagram pointing at the offending source position, for display
// by the CLI or REPL.
func FormatError(err error, source string) string {
	var b strings.Builder
	var pos Position
	var frames []StackFrame

	switch e := err.(type) {
	case *LexerError:
		b.WriteString(e.Error())
		pos = e.Pos
	case *RuntimeError:
		b.WriteString(e.Error())
		pos = e.Pos
		frames = e.Frames
	case *parseError:
		// parseError already carries and renders its own code frame.
		return e.Error()
	default:
		return err.Error()
	}

	if frame := formatCodeFrame(source, pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	for _, f := range frames {
		b.WriteString(fmt.Sprintf("\n  in method %s at line %d", f.Method, f.Pos.Line))
	}
	return b.String()
}

func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := lines[pos.Line-1]
	lineRunes := []rune(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
