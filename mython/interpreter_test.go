package mython

import "strings"

type captureWriter struct {
	strings.Builder
}

func runSource(source string) (string, error) {
	var out captureWriter
	_, err := Run(source, &out)
	return out.String(), err
}
