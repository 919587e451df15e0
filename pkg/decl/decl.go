// Package decl records where table-driven test cases are declared
// so that failing cases can be located by their file:line name.
package decl

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Declaration is a test case annotated with its declaration position.
type Declaration[T any] struct {
	Decl string
	Data T
}

// New annotates data with the file:line of the caller.
func New[T any](data T) Declaration[T] {
	return Declaration[T]{Decl: caller(2), Data: data}
}

// Named is like New but prefixes the position with name.
func Named[T any](name string, data T) Declaration[T] {
	return Declaration[T]{Decl: name + "@" + caller(2), Data: data}
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
