package codegen

import (
	_ "embed"
)

//go:embed csrc/bitspec.h
var runtimeHeader string

//go:embed csrc/bitspec.c
var runtimeSource string

// CRuntime returns the C header and source that encode and decode lines
// described by the tables C renders.
func CRuntime() (header, source string) {
	return runtimeHeader, runtimeSource
}
