// Package utils provides small helpers shared across the codebase.
//
// # Pointer Utilities (ptr.go)
//
// Ptr returns a pointer to its argument, which keeps optional AST fields and
// table-driven tests free of temporary variables:
//
//	length := utils.Ptr(uint32(20))
//	scale := utils.Ptr(uint32(2))
package utils
