// Package compare provides generic comparison utilities for structural equality testing.
//
// This package offers a set of helper functions that eliminate boilerplate code when
// implementing Equal() methods on structs. It handles common patterns like nil checking,
// pointer comparisons, and slice comparisons.
//
// # Key Features
//
//   - Generic functions that work with any type
//   - Nil-safe pointer comparisons
//   - Slice comparisons with custom equality functions
//
// # Usage Examples
//
// Replace repetitive nil checks:
//
//	// Before (6 lines):
//	if x == nil && other == nil {
//	    return true
//	}
//	if x == nil || other == nil {
//	    return false
//	}
//
//	// After (2 lines):
//	if eq, done := compare.NilCheck(x, other); !done {
//	    return eq
//	}
//
// Compare pointer fields:
//
//	return compare.Pointers(t.Precision, other.Precision)
//
// Compare nested structs through pointers:
//
//	return compare.PointersWithEqual(t.Qualifier, other.Qualifier,
//	    (*LocalOrSchemaQualifier).Equal)
//
// Compare slices element-wise:
//
//	return compare.Slices(l.Elements, other.Elements, (*TableElement).Equal)
package compare
