package compare

// NilCheck performs a nil check on two pointers and returns whether they are equal
// and whether more comparison checks are needed.
//
// Returns (equal, needsMoreChecks) where:
//   - equal: true if both are nil, false if only one is nil
//   - needsMoreChecks: true if both pointers are non-nil and further comparison is needed
//
// Example:
//
//	func (d *DataType) Equal(other *DataType) bool {
//	    if eq, needsMoreChecks := compare.NilCheck(d, other); !needsMoreChecks {
//	        return eq
//	    }
//	    // Continue with field comparisons...
//	}
func NilCheck[T any](a, b *T) (equal bool, needsMoreChecks bool) {
	if a == nil && b == nil {
		return true, false
	}
	if a == nil || b == nil {
		return false, false
	}
	return false, true
}

// Pointers compares two pointer values for equality.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	func (d *DecFloatType) Equal(other *DecFloatType) bool {
//	    return compare.Pointers(d.Precision, other.Precision)
//	}
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// PointersWithEqual compares two pointers using a custom equality function.
// Returns true if both are nil, or both are non-nil and the equality function returns true.
//
// Example:
//
//	func (t *TableName) Equal(other *TableName) bool {
//	    return compare.PointersWithEqual(t.Qualifier, other.Qualifier,
//	        (*LocalOrSchemaQualifier).Equal)
//	}
func PointersWithEqual[T any](a, b *T, equalFunc func(*T, *T) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return equalFunc(a, b)
}

// Slices compares two slices for equality using an equality function for elements.
// Returns true if both slices have the same length and all corresponding elements are equal.
//
// Example:
//
//	func (l *TableElementList) Equal(other *TableElementList) bool {
//	    return compare.Slices(l.Elements, other.Elements, (*TableElement).Equal)
//	}
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}
