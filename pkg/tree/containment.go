package tree

// KindPair names a parent kind and one of its child kinds.
type KindPair struct {
	Parent Kind
	Child  Kind
}

// containmentExceptions lists the parent/child pairs where the child may own
// tokens outside the parent's range.
//
//nolint:gochecknoglobals // Read-only lookup table.
var containmentExceptions = []KindPair{
	// Modifiers taken from an enclosing wrapper, such as the "export" of
	// "export function f() {}", sit before the function's own range.
	{Parent: KindFunctionDeclaration, Child: KindModifier},
}

// ContainmentExceptions returns the documented parent/child pairs whose
// child tokens need not lie inside the parent.
func ContainmentExceptions() []KindPair {
	pairs := make([]KindPair, len(containmentExceptions))
	copy(pairs, containmentExceptions)
	return pairs
}

// IsContainmentException reports whether the pair is a documented exception.
func IsContainmentException(parent, child Kind) bool {
	for _, pair := range containmentExceptions {
		if pair.Parent == parent && pair.Child == child {
			return true
		}
	}
	return false
}
