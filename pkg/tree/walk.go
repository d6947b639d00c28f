package tree

import "errors"

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// If walkFunc returns a non-nil error, the walk stops and returns that error.
func Walk(root Node, walkFunc WalkFunc) error {
	if isNil(root) {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children() {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// AncestorFunc receives a node and its ancestors, innermost last.
// The ancestors slice is only valid for the duration of the call.
type AncestorFunc func(n Node, ancestors []Node) error

// WalkWithAncestors performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave after. Either may be nil.
func WalkWithAncestors(root Node, enter, leave AncestorFunc) error {
	var stack []Node
	return walkWithAncestors(root, &stack, enter, leave)
}

func walkWithAncestors(n Node, stack *[]Node, enter, leave AncestorFunc) error {
	if isNil(n) {
		return nil
	}

	if enter != nil {
		if err := enter(n, *stack); err != nil {
			return err
		}
	}

	*stack = append(*stack, n)
	for _, child := range n.Children() {
		if err := walkWithAncestors(child, stack, enter, leave); err != nil {
			return err
		}
	}
	*stack = (*stack)[:len(*stack)-1]

	if leave != nil {
		if err := leave(n, *stack); err != nil {
			return err
		}
	}

	return nil
}

// Descendants returns every node below root in pre-order, root excluded.
func Descendants(root Node) []Node {
	var result []Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(n Node) error {
		if n != root {
			result = append(result, n)
		}
		return nil
	})

	return result
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(n Node) error {
		if predicate(n) {
			result = append(result, n)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root Node, predicate func(n Node) bool) Node {
	var found Node

	err := Walk(root, func(n Node) error {
		if predicate(n) {
			found = n
			return errStopWalk
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return nil
	}

	return found
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root Node, kind Kind) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Kind() == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = errors.New("stop walk")
