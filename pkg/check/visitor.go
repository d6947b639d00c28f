package check

import (
	"slices"

	"github.com/yaklabco/treelint/pkg/tree"
)

// Scope is implemented by every context a Visitor can run with.
// Embedding *TreeContext satisfies it.
type Scope interface {
	Ancestry() *TreeContext
}

// TreeContext tracks the ancestors of the node being visited.
type TreeContext struct {
	ancestors []tree.Node
}

// NewTreeContext creates an empty TreeContext.
func NewTreeContext() *TreeContext {
	return &TreeContext{}
}

// Ancestry returns c itself.
func (c *TreeContext) Ancestry() *TreeContext {
	return c
}

// Ancestors returns the ancestors of the current node, innermost last.
func (c *TreeContext) Ancestors() []tree.Node {
	return slices.Clone(c.ancestors)
}

// Parent returns the innermost ancestor, or nil at the root.
func (c *TreeContext) Parent() tree.Node {
	if len(c.ancestors) == 0 {
		return nil
	}
	return c.ancestors[len(c.ancestors)-1]
}

func (c *TreeContext) enter(n tree.Node) {
	c.ancestors = append(c.ancestors, n)
}

func (c *TreeContext) leave() {
	c.ancestors = c.ancestors[:len(c.ancestors)-1]
}

func (c *TreeContext) reset() {
	c.ancestors = c.ancestors[:0]
}

// Callback handles one node during a scan.
type Callback[C Scope] func(ctx C, n tree.Node) error

type consumer[C Scope] struct {
	kind tree.Kind
	all  bool
	fn   Callback[C]
}

// Visitor dispatches nodes to the callbacks registered for their kind.
//
// Callbacks for a node run in registration order, before its children are
// visited. A callback error aborts the scan.
type Visitor[C Scope] struct {
	consumers []consumer[C]
	before    []Callback[C]
	after     []Callback[C]
}

// NewVisitor creates a Visitor without callbacks.
func NewVisitor[C Scope]() *Visitor[C] {
	return &Visitor[C]{}
}

// Register adds a callback for nodes of exactly the given kind.
func (v *Visitor[C]) Register(kind tree.Kind, fn Callback[C]) *Visitor[C] {
	v.consumers = append(v.consumers, consumer[C]{kind: kind, fn: fn})
	return v
}

// RegisterAll adds a callback for every node.
func (v *Visitor[C]) RegisterAll(fn Callback[C]) *Visitor[C] {
	v.consumers = append(v.consumers, consumer[C]{all: true, fn: fn})
	return v
}

// Before adds a hook that runs with the root before the traversal.
func (v *Visitor[C]) Before(fn Callback[C]) *Visitor[C] {
	v.before = append(v.before, fn)
	return v
}

// After adds a hook that runs with the root after the traversal.
func (v *Visitor[C]) After(fn Callback[C]) *Visitor[C] {
	v.after = append(v.after, fn)
	return v
}

// Scan runs the before hooks, visits root in pre-order and runs the after
// hooks. A nil root is a no-op.
func (v *Visitor[C]) Scan(ctx C, root tree.Node) error {
	if tree.IsNil(root) {
		return nil
	}

	tc := ctx.Ancestry()
	tc.reset()

	for _, fn := range v.before {
		if err := fn(ctx, root); err != nil {
			return err
		}
	}

	if err := v.visit(ctx, tc, root); err != nil {
		return err
	}

	for _, fn := range v.after {
		if err := fn(ctx, root); err != nil {
			return err
		}
	}

	return nil
}

func (v *Visitor[C]) visit(ctx C, tc *TreeContext, n tree.Node) error {
	for _, c := range v.consumers {
		if !c.all && c.kind != n.Kind() {
			continue
		}
		if err := c.fn(ctx, n); err != nil {
			return err
		}
	}

	tc.enter(n)
	defer tc.leave()

	for _, child := range n.Children() {
		if err := v.visit(ctx, tc, child); err != nil {
			return err
		}
	}

	return nil
}
