package tree

import "strings"

// NativeKind tags a Native node with the grammar construct it stands for.
// Two kinds are equal when both the discriminator and the payload match.
type NativeKind struct {
	// Discriminator names the construct, such as a grammar rule or AST type.
	Discriminator string

	// Payload distinguishes productions sharing a discriminator, such as an
	// operator. It is empty when unused.
	Payload string
}

// NewNativeKind creates a kind; payload parts are joined with "|".
func NewNativeKind(discriminator string, payload ...string) NativeKind {
	return NativeKind{Discriminator: discriminator, Payload: strings.Join(payload, "|")}
}

// Equal reports discriminator and payload equality.
func (k NativeKind) Equal(other NativeKind) bool {
	return k == other
}

func (k NativeKind) String() string {
	if k.Payload == "" {
		return k.Discriminator
	}
	return k.Discriminator + "[" + k.Payload + "]"
}

// Native is the escape hatch for constructs with no generic kind.
type Native struct {
	base
	NativeKind NativeKind
	children   []Node
}

// NewNative creates a Native node. Nil children are dropped.
func NewNative(meta *TreeMetaData, kind NativeKind, children []Node) *Native {
	return &Native{base: base{meta: meta}, NativeKind: kind, children: appendNonNil(nil, children...)}
}

func (*Native) Kind() Kind { return KindNative }

func (n *Native) Children() []Node { return n.children }
