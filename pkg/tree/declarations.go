package tree

// TopLevel is the root of a file's tree.
type TopLevel struct {
	base
	Declarations []Node
	AllComments  []Comment

	// FirstCPDToken is the first token that is not part of the file preamble
	// (package clause, imports). Nil means every token counts.
	FirstCPDToken *Token
}

// NewTopLevel creates a TopLevel.
func NewTopLevel(meta *TreeMetaData, declarations []Node, allComments []Comment, firstCPDToken *Token) *TopLevel {
	return &TopLevel{
		base:          base{meta: meta},
		Declarations:  declarations,
		AllComments:   allComments,
		FirstCPDToken: firstCPDToken,
	}
}

func (*TopLevel) Kind() Kind { return KindTopLevel }

func (t *TopLevel) Children() []Node {
	return appendNonNil(nil, t.Declarations...)
}

// PackageDeclaration declares the package or namespace of a file.
type PackageDeclaration struct {
	base
	children []Node
}

// NewPackageDeclaration creates a PackageDeclaration.
func NewPackageDeclaration(meta *TreeMetaData, children []Node) *PackageDeclaration {
	return &PackageDeclaration{base: base{meta: meta}, children: appendNonNil(nil, children...)}
}

func (*PackageDeclaration) Kind() Kind { return KindPackageDeclaration }

func (p *PackageDeclaration) Children() []Node { return p.children }

// Import is an import directive.
type Import struct {
	base
	children []Node
}

// NewImport creates an Import.
func NewImport(meta *TreeMetaData, children []Node) *Import {
	return &Import{base: base{meta: meta}, children: appendNonNil(nil, children...)}
}

func (*Import) Kind() Kind { return KindImport }

func (i *Import) Children() []Node { return i.children }

// Modifier is a declaration modifier such as public or override.
type Modifier struct {
	base
	Modifier ModifierKind
}

// NewModifier creates a Modifier.
func NewModifier(meta *TreeMetaData, kind ModifierKind) *Modifier {
	return &Modifier{base: base{meta: meta}, Modifier: kind}
}

func (*Modifier) Kind() Kind { return KindModifier }

func (*Modifier) Children() []Node { return nil }

// FunctionDeclaration is a named or anonymous function.
type FunctionDeclaration struct {
	base
	Modifiers        []Node
	ReturnType       Node
	Name             *Identifier
	FormalParameters []Node
	Body             *Block

	// NativeChildren holds grammar-specific parts such as receivers or
	// type parameters.
	NativeChildren []Node
}

// NewFunctionDeclaration creates a FunctionDeclaration.
// returnType, name and body may be nil.
func NewFunctionDeclaration(
	meta *TreeMetaData,
	modifiers []Node,
	returnType Node,
	name *Identifier,
	formalParameters []Node,
	body *Block,
	nativeChildren []Node,
) *FunctionDeclaration {
	return &FunctionDeclaration{
		base:             base{meta: meta},
		Modifiers:        modifiers,
		ReturnType:       returnType,
		Name:             name,
		FormalParameters: formalParameters,
		Body:             body,
		NativeChildren:   nativeChildren,
	}
}

func (*FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }

func (f *FunctionDeclaration) Children() []Node {
	children := appendNonNil(nil, f.Modifiers...)
	children = appendNonNil(children, f.ReturnType)
	if f.Name != nil {
		children = append(children, f.Name)
	}
	children = appendNonNil(children, f.FormalParameters...)
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return appendNonNil(children, f.NativeChildren...)
}

// RangeToHighlight returns the name's range, or the function header for
// anonymous functions.
func (f *FunctionDeclaration) RangeToHighlight() TextRange {
	if f.Name != nil {
		return f.Name.Range()
	}
	if f.Body == nil {
		return f.Range()
	}
	return rangeBefore(f.meta, f.Body.Range())
}

// ClassDeclaration is a class-like type declaration.
type ClassDeclaration struct {
	base
	Identifier *Identifier

	// ClassTree is the grammar-specific node holding the whole class body.
	ClassTree Node
}

// NewClassDeclaration creates a ClassDeclaration. identifier may be nil.
func NewClassDeclaration(meta *TreeMetaData, identifier *Identifier, classTree Node) *ClassDeclaration {
	return &ClassDeclaration{base: base{meta: meta}, Identifier: identifier, ClassTree: classTree}
}

func (*ClassDeclaration) Kind() Kind { return KindClassDeclaration }

func (c *ClassDeclaration) Children() []Node {
	return appendNonNil(nil, c.ClassTree)
}

// Parameter is a formal parameter of a function.
type Parameter struct {
	base
	Identifier   *Identifier
	Type         Node
	DefaultValue Node
	Modifiers    []Node
}

// NewParameter creates a Parameter. typ and defaultValue may be nil.
func NewParameter(meta *TreeMetaData, identifier *Identifier, typ, defaultValue Node, modifiers []Node) *Parameter {
	return &Parameter{
		base:         base{meta: meta},
		Identifier:   identifier,
		Type:         typ,
		DefaultValue: defaultValue,
		Modifiers:    modifiers,
	}
}

func (*Parameter) Kind() Kind { return KindParameter }

func (p *Parameter) Children() []Node {
	children := appendNonNil(nil, p.Modifiers...)
	if p.Identifier != nil {
		children = append(children, p.Identifier)
	}
	return appendNonNil(children, p.Type, p.DefaultValue)
}

// VariableDeclaration declares one variable or constant.
type VariableDeclaration struct {
	base
	Identifier  *Identifier
	Type        Node
	Initializer Node

	// IsVal marks an immutable declaration.
	IsVal bool
}

// NewVariableDeclaration creates a VariableDeclaration.
func NewVariableDeclaration(meta *TreeMetaData, identifier *Identifier, typ, initializer Node, isVal bool) *VariableDeclaration {
	return &VariableDeclaration{
		base:        base{meta: meta},
		Identifier:  identifier,
		Type:        typ,
		Initializer: initializer,
		IsVal:       isVal,
	}
}

func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

func (v *VariableDeclaration) Children() []Node {
	var children []Node
	if v.Identifier != nil {
		children = append(children, v.Identifier)
	}
	return appendNonNil(children, v.Type, v.Initializer)
}
