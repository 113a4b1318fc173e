package ir

// GenericParams are a declaration's region and type parameter names, in
// declaration order. RegionID and TypeVarID index into these lists.
type GenericParams struct {
	Regions []string
	Types   []string
}

// IsEmpty reports whether the declaration has no generic parameters.
func (g GenericParams) IsEmpty() bool {
	return len(g.Regions) == 0 && len(g.Types) == 0
}

// Var is a function-local variable. Name is empty for compiler temporaries.
type Var struct {
	ID   LocalID
	Name string
	Ty   Ty
}

// FunDecl is a function declaration.
//
// For a function with a body, Locals[0] is the return place and
// Locals[1..=ArgCount] are the parameters; Inputs mirrors the parameter
// types. Opaque (bodiless) functions carry only Inputs/Output.
type FunDecl struct {
	ID       FunID
	Name     string
	Generics GenericParams
	Inputs   []Ty
	Output   Ty
	ArgCount int
	Locals   []Var
	Body     *Statement // nil for opaque functions
}

// GlobalDecl is a global declaration. Init names the function whose body
// computes the global's value.
type GlobalDecl struct {
	ID   GlobalID
	Name string
	Ty   Ty
	Init FunID
}

// TypeDeclKind enumerates type declaration kinds.
type TypeDeclKind uint8

const (
	// TypeStruct is a product type with named or positional fields.
	TypeStruct TypeDeclKind = iota
	// TypeEnum is a sum type; VariantID indexes its variant list.
	TypeEnum
	// TypeOpaque is a type whose definition was not extracted.
	TypeOpaque
)

// Field is one struct or variant field. Name is empty for positional
// fields.
type Field struct {
	Name string
	Ty   Ty
}

// EnumVariant is one case of an enum declaration.
type EnumVariant struct {
	Name   string
	Fields []Field
}

// TypeDecl is a type declaration.
type TypeDecl struct {
	ID       TypeID
	Name     string
	Generics GenericParams
	Kind     TypeDeclKind
	Fields   []Field       // TypeStruct
	Variants []EnumVariant // TypeEnum
}
