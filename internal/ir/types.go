package ir

// TyKind enumerates the kinds of IR types.
type TyKind uint8

const (
	// TyBool is the boolean type.
	TyBool TyKind = iota
	// TyChar is the unicode scalar type.
	TyChar
	// TyStr is the string slice type.
	TyStr
	// TyInt is a signed integer type; Width selects the variant.
	TyInt
	// TyUint is an unsigned integer type; Width selects the variant.
	TyUint
	// TyAdt is a reference to a declared type, with generic arguments.
	TyAdt
	// TyRef is a borrow, with a region and a mutability flag.
	TyRef
	// TyTuple is a tuple; the empty tuple is the unit type.
	TyTuple
	// TySlice is a dynamically sized slice.
	TySlice
	// TyArray is a fixed-length array.
	TyArray
	// TyTypeVar is a reference to a type parameter of the enclosing
	// declaration.
	TyTypeVar
)

// IntWidth selects the width of a TyInt/TyUint type.
type IntWidth uint8

const (
	// WidthSize is the pointer-sized width (isize/usize).
	WidthSize IntWidth = iota
	Width8
	Width16
	Width32
	Width64
	Width128
)

// RegionKind enumerates the kinds of borrow regions.
type RegionKind uint8

const (
	// RegionErased is a region elided from the IR; it is not printed.
	RegionErased RegionKind = iota
	// RegionStatic is the whole-program region.
	RegionStatic
	// RegionVar references a region parameter of the enclosing declaration.
	RegionVar
)

// Region is a borrow region annotation on references and ADT arguments.
type Region struct {
	Kind RegionKind
	Var  RegionID // RegionVar only
}

// Ty is an IR type. It is a kind-tagged union: only the fields relevant to
// Kind are meaningful, everything else stays zero.
type Ty struct {
	Kind TyKind

	Width IntWidth // TyInt, TyUint

	Adt     TypeID   // TyAdt
	Regions []Region // TyAdt region arguments
	Args    []Ty     // TyAdt type arguments, TyTuple elements

	Elem    *Ty    // TyRef, TySlice, TyArray
	Region  Region // TyRef
	Mutable bool   // TyRef
	Len     uint64 // TyArray

	TypeVar TypeVarID // TyTypeVar
}

// IsUnit reports whether the type is the empty tuple.
func (t Ty) IsUnit() bool {
	return t.Kind == TyTuple && len(t.Args) == 0
}

// Unit returns the unit type.
func Unit() Ty { return Ty{Kind: TyTuple} }

// IntTy returns the signed integer type of the given width.
func IntTy(w IntWidth) Ty { return Ty{Kind: TyInt, Width: w} }

// UintTy returns the unsigned integer type of the given width.
func UintTy(w IntWidth) Ty { return Ty{Kind: TyUint, Width: w} }
