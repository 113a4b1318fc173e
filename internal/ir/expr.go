package ir

// PlaceElemKind enumerates place projection kinds.
type PlaceElemKind uint8

const (
	// ProjDeref dereferences the place so far.
	ProjDeref PlaceElemKind = iota
	// ProjField selects a field (or tuple element) by index.
	ProjField
	// ProjIndex indexes with the value of another local.
	ProjIndex
)

// PlaceElem is one projection step applied to a place's base local.
type PlaceElem struct {
	Kind  PlaceElemKind
	Field int     // ProjField
	Index LocalID // ProjIndex
}

// Place is an addressable storage location: a base local plus a projection
// chain.
type Place struct {
	Local LocalID
	Proj  []PlaceElem
}

// OperandKind enumerates operand kinds.
type OperandKind uint8

const (
	// OperandCopy reads a place without consuming it.
	OperandCopy OperandKind = iota
	// OperandMove reads a place and consumes it.
	OperandMove
	// OperandConst is a literal scalar value.
	OperandConst
)

// Operand is a read-only value source.
type Operand struct {
	Kind  OperandKind
	Place Place // OperandCopy, OperandMove
	Const Const // OperandConst
}

// ConstKind enumerates scalar constant kinds.
type ConstKind uint8

const (
	ConstBool ConstKind = iota
	ConstInt
	ConstUint
	ConstChar
	ConstStr
)

// Const is a scalar constant value.
type Const struct {
	Kind  ConstKind
	Bool  bool
	Int   int64
	Uint  uint64
	Width IntWidth // ConstInt, ConstUint
	Char  rune
	Str   string
}

// BoolConst returns a boolean constant.
func BoolConst(v bool) Const { return Const{Kind: ConstBool, Bool: v} }

// IntConst returns a signed integer constant of the given width.
func IntConst(v int64, w IntWidth) Const { return Const{Kind: ConstInt, Int: v, Width: w} }

// UintConst returns an unsigned integer constant of the given width.
func UintConst(v uint64, w IntWidth) Const { return Const{Kind: ConstUint, Uint: v, Width: w} }

// UnOp enumerates unary operators.
type UnOp uint8

const (
	UnNot UnOp = iota
	UnNeg
)

// String returns the operator's surface syntax.
func (op UnOp) String() string {
	switch op {
	case UnNot:
		return "!"
	case UnNeg:
		return "-"
	default:
		return "?"
	}
}

// BinOp enumerates binary operators.
type BinOp uint8

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
)

// String returns the operator's surface syntax.
func (op BinOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinRem:
		return "%"
	case BinEq:
		return "=="
	case BinNe:
		return "!="
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	case BinBitAnd:
		return "&"
	case BinBitOr:
		return "|"
	case BinBitXor:
		return "^"
	case BinShl:
		return "<<"
	case BinShr:
		return ">>"
	default:
		return "?"
	}
}

// RvalueKind enumerates r-value kinds.
type RvalueKind uint8

const (
	// RvalueUse forwards a single operand.
	RvalueUse RvalueKind = iota
	// RvalueUnary applies a unary operator.
	RvalueUnary
	// RvalueBinary applies a binary operator.
	RvalueBinary
	// RvalueRef borrows a place.
	RvalueRef
	// RvalueAggregate builds a tuple or ADT value.
	RvalueAggregate
	// RvalueDiscriminant reads the discriminant of an enum place.
	RvalueDiscriminant
	// RvalueGlobal reads a global.
	RvalueGlobal
)

// UnaryRvalue is the payload of RvalueUnary.
type UnaryRvalue struct {
	Op      UnOp
	Operand Operand
}

// BinaryRvalue is the payload of RvalueBinary.
type BinaryRvalue struct {
	Op    BinOp
	Left  Operand
	Right Operand
}

// RefRvalue is the payload of RvalueRef.
type RefRvalue struct {
	Place   Place
	Mutable bool
}

// AggregateKind distinguishes tuple from ADT aggregates.
type AggregateKind uint8

const (
	AggregateTuple AggregateKind = iota
	AggregateAdt
)

// AggregateRvalue is the payload of RvalueAggregate.
type AggregateRvalue struct {
	Kind       AggregateKind
	Adt        TypeID    // AggregateAdt
	Variant    VariantID // AggregateAdt, enum construction only
	HasVariant bool
	Fields     []Operand
}

// Rvalue is a value-producing expression on the right-hand side of an
// assignment. Kind-tagged union, same convention as Ty.
type Rvalue struct {
	Kind RvalueKind

	Use          Operand         // RvalueUse
	Unary        UnaryRvalue     // RvalueUnary
	Binary       BinaryRvalue    // RvalueBinary
	Ref          RefRvalue       // RvalueRef
	Aggregate    AggregateRvalue // RvalueAggregate
	Discriminant Place           // RvalueDiscriminant
	Global       GlobalID        // RvalueGlobal
}

// UseRvalue returns an r-value forwarding op.
func UseRvalue(op Operand) Rvalue { return Rvalue{Kind: RvalueUse, Use: op} }

// Call is a function call with its destination place.
type Call struct {
	Fun  FunID
	Args []Operand
	Dest Place
}

// Assertion checks that an operand evaluates to an expected boolean and
// aborts otherwise.
type Assertion struct {
	Cond     Operand
	Expected bool
}
