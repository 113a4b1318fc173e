package ir

// SwitchKind enumerates the branching forms.
type SwitchKind uint8

const (
	// SwitchIf branches on a boolean operand.
	SwitchIf SwitchKind = iota
	// SwitchIntCases branches on scalar values of an integer operand.
	SwitchIntCases
	// SwitchMatch branches on the discriminant of an enum place.
	SwitchMatch
)

// Switch is a kind-tagged branching node.
type Switch struct {
	Kind SwitchKind
	Data SwitchData
}

// SwitchData is the interface for switch-specific payloads.
type SwitchData interface {
	switchData()
}

// IfData holds data for SwitchIf. Both arms are mandatory.
type IfData struct {
	Cond Operand
	Then Statement
	Else Statement
}

func (IfData) switchData() {}

// IntBranch is one explicit SwitchIntCases branch: a nonempty value set and
// its body. Value sets of different branches never overlap; that is an
// upstream invariant, not checked here.
type IntBranch struct {
	Values []Const
	Body   Statement
}

// SwitchIntData holds data for SwitchIntCases. Default is mandatory and
// covers every value not claimed by an explicit branch.
type SwitchIntData struct {
	Scrutinee Operand
	IntTy     Ty
	Branches  []IntBranch
	Default   Statement
}

func (SwitchIntData) switchData() {}

// MatchBranch is one explicit SwitchMatch branch: a nonempty variant set
// and its body.
type MatchBranch struct {
	Variants []VariantID
	Body     Statement
}

// MatchData holds data for SwitchMatch. Default is mandatory.
type MatchData struct {
	Scrutinee Place
	Branches  []MatchBranch
	Default   Statement
}

func (MatchData) switchData() {}

// SwitchStmt wraps a switch into a statement.
func SwitchStmt(k SwitchKind, d SwitchData) Statement {
	return NewStatement(StmtSwitch, SwitchStmtData{Switch: Switch{Kind: k, Data: d}})
}
