package ir

// StmtKind enumerates IR statement kinds.
type StmtKind uint8

const (
	// StmtAssign stores an r-value into a place.
	StmtAssign StmtKind = iota
	// StmtFakeRead marks a place as read for borrow purposes.
	StmtFakeRead
	// StmtSetDiscriminant overwrites the discriminant of an enum place.
	StmtSetDiscriminant
	// StmtDrop ends the lifetime of a place's value.
	StmtDrop
	// StmtAssert checks a boolean operand against an expected value.
	StmtAssert
	// StmtCall invokes a function.
	StmtCall
	// StmtPanic aborts the program.
	StmtPanic
	// StmtReturn exits the current function.
	StmtReturn
	// StmtNop does nothing.
	StmtNop
	// StmtBreak exits an enclosing loop; the depth payload selects which.
	StmtBreak
	// StmtContinue restarts an enclosing loop; the depth payload selects which.
	StmtContinue
	// StmtSequence runs two statements in order at the same nesting level.
	StmtSequence
	// StmtSwitch branches on an operand, scalar values or a discriminant.
	StmtSwitch
	// StmtLoop repeats its body until a break targets it.
	StmtLoop
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtAssign:
		return "Assign"
	case StmtFakeRead:
		return "FakeRead"
	case StmtSetDiscriminant:
		return "SetDiscriminant"
	case StmtDrop:
		return "Drop"
	case StmtAssert:
		return "Assert"
	case StmtCall:
		return "Call"
	case StmtPanic:
		return "Panic"
	case StmtReturn:
		return "Return"
	case StmtNop:
		return "Nop"
	case StmtBreak:
		return "Break"
	case StmtContinue:
		return "Continue"
	case StmtSequence:
		return "Sequence"
	case StmtSwitch:
		return "Switch"
	case StmtLoop:
		return "Loop"
	default:
		return "Unknown"
	}
}

// Statement wraps a RawStatement. The wrapper is where per-statement
// metadata (spans, borrow facts) will live; the variant set stays on
// RawStatement.
type Statement struct {
	Content RawStatement
}

// RawStatement is a kind-tagged statement node.
type RawStatement struct {
	Kind StmtKind
	Data StmtData // kind-specific payload, nil for Panic/Return/Nop
}

// StmtData is the interface for statement-specific payloads.
type StmtData interface {
	stmtData()
}

// AssignData holds data for StmtAssign.
type AssignData struct {
	Place  Place
	Rvalue Rvalue
}

func (AssignData) stmtData() {}

// FakeReadData holds data for StmtFakeRead.
type FakeReadData struct {
	Place Place
}

func (FakeReadData) stmtData() {}

// SetDiscriminantData holds data for StmtSetDiscriminant.
type SetDiscriminantData struct {
	Place   Place
	Variant VariantID
}

func (SetDiscriminantData) stmtData() {}

// DropData holds data for StmtDrop.
type DropData struct {
	Place Place
}

func (DropData) stmtData() {}

// AssertData holds data for StmtAssert.
type AssertData struct {
	Assert Assertion
}

func (AssertData) stmtData() {}

// CallData holds data for StmtCall.
type CallData struct {
	Call Call
}

func (CallData) stmtData() {}

// BreakData holds data for StmtBreak. Depth counts enclosing loops to
// target, 0 being the innermost.
type BreakData struct {
	Depth uint
}

func (BreakData) stmtData() {}

// ContinueData holds data for StmtContinue. Depth as in BreakData.
type ContinueData struct {
	Depth uint
}

func (ContinueData) stmtData() {}

// SequenceData holds data for StmtSequence.
type SequenceData struct {
	First  Statement
	Second Statement
}

func (SequenceData) stmtData() {}

// SwitchStmtData holds data for StmtSwitch.
type SwitchStmtData struct {
	Switch Switch
}

func (SwitchStmtData) stmtData() {}

// LoopData holds data for StmtLoop.
type LoopData struct {
	Body Statement
}

func (LoopData) stmtData() {}

// NewStatement builds a statement from a kind and payload.
func NewStatement(k StmtKind, d StmtData) Statement {
	return Statement{Content: RawStatement{Kind: k, Data: d}}
}

// Seq chains statements into a sequence, left to right. With one argument
// it returns that statement unchanged.
func Seq(first Statement, rest ...Statement) Statement {
	out := first
	for _, st := range rest {
		out = NewStatement(StmtSequence, SequenceData{First: out, Second: st})
	}
	return out
}
