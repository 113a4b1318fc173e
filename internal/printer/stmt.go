package printer

import (
	"fmt"
	"strconv"
	"strings"

	"birview/internal/ir"
)

// FmtStatement renders a statement tree. The first line of the result is
// prefixed with indent; lines of nested blocks are indented by one extra
// step per nesting level. The result has no leading or trailing newline.
func FmtStatement(fc *FmtCtx, indent, step string, st ir.Statement) string {
	rs := st.Content
	switch rs.Kind {
	case ir.StmtAssign:
		d := rs.Data.(ir.AssignData)
		return indent + fc.FmtPlace(d.Place) + " := " + fc.FmtRvalue(d.Rvalue)

	case ir.StmtFakeRead:
		d := rs.Data.(ir.FakeReadData)
		return indent + "fake_read " + fc.FmtPlace(d.Place)

	case ir.StmtSetDiscriminant:
		d := rs.Data.(ir.SetDiscriminantData)
		return indent + fmt.Sprintf("set_discriminant(%s, %d)", fc.FmtPlace(d.Place), d.Variant)

	case ir.StmtDrop:
		d := rs.Data.(ir.DropData)
		return indent + "drop " + fc.FmtPlace(d.Place)

	case ir.StmtAssert:
		d := rs.Data.(ir.AssertData)
		return indent + fc.FmtAssertion(d.Assert)

	case ir.StmtCall:
		d := rs.Data.(ir.CallData)
		return indent + fc.FmtCall(d.Call)

	case ir.StmtPanic:
		return indent + "panic"

	case ir.StmtReturn:
		return indent + "return"

	case ir.StmtNop:
		return indent + "nop"

	case ir.StmtBreak:
		d := rs.Data.(ir.BreakData)
		return indent + "break " + strconv.FormatUint(uint64(d.Depth), 10)

	case ir.StmtContinue:
		d := rs.Data.(ir.ContinueData)
		return indent + "continue " + strconv.FormatUint(uint64(d.Depth), 10)

	case ir.StmtSequence:
		d := rs.Data.(ir.SequenceData)
		return FmtStatement(fc, indent, step, d.First) + ";\n" + FmtStatement(fc, indent, step, d.Second)

	case ir.StmtLoop:
		d := rs.Data.(ir.LoopData)
		body := FmtStatement(fc, indent+step, step, d.Body)
		return indent + "loop {\n" + body + "\n" + indent + "}"

	case ir.StmtSwitch:
		d := rs.Data.(ir.SwitchStmtData)
		return fmtSwitch(fc, indent, step, d.Switch)

	default:
		panic(fmt.Sprintf("printer: unknown statement kind %d", rs.Kind))
	}
}

func fmtSwitch(fc *FmtCtx, indent, step string, sw ir.Switch) string {
	switch sw.Kind {
	case ir.SwitchIf:
		d := sw.Data.(ir.IfData)
		var b strings.Builder
		b.WriteString(indent + "if (" + fc.FmtOperand(d.Cond) + ") {\n")
		b.WriteString(FmtStatement(fc, indent+step, step, d.Then))
		b.WriteString("\n" + indent + "}\n")
		b.WriteString(indent + "else {\n")
		b.WriteString(FmtStatement(fc, indent+step, step, d.Else))
		b.WriteString("\n" + indent + "}")
		return b.String()

	case ir.SwitchIntCases:
		d := sw.Data.(ir.SwitchIntData)
		branches := make([]string, 0, len(d.Branches)+1)
		for _, br := range d.Branches {
			labels := make([]string, len(br.Values))
			for i, v := range br.Values {
				labels[i] = "| " + FmtConst(v)
			}
			branches = append(branches, fmtBranch(fc, indent, step, strings.Join(labels, " "), br.Body))
		}
		branches = append(branches, fmtBranch(fc, indent, step, "_", d.Default))
		return indent + "switch (" + fc.FmtOperand(d.Scrutinee) + ") {\n" +
			strings.Join(branches, "\n") + "\n" + indent + "}"

	case ir.SwitchMatch:
		d := sw.Data.(ir.MatchData)
		branches := make([]string, 0, len(d.Branches)+1)
		for _, br := range d.Branches {
			// Variant labels stay raw numeric ids; resolving them to
			// declared variant names would change the fixture format.
			labels := make([]string, len(br.Variants))
			for i, v := range br.Variants {
				labels[i] = fmt.Sprintf("| %d", v)
			}
			branches = append(branches, fmtBranch(fc, indent, step, strings.Join(labels, " "), br.Body))
		}
		branches = append(branches, fmtBranch(fc, indent, step, "_", d.Default))
		return indent + "match (" + fc.FmtPlace(d.Scrutinee) + ") {\n" +
			strings.Join(branches, "\n") + "\n" + indent + "}"

	default:
		panic(fmt.Sprintf("printer: unknown switch kind %d", sw.Kind))
	}
}

// fmtBranch renders one switch/match arm: the label line at one step of
// extra indent, the body at two.
func fmtBranch(fc *FmtCtx, indent, step, label string, body ir.Statement) string {
	inner := FmtStatement(fc, indent+step+step, step, body)
	return indent + step + label + " => {\n" + inner + "\n" + indent + step + "}"
}
