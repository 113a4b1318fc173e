package printer

import (
	"fmt"
	"strings"

	"birview/internal/ir"
)

// FmtPlace renders a place: the base local followed by its projections.
func (fc *FmtCtx) FmtPlace(p ir.Place) string {
	out := fc.LocalName(p.Local)
	for _, proj := range p.Proj {
		switch proj.Kind {
		case ir.ProjDeref:
			out = "(*" + out + ")"
		case ir.ProjField:
			out += fmt.Sprintf(".%d", proj.Field)
		case ir.ProjIndex:
			out += "[" + fc.LocalName(proj.Index) + "]"
		default:
			panic(fmt.Sprintf("printer: unknown projection kind %d", proj.Kind))
		}
	}
	return out
}

// FmtOperand renders an operand.
func (fc *FmtCtx) FmtOperand(op ir.Operand) string {
	switch op.Kind {
	case ir.OperandCopy:
		return "copy " + fc.FmtPlace(op.Place)
	case ir.OperandMove:
		return "move " + fc.FmtPlace(op.Place)
	case ir.OperandConst:
		return "const " + FmtConst(op.Const)
	default:
		panic(fmt.Sprintf("printer: unknown operand kind %d", op.Kind))
	}
}

// FmtConst renders a scalar constant without any operand decoration.
// Integer constants carry their width so that values of different types
// never print identically.
func FmtConst(c ir.Const) string {
	switch c.Kind {
	case ir.ConstBool:
		return fmt.Sprintf("%t", c.Bool)
	case ir.ConstInt:
		return fmt.Sprintf("%d%s", c.Int, intTypeName(c.Width, true))
	case ir.ConstUint:
		return fmt.Sprintf("%d%s", c.Uint, intTypeName(c.Width, false))
	case ir.ConstChar:
		return fmt.Sprintf("%q", c.Char)
	case ir.ConstStr:
		return fmt.Sprintf("%q", c.Str)
	default:
		panic(fmt.Sprintf("printer: unknown constant kind %d", c.Kind))
	}
}

// FmtRvalue renders a value-producing expression.
func (fc *FmtCtx) FmtRvalue(rv ir.Rvalue) string {
	switch rv.Kind {
	case ir.RvalueUse:
		return fc.FmtOperand(rv.Use)
	case ir.RvalueUnary:
		return fmt.Sprintf("(%s %s)", rv.Unary.Op, fc.FmtOperand(rv.Unary.Operand))
	case ir.RvalueBinary:
		return fmt.Sprintf("(%s %s %s)", fc.FmtOperand(rv.Binary.Left), rv.Binary.Op, fc.FmtOperand(rv.Binary.Right))
	case ir.RvalueRef:
		if rv.Ref.Mutable {
			return "&mut " + fc.FmtPlace(rv.Ref.Place)
		}
		return "&" + fc.FmtPlace(rv.Ref.Place)
	case ir.RvalueAggregate:
		return fc.fmtAggregate(rv.Aggregate)
	case ir.RvalueDiscriminant:
		return "discriminant(" + fc.FmtPlace(rv.Discriminant) + ")"
	case ir.RvalueGlobal:
		return fc.GlobalName(rv.Global)
	default:
		panic(fmt.Sprintf("printer: unknown rvalue kind %d", rv.Kind))
	}
}

func (fc *FmtCtx) fmtAggregate(agg ir.AggregateRvalue) string {
	fields := make([]string, len(agg.Fields))
	for i, op := range agg.Fields {
		fields[i] = fc.FmtOperand(op)
	}
	if agg.Kind == ir.AggregateTuple {
		return "(" + strings.Join(fields, ", ") + ")"
	}
	out := fc.TypeName(agg.Adt)
	if agg.HasVariant {
		// Variant ids render raw; see the match-label note in stmt.go.
		out += fmt.Sprintf("#%d", agg.Variant)
	}
	return out + " { " + strings.Join(fields, ", ") + " }"
}

// FmtCall renders a call with its destination place.
func (fc *FmtCtx) FmtCall(c ir.Call) string {
	args := make([]string, len(c.Args))
	for i, op := range c.Args {
		args[i] = fc.FmtOperand(op)
	}
	return fmt.Sprintf("%s := %s(%s)", fc.FmtPlace(c.Dest), fc.FunName(c.Fun), strings.Join(args, ", "))
}

// FmtAssertion renders an assertion.
func (fc *FmtCtx) FmtAssertion(a ir.Assertion) string {
	return fmt.Sprintf("assert(%s == %t)", fc.FmtOperand(a.Cond), a.Expected)
}
