package printer

import (
	"fmt"
	"strings"

	"birview/internal/ir"
)

// FmtTy renders a type using the formatter's generic parameter scope.
func (fc *FmtCtx) FmtTy(t ir.Ty) string {
	switch t.Kind {
	case ir.TyBool:
		return "bool"
	case ir.TyChar:
		return "char"
	case ir.TyStr:
		return "str"
	case ir.TyInt:
		return intTypeName(t.Width, true)
	case ir.TyUint:
		return intTypeName(t.Width, false)
	case ir.TyAdt:
		return fc.fmtAdt(t)
	case ir.TyRef:
		out := "&"
		if region := fc.fmtRegion(t.Region); region != "" {
			out += region + " "
		}
		if t.Mutable {
			out += "mut "
		}
		return out + fc.FmtTy(*t.Elem)
	case ir.TyTuple:
		elems := make([]string, len(t.Args))
		for i, arg := range t.Args {
			elems[i] = fc.FmtTy(arg)
		}
		return "(" + strings.Join(elems, ", ") + ")"
	case ir.TySlice:
		return "[" + fc.FmtTy(*t.Elem) + "]"
	case ir.TyArray:
		return fmt.Sprintf("[%s; %d]", fc.FmtTy(*t.Elem), t.Len)
	case ir.TyTypeVar:
		return fc.TypeVarName(t.TypeVar)
	default:
		panic(fmt.Sprintf("printer: unknown type kind %d", t.Kind))
	}
}

func (fc *FmtCtx) fmtAdt(t ir.Ty) string {
	out := fc.TypeName(t.Adt)
	if len(t.Regions) == 0 && len(t.Args) == 0 {
		return out
	}
	args := make([]string, 0, len(t.Regions)+len(t.Args))
	for _, r := range t.Regions {
		args = append(args, fc.fmtRegion(r))
	}
	for _, arg := range t.Args {
		args = append(args, fc.FmtTy(arg))
	}
	return out + "<" + strings.Join(args, ", ") + ">"
}

func (fc *FmtCtx) fmtRegion(r ir.Region) string {
	switch r.Kind {
	case ir.RegionErased:
		return ""
	case ir.RegionStatic:
		return "'static"
	case ir.RegionVar:
		return fc.RegionName(r.Var)
	default:
		panic(fmt.Sprintf("printer: unknown region kind %d", r.Kind))
	}
}

func intTypeName(w ir.IntWidth, signed bool) string {
	prefix := "i"
	if !signed {
		prefix = "u"
	}
	switch w {
	case ir.WidthSize:
		return prefix + "size"
	case ir.Width8:
		return prefix + "8"
	case ir.Width16:
		return prefix + "16"
	case ir.Width32:
		return prefix + "32"
	case ir.Width64:
		return prefix + "64"
	case ir.Width128:
		return prefix + "128"
	default:
		return prefix + "size"
	}
}

// fmtGenericsHeader renders a declaration's generic parameter list for its
// signature line, regions first. Empty generics render as nothing.
func fmtGenericsHeader(g ir.GenericParams) string {
	if g.IsEmpty() {
		return ""
	}
	params := make([]string, 0, len(g.Regions)+len(g.Types))
	for _, r := range g.Regions {
		params = append(params, "'"+r)
	}
	params = append(params, g.Types...)
	return "<" + strings.Join(params, ", ") + ">"
}
