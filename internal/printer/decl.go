package printer

import (
	"fmt"
	"strings"

	"birview/internal/ir"
)

// IndentStep is the indentation unit used for declaration bodies.
const IndentStep = "  "

// FmtFunDecl renders a function declaration: signature header plus body.
// Opaque functions render the header only.
func FmtFunDecl(crate *ir.Crate, fun *ir.FunDecl) string {
	fc := NewFunFormatter(crate, fun)

	var b strings.Builder
	b.WriteString("fn " + fun.Name + fmtGenericsHeader(fun.Generics))
	b.WriteString("(" + fmtParams(fc, fun) + ")")
	if !fun.Output.IsUnit() {
		b.WriteString(" -> " + fc.FmtTy(fun.Output))
	}
	if fun.Body == nil {
		return b.String()
	}
	b.WriteString(" {\n")
	b.WriteString(FmtStatement(fc, IndentStep, IndentStep, *fun.Body))
	b.WriteString("\n}")
	return b.String()
}

// fmtParams renders the parameter list. Bodied functions take parameter
// names from their locals; opaque functions have no locals and list types
// only.
func fmtParams(fc *FmtCtx, fun *ir.FunDecl) string {
	if len(fun.Locals) == 0 {
		params := make([]string, len(fun.Inputs))
		for i, ty := range fun.Inputs {
			params[i] = fc.FmtTy(ty)
		}
		return strings.Join(params, ", ")
	}
	params := make([]string, fun.ArgCount)
	for i := 0; i < fun.ArgCount; i++ {
		local := fun.Locals[i+1]
		params[i] = fc.LocalName(local.ID) + ": " + fc.FmtTy(local.Ty)
	}
	return strings.Join(params, ", ")
}

// FmtGlobalDecl renders a global declaration. The initializer body is
// referenced by the name of its function.
func FmtGlobalDecl(crate *ir.Crate, g *ir.GlobalDecl) string {
	fc := NewGlobalFormatter(crate)
	return "global " + g.Name + " : " + fc.FmtTy(g.Ty) + " = " + fc.FunName(g.Init)
}

// FmtTypeDecl renders a type declaration.
func FmtTypeDecl(crate *ir.Crate, decl *ir.TypeDecl) string {
	fc := NewTypeFormatter(crate, decl)
	head := decl.Name + fmtGenericsHeader(decl.Generics)

	switch decl.Kind {
	case ir.TypeStruct:
		var b strings.Builder
		b.WriteString("struct " + head + " {\n")
		for _, f := range decl.Fields {
			b.WriteString(IndentStep + fmtField(fc, f) + ",\n")
		}
		b.WriteString("}")
		return b.String()

	case ir.TypeEnum:
		var b strings.Builder
		b.WriteString("enum " + head + " {\n")
		for _, v := range decl.Variants {
			b.WriteString(IndentStep + fmtVariant(fc, v) + ",\n")
		}
		b.WriteString("}")
		return b.String()

	case ir.TypeOpaque:
		return "opaque type " + head

	default:
		panic(fmt.Sprintf("printer: unknown type declaration kind %d", decl.Kind))
	}
}

func fmtField(fc *FmtCtx, f ir.Field) string {
	if f.Name == "" {
		return fc.FmtTy(f.Ty)
	}
	return f.Name + ": " + fc.FmtTy(f.Ty)
}

func fmtVariant(fc *FmtCtx, v ir.EnumVariant) string {
	if len(v.Fields) == 0 {
		return v.Name
	}
	fields := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		fields[i] = fc.FmtTy(f.Ty)
	}
	return v.Name + "(" + strings.Join(fields, ", ") + ")"
}
