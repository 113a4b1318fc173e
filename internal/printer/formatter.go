// Package printer renders IR declarations and statement trees to
// deterministic, human-readable text.
//
// All rendering goes through a FmtCtx, the per-declaration name resolver:
// it maps the opaque ids appearing in the IR (locals, type/region
// parameters, cross-declaration references) to display names. A FmtCtx is
// built fresh for the one declaration being rendered and holds no mutable
// state, so concurrent renders of different declarations may share the
// underlying crate freely.
//
// A lookup that misses both the bound declaration's scope and the crate
// table panics: it means the resolver was built for the wrong declaration
// or the crate tables are inconsistent, and a placeholder in the output
// would only hide that.
package printer

import (
	"fmt"

	"birview/internal/ir"
)

// FmtCtx resolves ids to display names while rendering one declaration.
type FmtCtx struct {
	crate    *ir.Crate
	locals   map[ir.LocalID]string
	typeVars []string
	regions  []string
}

// NewFunFormatter builds the resolver for a function declaration: local
// names come from the function's parameter and local list, generic
// parameter names from its signature.
func NewFunFormatter(crate *ir.Crate, fun *ir.FunDecl) *FmtCtx {
	fc := &FmtCtx{
		crate:    crate,
		locals:   make(map[ir.LocalID]string, len(fun.Locals)),
		typeVars: fun.Generics.Types,
		regions:  fun.Generics.Regions,
	}
	for _, v := range fun.Locals {
		fc.locals[v.ID] = localDisplayName(v)
	}
	return fc
}

// NewGlobalFormatter builds the resolver for a global declaration. Globals
// have no locals and are not generic; only crate-level names resolve.
func NewGlobalFormatter(crate *ir.Crate) *FmtCtx {
	return &FmtCtx{crate: crate}
}

// NewTypeFormatter builds the resolver for a type declaration: only the
// declaration's own generic parameters and crate-level names resolve.
func NewTypeFormatter(crate *ir.Crate, decl *ir.TypeDecl) *FmtCtx {
	return &FmtCtx{
		crate:    crate,
		typeVars: decl.Generics.Types,
		regions:  decl.Generics.Regions,
	}
}

// localDisplayName keeps the numeric id visible next to the source name so
// that distinct locals sharing a name stay distinguishable.
func localDisplayName(v ir.Var) string {
	if v.Name == "" {
		return fmt.Sprintf("v@%d", v.ID)
	}
	return fmt.Sprintf("%s@%d", v.Name, v.ID)
}

// LocalName resolves a local variable id within the bound function.
func (fc *FmtCtx) LocalName(id ir.LocalID) string {
	name, ok := fc.locals[id]
	if !ok {
		panic(fmt.Sprintf("printer: local %d is not bound in the current declaration", id))
	}
	return name
}

// FunName resolves a function id against the crate table.
func (fc *FmtCtx) FunName(id ir.FunID) string {
	decl, ok := fc.crate.Funs.Get(id)
	if !ok {
		panic(fmt.Sprintf("printer: unknown function id %d", id))
	}
	return decl.Name
}

// GlobalName resolves a global id against the crate table.
func (fc *FmtCtx) GlobalName(id ir.GlobalID) string {
	decl, ok := fc.crate.Globals.Get(id)
	if !ok {
		panic(fmt.Sprintf("printer: unknown global id %d", id))
	}
	return decl.Name
}

// TypeName resolves a type id against the crate table.
func (fc *FmtCtx) TypeName(id ir.TypeID) string {
	decl, ok := fc.crate.Types.Get(id)
	if !ok {
		panic(fmt.Sprintf("printer: unknown type id %d", id))
	}
	return decl.Name
}

// TypeVarName resolves a type parameter of the bound declaration.
func (fc *FmtCtx) TypeVarName(id ir.TypeVarID) string {
	if int(id) >= len(fc.typeVars) {
		panic(fmt.Sprintf("printer: type parameter %d is not bound in the current declaration", id))
	}
	return fc.typeVars[id]
}

// RegionName resolves a region parameter of the bound declaration,
// including the leading tick.
func (fc *FmtCtx) RegionName(id ir.RegionID) string {
	if int(id) >= len(fc.regions) {
		panic(fmt.Sprintf("printer: region parameter %d is not bound in the current declaration", id))
	}
	return "'" + fc.regions[id]
}
