// Package crateio reads and writes .bir crate files.
//
// A crate file is a single msgpack-encoded payload carrying a schema
// version and the crate's declaration tables in insertion order. Statement
// trees are flattened into wire structs because their in-memory form uses
// a payload interface msgpack cannot decode into. The schema version is
// checked on load; a mismatch is an error, not a migration.
package crateio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"birview/internal/ir"
)

// Schema is the current crate file format version. Increment on any wire
// layout change.
const Schema uint16 = 1

// ErrSchemaMismatch indicates a crate file written with a different format
// version.
var ErrSchemaMismatch = errors.New("crate file schema mismatch")

type wireCrate struct {
	Schema     uint16          `msgpack:"schema"`
	Name       string          `msgpack:"name"`
	NumTypes   uint32          `msgpack:"num_types"`
	NumGlobals uint32          `msgpack:"num_globals"`
	NumFuns    uint32          `msgpack:"num_funs"`
	Types      []ir.TypeDecl   `msgpack:"types"`
	Globals    []ir.GlobalDecl `msgpack:"globals"`
	Funs       []wireFun       `msgpack:"funs"`
}

type wireFun struct {
	ID       ir.FunID         `msgpack:"id"`
	Name     string           `msgpack:"name"`
	Generics ir.GenericParams `msgpack:"generics"`
	Inputs   []ir.Ty          `msgpack:"inputs"`
	Output   ir.Ty            `msgpack:"output"`
	ArgCount int              `msgpack:"arg_count"`
	Locals   []ir.Var         `msgpack:"locals"`
	Body     *wireStmt        `msgpack:"body"`
}

type wireStmt struct {
	Kind uint8 `msgpack:"kind"`

	Assign   *ir.AssignData          `msgpack:"assign,omitempty"`
	FakeRead *ir.FakeReadData        `msgpack:"fake_read,omitempty"`
	SetDisc  *ir.SetDiscriminantData `msgpack:"set_disc,omitempty"`
	Drop     *ir.DropData            `msgpack:"drop,omitempty"`
	Assert   *ir.AssertData          `msgpack:"assert,omitempty"`
	Call     *ir.CallData            `msgpack:"call,omitempty"`

	Depth uint `msgpack:"depth,omitempty"` // break, continue

	First  *wireStmt `msgpack:"first,omitempty"`  // sequence
	Second *wireStmt `msgpack:"second,omitempty"` // sequence
	Body   *wireStmt `msgpack:"body,omitempty"`   // loop

	Switch *wireSwitch `msgpack:"switch,omitempty"`
}

type wireSwitch struct {
	Kind uint8 `msgpack:"kind"`

	Cond      ir.Operand `msgpack:"cond,omitempty"`      // if
	Scrutinee ir.Operand `msgpack:"scrutinee,omitempty"` // switch
	Place     ir.Place   `msgpack:"place,omitempty"`     // match
	IntTy     ir.Ty      `msgpack:"int_ty,omitempty"`    // switch

	Then    *wireStmt `msgpack:"then,omitempty"`
	Else    *wireStmt `msgpack:"else,omitempty"`
	Default *wireStmt `msgpack:"default,omitempty"`

	IntBranches   []wireIntBranch   `msgpack:"int_branches,omitempty"`
	MatchBranches []wireMatchBranch `msgpack:"match_branches,omitempty"`
}

type wireIntBranch struct {
	Values []ir.Const `msgpack:"values"`
	Body   wireStmt   `msgpack:"body"`
}

type wireMatchBranch struct {
	Variants []ir.VariantID `msgpack:"variants"`
	Body     wireStmt       `msgpack:"body"`
}

// Encode writes the crate to w.
func Encode(w io.Writer, crate *ir.Crate) error {
	numTypes, err := safecast.Conv[uint32](crate.Types.Len())
	if err != nil {
		return fmt.Errorf("crateio: type table too large: %w", err)
	}
	numGlobals, err := safecast.Conv[uint32](crate.Globals.Len())
	if err != nil {
		return fmt.Errorf("crateio: global table too large: %w", err)
	}
	numFuns, err := safecast.Conv[uint32](crate.Funs.Len())
	if err != nil {
		return fmt.Errorf("crateio: function table too large: %w", err)
	}

	wc := wireCrate{
		Schema:     Schema,
		Name:       crate.Name,
		NumTypes:   numTypes,
		NumGlobals: numGlobals,
		NumFuns:    numFuns,
	}
	for _, id := range crate.Types.IDs() {
		decl, _ := crate.Types.Get(id)
		wc.Types = append(wc.Types, *decl)
	}
	for _, id := range crate.Globals.IDs() {
		decl, _ := crate.Globals.Get(id)
		wc.Globals = append(wc.Globals, *decl)
	}
	for _, id := range crate.Funs.IDs() {
		decl, _ := crate.Funs.Get(id)
		wc.Funs = append(wc.Funs, funToWire(decl))
	}

	if err := msgpack.NewEncoder(w).Encode(&wc); err != nil {
		return fmt.Errorf("crateio: encode crate %q: %w", crate.Name, err)
	}
	return nil
}

// Decode reads a crate from r.
func Decode(r io.Reader) (*ir.Crate, error) {
	var wc wireCrate
	if err := msgpack.NewDecoder(r).Decode(&wc); err != nil {
		return nil, fmt.Errorf("crateio: decode crate: %w", err)
	}
	if wc.Schema != Schema {
		return nil, fmt.Errorf("%w: file has %d, tool expects %d", ErrSchemaMismatch, wc.Schema, Schema)
	}
	if len(wc.Types) != int(wc.NumTypes) || len(wc.Globals) != int(wc.NumGlobals) || len(wc.Funs) != int(wc.NumFuns) {
		return nil, fmt.Errorf("crateio: crate %q: declaration counts disagree with header", wc.Name)
	}

	crate := &ir.Crate{Name: wc.Name}
	for i := range wc.Types {
		decl := wc.Types[i]
		crate.Types.Insert(decl.ID, &decl)
	}
	for i := range wc.Globals {
		decl := wc.Globals[i]
		crate.Globals.Insert(decl.ID, &decl)
	}
	for i := range wc.Funs {
		decl, err := funFromWire(&wc.Funs[i])
		if err != nil {
			return nil, fmt.Errorf("crateio: crate %q: function %q: %w", wc.Name, wc.Funs[i].Name, err)
		}
		crate.Funs.Insert(decl.ID, decl)
	}
	return crate, nil
}

// Save writes the crate to a .bir file.
func Save(path string, crate *ir.Crate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crateio: create %s: %w", path, err)
	}
	if err := Encode(f, crate); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("crateio: close %s: %w", path, err)
	}
	return nil
}

// Load reads a crate from a .bir file.
func Load(path string) (*ir.Crate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crateio: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
