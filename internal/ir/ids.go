// Package ir defines the borrow-aware statement IR that birview renders.
//
// The IR is a structured (not basic-block) representation: function bodies
// are statement trees with explicit sequencing, loops and switches, as
// produced by the extraction pipeline after control-flow reconstruction.
// Every cross-declaration reference is an opaque numeric id resolved
// against the crate's declaration tables at print time.
//
// The ir package is pure data. It performs no validation; consumers assume
// the tables and trees are internally consistent.
package ir

// TypeID identifies a type declaration within a crate.
type TypeID uint32

// FunID identifies a function declaration within a crate.
type FunID uint32

// GlobalID identifies a global declaration within a crate.
type GlobalID uint32

// LocalID identifies a local variable or parameter within a function body.
// Local 0 is the return place; locals 1..=ArgCount are the parameters.
type LocalID uint32

// VariantID is the numeric discriminant of an enum variant.
type VariantID uint32

// TypeVarID indexes a declaration's type parameter list.
type TypeVarID uint32

// RegionID indexes a declaration's region (lifetime) parameter list.
type RegionID uint32
