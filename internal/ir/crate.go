package ir

// DeclTable is an id-keyed declaration table that remembers insertion
// order. Iteration order is insertion order; no sorting is ever applied.
type DeclTable[K comparable, V any] struct {
	order []K
	byID  map[K]V
}

// Insert adds or replaces a declaration. Replacing keeps the original
// position in the iteration order.
func (t *DeclTable[K, V]) Insert(id K, decl V) {
	if t.byID == nil {
		t.byID = make(map[K]V)
	}
	if _, ok := t.byID[id]; !ok {
		t.order = append(t.order, id)
	}
	t.byID[id] = decl
}

// Get looks up a declaration by id.
func (t *DeclTable[K, V]) Get(id K) (V, bool) {
	decl, ok := t.byID[id]
	return decl, ok
}

// Len returns the number of declarations.
func (t *DeclTable[K, V]) Len() int {
	return len(t.order)
}

// IDs returns the declaration ids in insertion order. The caller must not
// mutate the returned slice.
func (t *DeclTable[K, V]) IDs() []K {
	return t.order
}

// Crate is a whole program's declaration table. It is read-only during a
// render pass and safe to share across concurrent renders.
type Crate struct {
	Name    string
	Types   DeclTable[TypeID, *TypeDecl]
	Globals DeclTable[GlobalID, *GlobalDecl]
	Funs    DeclTable[FunID, *FunDecl]
}
