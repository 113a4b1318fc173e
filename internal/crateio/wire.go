package crateio

import (
	"errors"
	"fmt"

	"birview/internal/ir"
)

var errMalformedStmt = errors.New("malformed statement node")

func funToWire(f *ir.FunDecl) wireFun {
	wf := wireFun{
		ID:       f.ID,
		Name:     f.Name,
		Generics: f.Generics,
		Inputs:   f.Inputs,
		Output:   f.Output,
		ArgCount: f.ArgCount,
		Locals:   f.Locals,
	}
	if f.Body != nil {
		wf.Body = stmtToWire(*f.Body)
	}
	return wf
}

func funFromWire(wf *wireFun) (*ir.FunDecl, error) {
	f := &ir.FunDecl{
		ID:       wf.ID,
		Name:     wf.Name,
		Generics: wf.Generics,
		Inputs:   wf.Inputs,
		Output:   wf.Output,
		ArgCount: wf.ArgCount,
		Locals:   wf.Locals,
	}
	if wf.Body != nil {
		body, err := stmtFromWire(wf.Body)
		if err != nil {
			return nil, err
		}
		f.Body = &body
	}
	return f, nil
}

func stmtToWire(st ir.Statement) *wireStmt {
	rs := st.Content
	ws := &wireStmt{Kind: uint8(rs.Kind)}
	switch rs.Kind {
	case ir.StmtAssign:
		d := rs.Data.(ir.AssignData)
		ws.Assign = &d
	case ir.StmtFakeRead:
		d := rs.Data.(ir.FakeReadData)
		ws.FakeRead = &d
	case ir.StmtSetDiscriminant:
		d := rs.Data.(ir.SetDiscriminantData)
		ws.SetDisc = &d
	case ir.StmtDrop:
		d := rs.Data.(ir.DropData)
		ws.Drop = &d
	case ir.StmtAssert:
		d := rs.Data.(ir.AssertData)
		ws.Assert = &d
	case ir.StmtCall:
		d := rs.Data.(ir.CallData)
		ws.Call = &d
	case ir.StmtPanic, ir.StmtReturn, ir.StmtNop:
		// kind only
	case ir.StmtBreak:
		ws.Depth = rs.Data.(ir.BreakData).Depth
	case ir.StmtContinue:
		ws.Depth = rs.Data.(ir.ContinueData).Depth
	case ir.StmtSequence:
		d := rs.Data.(ir.SequenceData)
		ws.First = stmtToWire(d.First)
		ws.Second = stmtToWire(d.Second)
	case ir.StmtLoop:
		ws.Body = stmtToWire(rs.Data.(ir.LoopData).Body)
	case ir.StmtSwitch:
		ws.Switch = switchToWire(rs.Data.(ir.SwitchStmtData).Switch)
	default:
		panic(fmt.Sprintf("crateio: unknown statement kind %d", rs.Kind))
	}
	return ws
}

func switchToWire(sw ir.Switch) *wireSwitch {
	w := &wireSwitch{Kind: uint8(sw.Kind)}
	switch sw.Kind {
	case ir.SwitchIf:
		d := sw.Data.(ir.IfData)
		w.Cond = d.Cond
		w.Then = stmtToWire(d.Then)
		w.Else = stmtToWire(d.Else)
	case ir.SwitchIntCases:
		d := sw.Data.(ir.SwitchIntData)
		w.Scrutinee = d.Scrutinee
		w.IntTy = d.IntTy
		for _, br := range d.Branches {
			w.IntBranches = append(w.IntBranches, wireIntBranch{Values: br.Values, Body: *stmtToWire(br.Body)})
		}
		w.Default = stmtToWire(d.Default)
	case ir.SwitchMatch:
		d := sw.Data.(ir.MatchData)
		w.Place = d.Scrutinee
		for _, br := range d.Branches {
			w.MatchBranches = append(w.MatchBranches, wireMatchBranch{Variants: br.Variants, Body: *stmtToWire(br.Body)})
		}
		w.Default = stmtToWire(d.Default)
	default:
		panic(fmt.Sprintf("crateio: unknown switch kind %d", sw.Kind))
	}
	return w
}

func stmtFromWire(ws *wireStmt) (ir.Statement, error) {
	kind := ir.StmtKind(ws.Kind)
	switch kind {
	case ir.StmtAssign:
		if ws.Assign == nil {
			return ir.Statement{}, errMalformedStmt
		}
		return ir.NewStatement(kind, *ws.Assign), nil
	case ir.StmtFakeRead:
		if ws.FakeRead == nil {
			return ir.Statement{}, errMalformedStmt
		}
		return ir.NewStatement(kind, *ws.FakeRead), nil
	case ir.StmtSetDiscriminant:
		if ws.SetDisc == nil {
			return ir.Statement{}, errMalformedStmt
		}
		return ir.NewStatement(kind, *ws.SetDisc), nil
	case ir.StmtDrop:
		if ws.Drop == nil {
			return ir.Statement{}, errMalformedStmt
		}
		return ir.NewStatement(kind, *ws.Drop), nil
	case ir.StmtAssert:
		if ws.Assert == nil {
			return ir.Statement{}, errMalformedStmt
		}
		return ir.NewStatement(kind, *ws.Assert), nil
	case ir.StmtCall:
		if ws.Call == nil {
			return ir.Statement{}, errMalformedStmt
		}
		return ir.NewStatement(kind, *ws.Call), nil
	case ir.StmtPanic, ir.StmtReturn, ir.StmtNop:
		return ir.NewStatement(kind, nil), nil
	case ir.StmtBreak:
		return ir.NewStatement(kind, ir.BreakData{Depth: ws.Depth}), nil
	case ir.StmtContinue:
		return ir.NewStatement(kind, ir.ContinueData{Depth: ws.Depth}), nil
	case ir.StmtSequence:
		if ws.First == nil || ws.Second == nil {
			return ir.Statement{}, errMalformedStmt
		}
		first, err := stmtFromWire(ws.First)
		if err != nil {
			return ir.Statement{}, err
		}
		second, err := stmtFromWire(ws.Second)
		if err != nil {
			return ir.Statement{}, err
		}
		return ir.NewStatement(kind, ir.SequenceData{First: first, Second: second}), nil
	case ir.StmtLoop:
		if ws.Body == nil {
			return ir.Statement{}, errMalformedStmt
		}
		body, err := stmtFromWire(ws.Body)
		if err != nil {
			return ir.Statement{}, err
		}
		return ir.NewStatement(kind, ir.LoopData{Body: body}), nil
	case ir.StmtSwitch:
		if ws.Switch == nil {
			return ir.Statement{}, errMalformedStmt
		}
		sw, err := switchFromWire(ws.Switch)
		if err != nil {
			return ir.Statement{}, err
		}
		return ir.NewStatement(kind, ir.SwitchStmtData{Switch: sw}), nil
	default:
		return ir.Statement{}, fmt.Errorf("%w: statement kind %d", errMalformedStmt, ws.Kind)
	}
}

func switchFromWire(w *wireSwitch) (ir.Switch, error) {
	kind := ir.SwitchKind(w.Kind)
	switch kind {
	case ir.SwitchIf:
		if w.Then == nil || w.Else == nil {
			return ir.Switch{}, errMalformedStmt
		}
		then, err := stmtFromWire(w.Then)
		if err != nil {
			return ir.Switch{}, err
		}
		els, err := stmtFromWire(w.Else)
		if err != nil {
			return ir.Switch{}, err
		}
		return ir.Switch{Kind: kind, Data: ir.IfData{Cond: w.Cond, Then: then, Else: els}}, nil
	case ir.SwitchIntCases:
		if w.Default == nil {
			return ir.Switch{}, errMalformedStmt
		}
		d := ir.SwitchIntData{Scrutinee: w.Scrutinee, IntTy: w.IntTy}
		for i := range w.IntBranches {
			body, err := stmtFromWire(&w.IntBranches[i].Body)
			if err != nil {
				return ir.Switch{}, err
			}
			d.Branches = append(d.Branches, ir.IntBranch{Values: w.IntBranches[i].Values, Body: body})
		}
		def, err := stmtFromWire(w.Default)
		if err != nil {
			return ir.Switch{}, err
		}
		d.Default = def
		return ir.Switch{Kind: kind, Data: d}, nil
	case ir.SwitchMatch:
		if w.Default == nil {
			return ir.Switch{}, errMalformedStmt
		}
		d := ir.MatchData{Scrutinee: w.Place}
		for i := range w.MatchBranches {
			body, err := stmtFromWire(&w.MatchBranches[i].Body)
			if err != nil {
				return ir.Switch{}, err
			}
			d.Branches = append(d.Branches, ir.MatchBranch{Variants: w.MatchBranches[i].Variants, Body: body})
		}
		def, err := stmtFromWire(w.Default)
		if err != nil {
			return ir.Switch{}, err
		}
		d.Default = def
		return ir.Switch{Kind: kind, Data: d}, nil
	default:
		return ir.Switch{}, fmt.Errorf("%w: switch kind %d", errMalformedStmt, w.Kind)
	}
}
