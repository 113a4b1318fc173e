package printer_test

import (
	"strings"
	"testing"

	"birview/internal/ir"
	"birview/internal/printer"
)

// testCrate builds a small crate shared by the printer tests:
// two types, one global, and the functions the bodies refer to.
func testCrate() *ir.Crate {
	crate := &ir.Crate{Name: "demo"}
	crate.Types.Insert(0, &ir.TypeDecl{
		ID: 0, Name: "Pair", Kind: ir.TypeStruct,
		Fields: []ir.Field{
			{Name: "x", Ty: ir.IntTy(ir.Width32)},
			{Name: "y", Ty: ir.IntTy(ir.Width32)},
		},
	})
	crate.Types.Insert(1, &ir.TypeDecl{
		ID: 1, Name: "Opt",
		Generics: ir.GenericParams{Types: []string{"T"}},
		Kind:     ir.TypeEnum,
		Variants: []ir.EnumVariant{
			{Name: "None"},
			{Name: "Some", Fields: []ir.Field{{Ty: ir.Ty{Kind: ir.TyTypeVar}}}},
		},
	})
	crate.Globals.Insert(0, &ir.GlobalDecl{ID: 0, Name: "LIMIT", Ty: ir.UintTy(ir.Width32), Init: 2})
	crate.Funs.Insert(0, &ir.FunDecl{
		ID: 0, Name: "main", Output: ir.Unit(), ArgCount: 1,
		Locals: []ir.Var{
			{ID: 0, Ty: ir.Unit()},
			{ID: 1, Name: "x", Ty: ir.IntTy(ir.Width32)},
			{ID: 2, Name: "y", Ty: ir.IntTy(ir.Width32)},
		},
	})
	crate.Funs.Insert(1, &ir.FunDecl{
		ID: 1, Name: "twice",
		Inputs: []ir.Ty{ir.IntTy(ir.Width32)}, Output: ir.IntTy(ir.Width32), ArgCount: 1,
	})
	crate.Funs.Insert(2, &ir.FunDecl{
		ID: 2, Name: "init_limit", Output: ir.UintTy(ir.Width32),
	})
	return crate
}

func mainFormatter(t *testing.T, crate *ir.Crate) *printer.FmtCtx {
	t.Helper()
	fun, ok := crate.Funs.Get(0)
	if !ok {
		t.Fatal("fixture crate has no function 0")
	}
	return printer.NewFunFormatter(crate, fun)
}

func ret() ir.Statement     { return ir.NewStatement(ir.StmtReturn, nil) }
func nop() ir.Statement     { return ir.NewStatement(ir.StmtNop, nil) }
func panicSt() ir.Statement { return ir.NewStatement(ir.StmtPanic, nil) }

func brk(depth uint) ir.Statement {
	return ir.NewStatement(ir.StmtBreak, ir.BreakData{Depth: depth})
}

func cont(depth uint) ir.Statement {
	return ir.NewStatement(ir.StmtContinue, ir.ContinueData{Depth: depth})
}

func loopSt(body ir.Statement) ir.Statement {
	return ir.NewStatement(ir.StmtLoop, ir.LoopData{Body: body})
}

func copyOp(local ir.LocalID) ir.Operand {
	return ir.Operand{Kind: ir.OperandCopy, Place: ir.Place{Local: local}}
}

func TestFmtStatement_Assign(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := ir.NewStatement(ir.StmtAssign, ir.AssignData{
		Place:  ir.Place{Local: 1},
		Rvalue: ir.UseRvalue(copyOp(2)),
	})
	got := printer.FmtStatement(fc, "", "  ", st)
	want := "x@1 := copy y@2"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "\n") {
		t.Errorf("assign must render on a single line, got %q", got)
	}
}

func TestFmtStatement_Sequence(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	got := printer.FmtStatement(fc, "", "  ", ir.Seq(ret(), nop()))
	want := "return;\nnop"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFmtStatement_Loop(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	got := printer.FmtStatement(fc, "", "  ", loopSt(brk(0)))
	want := "loop {\n  break 0\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFmtStatement_NestedLoopIndent(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	got := printer.FmtStatement(fc, "", "  ", loopSt(loopSt(brk(1))))
	want := "loop {\n  loop {\n    break 1\n  }\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFmtStatement_If(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := ir.SwitchStmt(ir.SwitchIf, ir.IfData{
		Cond: copyOp(1),
		Then: ret(),
		Else: panicSt(),
	})
	got := printer.FmtStatement(fc, "", "  ", st)
	want := "if (copy x@1) {\n  return\n}\nelse {\n  panic\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFmtStatement_SwitchInt(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := ir.SwitchStmt(ir.SwitchIntCases, ir.SwitchIntData{
		Scrutinee: copyOp(1),
		IntTy:     ir.IntTy(ir.Width32),
		Branches: []ir.IntBranch{
			{Values: []ir.Const{ir.IntConst(0, ir.Width32)}, Body: ret()},
		},
		Default: panicSt(),
	})
	got := printer.FmtStatement(fc, "", "  ", st)
	want := strings.Join([]string{
		"switch (copy x@1) {",
		"  | 0i32 => {",
		"    return",
		"  }",
		"  _ => {",
		"    panic",
		"  }",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFmtStatement_SwitchIntMultiValueLabels(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := ir.SwitchStmt(ir.SwitchIntCases, ir.SwitchIntData{
		Scrutinee: copyOp(1),
		IntTy:     ir.UintTy(ir.Width8),
		Branches: []ir.IntBranch{
			{Values: []ir.Const{ir.UintConst(1, ir.Width8), ir.UintConst(2, ir.Width8)}, Body: nop()},
		},
		Default: ret(),
	})
	got := printer.FmtStatement(fc, "", "  ", st)
	if !strings.Contains(got, "  | 1u8 | 2u8 => {") {
		t.Errorf("multi-value label missing or malformed:\n%s", got)
	}
}

func TestFmtStatement_SwitchIntNoExplicitBranches(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := ir.SwitchStmt(ir.SwitchIntCases, ir.SwitchIntData{
		Scrutinee: copyOp(1),
		IntTy:     ir.IntTy(ir.Width32),
		Default:   ret(),
	})
	got := printer.FmtStatement(fc, "", "  ", st)
	want := strings.Join([]string{
		"switch (copy x@1) {",
		"  _ => {",
		"    return",
		"  }",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFmtStatement_Match(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := ir.SwitchStmt(ir.SwitchMatch, ir.MatchData{
		Scrutinee: ir.Place{Local: 2},
		Branches: []ir.MatchBranch{
			{Variants: []ir.VariantID{0, 2}, Body: ret()},
		},
		Default: panicSt(),
	})
	got := printer.FmtStatement(fc, "", "  ", st)
	want := strings.Join([]string{
		"match (y@2) {",
		"  | 0 | 2 => {",
		"    return",
		"  }",
		"  _ => {",
		"    panic",
		"  }",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFmtStatement_DefaultClauseAlwaysLast(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := ir.SwitchStmt(ir.SwitchIntCases, ir.SwitchIntData{
		Scrutinee: copyOp(1),
		IntTy:     ir.IntTy(ir.Width32),
		Branches: []ir.IntBranch{
			{Values: []ir.Const{ir.IntConst(0, ir.Width32)}, Body: ret()},
			{Values: []ir.Const{ir.IntConst(1, ir.Width32)}, Body: nop()},
		},
		Default: panicSt(),
	})
	got := printer.FmtStatement(fc, "", "  ", st)
	if n := strings.Count(got, "_ => {"); n != 1 {
		t.Fatalf("want exactly one default clause, got %d:\n%s", n, got)
	}
	if strings.Index(got, "_ => {") < strings.LastIndex(got, "| ") {
		t.Errorf("default clause must follow every explicit branch:\n%s", got)
	}
}

func TestFmtStatement_BreakContinueDepthLiterals(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	if got := printer.FmtStatement(fc, "", "  ", brk(3)); got != "break 3" {
		t.Errorf("got %q, want %q", got, "break 3")
	}
	if got := printer.FmtStatement(fc, "", "  ", cont(7)); got != "continue 7" {
		t.Errorf("got %q, want %q", got, "continue 7")
	}
}

func TestFmtStatement_LeafStatements(t *testing.T) {
	crate := testCrate()
	fc := mainFormatter(t, crate)
	cases := []struct {
		name string
		st   ir.Statement
		want string
	}{
		{"fake_read", ir.NewStatement(ir.StmtFakeRead, ir.FakeReadData{Place: ir.Place{Local: 1}}), "fake_read x@1"},
		{"set_discriminant", ir.NewStatement(ir.StmtSetDiscriminant, ir.SetDiscriminantData{Place: ir.Place{Local: 1}, Variant: 2}), "set_discriminant(x@1, 2)"},
		{"drop", ir.NewStatement(ir.StmtDrop, ir.DropData{Place: ir.Place{Local: 2}}), "drop y@2"},
		{"assert", ir.NewStatement(ir.StmtAssert, ir.AssertData{Assert: ir.Assertion{Cond: copyOp(1), Expected: true}}), "assert(copy x@1 == true)"},
		{"call", ir.NewStatement(ir.StmtCall, ir.CallData{Call: ir.Call{Fun: 1, Args: []ir.Operand{copyOp(2)}, Dest: ir.Place{Local: 1}}}), "x@1 := twice(copy y@2)"},
		{"panic", panicSt(), "panic"},
		{"nop", nop(), "nop"},
	}
	for _, tc := range cases {
		if got := printer.FmtStatement(fc, "", "  ", tc.st); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFmtStatement_Deterministic(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := loopSt(ir.Seq(
		ir.NewStatement(ir.StmtAssign, ir.AssignData{Place: ir.Place{Local: 1}, Rvalue: ir.UseRvalue(copyOp(2))}),
		ir.SwitchStmt(ir.SwitchIf, ir.IfData{Cond: copyOp(1), Then: brk(0), Else: cont(0)}),
	))
	first := printer.FmtStatement(fc, "", "  ", st)
	second := printer.FmtStatement(fc, "", "  ", st)
	if first != second {
		t.Errorf("rendering is not deterministic:\n%s\nvs\n%s", first, second)
	}
}

// TestFmtStatement_IndentPrefixInvariant checks that every line of a nested
// render starts with the enclosing indent and that brace lines balance.
func TestFmtStatement_IndentPrefixInvariant(t *testing.T) {
	fc := mainFormatter(t, testCrate())
	st := loopSt(ir.SwitchStmt(ir.SwitchIntCases, ir.SwitchIntData{
		Scrutinee: copyOp(1),
		IntTy:     ir.IntTy(ir.Width32),
		Branches: []ir.IntBranch{
			{Values: []ir.Const{ir.IntConst(0, ir.Width32)}, Body: loopSt(brk(1))},
		},
		Default: ret(),
	}))
	indent := "    "
	got := printer.FmtStatement(fc, indent, "  ", st)

	depth := 0
	for i, line := range strings.Split(got, "\n") {
		if !strings.HasPrefix(line, indent) {
			t.Fatalf("line %d lacks the base indent %q: %q", i, indent, line)
		}
		trimmed := strings.TrimLeft(line, " |")
		if strings.HasPrefix(trimmed, "}") {
			depth--
		}
		if depth < 0 {
			t.Fatalf("unbalanced closing brace at line %d:\n%s", i, got)
		}
		if strings.HasSuffix(line, "{") {
			depth++
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced braces (depth %d at end):\n%s", depth, got)
	}
	if strings.HasPrefix(got, "\n") || strings.HasSuffix(got, "\n") {
		t.Errorf("render must not carry leading or trailing newlines: %q", got)
	}
}
