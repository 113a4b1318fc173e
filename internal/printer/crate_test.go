package printer_test

import (
	"context"
	"strings"
	"testing"

	"birview/internal/ir"
	"birview/internal/printer"
)

// bodiedCrate returns the fixture crate with bodies attached to every
// function, so crate rendering exercises the statement renderer too.
func bodiedCrate() *ir.Crate {
	crate := testCrate()
	for _, id := range crate.Funs.IDs() {
		fun, _ := crate.Funs.Get(id)
		if len(fun.Locals) == 0 {
			continue
		}
		body := ret()
		fun.Body = &body
	}
	return crate
}

func TestRenderCrate_EmptyCrate(t *testing.T) {
	if got := printer.RenderCrate(&ir.Crate{Name: "empty"}); got != "" {
		t.Errorf("empty crate must render as the empty string, got %q", got)
	}
}

func TestRenderCrate_GroupOrderAndSeparators(t *testing.T) {
	crate := bodiedCrate()
	got := printer.RenderCrate(crate)

	entries := strings.Split(got, "\n\n")
	wantStarts := []string{
		"struct Pair",
		"enum Opt",
		"global LIMIT",
		"fn main",
		"fn twice",
		"fn init_limit",
	}
	if len(entries) != len(wantStarts) {
		t.Fatalf("want %d blank-line separated entries, got %d:\n%s", len(wantStarts), len(entries), got)
	}
	for i, prefix := range wantStarts {
		if !strings.HasPrefix(entries[i], prefix) {
			t.Errorf("entry %d starts with %q, want prefix %q", i, firstLine(entries[i]), prefix)
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func TestRenderCrate_InsertionOrderIsKept(t *testing.T) {
	crate := &ir.Crate{Name: "ordered"}
	// Deliberately non-monotonic ids; order of insertion must win.
	crate.Types.Insert(7, &ir.TypeDecl{ID: 7, Name: "Late", Kind: ir.TypeOpaque})
	crate.Types.Insert(3, &ir.TypeDecl{ID: 3, Name: "Early", Kind: ir.TypeOpaque})

	got := printer.RenderCrate(crate)
	want := "opaque type Late\n\nopaque type Early"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCrateParallel_MatchesSequential(t *testing.T) {
	crate := bodiedCrate()
	want := printer.RenderCrate(crate)
	for _, jobs := range []int{1, 2, 8, -1} {
		got, err := printer.RenderCrateParallel(context.Background(), crate, jobs)
		if err != nil {
			t.Fatalf("jobs=%d: unexpected error: %v", jobs, err)
		}
		if got != want {
			t.Errorf("jobs=%d: parallel output differs from sequential", jobs)
		}
	}
}

func TestRenderDecl_ByID(t *testing.T) {
	crate := bodiedCrate()
	if got := printer.RenderGlobalDecl(crate, 0); got != "global LIMIT : u32 = init_limit" {
		t.Errorf("RenderGlobalDecl: got %q", got)
	}
	if got := printer.RenderFunDecl(crate, 2); !strings.HasPrefix(got, "fn init_limit() -> u32") {
		t.Errorf("RenderFunDecl: got %q", got)
	}
	mustPanic(t, "type", func() { printer.RenderTypeDecl(crate, 42) })
}

func TestRenderCrate_Deterministic(t *testing.T) {
	crate := bodiedCrate()
	if printer.RenderCrate(crate) != printer.RenderCrate(crate) {
		t.Error("crate rendering is not deterministic")
	}
}
