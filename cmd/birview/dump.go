package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"birview/internal/config"
	"birview/internal/crateio"
	"birview/internal/ir"
	"birview/internal/printer"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] crate.bir",
	Short: "Render a crate file to a readable listing",
	Long:  `Dump loads a .bir crate file and prints every declaration as indented text`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("output", "o", "", "write the listing to a file instead of stdout")
	dumpCmd.Flags().Int("jobs", 0, "render declarations in parallel with this many workers (0 = sequential)")
	dumpCmd.Flags().String("decl", "", "render a single declaration (fn:NAME, global:NAME or type:NAME)")
	dumpCmd.Flags().Bool("keep-going", false, "skip declarations that fail to render instead of aborting")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	jobs := cfg.Dump.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}
	colorMode := cfg.Dump.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		colorMode, _ = cmd.Root().PersistentFlags().GetString("color")
	}
	useColor := colorMode == "on" || (colorMode == "auto" && isTerminal(os.Stderr))

	crate, err := crateio.Load(args[0])
	if err != nil {
		return err
	}

	var out string
	declSpec, _ := cmd.Flags().GetString("decl")
	keepGoing, _ := cmd.Flags().GetBool("keep-going")
	switch {
	case declSpec != "":
		out, err = renderOneDecl(crate, declSpec)
		if err != nil {
			return err
		}
	case keepGoing:
		out = renderCrateLenient(crate, useColor)
	case jobs != 0:
		out, err = printer.RenderCrateParallel(cmd.Context(), crate, jobs)
		if err != nil {
			return fmt.Errorf("render crate %q: %w", crate.Name, err)
		}
	default:
		out = printer.RenderCrate(crate)
	}
	if out != "" {
		out += "\n"
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write listing to %s: %w", outPath, err)
	}
	return nil
}

// renderOneDecl renders a single declaration picked by "kind:name".
func renderOneDecl(crate *ir.Crate, spec string) (string, error) {
	kind, name, ok := strings.Cut(spec, ":")
	if !ok {
		return "", fmt.Errorf("--decl wants kind:NAME, got %q", spec)
	}
	switch kind {
	case "fn":
		for _, id := range crate.Funs.IDs() {
			if decl, _ := crate.Funs.Get(id); decl.Name == name {
				return printer.RenderFunDecl(crate, id), nil
			}
		}
	case "global":
		for _, id := range crate.Globals.IDs() {
			if decl, _ := crate.Globals.Get(id); decl.Name == name {
				return printer.RenderGlobalDecl(crate, id), nil
			}
		}
	case "type":
		for _, id := range crate.Types.IDs() {
			if decl, _ := crate.Types.Get(id); decl.Name == name {
				return printer.RenderTypeDecl(crate, id), nil
			}
		}
	default:
		return "", fmt.Errorf("--decl kind must be fn, global or type, got %q", kind)
	}
	return "", fmt.Errorf("no %s declaration named %q in crate %q", kind, name, crate.Name)
}

// renderCrateLenient renders declaration by declaration, skipping any whose
// render panics on an inconsistent crate table. Each per-declaration render
// stays all-or-nothing; only the crate-level concatenation is forgiving.
func renderCrateLenient(crate *ir.Crate, useColor bool) string {
	warn := color.New(color.FgYellow)
	warn.DisableColor()
	if useColor {
		warn.EnableColor()
	}

	var parts []string
	render := func(what string, f func() string) {
		defer func() {
			if r := recover(); r != nil {
				warn.Fprintf(os.Stderr, "warning: skipping %s: %v\n", what, r)
			}
		}()
		parts = append(parts, f())
	}
	for _, id := range crate.Types.IDs() {
		render(fmt.Sprintf("type %d", id), func() string { return printer.RenderTypeDecl(crate, id) })
	}
	for _, id := range crate.Globals.IDs() {
		render(fmt.Sprintf("global %d", id), func() string { return printer.RenderGlobalDecl(crate, id) })
	}
	for _, id := range crate.Funs.IDs() {
		render(fmt.Sprintf("function %d", id), func() string { return printer.RenderFunDecl(crate, id) })
	}
	return strings.Join(parts, "\n\n")
}
