package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/darren-211/assemblyscript/internal/decl"
	"github.com/darren-211/assemblyscript/internal/exports"
	"github.com/darren-211/assemblyscript/internal/project"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] graph.mp",
	Short: "Emit declaration files for an export graph snapshot",
	Long:  "Emit renders WebIDL and TypeScript declaration files from a graph snapshot produced by the compiler stage.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmit,
}

var okColor = color.New(color.FgGreen)

func init() {
	emitCmd.Flags().String("format", "all", "declaration flavor to emit (idl|tsd|all)")
	emitCmd.Flags().String("out", "", "output directory (default: alongside the snapshot)")
	emitCmd.Flags().String("idl-out", "", "explicit path for the WebIDL file")
	emitCmd.Flags().String("tsd-out", "", "explicit path for the .d.ts file")
	emitCmd.Flags().Bool("stdout", false, "print to stdout instead of writing files")
}

func runEmit(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	wantIDL := format == "idl" || format == "all"
	wantTSD := format == "tsd" || format == "all"
	if !wantIDL && !wantTSD {
		return fmt.Errorf("unknown format %q (expected idl|tsd|all)", format)
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	snapshotPath := args[0]
	graph, err := exports.LoadSnapshot(snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load graph snapshot: %w", err)
	}

	manifest, manifestFound, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	if manifestFound && manifest.Options.Memory64 != nil {
		graph.Memory64 = *manifest.Options.Memory64
	}

	// Both flavors are independent pure functions over the immutable graph,
	// so they can render in parallel.
	var idlText, tsdText string
	var group errgroup.Group
	if wantIDL {
		group.Go(func() error {
			idlText = decl.BuildWebIDL(graph)
			return nil
		})
	}
	if wantTSD {
		group.Go(func() error {
			tsdText = decl.BuildTSD(graph)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if toStdout {
		if wantIDL {
			fmt.Print(idlText)
		}
		if wantTSD {
			fmt.Print(tsdText)
		}
		return nil
	}

	setupColor(cmd)

	idlPath, tsdPath, err := resolveOutputPaths(cmd, snapshotPath, manifest)
	if err != nil {
		return err
	}
	if wantIDL {
		if err := writeDeclaration(idlPath, idlText, quiet); err != nil {
			return err
		}
	}
	if wantTSD {
		if err := writeDeclaration(tsdPath, tsdText, quiet); err != nil {
			return err
		}
	}
	return nil
}

// resolveOutputPaths picks output locations: explicit flags win over the
// manifest, the manifest wins over the default of writing alongside the
// snapshot.
func resolveOutputPaths(cmd *cobra.Command, snapshotPath string, manifest *project.Manifest) (idlPath, tsdPath string, err error) {
	idlPath, err = cmd.Flags().GetString("idl-out")
	if err != nil {
		return "", "", err
	}
	tsdPath, err = cmd.Flags().GetString("tsd-out")
	if err != nil {
		return "", "", err
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return "", "", err
	}

	if manifest != nil {
		if idlPath == "" && manifest.Definitions.WebIDL != "" {
			idlPath = filepath.Join(manifest.Root, manifest.Definitions.WebIDL)
		}
		if tsdPath == "" && manifest.Definitions.TSD != "" {
			tsdPath = filepath.Join(manifest.Root, manifest.Definitions.TSD)
		}
	}

	if outDir == "" {
		outDir = filepath.Dir(snapshotPath)
	}
	base := strings.TrimSuffix(filepath.Base(snapshotPath), filepath.Ext(snapshotPath))
	if idlPath == "" {
		idlPath = filepath.Join(outDir, base+".webidl")
	}
	if tsdPath == "" {
		tsdPath = filepath.Join(outDir, base+".d.ts")
	}
	return idlPath, tsdPath, nil
}

func writeDeclaration(path, text string, quiet bool) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if !quiet {
		okColor.Printf("✓ %s\n", path)
	}
	return nil
}

func setupColor(cmd *cobra.Command) {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
