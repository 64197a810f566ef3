// Command starpack precompiles Starlark scripts into bytecode archives.
//
// It scans a source directory for *.star files, compiles each one and
// writes the compiled program to <out>/<stem>.starc, reporting every
// source -> output mapping on standard output. This is a build-time
// convenience with no runtime role.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
)

func main() {
	srcDir := flag.String("src", ".", "Directory scanned for *.star scripts")
	outDir := flag.String("out", "starc", "Directory the compiled archives are written to")
	flag.Parse()

	if err := compileAll(*srcDir, *outDir, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// compileAll compiles every *.star file directly under srcDir into outDir,
// creating outDir if needed. Each mapping is reported on w.
func compileAll(srcDir, outDir string, w io.Writer) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", srcDir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".star") {
			continue
		}

		src := filepath.Join(srcDir, e.Name())
		stem := strings.TrimSuffix(e.Name(), ".star")
		out := filepath.Join(outDir, stem+".starc")

		if err := compile(src, out); err != nil {
			return err
		}
		fmt.Fprintf(w, "Compiled %s -> %s\n", e.Name(), out)
	}
	return nil
}

// compile compiles one script to a bytecode archive. Free names resolve as
// predeclared: they are bound by the embedding host at run time, so their
// absence here is not a compile error.
func compile(src, out string) error {
	_, prog, err := starlark.SourceProgram(src, nil, func(string) bool { return true })
	if err != nil {
		return fmt.Errorf("compile %s: %w", src, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := prog.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	return f.Close()
}
