package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompileAll(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(src, "starc")

	script := "greeting = 'hello'\ncells = [w * 2 for w in [1, 2, 3]]\n"
	if err := os.WriteFile(filepath.Join(src, "demo.star"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-script files are skipped.
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	var report bytes.Buffer
	if err := compileAll(src, out, &report); err != nil {
		t.Fatalf("compileAll() error = %v", err)
	}

	archive := filepath.Join(out, "demo.starc")
	info, err := os.Stat(archive)
	if err != nil {
		t.Fatalf("archive not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("archive is empty")
	}

	got := report.String()
	if !strings.Contains(got, "demo.star -> "+archive) {
		t.Errorf("report %q does not map demo.star to %s", got, archive)
	}
	if strings.Contains(got, "notes.txt") {
		t.Errorf("report %q mentions a non-script file", got)
	}
}

func TestCompileAllFreeNames(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(src, "starc")

	// Free names resolve as host-predeclared, matching how the scripts
	// run in their embedding environment.
	script := "result = host_lookup('well')\n"
	if err := os.WriteFile(filepath.Join(src, "probe.star"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	var report bytes.Buffer
	if err := compileAll(src, out, &report); err != nil {
		t.Fatalf("compileAll() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "probe.starc")); err != nil {
		t.Fatalf("archive not written: %v", err)
	}
}

func TestCompileAllBadScript(t *testing.T) {
	src := t.TempDir()

	if err := os.WriteFile(filepath.Join(src, "broken.star"), []byte("def (:\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var report bytes.Buffer
	err := compileAll(src, filepath.Join(src, "starc"), &report)
	if err == nil {
		t.Fatal("compileAll() succeeded on a syntactically broken script")
	}
	if !strings.Contains(err.Error(), "broken.star") {
		t.Errorf("error %q does not name the script", err)
	}
}
