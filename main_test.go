package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelmacinnis/lis/internal/system/options"
)

func TestRunCommand(t *testing.T) {
	if !run(&options.T{Command: "(+ 2 2)"}) {
		t.Fatal("expected success")
	}

	if run(&options.T{Command: "(+ x 2)"}) {
		t.Fatal("expected failure for an unbound symbol")
	}
}

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.lis")

	err := os.WriteFile(path, []byte("(setq (x) 5)\n(* x\n   x)\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	if !run(&options.T{Script: path}) {
		t.Fatal("expected success")
	}

	if run(&options.T{Script: path + ".missing"}) {
		t.Fatal("expected failure for a missing script")
	}
}
