package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/chessattacks/internal/attack"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.txt")
	err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "board")
		return err
	})
	if err != nil {
		t.Fatalf("writeFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "board" {
		t.Errorf("Expected file contents %q, got %q (%v)", "board", data, err)
	}

	errWrite := errors.New("disk full")
	if err := writeFile(filepath.Join(dir, "bad.txt"), func(io.Writer) error { return errWrite }); !errors.Is(err, errWrite) {
		t.Errorf("Expected write error to be returned, got %v", err)
	}

	if err := writeFile(filepath.Join(dir, "missing", "out.txt"), func(io.Writer) error { return nil }); err == nil {
		t.Error("Expected error creating a file in a missing directory")
	}
}

func TestLoadMagicsBuiltin(t *testing.T) {
	ms, err := loadMagics("", 0)
	if err != nil {
		t.Fatalf("loadMagics failed: %v", err)
	}
	if *ms != *attack.DefaultMagics() {
		t.Error("Expected the built-in magics for seed 0")
	}
}
