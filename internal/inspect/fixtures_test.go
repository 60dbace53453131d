package inspect

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/tom-tan/cwl-inspector/internal/parser"
	"github.com/tom-tan/cwl-inspector/pkg/cwl"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func loadDoc(t *testing.T, name string) *cwl.Document {
	t.Helper()
	path := filepath.Join("..", "..", "testdata", name)
	doc, err := parser.New(testLogger()).Load(path)
	if err != nil {
		t.Fatalf("load %q: %v", name, err)
	}
	return doc
}

func testEnv(outDir string) *Environment {
	return &Environment{
		Runtime: Runtime{OutDir: outDir},
		Args:    map[string]any{},
	}
}
