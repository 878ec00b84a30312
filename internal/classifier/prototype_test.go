package classifier

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleArtifact = `{
  "classes": ["Safe", "High Risk"],
  "prototypes": [
    {"label": "Safe", "features": [1, 15, 32, 28, 24, 65, 65, 65, 3.5, 3.5, 3.5, 0, 60, 95]},
    {"label": "High Risk", "features": [11, 8, 32, 28, 24, 65, 65, 65, 3.5, 3.5, 3.5, 0, 240, 200]}
  ]
}`

func TestNewPrototypeModelFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(sampleArtifact), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}

	model, err := NewPrototypeModelFromFile(path, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := model.ClassOrder(); len(got) != 2 || got[0] != "Safe" {
		t.Errorf("unexpected class order: %v", got)
	}
}

func TestNewPrototypeModelFromFile_ExampleFallback(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(dir, "model.example.json")
	if err := os.WriteFile(fallback, []byte(sampleArtifact), 0o644); err != nil {
		t.Fatalf("failed to write fallback artifact: %v", err)
	}

	// primary file is absent; the .example sibling must be used
	model, err := NewPrototypeModelFromFile(filepath.Join(dir, "model.json"), testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.ClassOrder()) != 2 {
		t.Errorf("unexpected class order: %v", model.ClassOrder())
	}
}

func TestNewPrototypeModelFromFile_MissingBoth(t *testing.T) {
	if _, err := NewPrototypeModelFromFile(filepath.Join(t.TempDir(), "model.json"), testLogger()); err == nil {
		t.Fatal("expected error when neither artifact exists")
	}
}

func TestNewPrototypeModelFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(`{"classes": [`), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}

	if _, err := NewPrototypeModelFromFile(path, testLogger()); err == nil {
		t.Fatal("expected error for malformed artifact")
	}
}
