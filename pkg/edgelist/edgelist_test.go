package edgelist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/tiegraph/pkg/errors"
)

func TestLabels(t *testing.T) {
	tests := []struct {
		name string
		rels []Relation
		want []string
	}{
		{"empty", nil, nil},
		{"single", []Relation{R("A", "B", 1)}, []string{"A", "B"}},
		{"self loop", []Relation{R("A", "A", 1)}, []string{"A"}},
		{
			name: "first seen order",
			rels: []Relation{R("C", "A", 1), R("A", "B", 1), R("B", "C", 1), R("D", "A", 1)},
			want: []string{"C", "A", "B", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Labels(tt.rels)); diff != "" {
				t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead(t *testing.T) {
	want := []Relation{R("Ada", "Cora", 1), R("Cora", "Ada", 3), R("Eva", "Eva", 1)}

	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "json",
			format: FormatJSON,
			input: `{"edges": [
				{"source": "Ada", "target": "Cora", "weight": 1},
				{"source": "Cora", "target": "Ada", "weight": 3},
				{"source": "Eva", "target": "Eva"}
			]}`,
		},
		{
			name:   "toml",
			format: FormatTOML,
			input: `
[[edges]]
source = "Ada"
target = "Cora"
weight = 1

[[edges]]
source = "Cora"
target = "Ada"
weight = 3

[[edges]]
source = "Eva"
target = "Eva"
`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input: `
edges:
  - {source: Ada, target: Cora, weight: 1}
  - {source: Cora, target: Ada, weight: 3}
  - source: Eva
    target: Eva
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadBytes([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadEmpty(t *testing.T) {
	for _, tt := range []struct {
		format Format
		input  string
	}{
		{FormatJSON, `{"edges": []}`},
		{FormatJSON, ``},
		{FormatTOML, ``},
		{FormatYAML, ``},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := ReadBytes([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("len = %d, want 0", len(got))
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errs.Code
	}{
		{"malformed json", FormatJSON, `{"edges": [`, errs.ErrCodeInvalidFormat},
		{"malformed toml", FormatTOML, `[[edges]`, errs.ErrCodeInvalidFormat},
		{"malformed yaml", FormatYAML, "edges: [\n  - {source: A", errs.ErrCodeInvalidFormat},
		{"tab in label", FormatJSON, `{"edges": [{"source": "A\tB", "target": "C"}]}`, errs.ErrCodeInvalidInput},
		{"empty source", FormatJSON, `{"edges": [{"source": "", "target": "B"}]}`, errs.ErrCodeInvalidInput},
		{"missing target", FormatJSON, `{"edges": [{"source": "A"}]}`, errs.ErrCodeInvalidInput},
		{"unknown format", Format("xml"), `<edges/>`, errs.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBytes([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (err: %v)", errs.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"ties.json", FormatJSON, false},
		{"dir/ties.TOML", FormatTOML, false},
		{"ties.yaml", FormatYAML, false},
		{"ties.yml", FormatYAML, false},
		{"ties.csv", "", true},
		{"ties", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatFromPathMessage(t *testing.T) {
	_, err := FormatFromPath("ties.csv")
	if !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Fatalf("code = %s, want %s", errs.GetCode(err), errs.ErrCodeUnsupported)
	}
	want := `unsupported edge list extension ".csv" (want .json, .toml, .yaml)`
	if got := errs.UserMessage(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ties.toml")
	data := "[[edges]]\nsource = \"A\"\ntarget = \"B\"\nweight = 2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]Relation{R("A", "B", 2)}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("code = %s, want %s", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}

func TestLoadBundledExamples(t *testing.T) {
	tests := []struct {
		file  string
		count int
		first Relation
	}{
		{"coauthors.yaml", 8, R("Noether", "Hilbert", 3)},
		{"triangle.json", 4, R("A", "B", 1)},
		{"relay.toml", 5, R("start", "leg1", DefaultWeight)},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			rels, err := Load(filepath.Join("..", "..", "examples", tt.file))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(rels) != tt.count {
				t.Errorf("len = %d, want %d", len(rels), tt.count)
			}
			if diff := cmp.Diff(tt.first, rels[0]); diff != "" {
				t.Errorf("first relation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
