package edgelist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/tiegraph/pkg/errors"
)

// Format identifies an edge list file encoding.
type Format string

// Supported edge list formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

type document struct {
	Edges []record `json:"edges" toml:"edges" yaml:"edges"`
}

type record struct {
	Source string `json:"source" toml:"source" yaml:"source"`
	Target string `json:"target" toml:"target" yaml:"target"`
	Weight *int   `json:"weight,omitempty" toml:"weight,omitempty" yaml:"weight,omitempty"`
}

// FormatFromPath picks a format from the file extension of path.
// Returns an UNSUPPORTED error for unknown extensions.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	want := make([]string, len(Formats))
	for i, f := range Formats {
		want[i] = "." + string(f)
	}
	return "", errs.New(errs.ErrCodeUnsupported, "unsupported edge list extension %q (want %s)", filepath.Ext(path), strings.Join(want, ", "))
}

// Load reads the edge list file at path. The format is chosen from the file
// extension.
func Load(path string) ([]Relation, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "edge list %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rels, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rels, nil
}

// Read decodes an edge list from r. Read does not close r.
//
// An empty document yields an empty list in every format. Every relation
// must name a non-empty source and target; see
// [errors.ValidateLabel] for the full rules. An empty "edges" array is valid
// and yields an empty list.
//
// [errors.ValidateLabel]: github.com/matzehuels/tiegraph/pkg/errors.ValidateLabel
func Read(r io.Reader, format Format) ([]Relation, error) {
	var doc document
	if err := decode(r, format, &doc); err != nil {
		return nil, err
	}

	rels := make([]Relation, 0, len(doc.Edges))
	for i, rec := range doc.Edges {
		if err := errs.ValidateLabel(rec.Source); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "edge %d source", i)
		}
		if err := errs.ValidateLabel(rec.Target); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "edge %d target", i)
		}
		w := DefaultWeight
		if rec.Weight != nil {
			w = *rec.Weight
		}
		rels = append(rels, Relation{Source: rec.Source, Target: rec.Target, Weight: w})
	}
	return rels, nil
}

func decode(r io.Reader, format Format, doc *document) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(doc)
		if err == io.EOF {
			err = nil // empty document
		}
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(doc)
		if err == io.EOF {
			err = nil // empty document
		}
	default:
		return errs.New(errs.ErrCodeUnsupported, "unsupported edge list format %q", format)
	}
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode %s", format)
	}
	return nil
}

// ReadBytes is a convenience wrapper around [Read] for in-memory data.
func ReadBytes(data []byte, format Format) ([]Relation, error) {
	return Read(bytes.NewReader(data), format)
}
