// Package schema locates and compiles the JSON Schema for the groups data
// file.
//
// The schema is authored externally and shipped alongside the data file; this
// package only finds it, checks it against the meta-rules of its schema
// language, and hands the compiled form to the validator.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v4"

	"github.com/rignaneseleo/groups-for-nomads/groupserrors"
)

// EnvSchemaPath is the environment variable consulted when no explicit schema
// path is given.
const EnvSchemaPath = "GROUPS_SCHEMA"

// DefaultFileName is the schema file name looked up in the search
// directories.
const DefaultFileName = "schema.json"

// Schema is a compiled, immutable structural contract for the data file.
type Schema struct {
	// Path is the file the schema was loaded from
	Path string

	compiled *jsonschema.Schema
}

// Validate checks a decoded document against the schema. The returned error
// is a *jsonschema.ValidationError carrying the full cause tree; nil means
// the document is structurally valid.
func (s *Schema) Validate(doc any) error {
	return s.compiled.Validate(doc)
}

// Candidates returns the schema search order for the given inputs, with
// duplicates removed (search order preserved):
//
//  1. the explicit path, when given
//  2. $GROUPS_SCHEMA, when set
//  3. schema.json next to the data file
//  4. schema.json next to the running executable
//  5. ./schema.json
func Candidates(explicit, dataPath string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if env := os.Getenv(EnvSchemaPath); env != "" {
		paths = append(paths, env)
	}
	if dataPath != "" {
		paths = append(paths, filepath.Join(filepath.Dir(dataPath), DefaultFileName))
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), DefaultFileName))
	}
	paths = append(paths, DefaultFileName)

	seen := make(map[string]bool, len(paths))
	result := paths[:0]
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}

// LoadWithSearch loads the first existing schema from the search order
// described by Candidates. When no candidate exists it fails with a
// groupserrors.SchemaNotFoundError enumerating every path checked.
func LoadWithSearch(explicit, dataPath string) (*Schema, error) {
	candidates := Candidates(explicit, dataPath)
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return nil, &groupserrors.SchemaNotFoundError{Candidates: candidates}
}

// Load reads and compiles a schema file. The file may be JSON or YAML; either
// way it must satisfy the meta-schema of its declared draft, otherwise a
// groupserrors.SchemaError is returned.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &groupserrors.SchemaNotFoundError{Candidates: []string{path}}
		}
		return nil, &groupserrors.SchemaError{Path: path, Message: "cannot read schema", Cause: err}
	}

	// YAML is a superset of JSON, so a single decode handles both; the
	// compiler itself wants JSON.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &groupserrors.SchemaError{Path: path, Message: "schema is not valid structured data", Cause: err}
	}
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, &groupserrors.SchemaError{Path: path, Message: "schema cannot be represented as JSON", Cause: err}
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, bytes.NewReader(jsonBytes)); err != nil {
		return nil, &groupserrors.SchemaError{Path: path, Message: "schema is not a valid schema document", Cause: err}
	}
	compiled, err := compiler.Compile(path)
	if err != nil {
		return nil, &groupserrors.SchemaError{Path: path, Message: "schema fails its meta-schema", Cause: err}
	}

	return &Schema{Path: path, compiled: compiled}, nil
}
