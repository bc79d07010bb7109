// Package groupsfornomads provides tooling for the community-curated directory
// of digital-nomad chat and social groups stored in groups.yaml.
//
// The repository ships one binary, groupstool, plus importable packages:
//
//   - parser: load groups.yaml into a position-annotated document tree
//   - schema: locate and compile the JSON Schema for the data file
//   - validator: structural (schema) and domain validation with full findings
//   - report: render findings as text, JSON, or GitHub workflow annotations
//   - render: generate the human-readable markdown index from the data file
//   - submission: turn issue-form submissions into new directory entries
//
// # Quick Start
//
// Validate the data file:
//
//	import "github.com/rignaneseleo/groups-for-nomads/validator"
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithDataFile("groups.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Valid {
//	    fmt.Printf("found %d finding(s)\n", result.FindingCount)
//	}
//
// Render the index:
//
//	import "github.com/rignaneseleo/groups-for-nomads/render"
//
//	md := render.Index(dir)
//
// Every finding carries a JSON Pointer into the document, the schema location
// that produced it, and a best-effort source line/column resolved from the
// YAML node tree.
package groupsfornomads
